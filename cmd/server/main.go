package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/paybar/paybar/internal/api"
	v1 "github.com/paybar/paybar/internal/api/v1"
	"github.com/paybar/paybar/internal/config"
	"github.com/paybar/paybar/internal/logger"
	"github.com/paybar/paybar/internal/postgres"
	"github.com/paybar/paybar/internal/repository"
	"github.com/paybar/paybar/internal/service"
	"github.com/paybar/paybar/internal/validator"
)

// @title PayBar API
// @version 1.0
// @description Payment barcode generation and quota ledger service
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		// Validator backs request validation and must exist before traffic
		fx.Invoke(validator.NewValidator),
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,

			// Repositories
			repository.NewQuotaRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewBarcodeService,
			service.NewQuotaService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	barcodeService service.BarcodeService,
	quotaService service.QuotaService,
) api.Handlers {
	return api.Handlers{
		Health:  v1.NewHealthHandler(logger),
		Barcode: v1.NewBarcodeHandler(barcodeService, logger),
		Quota:   v1.NewQuotaHandler(quotaService, logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return db.Close()
		},
	})
}
