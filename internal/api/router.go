package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/paybar/paybar/internal/api/v1"
	"github.com/paybar/paybar/internal/rest/middleware"
)

type Handlers struct {
	Health  *v1.HealthHandler
	Barcode *v1.BarcodeHandler
	Quota   *v1.QuotaHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Barcode routes
	barcodes := router.Group("/barcodes")
	{
		barcodes.POST("/generate", handlers.Barcode.GenerateBarcodes)
	}

	// Quota routes
	quota := router.Group("/quota/accounts")
	{
		quota.POST("", handlers.Quota.CreateAccount)
		quota.GET("/:id", handlers.Quota.GetAccount)
		quota.POST("/:id/topup", handlers.Quota.TopUp)
		quota.POST("/:id/deduct", handlers.Quota.Deduct)
	}
}
