package service

import (
	"github.com/paybar/paybar/internal/config"
	"github.com/paybar/paybar/internal/domain/quota"
	"github.com/paybar/paybar/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	QuotaRepo quota.Repository
}

// NewServiceParams creates a new ServiceParams instance with all dependencies
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	quotaRepo quota.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:    logger,
		Config:    config,
		QuotaRepo: quotaRepo,
	}
}
