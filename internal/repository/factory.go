package repository

import (
	"github.com/paybar/paybar/internal/domain/quota"
	"github.com/paybar/paybar/internal/logger"
	"github.com/paybar/paybar/internal/postgres"
	postgresRepo "github.com/paybar/paybar/internal/repository/postgres"
)

func NewQuotaRepository(db *postgres.DB, logger *logger.Logger) quota.Repository {
	return postgresRepo.NewQuotaRepository(db, logger)
}
