package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/paybar/paybar/internal/config"
	"github.com/paybar/paybar/internal/logger"
)

// DB wraps sqlx.DB so repositories depend on a narrow surface
type DB struct {
	*sqlx.DB
	logger *logger.Logger
}

// NewDB creates a new DB instance
func NewDB(config *config.Configuration, logger *logger.Logger) (*DB, error) {
	dsn := config.Postgres.GetDSN()
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}

	return &DB{DB: db, logger: logger}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// NamedExecContext wraps NamedExecContext on the underlying pool
func (db *DB) NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error) {
	return db.DB.NamedExecContext(ctx, query, arg)
}

// NamedQueryContext wraps NamedQueryContext on the underlying pool
func (db *DB) NamedQueryContext(ctx context.Context, query string, arg interface{}) (*sqlx.Rows, error) {
	return sqlx.NamedQueryContext(ctx, db.DB, query, arg)
}
