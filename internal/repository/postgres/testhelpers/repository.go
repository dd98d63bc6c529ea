package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/collection-routing/internal/domain/repository"
	"github.com/collection-routing/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewOptimizationRunRepositoryForTest creates a run repository with test database and logger
func NewOptimizationRunRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.OptimizationRunRepository {
	return postgres.NewOptimizationRunRepository(NewDBForTest(db, logger), logger)
}
