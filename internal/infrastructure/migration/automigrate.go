package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"classicmodels/internal/infrastructure/persistence/models"
	"classicmodels/internal/shared/logger"
)

// AutoMigrateStrategy derives the schema from the GORM models. It is meant
// for SQLite development databases and tests.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *AutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("running gorm auto migrate", "models_count", len(all))

	if err := db.WithContext(ctx).AutoMigrate(all...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *AutoMigrateStrategy) Down(ctx context.Context, db *gorm.DB, steps int) error {
	return fmt.Errorf("strategy %s cannot roll back", s.GetName())
}

func (s *AutoMigrateStrategy) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	return 0, nil
}

func (s *AutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
