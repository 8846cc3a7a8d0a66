package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"classicmodels/internal/shared/config"
	"classicmodels/internal/shared/logger"
)

// Strategy names accepted in configuration.
const (
	StrategyGoose       = "goose"
	StrategyAutoMigrate = "automigrate"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the configured strategy for the configured driver.
func NewManager(migrationCfg config.MigrationConfig, dbCfg config.DatabaseConfig, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	switch migrationCfg.Strategy {
	case StrategyAutoMigrate:
		strategy = NewAutoMigrateStrategy(log)
	case StrategyGoose, "":
		goose, err := NewGooseStrategy(dbCfg.Driver, log)
		if err != nil {
			return nil, err
		}
		strategy = goose
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", migrationCfg.Strategy)
	}

	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// Down rolls back steps versions.
func (m *Manager) Down(ctx context.Context, db *gorm.DB, steps int) error {
	return m.strategy.Down(ctx, db, steps)
}

// Version reports the applied schema version.
func (m *Manager) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	return m.strategy.Version(ctx, db)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
