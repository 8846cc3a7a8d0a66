package migration

import (
	"context"

	"gorm.io/gorm"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date.
	Migrate(ctx context.Context, db *gorm.DB) error
	// Down rolls back steps versions. Strategies without versions return an error.
	Down(ctx context.Context, db *gorm.DB, steps int) error
	// Version reports the applied schema version, 0 when unversioned.
	Version(ctx context.Context, db *gorm.DB) (int64, error)
	// GetName returns the strategy name
	GetName() string
}
