// Package bootstrap loads configuration, the logger and the database
// connection shared by every CLI command.
package bootstrap

import (
	"fmt"
	"os"

	"classicmodels/internal/infrastructure/config"
	"classicmodels/internal/infrastructure/database"
	"classicmodels/internal/shared/logger"
)

// Options selects the environment and, optionally, an explicit config file.
type Options struct {
	Env        string
	ConfigPath string
}

// Init loads config, initializes the process logger and opens the database.
// Callers must defer database.Close once Init succeeds.
func Init(opts Options) (*config.Config, logger.Interface, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		opts.Env = envVar
	}

	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFile(opts.ConfigPath, MapEnvToGinMode(opts.Env))
	} else {
		cfg, err = config.Load(MapEnvToGinMode(opts.Env))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// MapEnvToGinMode maps a deployment environment name onto a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
