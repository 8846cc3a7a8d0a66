package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"classicmodels/internal/interfaces/cli/migrate"
	"classicmodels/internal/interfaces/cli/seed"
	"classicmodels/internal/interfaces/cli/server"
	"classicmodels/internal/shared/version"
)

// @title classicmodels API
// @version 1.0
// @description Read-only REST API over the classicmodels sales schema.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "classicmodels",
		Short: "classicmodels - read API over the classicmodels sales schema",
		Long: `classicmodels serves customers, orders, employees, offices and products
of the classicmodels schema over HTTP, and ships migration and seed tools.`,
		Version:      version.String(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
