package seed

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"classicmodels/internal/infrastructure/database"
	"classicmodels/internal/infrastructure/persistence/seeds"
	"classicmodels/internal/interfaces/cli/bootstrap"
)

var (
	env        string
	configPath string
	fixtures   bool
	fake       int
	fakeSeed   uint64
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load data into the database",
		Long: `Load the bundled reference dataset (--fixtures) or generate synthetic
customers with orders (--fake N). Existing rows are left untouched.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&fixtures, "fixtures", false, "Load the reference dataset")
	cmd.Flags().IntVar(&fake, "fake", 0, "Generate N synthetic customers with orders")
	cmd.Flags().Uint64Var(&fakeSeed, "seed", 0, "Random seed for --fake (default: current time)")
	cmd.MarkFlagsOneRequired("fixtures", "fake")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if fake < 0 {
		return errors.New("--fake must be positive")
	}

	_, log, err := bootstrap.Init(bootstrap.Options{Env: env, ConfigPath: configPath})
	if err != nil {
		return err
	}
	defer database.Close()

	seeder := seeds.NewSeeder(database.Get(), log)
	ctx := cmd.Context()

	if fixtures {
		if err := seeder.SeedFixtures(ctx); err != nil {
			return fmt.Errorf("failed to load fixtures: %w", err)
		}
		fmt.Println("Reference dataset loaded")
	}

	if fake > 0 {
		seed := fakeSeed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

		result, err := seeder.Fake(ctx, fake, seed)
		if err != nil {
			return fmt.Errorf("failed to generate data: %w", err)
		}
		fmt.Printf("Generated %d customers and %d orders (seed %d)\n", result.Customers, result.Orders, seed)
	}

	return nil
}
