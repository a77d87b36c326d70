package main

import (
	"context"
	"fmt"
	"log"

	"rawasi_matching/internal/adapter/persistence/repository"
	"rawasi_matching/internal/config"
	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/infrastructure/database"
	"rawasi_matching/internal/infrastructure/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "rawasi-catalog"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "rawasi-catalog manages the provider catalog and previews rankings",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("dsn", "DB_DSN"); err != nil {
		log.Fatalf("binding DB_DSN environment variable: %v", err)
	}
	if err := viper.BindEnv("catalog-file", "CATALOG_FILE"); err != nil {
		log.Fatalf("binding CATALOG_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (optional, yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("dsn", "", "postgres dsn of the provider catalog (env DB_DSN)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("dsn", rootCmd.PersistentFlags().Lookup("dsn"))
}

func initConfig() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// loadCatalog reads providers from postgres when a dsn is configured, from
// the catalog file otherwise, and falls back to the demo providers.
func loadCatalog(ctx context.Context, l *zap.Logger) ([]entities.ProviderRecord, string, error) {
	if dsn := viper.GetString("dsn"); dsn != "" {
		pool, err := database.OpenPostgres(ctx, config.DatabaseConfig{DSN: dsn})
		if err != nil {
			return nil, "", err
		}
		defer pool.Close()

		catalog := repository.NewProviderPostgresCatalog(pool)
		providers, err := catalog.List(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("listing providers: %w", err)
		}
		return providers, catalog.Source(), nil
	}

	catalog := repository.NewFileProviderCatalog(viper.GetString("catalog-file"), l)
	providers, err := catalog.List(ctx)
	return providers, catalog.Source(), err
}
