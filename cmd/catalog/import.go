package main

import (
	"context"
	"fmt"

	"rawasi_matching/internal/adapter/persistence/repository"
	"rawasi_matching/internal/config"
	"rawasi_matching/internal/infrastructure/database"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import <providers.json>",
	Short: "Upsert a provider catalog JSON file into postgres",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().Bool("dry-run", false, "parse and report without writing")
	viper.BindPFlag("dry-run", importCmd.Flags().Lookup("dry-run"))
}

func runImport(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	l := newLogger()
	defer func() { _ = l.Sync() }()

	providers, err := repository.LoadProviderFile(path)
	if err != nil {
		return err
	}
	l.Info("parsed catalog", zap.String("path", path), zap.Int("providers", len(providers)))

	if viper.GetBool("dry-run") {
		for _, p := range providers {
			l.Debug("provider", zap.String("id", p.ID), zap.String("name", p.Name), zap.String("location", p.Location))
		}
		return nil
	}

	dsn := viper.GetString("dsn")
	if dsn == "" {
		return fmt.Errorf("a postgres dsn is required (--dsn or DB_DSN)")
	}
	pool, err := database.OpenPostgres(ctx, config.DatabaseConfig{DSN: dsn})
	if err != nil {
		return err
	}
	defer pool.Close()

	n, err := repository.NewProviderPostgresCatalog(pool).Upsert(ctx, providers)
	if err != nil {
		return err
	}
	l.Info("imported catalog", zap.Int("providers", n))
	return nil
}
