package cmd

import (
	"context"
	"fmt"

	"stock-migrator/core/config"
	"stock-migrator/core/database"
	"stock-migrator/core/logger"
	"stock-migrator/core/storage"
	"stock-migrator/feature/ingest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	migrateInput       string
	migrateOutput      string
	migrateDryRun      bool
	migratePersist     bool
	migrateFromStorage bool
	migratePush        bool
)

// migrateCmd runs one full migration over a directory of export files.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run a migration over a directory of vendor export files",
	Long: `Classify every file under the input directory, parse the recognized
exports in dependency order, and write the normalized aggregate.

Examples:
  # Migrate ./exports into output.os
  stock-migrator migrate

  # Migrate a specific directory to a specific output
  stock-migrator migrate --input /data/shopify --output shop.os

  # Pull export files from object storage first
  stock-migrator migrate --from-storage

  # Classify and parse but write nothing
  stock-migrator migrate --dry-run`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateInput, "input", "", "Input directory (defaults to configured ingest.input_dir)")
	migrateCmd.Flags().StringVar(&migrateOutput, "output", "", "Output file (defaults to configured ingest.output_file)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Parse everything but write no output")
	migrateCmd.Flags().BoolVar(&migratePersist, "persist", false, "Record the run summary in the database")
	migrateCmd.Flags().BoolVar(&migrateFromStorage, "from-storage", false, "Pull export files from object storage into the input directory first")
	migrateCmd.Flags().BoolVar(&migratePush, "push", false, "Upload the output file to object storage after the run")

	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	input := cfg.Ingest.InputDir
	if migrateInput != "" {
		input = migrateInput
	}
	output := cfg.Ingest.OutputFile
	if migrateOutput != "" {
		output = migrateOutput
	}

	// Database and storage are both optional for a local run.
	var db *gorm.DB
	if migratePersist || cfg.Ingest.Persist {
		if db, err = database.Connect(cfg.Database); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	var client storage.Client
	if migrateFromStorage || migratePush {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	svc := ingest.NewService(l, client, cfg.Storage.Bucket, cfg.Storage.Prefix, db)

	if migrateFromStorage {
		fetched, err := svc.PullExports(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to pull exports: %w", err)
		}
		l.Info("Fetched exports from storage", zap.Int("files", fetched))
	}

	agg, report, err := svc.Run(ctx, input)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	for _, f := range report.Files {
		if f.Skipped {
			l.Warn("Skipped file",
				zap.String("path", f.Path),
				zap.String("reason", f.Reason),
			)
			continue
		}
		l.Info("Parsed file",
			zap.String("path", f.Path),
			zap.String("vendor", f.Vendor),
			zap.String("entity", string(f.Entity)),
			zap.Int("records", f.Records),
		)
	}

	if migrateDryRun {
		l.Info("Dry-run mode: no output written", zap.Any("counts", report.Counts))
		return nil
	}

	if err := svc.WriteAggregate(agg, output); err != nil {
		return fmt.Errorf("failed to write aggregate: %w", err)
	}
	l.Info("Wrote aggregate", zap.String("output", output), zap.Any("counts", report.Counts))

	if migratePush {
		if err := svc.PushAggregate(ctx, output, output); err != nil {
			return fmt.Errorf("failed to push aggregate: %w", err)
		}
	}

	if db != nil {
		if err := svc.SaveRun(ctx, input, agg, report); err != nil {
			return fmt.Errorf("failed to persist run: %w", err)
		}
		l.Info("Persisted run summary")
	}

	return nil
}
