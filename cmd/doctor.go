package cmd

import (
	"context"
	"fmt"
	"time"

	"spec-sync/core/config"
	"spec-sync/core/database"
	"spec-sync/core/logger"
	"spec-sync/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var doctorFix bool

// doctorCmd checks the database schema and the snapshot bucket.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check database schema and snapshot storage",
	Long: `Pings the database, compares the projects and endpoints tables with the
expected columns and checks that the snapshot bucket exists.
With --fix, runs migrations and creates the bucket.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Run migrations and create the bucket when missing")
	RootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	problems := 0

	// Database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database check failed: %w", err)
	}
	l.Info("Database reachable", zap.String("driver", cfg.Database.Driver))

	if doctorFix {
		if err := database.Migrate(db); err != nil {
			return err
		}
		l.Info("Migrations applied")
	}

	report, err := database.InspectSchema(db)
	if err != nil {
		return fmt.Errorf("schema inspection failed: %w", err)
	}
	for _, t := range report.Tables {
		switch {
		case !t.Exists:
			problems++
			l.Warn("Table missing", zap.String("table", t.Table))
		case len(t.MissingColumns) > 0:
			problems++
			l.Warn("Table incomplete", zap.String("table", t.Table), zap.Strings("missing_columns", t.MissingColumns))
		default:
			l.Info("Table ok", zap.String("table", t.Table))
		}
	}

	// Storage
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	ok, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region, doctorFix)
	switch {
	case err != nil:
		problems++
		l.Warn("Storage check failed", zap.Error(err))
	case !ok:
		problems++
		l.Warn("Snapshot bucket missing", zap.String("bucket", cfg.Storage.Bucket))
	default:
		l.Info("Snapshot bucket ok", zap.String("bucket", cfg.Storage.Bucket))
	}

	if problems > 0 {
		if !doctorFix {
			l.Info("Run doctor --fix to repair the schema and create the bucket.")
		}
		return fmt.Errorf("%d problem(s) found", problems)
	}
	l.Info("All checks passed")
	return nil
}
