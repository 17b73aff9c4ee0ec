package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"spec-sync/core/config"
	"spec-sync/core/database"
	"spec-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	resetSchema bool
	yesConfirm  bool
)

// migrateCmd creates or updates the database schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Creates the projects and endpoints tables and their indexes.

Examples:
  # Create missing tables and columns
  migrate

  # Drop every table and start from an empty schema
  migrate --reset --yes`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&resetSchema, "reset", false, "Drop all tables before migrating (destroys data)")
	migrateCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if resetSchema {
		if !confirmDestructiveAction() {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		if err := database.Reset(db); err != nil {
			return err
		}
		l.Info("Schema reset", zap.String("database", cfg.Database.Name))
		return nil
	}

	if err := database.Migrate(db); err != nil {
		return err
	}
	l.Info("Schema up to date", zap.String("database", cfg.Database.Name))
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
