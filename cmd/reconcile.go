package cmd

import (
	"fmt"

	"spec-sync/core/config"
	"spec-sync/core/database"
	"spec-sync/core/logger"
	"spec-sync/core/reconcile"
	"spec-sync/feature/endpoint"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileProject string
	reconcileDryRun  bool
)

// reconcileCmd recomputes the derived state of stored endpoints.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute status and conflicts of stored endpoints",
	Long: `Runs the reconciliation engine over the stored frontend and backend specs of
every endpoint and rewrites status and conflicts where they are out of date.

Examples:
  # Report what would change
  reconcile --dry-run

  # Repair one project
  reconcile --project 0b7c1f0e-...`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileProject, "project", "", "Only recompute endpoints of this project")
	reconcileCmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "Report changes without writing them")
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
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

	svc := endpoint.NewService(endpoint.NewRepository(db), nil, l)
	report, err := svc.Recompute(cmd.Context(), reconcileProject, reconcileDryRun)
	if err != nil {
		return fmt.Errorf("failed to recompute endpoints: %w", err)
	}

	fields := []zap.Field{
		zap.Int("checked", report.Checked),
		zap.Int("changed", report.Changed),
		zap.Bool("dry_run", reconcileDryRun),
	}
	for _, s := range reconcile.Statuses {
		fields = append(fields, zap.Int(string(s), report.Statuses[s]))
	}
	l.Info("Reconciliation report", fields...)

	if reconcileDryRun && report.Changed > 0 {
		l.Info("Dry-run mode: No changes were made.")
	}
	return nil
}
