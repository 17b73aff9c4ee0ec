package cmd

import (
	"fmt"
	"os"

	"spec-sync/core/config"
	"spec-sync/core/database"
	"spec-sync/core/logger"
	"spec-sync/core/openapi"
	"spec-sync/core/spec"
	"spec-sync/core/storage"
	"spec-sync/feature/contract"
	"spec-sync/feature/project"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportProject string
	exportSide    string
	exportFormat  string
	exportOut     string
	exportUpload  bool
)

// exportCmd renders one side of a project as an OpenAPI document.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a project side as an OpenAPI document",
	Long: `Renders the frontend or backend specs of a project as OpenAPI 3.

Examples:
  # Print the frontend contract
  export --project <id>

  # Write the backend contract as YAML and keep a snapshot in the bucket
  export --project <id> --side backend --format yaml --out backend.yaml --upload`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportProject, "project", "", "Project ID (required)")
	exportCmd.Flags().StringVar(&exportSide, "side", string(spec.SideFrontend), "Side to export (frontend|backend)")
	exportCmd.Flags().StringVar(&exportFormat, "format", string(openapi.FormatJSON), "Output format (json|yaml)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write the document to this file instead of stdout")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "Also store the document as a snapshot")
	_ = exportCmd.MarkFlagRequired("project")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	side, ok := spec.ParseSide(exportSide)
	if !ok {
		return fmt.Errorf("invalid side %q: must be frontend or backend", exportSide)
	}
	format, err := openapi.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

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

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc := contract.NewService(project.NewRepository(db), client, cfg.Storage, l)
	ctx := cmd.Context()

	doc, err := svc.Export(ctx, exportProject, side, format)
	if err != nil {
		return err
	}

	if exportOut == "" {
		if _, err := os.Stdout.Write(doc.Body); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(exportOut, doc.Body, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		l.Info("Document written", zap.String("file", exportOut), zap.Int("bytes", len(doc.Body)))
	}

	if exportUpload {
		snap, err := svc.CreateSnapshot(ctx, exportProject, side, format)
		if err != nil {
			return err
		}
		l.Info("Snapshot uploaded", zap.String("bucket", cfg.Storage.Bucket), zap.String("key", snap.Key))
	}
	return nil
}
