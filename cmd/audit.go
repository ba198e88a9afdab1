package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"scene-audit/core/audit"
	"scene-audit/core/config"
	"scene-audit/core/database"
	"scene-audit/core/logger"
	"scene-audit/core/storage"
	"scene-audit/feature/project"
	"scene-audit/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	jsonOutFlag string
	persistFlag bool
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the asset-usage audit",
	Long: `Scans the project's model assets, walks every scene hierarchy, and
prints per-scene and project-wide usage statistics. With --persist the
run and its findings are saved to the report database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		src, err := buildSource(cfg)
		if err != nil {
			return err
		}

		auditor := project.NewAuditor(project.NewLoader(src, cfg.Project), logg)
		sink := &audit.MemorySink{}

		result, err := auditor.Run(cmd.Context(), sink)
		if err != nil {
			return err
		}

		if err := report.PrintSummary(os.Stdout, result); err != nil {
			return err
		}

		if jsonOutFlag != "" {
			if err := writeJSON(jsonOutFlag, result); err != nil {
				return err
			}
			logg.Info("Wrote JSON result", zap.String("path", jsonOutFlag))
		}

		if persistFlag {
			db, err := database.Connect(cfg.Database)
			if err != nil {
				logg.Warn("Report persistence skipped: database unavailable", zap.Error(err))
				return nil
			}
			store := report.NewStore(db)
			if err := store.Migrate(); err != nil {
				return err
			}
			runID, err := store.SaveRun(cmd.Context(), result.Stats, sink.Records)
			if err != nil {
				return err
			}
			logg.Info("Run persisted", zap.String("run_id", runID))
		}

		return nil
	},
}

// buildSource turns the project configuration into a file source.
func buildSource(cfg *config.Config) (project.Source, error) {
	switch cfg.Project.Source {
	case project.SourceDir:
		return project.NewDirSource(cfg.Project.Path), nil
	case project.SourceStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return project.NewBucketSource(client, cfg.Storage.Bucket), nil
	default:
		return nil, fmt.Errorf("unknown project source: %s", cfg.Project.Source)
	}
}

func writeJSON(path string, result *project.RunResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func init() {
	auditCmd.Flags().StringVar(&jsonOutFlag, "json", "", "write the run result as JSON to this file")
	auditCmd.Flags().BoolVar(&persistFlag, "persist", false, "save the run and findings to the report database")
	RootCmd.AddCommand(auditCmd)
}
