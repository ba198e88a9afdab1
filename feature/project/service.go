package project

import (
	"context"
	"fmt"

	"scene-audit/core/audit"
	"scene-audit/feature/project/models"

	"go.uber.org/zap"
)

// SceneResult is one audited scene's summary.
type SceneResult struct {
	Name  string      `json:"name"`
	Path  string      `json:"path"`
	Stats audit.Stats `json:"stats"`
}

// RunResult is the outcome of one full audit run.
type RunResult struct {
	// Stats is the project-wide total after all units merged.
	Stats audit.Stats `json:"stats"`
	// ModelStats summarizes the model scan pass.
	ModelStats audit.Stats `json:"model_stats"`
	// Scenes holds per-scene summaries in audit order.
	Scenes []SceneResult `json:"scenes"`
	// SkippedScenes lists scene files that failed to load.
	SkippedScenes []string `json:"skipped_scenes,omitempty"`
}

// Auditor orchestrates a full audit run over one project: the model scan
// first, then every scene in listing order.
type Auditor struct {
	loader *Loader
	logger *zap.Logger
}

// NewAuditor creates an auditor over the given loader.
func NewAuditor(loader *Loader, logger *zap.Logger) *Auditor {
	return &Auditor{loader: loader, logger: logger}
}

// Run performs the audit, emitting records into sink. A scene that fails
// to load is skipped with a warning and contributes nothing; the run
// continues with the next unit. Cancellation is honored between units
// only: a started unit always runs to completion.
func (a *Auditor) Run(ctx context.Context, sink audit.Sink) (*RunResult, error) {
	resolver, err := a.loader.LoadCatalog(ctx)
	if err != nil {
		// Without a catalog, materials still count; only their shader
		// and texture dependents go unresolved.
		a.logger.Warn("catalog unavailable, auditing without shader resolution", zap.Error(err))
		resolver = NewCatalogResolver(models.CatalogFile{})
	}

	runner := audit.NewRunner(resolver, sink, a.logger)
	result := &RunResult{}

	assets, err := a.loader.LoadModels(ctx)
	if err != nil {
		a.logger.Warn("model manifest unavailable, skipping model scan", zap.Error(err))
	} else {
		result.ModelStats = runner.ScanModels(assets)
	}

	names, err := a.loader.ListScenes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenes: %w", err)
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		unit, err := a.loader.LoadScene(ctx, name)
		if err != nil {
			a.logger.Warn("skipping unreadable scene",
				zap.String("scene", name),
				zap.Error(err),
			)
			result.SkippedScenes = append(result.SkippedScenes, name)
			continue
		}
		stats := runner.AuditScene(unit)
		result.Scenes = append(result.Scenes, SceneResult{
			Name:  unit.Name,
			Path:  unit.Path,
			Stats: stats,
		})
	}

	result.Stats = runner.Stats()
	a.logger.Info("audit complete",
		zap.Int("scenes", len(result.Scenes)),
		zap.Int("objects", result.Stats.Objects),
		zap.Int("materials", result.Stats.Materials),
	)
	return result, nil
}
