package audit

import "go.uber.org/zap"

// ModelAsset is one model-type asset visited by the project-wide model
// scan, independent of any scene traversal.
type ModelAsset interface {
	// Path is the asset's project path.
	Path() string
	// HasContent reports whether the asset resolves to mesh content.
	// Animation-only containers answer false and are skipped.
	HasContent() bool
	// IndexFormat names the index buffer format (e.g. "UInt16").
	IndexFormat() string
	// VertexCount is the total vertex count.
	VertexCount() int
	// SubmeshIndexCounts returns the per-submesh index counts.
	SubmeshIndexCounts() []int
	// Readable reports whether mesh data is CPU-readable.
	Readable() bool
}

// SceneUnit is one traversal unit handed to the runner: a named scene
// with its root objects in the host's enumeration order.
type SceneUnit struct {
	Name  string
	Path  string
	Roots []Node
}

// Runner drives one audit run: the model scan first, then one collector
// per scene unit, each folded into a running global collector. Runner is
// single-threaded; units never interleave on the same collector.
type Runner struct {
	walker *Walker
	sink   Sink
	global *Collector
	logger *zap.Logger
}

// NewRunner creates a runner that emits records into sink.
func NewRunner(resolver Resolver, sink Sink, logger *zap.Logger) *Runner {
	return &Runner{
		walker: NewWalker(resolver),
		sink:   sink,
		global: NewCollector(),
		logger: logger,
	}
}

// ScanModels runs the project-wide model pass: one record per model asset
// with its geometry properties, and one distinct-model count per path in
// this pass's own collector. Assets without content are skipped silently.
func (r *Runner) ScanModels(assets []ModelAsset) Stats {
	collector := NewCollector()
	for _, asset := range assets {
		if !asset.HasContent() {
			continue
		}
		indices := 0
		for _, count := range asset.SubmeshIndexCounts() {
			indices += count
		}
		EnsureAndIncrement(collector.Models, PathIdentity(asset.Path()))
		r.sink.Emit(Record{
			Descriptor: DescriptorModelUsage,
			Subject:    asset.Path(),
			Category:   CategoryModel,
			Location:   Location{Path: asset.Path()},
			Properties: []any{
				asset.IndexFormat(),
				indices,
				asset.VertexCount(),
				len(asset.SubmeshIndexCounts()),
				asset.Readable(),
			},
		})
	}
	stats := collector.Stats()
	r.global.Merge(collector)
	r.logger.Debug("model scan complete", zap.Int("models", stats.Models))
	return stats
}

// AuditScene walks one scene unit with a fresh collector, emits the
// scene's summary record, merges the collector into the global total and
// discards it. The per-unit stats are returned for progress reporting.
func (r *Runner) AuditScene(unit SceneUnit) Stats {
	collector := NewCollector()
	for _, root := range unit.Roots {
		r.walker.Walk(root, collector)
	}
	stats := collector.Stats()
	r.sink.Emit(Record{
		Descriptor: DescriptorSceneUsage,
		Subject:    unit.Name,
		Category:   CategoryScene,
		Location:   Location{Path: unit.Path},
		Properties: []any{
			stats.Objects,
			stats.Prefabs,
			stats.Materials,
			stats.Shaders,
			stats.Textures,
		},
	})
	r.global.Merge(collector)
	r.logger.Debug("scene audited",
		zap.String("scene", unit.Name),
		zap.Int("objects", stats.Objects),
	)
	return stats
}

// Stats projects the global collector's current totals.
func (r *Runner) Stats() Stats {
	return r.global.Stats()
}
