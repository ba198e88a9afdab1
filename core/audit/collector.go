package audit

// Collector is the mutable aggregate state for one traversal unit (one
// scene, or the whole-project model scan). Each unit owns exactly one
// Collector for its duration; results are folded into a global Collector
// via Merge and the per-unit instance is discarded.
type Collector struct {
	// ObjectCount is the total number of nodes visited. It is raw, not
	// deduplicated: every visit increments it.
	ObjectCount int

	// Resource reference counts, keyed by durable identity. Values are
	// always >= 1 once a key exists.
	Prefabs   map[ResourceIdentity]int
	Materials map[ResourceIdentity]int
	Shaders   map[ResourceIdentity]int
	Textures  map[ResourceIdentity]int
	Models    map[ResourceIdentity]int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		Prefabs:   make(map[ResourceIdentity]int),
		Materials: make(map[ResourceIdentity]int),
		Shaders:   make(map[ResourceIdentity]int),
		Textures:  make(map[ResourceIdentity]int),
		Models:    make(map[ResourceIdentity]int),
	}
}

// EnsureAndIncrement is the single read-modify-write registry primitive:
// absent keys are inserted at zero, then incremented. It returns the new
// reference count, so callers can detect first sight (new count == 1).
// Keys are never evicted within a collector's lifetime. Keeping this a
// single operation matters if traversal is ever parallelized; see the
// package doc's concurrency notes.
func EnsureAndIncrement(m map[ResourceIdentity]int, id ResourceIdentity) int {
	m[id]++
	return m[id]
}

// Merge folds other into c. ObjectCount is additive (scene objects are
// unit-disjoint even when they reference shared assets). Every resource
// map is a key-wise union that keeps the pre-existing entry's value on
// conflict: merge tracks project-wide cardinality of distinct resources,
// so counts must never be summed across units and never overwritten by
// the incoming value.
func (c *Collector) Merge(other *Collector) {
	c.ObjectCount += other.ObjectCount
	unionKeepExisting(c.Prefabs, other.Prefabs)
	unionKeepExisting(c.Materials, other.Materials)
	unionKeepExisting(c.Shaders, other.Shaders)
	unionKeepExisting(c.Textures, other.Textures)
	unionKeepExisting(c.Models, other.Models)
}

// unionKeepExisting inserts only the keys dst does not already hold.
func unionKeepExisting(dst, src map[ResourceIdentity]int) {
	for id, count := range src {
		if _, exists := dst[id]; !exists {
			dst[id] = count
		}
	}
}

// Stats is an immutable summary snapshot derived from a Collector.
// Resource counts are map cardinalities (distinct resources); Objects is
// the raw visited-node total.
type Stats struct {
	Objects   int `json:"objects"`
	Prefabs   int `json:"prefabs"`
	Materials int `json:"materials"`
	Models    int `json:"models"`
	Shaders   int `json:"shaders"`
	Textures  int `json:"textures"`
}

// Stats projects the collector into a summary. Pure read; safe to call
// repeatedly, but not concurrently with mutation of the same collector.
func (c *Collector) Stats() Stats {
	return Stats{
		Objects:   c.ObjectCount,
		Prefabs:   len(c.Prefabs),
		Materials: len(c.Materials),
		Models:    len(c.Models),
		Shaders:   len(c.Shaders),
		Textures:  len(c.Textures),
	}
}
