// Package audit implements the asset-usage aggregation engine: a
// deduplicating, mergeable collector that walks object hierarchies,
// correlates shared resources by durable identity, and folds per-unit
// results into a project-wide total.
//
// # Architecture
//
// The engine consists of five pieces:
//
//  1. ResourceIdentity: a discriminated key, either a canonical asset
//     path or a process-local instance handle for resources without a
//     stable path (loaded textures).
//
//  2. Collector: mutable per-unit aggregate state. Reference counts are
//     kept per identity; an embedded ensure-and-increment primitive makes
//     first sight of a resource observable (new count == 1).
//
//  3. Walker: pre-order depth-first traversal running three independent
//     extraction rules per node (materials on renderers, meshes on mesh
//     components, prefab-instance roots). Extractors are also callable
//     directly for resources reached outside a hierarchy.
//
//  4. Merge: ObjectCount is additive; every resource map merges as a
//     key-wise union that keeps the existing entry's value on conflict.
//     The global total therefore tracks distinct-resource cardinality,
//     not summed reference counts.
//
//  5. Stats: an on-demand projection of a collector into six scalar
//     counts.
//
// # Tolerance policy
//
// Empty slots, unresolvable paths, missing shaders and unbound textures
// are skipped silently; scene graphs routinely contain intentionally
// empty slots and this is not an error condition. The engine performs no
// I/O and never mutates the assets it inspects.
//
// # Concurrency
//
// Execution is single-threaded and synchronous. Each traversal unit owns
// an exclusive Collector; the global collector is mutated only by the
// serialized merge step between units. Parallel traversal of disjoint
// units is possible only with one collector per unit and a serialized
// merge.
package audit
