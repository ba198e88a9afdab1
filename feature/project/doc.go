// Package project adapts a project's on-disk (or in-bucket) files to the
// audit engine's input contract.
//
// A project consists of:
//   - scene files (*.scene.json): nested object hierarchies with
//     renderer material slots, mesh components and prefab membership
//   - catalog.json: material -> shader and shader -> texture bindings
//   - models.json: the model manifest for the project-wide model scan
//
// # Components
//
// Source abstracts where files come from: DirSource reads a local
// directory, BucketSource reads object storage through core/storage.
// Loader parses files into audit traversal units; CatalogResolver
// implements the engine's handle resolution, interning texture names to
// process-local instance handles. Auditor orchestrates one full run:
// model scan first, then scenes in listing order, with cancellation
// honored at unit boundaries and unreadable scenes skipped without
// aborting the run.
package project
