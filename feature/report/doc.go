// Package report persists and serves audit run results.
//
// The audit command saves each run's project-wide totals and emitted
// findings through Store (GORM over MySQL); the serve command exposes
// them as JSON via Handler:
//
//	GET /reports         - run summaries, newest first
//	GET /reports/latest  - most recent run with findings
//	GET /reports/:id     - one run with findings
//
// PrintSummary renders a run result as a console table for the CLI.
// The whole package is a consumer of the engine's emitted records; it
// never feeds back into collection.
package report
