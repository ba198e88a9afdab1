// Package server holds the HTTP server configuration.
//
// The serve command handles the actual server startup; this package only
// defines the configuration structure (port, API key) so core/config can
// embed it next to the other partial configurations.
package server
