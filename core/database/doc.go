// Package database handles the report database connection.
//
// It provides a wrapper around GORM to configure MySQL connections based
// on the application's configuration. The database is strictly optional:
// the audit itself runs without one, and the audit command only persists
// a run's findings when the connection succeeds.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Report persistence disabled", zap.Error(err))
//	}
package database
