// Package config provides configuration management for the scene auditor.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for report persistence
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Project: where the audited project's files live
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Project.Path)
package config
