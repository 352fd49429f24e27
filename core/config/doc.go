// Package config provides configuration management for the drift detector.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections:
//   - Source / Target: the two compared MySQL endpoints
//   - Report: output directory for generated artifacts
//   - Server: report HTTP server settings
//   - Storage: S3/MinIO credentials for report publishing
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.Host)
package config
