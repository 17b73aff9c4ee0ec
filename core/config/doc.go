// Package config provides configuration management for the spec-sync service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from `default` struct tags on each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key, environment, CORS origins
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: S3/MinIO credentials, snapshot bucket and prefix
//   - Log: logging level and format
//   - Metrics: Prometheus endpoint toggle and path
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
