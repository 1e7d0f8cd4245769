// Package config provides configuration management for the enum registry.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each section, so every key is known to Viper even when unset.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, default language)
//   - Database: connection details (mysql, postgres or sqlite)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Catalog: where enum definitions are loaded from
//   - Sync: lookup table reconciliation (languages, schema, orphans, schedule)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.Languages)
package config
