// Package config provides configuration management for the Shopping Agent.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded with godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and optional API key
//   - Log: Logging level and format
//   - Sources: confidence threshold, result size, per-source timeout, platform list
//   - OpenAI / Gemini: model API credentials; a source is enabled when its key is set
//   - Database: optional MySQL/SQLite connection for price watches
//   - Storage: optional S3/MinIO upload archive
//
// Defaults come from the `default` struct tags. Every key can be overridden
// with an environment variable named after its path, e.g. SOURCES_MAX_RESULTS
// or OPENAI_API_KEY.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
