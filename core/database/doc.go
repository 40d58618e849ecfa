// Package database handles the optional price watch database connection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// configure MySQL or SQLite connections based on the application's
// configuration. The schema itself belongs to the features that use it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Database connection failed", zap.Error(err))
//	}
package database
