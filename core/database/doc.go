// Package database handles database connections, migrations and schema inspection.
//
// It wraps GORM and supports two drivers: MySQL for deployments and SQLite
// (including ":memory:") for local runs and tests.
//
// # Connect
//
// Connect builds the dialector for the configured driver, applies pool
// settings and pings the database before returning.
//
// # Migrations
//
// Migrate creates the projects and endpoints tables with their indexes.
// Reset drops both tables and recreates them.
//
// # Schema Inspection
//
// InspectSchema compares live tables with the columns expected by the models
// in core/models. The doctor command reports the result.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	report, err := database.InspectSchema(db)
package database
