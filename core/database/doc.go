// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL, PostgreSQL or SQLite connections based on the application's configuration.
//
// # Connect
//
// Connect establishes a connection and pings it. ConnectWithRetry wraps it with
// exponential backoff for startup, when the database may still be coming up.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table. The integrity
// feature compares them with the lookup table model.
//
// # Errors
//
// IsUniqueViolation classifies driver errors (pgconn, MySQL, SQLite and GORM's
// translated ErrDuplicatedKey) so callers can tell identity conflicts apart
// from other store failures.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "core.enum_type_lookups")
package database
