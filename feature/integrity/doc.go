// Package integrity provides health checks for the enum registry and its
// persisted lookup table.
//
// # Checks Provided
//
//   - Schema: Compares the enum_type_lookups table in the configured schema
//     with the gorm model (missing columns, column type families).
//   - Catalog: Reports skipped discovery candidates, types that declare a
//     numeric value more than once, and types without members.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the lookup table schema check.
//   - GET /integrity/catalog : Runs the catalog check.
package integrity
