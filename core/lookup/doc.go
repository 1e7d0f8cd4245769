// Package lookup persists enum labels in the enum_type_lookups table.
//
// Each row holds one (enum, value, language) identity, guarded by a unique
// index, with the member name and its localized description. On PostgreSQL
// and MySQL the table lives in the configured schema; SQLite has no schemas
// and uses the bare table name.
//
// Store implements reconcile.Store on top of gorm transactions.
package lookup
