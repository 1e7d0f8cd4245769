// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the system default language used when resolving enum labels.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the default language.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the enums feature to pick the fallback language.
package server
