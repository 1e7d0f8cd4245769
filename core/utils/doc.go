// Package utils provides common utility functions for the enum-registry application.
// It includes helpers for language codes and column-safe string handling that
// don't fit into domain-specific packages.
package utils
