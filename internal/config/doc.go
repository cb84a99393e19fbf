// Package config loads and merges the gentrack server configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// The main entry point is [GetStructuredConfig], which merges all sources
// (env > flags > JSON > defaults, first non-zero value wins) and validates
// the result.
package config
