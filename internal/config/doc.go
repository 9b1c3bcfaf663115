// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file in the working directory (optional)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields left empty by every source receive the defaults from
// [defaultConfig]. Secrets have no defaults: [GetStructuredConfig] fails when
// the session secret or the weather API key is missing.
package config
