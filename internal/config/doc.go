// Package config provides configuration loading, merging, and validation
// facilities for the LexSight server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
