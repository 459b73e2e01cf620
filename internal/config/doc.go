// Package config provides configuration loading, merging, and validation
// facilities for the blog server.
//
// Configuration is assembled from environment variables, command-line
// flags, a JSON or YAML file and built-in defaults; see
// [GetStructuredConfig] for the priority rules.
package config
