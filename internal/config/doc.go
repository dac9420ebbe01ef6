// Package config loads the oddsview client configuration from YAML.
//
// Files may reference environment variables as ${VAR}; they are expanded
// before parsing. Every field has a default, so the client also runs with no
// config file at all.
package config
