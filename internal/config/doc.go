// Package config loads, normalizes, and validates media-janitor
// configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Missing config files are fine; every
// command runs with defaults. The Config type is an explicit record handed to
// commands at construction, so there is no process-global configuration
// state.
package config
