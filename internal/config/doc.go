// Package config loads and validates obsmark's TOML configuration.
//
// Configuration lives at ~/.config/obsmark/config.toml by default. Missing
// files are not an error; defaults apply and flags still override the
// [convert] section.
package config
