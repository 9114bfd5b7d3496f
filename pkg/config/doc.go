// Package config loads hookctl configuration.
// Sources are layered: embedded defaults, then the user's TOML file, then
// HOOKS_* environment variables. The result is validated before use.
package config
