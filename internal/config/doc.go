// Package config loads, normalizes, and validates the drivefind TOML
// configuration.
//
// Load applies defaults first, then overlays the config file (explicit path,
// ~/.config/drivefind/config.toml, or a project-local drivefind.toml), then
// expands tilde paths and validates the result. Components receive the fully
// normalized Config and never re-read the file.
package config
