// Package config loads and validates the TOML configuration for kodi-tools.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/kodi-tools/config.toml, then a project-local kodi-tools.toml.
// Every run works without a config file; Load falls back to Default values.
// Path fields are tilde-expanded and made absolute during normalization.
package config
