// Package config loads and validates the TOML configuration for the horario
// CLI.
//
// Configuration is optional: when no file exists at the default location
// (~/.config/horario/config.toml, then ./horario.toml) the repository
// defaults apply. Load always returns a normalized, validated Config.
package config
