package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Planner.MaxCombinations < 0 {
		return fmt.Errorf("planner.max_combinations: must not be negative, got %d", c.Planner.MaxCombinations)
	}
	if c.Planner.WarnCombinations < 0 {
		return fmt.Errorf("planner.warn_combinations: must not be negative, got %d", c.Planner.WarnCombinations)
	}

	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format: unsupported value %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unsupported value %q", c.Output.Color)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
