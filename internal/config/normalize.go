package config

import "strings"

func (c *Config) normalize() {
	c.Output.Format = normalizeToken(c.Output.Format, defaultOutputFormat)
	c.Output.Color = normalizeToken(c.Output.Color, defaultOutputColor)
	c.Logging.Format = normalizeToken(c.Logging.Format, defaultLogFormat)
	c.Logging.Level = normalizeToken(c.Logging.Level, defaultLogLevel)
}

func normalizeToken(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
