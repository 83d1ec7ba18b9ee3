package config

const (
	defaultMaxCombinations  = 5000
	defaultWarnCombinations = 500
	defaultOutputFormat     = "table"
	defaultOutputColor      = "auto"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Planner: Planner{
			MaxCombinations:  defaultMaxCombinations,
			WarnCombinations: defaultWarnCombinations,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
