package config

const (
	defaultLogFile          = "~/.timelog"
	defaultDataDir          = "~/.local/share/timelog"
	defaultLogDir           = "~/.local/share/timelog/logs"
	defaultHoursPerDay      = 8
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogFile: defaultLogFile,
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Workday: Workday{
			HoursPerDay: defaultHoursPerDay,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
