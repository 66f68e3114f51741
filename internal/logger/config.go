package logger

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	DefaultLevel string            `yaml:"default_level" json:"default_level" mapstructure:"level"` // default log level for all modules
	Format       string            `yaml:"format" json:"format" mapstructure:"format"`              // "text" for humans, "json" for machines
	ModuleLevels map[string]string `yaml:"module_levels" json:"module_levels" mapstructure:"module_levels"`
}

// Default values for logging configuration.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// applyConfigDefaults fills empty settings so a zero config still logs
func applyConfigDefaults(cfg *LoggingConfig) {
	if cfg.DefaultLevel == "" {
		cfg.DefaultLevel = DefaultLogLevel
	}
	if cfg.Format == "" {
		cfg.Format = DefaultLogFormat
	}
}
