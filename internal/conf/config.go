// Package conf loads birdgroups settings from a config file, environment
// variables and command line flags.
package conf

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tphakala/birdgroups/internal/errors"
	"github.com/tphakala/birdgroups/internal/logger"
)

// EnvPrefix is prepended to every environment variable, e.g.
// BIRDGROUPS_REGISTRY_PATH overrides registry.path.
const EnvPrefix = "BIRDGROUPS"

// Settings holds the runtime configuration.
type Settings struct {
	Debug bool `yaml:"debug" mapstructure:"debug"`

	Log logger.LoggingConfig `yaml:"log" mapstructure:"log"`

	Registry struct {
		Path string `yaml:"path" mapstructure:"path"` // YAML registry file, empty for the built-in groups
	} `yaml:"registry" mapstructure:"registry"`

	Lookup struct {
		Default string `yaml:"default" mapstructure:"default"` // label for names in no group
	} `yaml:"lookup" mapstructure:"lookup"`

	Sentry struct {
		Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
		DSN     string `yaml:"dsn" mapstructure:"dsn"`
	} `yaml:"sentry" mapstructure:"sentry"`

	// ConfigFile is the file settings were read from, empty when none was found.
	ConfigFile string `yaml:"-" mapstructure:"-"`
}

// Loader reads Settings. Flags bound with BindFlag take precedence over
// environment variables, which take precedence over the config file.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a loader with defaults and environment lookup in place.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaultConfig(v)
	return &Loader{v: v}
}

// BindFlag ties a config key to a command line flag. The flag only wins
// when it was set explicitly.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return errors.Newf("unknown flag for config key %s", key).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build()
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads configFile, or config.yaml from the default search paths when
// configFile is empty. A missing default file is not an error.
func (l *Loader) Load(configFile string) (*Settings, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
	} else {
		l.v.SetConfigName("config")
		for _, path := range DefaultConfigPaths() {
			l.v.AddConfigPath(path)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.New(err).
				Component("conf").
				Category(errors.CategoryConfiguration).
				FileContext(configFile).
				Build()
		}
		GetLogger().Debug("no config file found, using defaults")
	}

	settings := &Settings{}
	if err := l.v.Unmarshal(settings); err != nil {
		return nil, errors.New(err).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Context("operation", "unmarshal").
			Build()
	}
	settings.ConfigFile = l.v.ConfigFileUsed()

	if settings.Registry.Path != "" && settings.ConfigFile != "" && !filepath.IsAbs(settings.Registry.Path) {
		settings.Registry.Path = filepath.Join(filepath.Dir(settings.ConfigFile), settings.Registry.Path)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Load is a shorthand for NewLoader().Load(configFile).
func Load(configFile string) (*Settings, error) {
	return NewLoader().Load(configFile)
}
