package conf

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tphakala/birdgroups/internal/birdgroups"
	"github.com/tphakala/birdgroups/internal/logger"
)

// DefaultLookupLabel is the default value of lookup.default.
const DefaultLookupLabel = birdgroups.DefaultGroup

func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("debug", false)

	v.SetDefault("log.level", logger.DefaultLogLevel)
	v.SetDefault("log.format", logger.DefaultLogFormat)

	v.SetDefault("registry.path", "")
	v.SetDefault("lookup.default", DefaultLookupLabel)

	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
}

// DefaultConfigPaths lists the directories searched for config.yaml, in
// order: the working directory, then the user config directory.
func DefaultConfigPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "birdgroups"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		legacy := filepath.Join(home, ".config", "birdgroups")
		if len(paths) == 1 || paths[1] != legacy {
			paths = append(paths, legacy)
		}
	}
	return paths
}
