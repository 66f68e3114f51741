// Package config holds the application state shared by CLI commands.
package config

import (
	"sync"

	"github.com/tphakala/birdgroups/internal/birdgroups"
	"github.com/tphakala/birdgroups/internal/buildinfo"
	"github.com/tphakala/birdgroups/internal/conf"
)

// Context holds the overall application state: loaded settings, build
// metadata and the species index once it has been built.
type Context struct {
	Settings *conf.Settings
	Loader   *conf.Loader
	Build    *buildinfo.Context

	indexOnce sync.Once
	index     *birdgroups.Index
	indexErr  error
}

// NewContext creates a context with default settings. Settings are replaced
// once the root command has read the config file.
func NewContext(loader *conf.Loader, build *buildinfo.Context) *Context {
	return &Context{
		Settings: &conf.Settings{},
		Loader:   loader,
		Build:    build,
	}
}

// LoadRegistry returns the registry at path, or the built-in registry when
// path is empty.
func LoadRegistry(path string) (birdgroups.Registry, error) {
	if path == "" {
		return birdgroups.DefaultRegistry(), nil
	}
	return birdgroups.LoadRegistryFile(path)
}

// Index builds the species index from the configured registry on first use.
func (c *Context) Index() (*birdgroups.Index, error) {
	c.indexOnce.Do(func() {
		reg, err := LoadRegistry(c.Settings.Registry.Path)
		if err != nil {
			c.indexErr = err
			return
		}
		c.index, c.indexErr = birdgroups.NewIndex(reg)
	})
	return c.index, c.indexErr
}
