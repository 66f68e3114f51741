package cmd

import (
	"io"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tphakala/birdgroups/cmd/groups"
	"github.com/tphakala/birdgroups/cmd/lookup"
	"github.com/tphakala/birdgroups/cmd/normalize"
	"github.com/tphakala/birdgroups/cmd/summary"
	"github.com/tphakala/birdgroups/cmd/validate"
	"github.com/tphakala/birdgroups/cmd/version"
	"github.com/tphakala/birdgroups/internal/buildinfo"
	"github.com/tphakala/birdgroups/internal/conf"
	"github.com/tphakala/birdgroups/internal/config"
	"github.com/tphakala/birdgroups/internal/errors"
	"github.com/tphakala/birdgroups/internal/logger"
)

const sentryFlushTimeout = 2 * time.Second

// Execute builds the command tree for this binary and runs it.
func Execute() error {
	ctx := config.NewContext(conf.NewLoader(), buildinfo.Current())
	err := RootCommand(ctx).Execute()

	if errors.GetTelemetryReporter() != nil {
		sentry.Flush(sentryFlushTimeout)
	}

	return err
}

// RootCommand creates and returns the root command
func RootCommand(ctx *config.Context) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "birdgroups",
		Short:        "Classify bird species names into groups",
		SilenceUsage: true,
	}

	// Set up the global flags for the root command.
	if err := setupFlags(rootCmd, ctx, &configFile); err != nil {
		// Binding only fails on a missing flag, which is a programming error.
		panic(err)
	}

	versionCmd := version.Command(ctx)

	subcommands := []*cobra.Command{
		lookup.Command(ctx),
		normalize.Command(),
		groups.Command(ctx),
		validate.Command(ctx),
		summary.Command(ctx),
		versionCmd,
	}

	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// version works even with a broken config file
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		return initialize(cmd, ctx, configFile)
	}

	return rootCmd
}

// initialize loads settings and sets up logging and telemetry before any
// subcommand runs.
func initialize(cmd *cobra.Command, ctx *config.Context, configFile string) error {
	settings, err := ctx.Loader.Load(configFile)
	if err != nil {
		return err
	}
	ctx.Settings = settings

	if err := initLogging(settings, cmd.ErrOrStderr()); err != nil {
		return err
	}

	if err := initTelemetry(settings, ctx.Build); err != nil {
		return err
	}

	cmd.SetContext(logger.WithTraceID(cmd.Context(), uuid.NewString()))

	GetLogger().WithContext(cmd.Context()).Debug("settings loaded",
		logger.String("command", cmd.Name()),
		logger.String("config_file", settings.ConfigFile),
		logger.String("registry", settings.Registry.Path))

	return nil
}

func initLogging(settings *conf.Settings, w io.Writer) error {
	cfg := settings.Log
	if settings.Debug {
		cfg.DefaultLevel = string(logger.LogLevelDebug)
	}

	cl, err := logger.NewCentralLogger(&cfg, w)
	if err != nil {
		return errors.New(err).
			Component("cli").
			Category(errors.CategoryConfiguration).
			Context("operation", "init-logging").
			Build()
	}
	logger.SetGlobal(cl)
	return nil
}

func initTelemetry(settings *conf.Settings, build *buildinfo.Context) error {
	if !settings.Sentry.Enabled {
		errors.SetTelemetryReporter(nil)
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              settings.Sentry.DSN,
		Release:          "birdgroups@" + build.GetVersion(),
		AttachStacktrace: true,
		Debug:            settings.Debug,
	})
	if err != nil {
		return errors.New(err).
			Component("cli").
			Category(errors.CategoryConfiguration).
			Context("operation", "init-sentry").
			Build()
	}

	errors.SetTelemetryReporter(errors.NewSentryReporter(true))
	return nil
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, ctx *config.Context, configFile *string) error {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(configFile, "config", "c", "", "Path to config file (default: config.yaml in . or the user config dir)")
	flags.StringP("registry", "r", "", "Path to a YAML group registry (default: built-in groups)")
	flags.BoolP("debug", "d", false, "Enable debug output")
	flags.String("default", conf.DefaultLookupLabel, "Label for species that are in no group")

	bindings := map[string]string{
		"registry.path":  "registry",
		"debug":          "debug",
		"lookup.default": "default",
	}
	for key, flag := range bindings {
		if err := ctx.Loader.BindFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}

	return nil
}
