package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/birdgroups/internal/birdgroups"
	"github.com/tphakala/birdgroups/internal/config"
	"github.com/tphakala/birdgroups/internal/logger"
)

// Command creates the validate command, which checks a registry file.
func Command(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check a group registry for conflicts",
		Long: `Load a YAML group registry and build its species index. Fails when a
species is declared in more than one group. Without FILE the configured
registry (or the built-in one) is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.Settings.Registry.Path
			if len(args) == 1 {
				path = args[0]
			}

			reg, err := config.LoadRegistry(path)
			if err != nil {
				return err
			}
			idx, err := birdgroups.NewIndex(reg)
			if err != nil {
				return err
			}

			source := path
			if source == "" {
				source = "built-in registry"
			}
			logger.Global().Module("cli").WithContext(cmd.Context()).Info("registry validated",
				logger.String("source", source),
				logger.Int("groups", len(reg)),
				logger.Int("species", idx.Len()))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d groups, %d species\n", source, len(reg), idx.Len())
			return err
		},
	}

	return cmd
}
