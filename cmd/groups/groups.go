package groups

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tphakala/birdgroups/internal/birdgroups"
	"github.com/tphakala/birdgroups/internal/config"
	"github.com/tphakala/birdgroups/internal/output"
)

// registryDocument matches the file layout accepted by --registry, so the
// yaml output can be edited and loaded back.
type registryDocument struct {
	Groups birdgroups.Registry `json:"groups" yaml:"groups"`
}

// Command creates the groups command, which lists the registry.
func Command(ctx *config.Context) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List species groups and their members",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return output.ValidateFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := ctx.Index()
			if err != nil {
				return err
			}
			reg := idx.Registry()
			doc := registryDocument{Groups: reg}
			return output.Write(cmd.OutOrStdout(), format, doc, func(w io.Writer) error {
				return writeText(w, reg)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", output.FormatText, "Output format: text, json, yaml")

	return cmd
}

func writeText(w io.Writer, reg birdgroups.Registry) error {
	for i, group := range reg {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s (%d)\n", group.Name, len(group.Species)); err != nil {
			return err
		}
		for _, species := range group.Species {
			if _, err := fmt.Fprintf(w, "  %s\n", species); err != nil {
				return err
			}
		}
	}
	return nil
}
