package normalize

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/birdgroups/internal/birdgroups"
)

// Command creates the normalize command, which prints canonical lookup keys.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize NAME...",
		Short: "Print the canonical lookup key of each name",
		Long:  "Print the key a species name is matched on, one per argument.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range args {
				if _, err := fmt.Fprintln(w, birdgroups.Normalize(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}
