package lookup

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tphakala/birdgroups/internal/birdgroups"
	"github.com/tphakala/birdgroups/internal/config"
)

// Command creates the lookup command, which prints the group of each name.
func Command(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [NAME...]",
		Short: "Print the group of each species name",
		Long: `Print NAME<TAB>GROUP for every species common name given as an argument.
Names are matched case-insensitively and tolerate apostrophe, dash, slash and
whitespace variants. Without arguments names are read from stdin, one per line.
Names that are in no group get the --default label.`,
		Example: `  birdgroups lookup Mallard "Ross's goose"
  cut -f2 sightings.tsv | birdgroups lookup --default Other`,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := ctx.Index()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return lookupLines(cmd.OutOrStdout(), cmd.InOrStdin(), idx, ctx.Settings.Lookup.Default)
			}
			return lookupNames(cmd.OutOrStdout(), idx, args, ctx.Settings.Lookup.Default)
		},
	}

	return cmd
}

func lookupNames(w io.Writer, idx *birdgroups.Index, names []string, def string) error {
	for _, name := range names {
		if err := writeLine(w, idx, name, def); err != nil {
			return err
		}
	}
	return nil
}

func lookupLines(w io.Writer, r io.Reader, idx *birdgroups.Index, def string) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(name) == "" {
			continue
		}
		if err := writeLine(w, idx, name, def); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func writeLine(w io.Writer, idx *birdgroups.Index, name, def string) error {
	_, err := fmt.Fprintf(w, "%s\t%s\n", name, idx.GroupForSpeciesOr(name, def))
	return err
}
