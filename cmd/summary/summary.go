package summary

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tphakala/birdgroups/internal/config"
	"github.com/tphakala/birdgroups/internal/ebird"
	"github.com/tphakala/birdgroups/internal/logger"
	"github.com/tphakala/birdgroups/internal/output"
	"github.com/tphakala/birdgroups/internal/report"
)

// Command creates the summary command for eBird observation exports.
func Command(ctx *config.Context) *cobra.Command {
	var (
		format    string
		showEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Summarise eBird observations per species group",
		Long: `Read a JSON array of eBird observations (the body of the eBird API
data/obs endpoints, or "-" for stdin) and count records and individuals per
species group. Species that are in no group are listed last under the
--default label.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return output.ValidateFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := ctx.Index()
			if err != nil {
				return err
			}

			var observations []ebird.Observation
			if args[0] == "-" {
				observations, err = ebird.DecodeObservations(cmd.InOrStdin())
			} else {
				observations, err = ebird.LoadObservationsFile(args[0])
			}
			if err != nil {
				return err
			}

			s := report.SummarizeOr(idx, observations, ctx.Settings.Lookup.Default)

			total, classified := s.Totals()
			logger.Global().Module("cli").WithContext(cmd.Context()).Debug("observations summarised",
				logger.String("file", args[0]),
				logger.Int("observations", total),
				logger.Int("classified", classified))

			return output.Write(cmd.OutOrStdout(), format, s, func(w io.Writer) error {
				return WriteText(w, s, showEmpty)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", output.FormatText, "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&showEmpty, "all", false, "Include groups without observations in text output")

	return cmd
}

// WriteText renders a summary as an aligned table. Empty sections are
// skipped unless showEmpty is set.
func WriteText(w io.Writer, s *report.Summary, showEmpty bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "GROUP / SPECIES\tRECORDS\tINDIVIDUALS")
	for i := range s.Sections {
		section := &s.Sections[i]
		if section.Observations == 0 && !showEmpty {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", section.Group, section.Observations, section.Individuals)
		for _, sp := range section.Species {
			name := sp.CommonName
			if name == "" {
				name = "(no name)"
			}
			individuals := fmt.Sprint(sp.Individuals)
			if sp.Uncounted > 0 {
				individuals += "+"
			}
			fmt.Fprintf(tw, "  %s\t%d\t%s\n", name, sp.Observations, individuals)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	total, classified := s.Totals()
	_, err := fmt.Fprintf(w, "\nTotal: %d records, %d in groups\n", total, classified)
	return err
}
