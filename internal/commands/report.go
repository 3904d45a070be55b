package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-ledger/tally/internal/report"
)

func newReportCommand(g *globals) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show totals and the month-by-month breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd)
			if err != nil {
				return err
			}
			doc := report.SummaryMarkdown(s.engine.Report(), s.cfg.Report.Currency)
			return printMarkdown(cmd.OutOrStdout(), doc, s.cfg.Report.Style, raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without terminal rendering")

	return cmd
}
