package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/globalbridge/readiness-cli/internal/store"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Inspect stored assessment reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("store"); err != nil {
			return err
		}
		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		company, _ := cmd.Flags().GetString("company")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		summaries, err := st.ListReports(ctx, store.ReportFilter{
			Company: company,
			Limit:   limit,
			Offset:  offset,
		})
		if err != nil {
			return eris.Wrap(err, "reports list")
		}

		if len(summaries) == 0 {
			fmt.Fprintln(os.Stderr, "No reports found.")
			return nil
		}

		formatReportsList(os.Stdout, summaries)
		return nil
	},
}

var reportsGetCmd = &cobra.Command{
	Use:   "get <report-id>",
	Short: "Show a stored report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("store"); err != nil {
			return err
		}
		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rep, err := st.GetReport(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "reports get")
		}

		return printJSON(rep)
	},
}

func init() {
	reportsListCmd.Flags().String("company", "", "filter by company name")
	reportsListCmd.Flags().Int("limit", 50, "max number of reports to display")
	reportsListCmd.Flags().Int("offset", 0, "rows to skip")

	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsGetCmd)
	rootCmd.AddCommand(reportsCmd)
}

// formatReportsList writes a tabular report index to w.
func formatReportsList(out io.Writer, summaries []store.ReportSummary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCOMPANY\tSCORE\tSTAGE\tLEVEL\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t-------\t-----\t-----\t-----\t-------")

	for _, s := range summaries {
		company := s.Company
		if len(company) > 30 {
			company = company[:27] + "..."
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			truncateID(s.ID),
			company,
			s.TotalScore,
			s.Stage,
			s.Level,
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
