package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/globalbridge/readiness-cli/internal/match"
	"github.com/globalbridge/readiness-cli/internal/scoring"
)

var servicesCmd = &cobra.Command{
	Use:   "services <application.json>",
	Short: "Recommend service products for the assessed company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApplication(args[0])
		if err != nil {
			return err
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		assessment := scoring.Score(app)
		ranked := match.RecommendServices(app, assessment, cat.Services)
		if len(ranked) == 0 {
			fmt.Fprintln(os.Stderr, "No service recommendations.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "SERVICE\tCATEGORY\tPRICE (10K)\tSCORE\tREASONS")
		_, _ = fmt.Fprintln(w, "-------\t--------\t-----------\t-----\t-------")
		for _, r := range ranked {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%d-%d\t%d\t%s\n",
				r.Service.Name,
				titleize(r.Service.Category),
				r.Service.InvestmentRange.Min,
				r.Service.InvestmentRange.Max,
				r.Score,
				strings.Join(r.Reasons, "; "),
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
