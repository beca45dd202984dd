package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/globalbridge/readiness-cli/internal/match"
)

var marketsTop int

var marketsCmd = &cobra.Command{
	Use:   "markets <application.json>",
	Short: "Recommend target export markets",
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

		top := marketsTop
		if top <= 0 {
			top = cfg.Scoring.MarketTopK
		}

		recs := match.RecommendMarkets(app.Profile, app.Product, app.Diagnosis, cat.Markets, top)
		if len(recs) == 0 {
			fmt.Fprintln(os.Stderr, "No market recommendations.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "MARKET\tPRIORITY\tFIT\tTIMELINE\tRATIONALE")
		_, _ = fmt.Fprintln(w, "------\t--------\t---\t--------\t---------")
		for _, r := range recs {
			name := r.Market.Region
			if name == "" {
				name = titleize(r.Market.Key)
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				name, r.Priority, r.FitScore, r.Market.Timeline, r.Rationale)
		}
		return w.Flush()
	},
}

func init() {
	marketsCmd.Flags().IntVar(&marketsTop, "top", 0, "number of markets (default from config)")
	rootCmd.AddCommand(marketsCmd)
}
