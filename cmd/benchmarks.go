package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/globalbridge/readiness-cli/internal/match"
)

var benchmarksTop int

var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks <application.json>",
	Short: "Rank benchmark companies by profile similarity",
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

		top := benchmarksTop
		if top <= 0 {
			top = cfg.Scoring.BenchmarkTopK
		}

		ranked := match.MatchBenchmarks(app.Profile, app.Diagnosis, cat.Companies, top)
		if len(ranked) == 0 {
			fmt.Fprintln(os.Stderr, "No benchmark matches found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "COMPANY\tINDUSTRY\tSTAGE\tFIT\tREASONS")
		_, _ = fmt.Fprintln(w, "-------\t--------\t-----\t---\t-------")
		for _, r := range ranked {
			if r.Score < cfg.Scoring.MinFitScore {
				continue
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				r.Company.Name,
				cat.IndustryLabel(r.Company.Industry),
				titleize(string(r.Company.Stage)),
				r.Score,
				strings.Join(r.Reasons, "; "),
			)
		}
		return w.Flush()
	},
}

func init() {
	benchmarksCmd.Flags().IntVar(&benchmarksTop, "top", 0, "number of matches (default from config)")
	rootCmd.AddCommand(benchmarksCmd)
}
