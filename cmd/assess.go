package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/globalbridge/readiness-cli/internal/model"
	"github.com/globalbridge/readiness-cli/internal/scoring"
)

var assessFormat string

var assessCmd = &cobra.Command{
	Use:   "assess <application.json>",
	Short: "Score a questionnaire and classify export maturity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApplication(args[0])
		if err != nil {
			return err
		}

		result := scoring.Score(app)

		switch assessFormat {
		case "json":
			return printJSON(result)
		case "table":
			formatAssessment(os.Stdout, app.Profile.Name, result)
			return nil
		default:
			return eris.Errorf("unknown format %q (want table or json)", assessFormat)
		}
	},
}

func init() {
	assessCmd.Flags().StringVar(&assessFormat, "format", "table", "output format (table, json)")
	rootCmd.AddCommand(assessCmd)
}

var dimensionLabels = map[string]string{
	model.DimFoundation: "Foundation",
	model.DimProduct:    "Product Competitiveness",
	model.DimOperation:  "Operating Capability",
	model.DimResource:   "Resources & Planning",
	model.DimPotential:  "Growth Potential",
}

// formatAssessment writes a tabular assessment summary to w.
func formatAssessment(out io.Writer, company string, result model.AssessmentResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Company:\t%s\n", company)
	_, _ = fmt.Fprintf(w, "Total score:\t%d\n", result.TotalScore)
	_, _ = fmt.Fprintf(w, "Stage:\t%s\n", titleize(string(result.Stage)))
	_, _ = fmt.Fprintf(w, "Level:\t%s\n", result.Level)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "DIMENSION\tSCORE")
	_, _ = fmt.Fprintln(w, "---------\t-----")
	for _, d := range result.DimensionScores.Ordered() {
		label, ok := dimensionLabels[d.Name]
		if !ok {
			label = titleize(d.Name)
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\n", label, d.Score)
	}
	_ = w.Flush()

	if len(result.KeyFindings) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Key findings:")
		for _, f := range result.KeyFindings {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}
}
