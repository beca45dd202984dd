package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/globalbridge/readiness-cli/internal/model"
	"github.com/globalbridge/readiness-cli/internal/report"
	"github.com/globalbridge/readiness-cli/internal/store"
	"github.com/globalbridge/readiness-cli/internal/submit"
	"github.com/globalbridge/readiness-cli/pkg/notion"
)

var (
	reportOutput string
	reportFormat string
	reportSave   bool
	reportSubmit bool
)

var reportCmd = &cobra.Command{
	Use:   "report <application.json>",
	Short: "Build the full assessment report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		app, err := loadApplication(args[0])
		if err != nil {
			return err
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		rep := report.BuildReport(app, reportCatalogs(cat))

		if reportSave {
			if err := cfg.Validate("store"); err != nil {
				return err
			}
			st, err := store.Open(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.SaveReport(ctx, &rep)
			if err != nil {
				return eris.Wrap(err, "save report")
			}
			rep.ID = id
			zap.L().Info("report saved", zap.String("id", id))
		}

		if reportSubmit {
			if err := cfg.Validate("submit"); err != nil {
				return err
			}
			client := notion.NewClient(cfg.Notion.Token)
			sub := submit.New(client, cfg.Notion.AssessmentDB)
			// Submission failure never invalidates the report itself.
			if err := sub.Submit(ctx, &rep); err != nil {
				zap.L().Warn("notion submission failed", zap.Error(err))
			}
		}

		out, err := renderReport(rep, reportFormat)
		if err != nil {
			return err
		}

		if reportOutput != "" {
			if err := os.WriteFile(reportOutput, out, 0o644); err != nil {
				return eris.Wrapf(err, "write report %s", reportOutput)
			}
			zap.L().Info("report written",
				zap.String("path", reportOutput),
				zap.String("company", rep.Profile.Name),
			)
			return nil
		}

		fmt.Fprint(os.Stdout, string(out))
		return nil
	},
}

func renderReport(rep model.Report, format string) ([]byte, error) {
	switch format {
	case "markdown":
		return []byte(report.RenderMarkdown(rep)), nil
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return nil, eris.Wrap(err, "encode report")
		}
		return append(data, '\n'), nil
	default:
		return nil, eris.Errorf("unknown format %q (want json or markdown)", format)
	}
}

func init() {
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "write report to file instead of stdout")
	reportCmd.Flags().StringVar(&reportFormat, "format", "markdown", "output format (json, markdown)")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "persist the report to the configured store")
	reportCmd.Flags().BoolVar(&reportSubmit, "submit", false, "submit the assessment record to Notion")
	rootCmd.AddCommand(reportCmd)
}
