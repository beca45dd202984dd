package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/globalbridge/readiness-cli/internal/config"
)

var (
	cfg        *config.Config
	catalogDir string
)

var rootCmd = &cobra.Command{
	Use:   "readiness-cli",
	Short: "Export-readiness assessment engine",
	Long:  "Scores questionnaire answers across five dimensions, classifies export maturity, and produces benchmark, market, and service recommendations.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		if catalogDir != "" {
			cfg.Catalog.Dir = catalogDir
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog-dir", "", "directory of catalog override files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
