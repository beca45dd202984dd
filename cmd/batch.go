package main

import (
	"context"
	"encoding/csv"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/globalbridge/readiness-cli/internal/intake"
	"github.com/globalbridge/readiness-cli/internal/report"
	"github.com/globalbridge/readiness-cli/internal/store"
)

var (
	batchConcurrency int
	batchLimit       int
	batchOutput      string
	batchSheet       string
	batchSave        bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <intake.xlsx>",
	Short: "Score an intake spreadsheet of questionnaires",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rows, err := intake.ReadSheet(args[0], batchSheet)
		if err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		cats := reportCatalogs(cat)

		var st store.Store
		if batchSave {
			if err := cfg.Validate("store"); err != nil {
				return err
			}
			st, err = store.Open(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()
		}

		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.Concurrency
		}

		results, err := processBatch(ctx, rows, batchLimit, concurrency, cats, st)
		if err != nil {
			return err
		}

		return writeBatchSummary(batchOutput, results)
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "parallel workers (default from config)")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max rows to process (0 = all)")
	batchCmd.Flags().StringVar(&batchOutput, "output", "results.csv", "summary CSV path")
	batchCmd.Flags().StringVar(&batchSheet, "sheet", "", "sheet name (default first sheet)")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "persist each report to the configured store")
	rootCmd.AddCommand(batchCmd)
}

// batchResult is one line of the batch summary.
type batchResult struct {
	Line       int
	Company    string
	TotalScore int
	Stage      string
	Level      string
	ReportID   string
	Err        error
}

// processBatch scores intake rows concurrently. Row-level failures are
// recorded in the result set, never propagated.
func processBatch(ctx context.Context, rows []intake.Row, limit, concurrency int, cats report.Catalogs, st store.Store) ([]batchResult, error) {
	if len(rows) == 0 {
		zap.L().Info("no intake rows found")
		return nil, nil
	}

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	zap.L().Info("processing batch",
		zap.Int("rows", len(rows)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	results := make([]batchResult, len(rows))
	var succeeded, failed atomic.Int64
	var mu sync.Mutex

	for i, row := range rows {
		g.Go(func() error {
			res := batchResult{Line: row.Line, Company: row.App.Profile.Name}

			if row.Err != nil {
				res.Err = row.Err
				failed.Add(1)
				results[i] = res
				return nil
			}

			log := zap.L().With(zap.String("company", row.App.Profile.Name))

			rep := report.BuildReport(row.App, cats)
			res.TotalScore = rep.Assessment.TotalScore
			res.Stage = string(rep.Assessment.Stage)
			res.Level = string(rep.Assessment.Level)

			if st != nil {
				// Store writes are serialized; SQLite tolerates little
				// write concurrency.
				mu.Lock()
				id, err := st.SaveReport(gctx, &rep)
				mu.Unlock()
				if err != nil {
					res.Err = err
					failed.Add(1)
					log.Error("report save failed", zap.Error(err))
					results[i] = res
					return nil
				}
				res.ReportID = id
			}

			succeeded.Add(1)
			log.Info("assessment complete",
				zap.Int("total_score", rep.Assessment.TotalScore),
				zap.String("stage", res.Stage),
			)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return results, nil
}

// writeBatchSummary writes the per-row outcome CSV.
func writeBatchSummary(path string, results []batchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create summary %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"line", "company", "total_score", "stage", "level", "report_id", "error"}); err != nil {
		return eris.Wrap(err, "write summary header")
	}

	for _, r := range results {
		errMsg := ""
		if r.Err != nil {
			errMsg = r.Err.Error()
		}
		score := ""
		if r.Err == nil {
			score = strconv.Itoa(r.TotalScore)
		}
		record := []string{
			strconv.Itoa(r.Line), r.Company, score, r.Stage, r.Level, r.ReportID, errMsg,
		}
		if err := w.Write(record); err != nil {
			return eris.Wrap(err, "write summary row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "flush summary")
	}

	zap.L().Info("summary written", zap.String("path", path), zap.Int("rows", len(results)))
	return nil
}
