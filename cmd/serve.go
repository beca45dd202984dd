package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/globalbridge/readiness-cli/internal/model"
	"github.com/globalbridge/readiness-cli/internal/report"
	"github.com/globalbridge/readiness-cli/internal/scoring"
	"github.com/globalbridge/readiness-cli/internal/store"
	"github.com/globalbridge/readiness-cli/internal/submit"
	"github.com/globalbridge/readiness-cli/pkg/notion"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the assessment HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		env := serveEnv{cats: reportCatalogs(cat)}

		if err := cfg.Validate("store"); err == nil {
			st, err := store.Open(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()
			env.store = st
		} else {
			zap.L().Warn("store disabled", zap.Error(err))
		}

		if cfg.Notion.Token != "" && cfg.Notion.AssessmentDB != "" {
			client := notion.NewClient(cfg.Notion.Token)
			env.submitter = submit.New(client, cfg.Notion.AssessmentDB)
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newServeMux(env),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// serveEnv holds the dependencies the HTTP handlers operate on. store
// and submitter are optional; handlers degrade to score-only behavior
// when they are nil.
type serveEnv struct {
	cats      report.Catalogs
	store     store.Store
	submitter *submit.Submitter
}

func newServeMux(env serveEnv) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /assess", func(w http.ResponseWriter, r *http.Request) {
		app, ok := decodeApplication(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, scoring.Score(app))
	})

	mux.HandleFunc("POST /report", func(w http.ResponseWriter, r *http.Request) {
		app, ok := decodeApplication(w, r)
		if !ok {
			return
		}

		rep := report.BuildReport(app, env.cats)

		if env.store != nil {
			id, err := env.store.SaveReport(r.Context(), &rep)
			if err != nil {
				zap.L().Error("report save failed",
					zap.String("company", app.Profile.Name),
					zap.Error(err),
				)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "save failed"})
				return
			}
			rep.ID = id
		}

		if env.submitter != nil && r.URL.Query().Get("submit") == "1" {
			// Detached from the request context so the upload survives
			// the response.
			env.submitter.SubmitAsync(context.Background(), &rep)
		}

		writeJSON(w, http.StatusOK, rep)
	})

	return mux
}

// decodeApplication parses and validates the request body. On failure it
// writes the error response and returns ok=false.
func decodeApplication(w http.ResponseWriter, r *http.Request) (model.Application, bool) {
	var app model.Application
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return app, false
	}
	if app.Profile.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "profile.name is required"})
		return app, false
	}
	return app, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
