package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/globalbridge/readiness-cli/internal/catalog"
	"github.com/globalbridge/readiness-cli/internal/model"
	"github.com/globalbridge/readiness-cli/internal/report"
)

// loadApplication reads a questionnaire answer file.
func loadApplication(path string) (model.Application, error) {
	var app model.Application
	data, err := os.ReadFile(path)
	if err != nil {
		return app, eris.Wrapf(err, "read application %s", path)
	}
	if err := json.Unmarshal(data, &app); err != nil {
		return app, eris.Wrapf(err, "parse application %s", path)
	}
	if app.Profile.Name == "" {
		return app, eris.Errorf("application %s has no company name", path)
	}
	return app, nil
}

// loadCatalog loads reference data, honoring the configured override dir.
func loadCatalog() (*catalog.Catalog, error) {
	if cfg.Catalog.Dir != "" {
		return catalog.LoadDir(cfg.Catalog.Dir)
	}
	return catalog.Load()
}

// reportCatalogs adapts a loaded catalog to the report builder's input.
func reportCatalogs(cat *catalog.Catalog) report.Catalogs {
	return report.Catalogs{
		Industries: cat.Industries,
		Companies:  cat.Companies,
		Markets:    cat.Markets,
		Services:   cat.Services,
	}
}

var titleCaser = cases.Title(language.English)

// titleize turns a machine code like "southeast_asia" into a display
// label. Catalog-known codes should be resolved through the catalog
// first; this is the fallback for codes the catalog does not carry.
func titleize(code string) string {
	if code == "" {
		return "-"
	}
	return titleCaser.String(strings.ReplaceAll(code, "_", " "))
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
