// Package catalog loads the static reference data the engine matches
// applicants against: industries, benchmark companies, target markets,
// and service products.
package catalog

import (
	"embed"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/globalbridge/readiness-cli/internal/model"
)

//go:embed data/*.json
var dataFS embed.FS

// Catalog holds the full reference data set. All slices are read-only
// after load.
type Catalog struct {
	Industries []model.Industry
	Companies  []model.BenchmarkCompany
	Markets    []model.MarketRecord
	Services   []model.ServiceProduct
}

// Load returns the catalog built from the embedded data files.
func Load() (*Catalog, error) {
	c := &Catalog{}
	if err := loadEmbedded("industries.json", &c.Industries); err != nil {
		return nil, err
	}
	if err := loadEmbedded("benchmark_companies.json", &c.Companies); err != nil {
		return nil, err
	}
	if err := loadEmbedded("markets.json", &c.Markets); err != nil {
		return nil, err
	}
	if err := loadEmbedded("services.json", &c.Services); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadDir returns the embedded catalog with any file present in dir
// replacing its embedded counterpart. Files are matched by name
// (industries.json, benchmark_companies.json, markets.json,
// services.json); missing files keep the embedded data.
func LoadDir(dir string) (*Catalog, error) {
	c, err := Load()
	if err != nil {
		return nil, err
	}
	log := zap.L().With(zap.String("component", "catalog"))

	if ok, err := loadOverride(dir, "industries.json", &c.Industries); err != nil {
		return nil, err
	} else if ok {
		log.Info("catalog: industries overridden", zap.String("dir", dir), zap.Int("count", len(c.Industries)))
	}
	if ok, err := loadOverride(dir, "benchmark_companies.json", &c.Companies); err != nil {
		return nil, err
	} else if ok {
		log.Info("catalog: benchmark companies overridden", zap.String("dir", dir), zap.Int("count", len(c.Companies)))
	}
	if ok, err := loadOverride(dir, "markets.json", &c.Markets); err != nil {
		return nil, err
	} else if ok {
		log.Info("catalog: markets overridden", zap.String("dir", dir), zap.Int("count", len(c.Markets)))
	}
	if ok, err := loadOverride(dir, "services.json", &c.Services); err != nil {
		return nil, err
	} else if ok {
		log.Info("catalog: services overridden", zap.String("dir", dir), zap.Int("count", len(c.Services)))
	}
	return c, nil
}

// IndustryLabel resolves an industry code to its display label, falling
// back to the code itself for unknown values.
func (c *Catalog) IndustryLabel(code string) string {
	for _, ind := range c.Industries {
		if ind.Code == code {
			return ind.Label
		}
	}
	return code
}

// Market returns the market record with the given key, if present.
func (c *Catalog) Market(key string) (model.MarketRecord, bool) {
	for _, m := range c.Markets {
		if m.Key == key {
			return m, true
		}
	}
	return model.MarketRecord{}, false
}

// Service returns the service product with the given id, if present.
func (c *Catalog) Service(id string) (model.ServiceProduct, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return model.ServiceProduct{}, false
}

func loadEmbedded(name string, out any) error {
	data, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return eris.Wrapf(err, "catalog: read embedded %s", name)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return eris.Wrapf(err, "catalog: unmarshal embedded %s", name)
	}
	return nil
}

func loadOverride(dir, name string, out any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, eris.Wrapf(err, "catalog: read override %s", name)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, eris.Wrapf(err, "catalog: unmarshal override %s", name)
	}
	return true, nil
}
