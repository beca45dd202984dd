package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Notion  NotionConfig  `yaml:"notion" mapstructure:"notion"`
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
	Batch   BatchConfig   `yaml:"batch" mapstructure:"batch"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the report store backend. Path is the SQLite
// database file; DatabaseURL is the Postgres connection string.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	Path        string `yaml:"path" mapstructure:"path"`
}

// NotionConfig holds Notion API credentials and the assessment database id.
type NotionConfig struct {
	Token        string `yaml:"token" mapstructure:"token"`
	AssessmentDB string `yaml:"assessment_db" mapstructure:"assessment_db"`
}

// CatalogConfig points at an optional external catalog directory. Files
// found there override the embedded defaults.
type CatalogConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ScoringConfig exposes the display-side knobs of the engine. The
// dimension and matcher weights themselves are fixed in code.
type ScoringConfig struct {
	BenchmarkTopK int `yaml:"benchmark_top_k" mapstructure:"benchmark_top_k"`
	MarketTopK    int `yaml:"market_top_k" mapstructure:"market_top_k"`
	MinFitScore   int `yaml:"min_fit_score" mapstructure:"min_fit_score"`
}

// BatchConfig configures bulk intake processing.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// ServerConfig configures the HTTP intake server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks the configuration needed by the given mode ("store",
// "submit", "serve") and reports every problem at once.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "store":
		switch c.Store.Driver {
		case "sqlite":
			if c.Store.Path == "" {
				problems = append(problems, "store.path is required for the sqlite driver")
			}
		case "postgres":
			if c.Store.DatabaseURL == "" {
				problems = append(problems, "store.database_url is required for the postgres driver")
			}
		default:
			problems = append(problems, "store.driver must be sqlite or postgres")
		}
	case "submit":
		if c.Notion.Token == "" {
			problems = append(problems, "notion.token is required")
		}
		if c.Notion.AssessmentDB == "" {
			problems = append(problems, "notion.assessment_db is required")
		}
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
		if c.Batch.Concurrency < 1 || c.Batch.Concurrency > 50 {
			problems = append(problems, "batch.concurrency must be between 1 and 50")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("READINESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "readiness.db")
	v.SetDefault("scoring.benchmark_top_k", 3)
	v.SetDefault("scoring.market_top_k", 3)
	v.SetDefault("scoring.min_fit_score", 0)
	v.SetDefault("batch.concurrency", 5)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
