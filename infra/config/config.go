package config

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config carries every knob the pipeline stages need explicitly,
// instead of the implicit globals the stages would otherwise reach for.
type Config struct {
	Datasource string         `json:"datasource"`
	Tables     TableConfig    `json:"tables"`
	Artifacts  ArtifactConfig `json:"artifacts"`
	Forest     ForestConfig   `json:"forest"`
	Bounds     BoundsConfig   `json:"bounds"`
	Server     ServerConfig   `json:"server"`
}

// TableConfig names the input relations.
type TableConfig struct {
	Orders    string `json:"orders"`
	Products  string `json:"products"`
	LineItems string `json:"line_items"`
}

// ArtifactConfig holds the output locations of a training run.
type ArtifactConfig struct {
	Dir             string `json:"dir"`
	Features        string `json:"features"`
	Model           string `json:"model"`
	ConfusionMatrix string `json:"confusion_matrix"`
}

// ForestConfig bounds the classifier and fixes the split.
type ForestConfig struct {
	Trees      int     `json:"trees"`
	Features   int     `json:"features"`
	SplitRatio float64 `json:"split_ratio"`
	Seed       int64   `json:"seed"`
	Benchmark  bool    `json:"benchmark"`
}

// BoundsConfig holds the id ceilings beyond which a prediction is not
// considered reliable.
type BoundsConfig struct {
	MaxUserID         int     `json:"max_user_id"`
	MaxProductID      int     `json:"max_product_id"`
	MaxDaysSincePrior float64 `json:"max_days_since_prior"`
}

type ServerConfig struct {
	Port int `json:"port"`
}

// Default returns the configuration matching the reference dataset.
func Default() *Config {
	return &Config{
		Datasource: "sqlite3://instacart.db",
		Tables: TableConfig{
			Orders:    "orders",
			Products:  "products",
			LineItems: "order_products__train",
		},
		Artifacts: ArtifactConfig{
			Dir:             "artifacts",
			Features:        "features.csv",
			Model:           "model.json",
			ConfusionMatrix: "confusion_matrix.png",
		},
		Forest: ForestConfig{
			Trees:      10,
			Features:   3,
			SplitRatio: 0.8,
			Seed:       42,
			Benchmark:  false,
		},
		Bounds: BoundsConfig{
			MaxUserID:         200000,
			MaxProductID:      50000,
			MaxDaysSincePrior: 30,
		},
		Server: ServerConfig{
			Port: 6090,
		},
	}
}

// Load reads the config file at the given path on top of the defaults
// and applies environment overrides last. A missing file is not an
// error, the defaults stand.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		b, err := ioutil.ReadFile(path)
		if err == nil {
			if err := json.Unmarshal(b, cfg); err != nil {
				return nil, err
			}
			log.Info().Str("path", path).Msg("loaded config")
		} else {
			log.Warn().Str("path", path).Msg("no config file, using defaults")
		}
	}

	cfg.Datasource = getEnv("REORDER_DATASOURCE", cfg.Datasource)
	cfg.Tables.LineItems = getEnv("REORDER_LINE_ITEMS_TABLE", cfg.Tables.LineItems)
	cfg.Artifacts.Dir = getEnv("REORDER_ARTIFACTS_DIR", cfg.Artifacts.Dir)
	cfg.Server.Port = getIntEnv("REORDER_PORT", cfg.Server.Port)

	return cfg, nil
}

// MustLoad is Load for setups where a broken config cannot be worked around.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic("could not load config: " + err.Error())
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
