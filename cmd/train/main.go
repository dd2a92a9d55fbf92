package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freshkart/reorder/infra/config"
	"github.com/freshkart/reorder/internal/features"
	"github.com/freshkart/reorder/internal/storage"
	storagesql "github.com/freshkart/reorder/internal/storage/sql"
	"github.com/freshkart/reorder/internal/trainer"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	configPath := flag.String("config", "", "path to a json config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	loader, err := storagesql.Open(cfg.Datasource)
	if err != nil {
		panic("could not open datasource: " + err.Error())
	}
	defer loader.Close()

	orders := loader.Orders(cfg.Tables.Orders)
	products := loader.Products(cfg.Tables.Products)
	items := loader.LineItems(cfg.Tables.LineItems)
	if len(orders) == 0 || len(products) == 0 || len(items) == 0 {
		log.Error().
			Int("orders", len(orders)).
			Int("products", len(products)).
			Int("line_items", len(items)).
			Msg("input table is empty, no model training performed")
		os.Exit(1)
	}

	rows, encoder := features.Build(orders, products, items)
	if len(rows) == 0 {
		log.Error().Msg("feature pipeline returned an empty dataset, no model training performed")
		os.Exit(1)
	}

	featurePath, err := storage.MakePath(cfg.Artifacts.Dir, cfg.Artifacts.Features)
	if err != nil {
		log.Error().Err(err).Msg("could not prepare artifacts dir")
		os.Exit(1)
	}
	if err := features.WriteCSV(featurePath, rows); err != nil {
		log.Error().Err(err).Msg("could not export feature table")
		os.Exit(1)
	}
	log.Info().Str("file", featurePath).Int("rows", len(rows)).Msg("exported feature table")

	result, err := trainer.Train(cfg, rows, encoder)
	if err != nil {
		log.Error().Err(err).Msg("training failed")
		os.Exit(1)
	}

	if cfg.Forest.Benchmark {
		if err := trainer.Benchmark(cfg, featurePath); err != nil {
			log.Error().Err(err).Msg("benchmark failed")
		}
	}

	log.Info().
		Str("run", result.RunID).
		Float64("accuracy", result.Accuracy).
		Str("model", result.ModelPath).
		Msg("training complete")
}
