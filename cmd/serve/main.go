package main

import (
	"flag"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freshkart/reorder/infra/config"
	"github.com/freshkart/reorder/internal/model"
	"github.com/freshkart/reorder/internal/predictor"
	"github.com/freshkart/reorder/internal/server"
	storagesql "github.com/freshkart/reorder/internal/storage/sql"
	"github.com/freshkart/reorder/internal/trainer"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	configPath := flag.String("config", "", "path to a json config file")
	debug := flag.Bool("debug", false, "log request payloads")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	bundle, err := trainer.LoadModel(cfg.Artifacts.Dir, cfg.Artifacts.Model)
	if err != nil {
		panic("could not load model: " + err.Error())
	}
	log.Info().
		Str("run", bundle.RunID).
		Float64("accuracy", bundle.Accuracy).
		Strs("columns", bundle.Columns).
		Msg("loaded model")

	pred := predictor.New(bundle, cfg.Bounds)

	// product list for the dashboard select box; the dashboard still
	// works without it
	products := make([]model.Product, 0)
	if loader, err := storagesql.Open(cfg.Datasource); err == nil {
		products = loader.Products(cfg.Tables.Products)
		loader.Close()
	} else {
		log.Warn().Err(err).Msg("could not open datasource, product list unavailable")
	}

	s := server.NewServer("reorder-dashboard", cfg.Server.Port).
		Add(server.Live(),
			server.Predict(pred, *debug),
			server.Batch(pred),
			server.Products(products))
	if *debug {
		s.Debug()
	}

	if err := s.Run(); err != nil {
		panic(err.Error())
	}
}
