package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freshkart/reorder/infra/config"
	"github.com/freshkart/reorder/internal/predictor"
	"github.com/freshkart/reorder/internal/trainer"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// scores a csv of orders offline: file in, file out.
func main() {
	configPath := flag.String("config", "", "path to a json config file")
	in := flag.String("in", "", "csv file with the orders to score")
	out := flag.String("out", "predictions.csv", "output csv file")
	flag.Parse()

	if *in == "" {
		log.Error().Msg("no input file given")
		os.Exit(1)
	}

	cfg := config.MustLoad(*configPath)

	bundle, err := trainer.LoadModel(cfg.Artifacts.Dir, cfg.Artifacts.Model)
	if err != nil {
		log.Error().Err(err).Msg("could not load model")
		os.Exit(1)
	}
	pred := predictor.New(bundle, cfg.Bounds)

	input, err := os.Open(*in)
	if err != nil {
		log.Error().Err(err).Str("file", *in).Msg("could not open input")
		os.Exit(1)
	}
	defer input.Close()

	output, err := os.Create(*out)
	if err != nil {
		log.Error().Err(err).Str("file", *out).Msg("could not create output")
		os.Exit(1)
	}
	defer output.Close()

	summary, err := pred.Batch(input, output)
	if err != nil {
		log.Error().Err(err).Msg("could not score batch")
		os.Exit(1)
	}

	log.Info().
		Str("file", *out).
		Int("total", summary.Total).
		Int("reorder", summary.Reorder).
		Int("no_reorder", summary.NoReorder).
		Msg("batch scored")
}
