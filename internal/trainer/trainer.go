package trainer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/freshkart/reorder/infra/config"
	"github.com/freshkart/reorder/internal/features"
	"github.com/freshkart/reorder/internal/math/ml"
	"github.com/freshkart/reorder/internal/model"
	"github.com/freshkart/reorder/internal/storage"
	jsonstore "github.com/freshkart/reorder/internal/storage/file/json"
)

// Result describes a completed training run.
type Result struct {
	RunID     string
	Accuracy  float64
	Report    ml.Report
	Matrix    ml.ConfusionMatrix
	ModelPath string
}

// Train fits a bounded forest on the feature rows and writes the model
// bundle and confusion matrix artifacts.
//
// Every failure comes back as an error and leaves no artifact behind;
// the caller decides whether to abort or retry.
func Train(cfg *config.Config, rows []model.FeatureRow, encoder *features.Encoder) (*Result, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("cannot train: %w", storage.ErrNoData)
	}

	runID := uuid.New().String()
	log.Info().Str("run", runID).Int("rows", len(rows)).Msg("preparing training data")

	summarize(rows)

	x := make([][]float64, len(rows))
	y := make([]int, len(rows))
	for i, r := range rows {
		x[i] = r.Vector()
		y[i] = r.Reordered
	}

	trainIdx, testIdx := ml.Split(len(rows), cfg.Forest.SplitRatio, cfg.Forest.Seed)
	if len(trainIdx) == 0 || len(testIdx) == 0 {
		return nil, fmt.Errorf("split %v left an empty partition over %d rows", cfg.Forest.SplitRatio, len(rows))
	}

	xTrain := make([][]float64, len(trainIdx))
	yTrain := make([]int, len(trainIdx))
	for i, idx := range trainIdx {
		xTrain[i] = x[idx]
		yTrain[i] = y[idx]
	}

	forest := ml.NewForest(cfg.Forest.Trees)
	importance := forest.Train(xTrain, yTrain)
	for i, imp := range importance {
		if i < len(model.LiveColumns) {
			log.Info().Str("feature", model.LiveColumns[i]).Float64("importance", imp).Msg("feature importance")
		}
	}

	actual := make([]int, len(testIdx))
	predicted := make([]int, len(testIdx))
	for i, idx := range testIdx {
		actual[i] = y[idx]
		predicted[i] = forest.Predict(x[idx])
	}

	cm := ml.Confusion(actual, predicted)
	report := cm.Classification()
	log.Info().Str("run", runID).Float64("accuracy", report.Accuracy).Msg("evaluated forest")
	fmt.Println(report.String())

	matrixPath, err := storage.MakePath(cfg.Artifacts.Dir, cfg.Artifacts.ConfusionMatrix)
	if err != nil {
		return nil, err
	}
	if err := saveConfusionMatrix(matrixPath, cm); err != nil {
		return nil, fmt.Errorf("could not save confusion matrix: %w", err)
	}

	bundle := ml.Model{
		RunID:      runID,
		TrainedAt:  time.Now(),
		Columns:    model.LiveColumns,
		Vocabulary: encoder.Classes,
		Accuracy:   report.Accuracy,
		Forest:     forest.Forest(),
	}
	if err := jsonstore.Save(cfg.Artifacts.Dir, cfg.Artifacts.Model, bundle); err != nil {
		return nil, fmt.Errorf("could not save model: %w", err)
	}
	modelPath := filepath.Join(cfg.Artifacts.Dir, cfg.Artifacts.Model)
	log.Info().Str("run", runID).Str("model", modelPath).Msg("saved model")

	return &Result{
		RunID:     runID,
		Accuracy:  report.Accuracy,
		Report:    report,
		Matrix:    cm,
		ModelPath: modelPath,
	}, nil
}

// Benchmark cross-checks the primary forest against an independent
// golearn forest trained on the exported feature file.
func Benchmark(cfg *config.Config, featureFile string) error {
	accuracy, summary, err := ml.Benchmark(featureFile, cfg.Forest.Trees, cfg.Forest.Features, cfg.Forest.Seed)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}
	log.Info().Float64("accuracy", accuracy).Msg("benchmark forest")
	fmt.Println(summary)
	return nil
}

// LoadModel reads a model bundle back from disk.
func LoadModel(dir string, file string) (*ml.Model, error) {
	var bundle ml.Model
	if err := jsonstore.Load(dir, file, &bundle); err != nil {
		return nil, err
	}
	if bundle.Forest == nil {
		return nil, fmt.Errorf("model bundle '%s' has no fitted forest: %w", file, storage.ErrCouldNotLoad)
	}
	return &bundle, nil
}

func summarize(rows []model.FeatureRow) {
	cols := make([][]float64, len(model.LiveColumns))
	for i := range cols {
		cols[i] = make([]float64, len(rows))
	}
	for j, r := range rows {
		for i, v := range r.Vector() {
			cols[i][j] = v
		}
	}
	for i, name := range model.LiveColumns {
		mean, stddev := stat.MeanStdDev(cols[i], nil)
		log.Info().Str("feature", name).Float64("mean", mean).Float64("stddev", stddev).Msg("feature summary")
	}
}
