package ml

import (
	randomforest "github.com/malaschitz/randomForest"
	"github.com/rs/zerolog/log"
)

// RandomForest wraps a bagged forest classifier with a bounded number
// of estimators.
type RandomForest struct {
	trees  int
	forest *randomforest.Forest
}

func NewForest(n int) *RandomForest {
	return &RandomForest{
		trees: n,
	}
}

// Train fits the forest on the given samples and returns the feature
// importance vector.
func (rf *RandomForest) Train(xData [][]float64, yData []int) []float64 {
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xData, Class: yData}
	forest.Train(rf.trees)
	rf.forest = forest
	log.Info().Int("samples", len(xData)).Int("trees", rf.trees).Msg("trained forest")
	return forest.FeatureImportance
}

// Vote returns the per-class vote shares for the given sample.
func (rf *RandomForest) Vote(xData []float64) []float64 {
	return rf.forest.Vote(xData)
}

// Predict returns the majority class for the given sample.
func (rf *RandomForest) Predict(xData []float64) int {
	return argmax(rf.forest.Vote(xData))
}

// Forest exposes the fitted forest for persistence.
func (rf *RandomForest) Forest() *randomforest.Forest {
	return rf.forest
}

func argmax(votes []float64) int {
	best := 0
	for i, v := range votes {
		if v > votes[best] {
			best = i
		}
	}
	return best
}
