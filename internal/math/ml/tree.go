package ml

import (
	"math/rand"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/ensemble"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/sjwhitworth/golearn/filters"
)

// preProcessAttributes discretises the float attributes with Chi-Merge,
// which the golearn forest needs for its categorical splits.
func preProcessAttributes(raw *base.DenseInstances) (*base.LazilyFilteredInstances, error) {
	filt := filters.NewChiMergeFilter(raw, 0.999)
	for _, a := range base.NonClassFloatAttributes(raw) {
		filt.AddAttribute(a)
	}
	err := filt.Train()
	if err != nil {
		return nil, err
	}
	return base.NewLazilyFilteredInstances(raw, filt), nil
}

// Benchmark trains an independent golearn forest on the exported
// feature file and returns its accuracy and evaluation summary, as a
// cross-check against the primary forest.
func Benchmark(fileName string, trees int, featuresPerTree int, seed int64) (float64, string, error) {
	rand.Seed(seed)

	instances, err := base.ParseCSVToInstances(fileName, true)
	if err != nil {
		return 0.0, "", err
	}

	filtered, err := preProcessAttributes(instances)
	if err != nil {
		return 0.0, "", err
	}

	trainData, testData := base.InstancesTrainTestSplit(filtered, 0.60)

	tree := ensemble.NewRandomForest(trees, featuresPerTree)
	err = tree.Fit(trainData)
	if err != nil {
		return 0.0, "", err
	}
	predictions, err := tree.Predict(testData)
	if err != nil {
		return 0.0, "", err
	}

	cf, err := evaluation.GetConfusionMatrix(testData, predictions)
	if err != nil {
		return 0.0, "", err
	}

	return evaluation.GetAccuracy(cf), evaluation.GetSummary(cf), nil
}
