package ml

import (
	"fmt"
	"math/rand"
	"strings"
)

// Split shuffles the indices 0..n-1 with the given seed and cuts them
// at the given ratio. The same seed always yields the same partitions.
func Split(n int, ratio float64, seed int64) (train []int, test []int) {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	cut := int(float64(n) * ratio)
	return indices[:cut], indices[cut:]
}

// ConfusionMatrix counts test-set outcomes as actual x predicted.
type ConfusionMatrix struct {
	Counts [2][2]int `json:"counts"`
}

// Confusion tallies the given label pairs.
func Confusion(actual, predicted []int) ConfusionMatrix {
	var cm ConfusionMatrix
	for i := range actual {
		cm.Counts[clamp(actual[i])][clamp(predicted[i])]++
	}
	return cm
}

func clamp(label int) int {
	if label != 0 {
		return 1
	}
	return 0
}

// Accuracy is the fraction of correctly classified samples.
func (cm ConfusionMatrix) Accuracy() float64 {
	total := 0
	correct := 0
	for a := 0; a < 2; a++ {
		for p := 0; p < 2; p++ {
			total += cm.Counts[a][p]
			if a == p {
				correct += cm.Counts[a][p]
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// ClassReport holds per-class classification metrics.
type ClassReport struct {
	Label     string  `json:"label"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Report is the per-class breakdown of a confusion matrix.
type Report struct {
	Classes  []ClassReport `json:"classes"`
	Accuracy float64       `json:"accuracy"`
}

var classLabels = [2]string{"Not Reordered", "Reordered"}

// Classification computes precision, recall and F1 per class.
func (cm ConfusionMatrix) Classification() Report {
	report := Report{Accuracy: cm.Accuracy()}
	for c := 0; c < 2; c++ {
		tp := cm.Counts[c][c]
		fp := cm.Counts[1-c][c]
		fn := cm.Counts[c][1-c]
		cr := ClassReport{
			Label:   classLabels[c],
			Support: cm.Counts[c][0] + cm.Counts[c][1],
		}
		if tp+fp > 0 {
			cr.Precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			cr.Recall = float64(tp) / float64(tp+fn)
		}
		if cr.Precision+cr.Recall > 0 {
			cr.F1 = 2 * cr.Precision * cr.Recall / (cr.Precision + cr.Recall)
		}
		report.Classes = append(report.Classes, cr)
	}
	return report
}

func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-15s %9s %9s %9s %9s\n", "", "precision", "recall", "f1", "support"))
	for _, c := range r.Classes {
		sb.WriteString(fmt.Sprintf("%-15s %9.2f %9.2f %9.2f %9d\n", c.Label, c.Precision, c.Recall, c.F1, c.Support))
	}
	sb.WriteString(fmt.Sprintf("%-15s %39.2f\n", "accuracy", r.Accuracy))
	return sb.String()
}
