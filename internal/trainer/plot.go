package trainer

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/freshkart/reorder/internal/math/ml"
)

// confusionGrid adapts a confusion matrix to the heat map grid,
// columns as predicted and rows as actual labels.
type confusionGrid struct {
	cm ml.ConfusionMatrix
}

func (g confusionGrid) Dims() (int, int)   { return 2, 2 }
func (g confusionGrid) X(c int) float64    { return float64(c) }
func (g confusionGrid) Y(r int) float64    { return float64(r) }
func (g confusionGrid) Z(c, r int) float64 { return float64(g.cm.Counts[r][c]) }

func saveConfusionMatrix(path string, cm ml.ConfusionMatrix) error {
	p := plot.New()
	p.Title.Text = "Confusion Matrix"
	p.X.Label.Text = "Predicted"
	p.Y.Label.Text = "Actual"

	heat := plotter.NewHeatMap(confusionGrid{cm: cm}, palette.Heat(12, 1))
	p.Add(heat)

	ticks := []plot.Tick{
		{Value: 0, Label: "Not Reordered"},
		{Value: 1, Label: "Reordered"},
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	counts := plotter.XYLabels{}
	for actual := 0; actual < 2; actual++ {
		for predicted := 0; predicted < 2; predicted++ {
			counts.XYs = append(counts.XYs, plotter.XY{X: float64(predicted), Y: float64(actual)})
			counts.Labels = append(counts.Labels, fmt.Sprintf("%d", cm.Counts[actual][predicted]))
		}
	}
	labels, err := plotter.NewLabels(counts)
	if err != nil {
		return err
	}
	p.Add(labels)

	return p.Save(14*vg.Centimeter, 12*vg.Centimeter, path)
}
