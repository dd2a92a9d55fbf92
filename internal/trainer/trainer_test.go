package trainer

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/reorder/infra/config"
	"github.com/freshkart/reorder/internal/features"
	"github.com/freshkart/reorder/internal/model"
	"github.com/freshkart/reorder/internal/storage"
)

// synthetic dataset where the reorder rate carries the label
func syntheticRows(n int, seed int64) []model.FeatureRow {
	r := rand.New(rand.NewSource(seed))
	rows := make([]model.FeatureRow, n)
	for i := 0; i < n; i++ {
		label := i % 2
		rate := 0.1 + 0.05*r.Float64()
		if label == 1 {
			rate = 0.8 + 0.05*r.Float64()
		}
		rows[i] = model.FeatureRow{
			UserID:              1 + r.Intn(100),
			ProductID:           1 + r.Intn(50),
			ProductNameEncoded:  r.Intn(10),
			OrderDow:            r.Intn(7),
			OrderHourOfDay:      r.Intn(24),
			AddToCartOrder:      1 + r.Intn(5),
			UserTotalOrders:     1 + r.Intn(20),
			ProductReorderRate:  rate,
			DaysSincePriorOrder: float64(r.Intn(30)),
			Reordered:           label,
		}
	}
	return rows
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Artifacts.Dir = t.TempDir()
	return cfg
}

func TestTrain(t *testing.T) {
	cfg := testConfig(t)
	rows := syntheticRows(300, 17)
	encoder := features.Fit([]string{"Avocado", "Bananas"})

	result, err := Train(cfg, rows, encoder)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.True(t, result.Accuracy >= 0 && result.Accuracy <= 1)
	assert.Equal(t, 2, len(result.Report.Classes))

	_, err = os.Stat(filepath.Join(cfg.Artifacts.Dir, cfg.Artifacts.Model))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.Artifacts.Dir, cfg.Artifacts.ConfusionMatrix))
	assert.NoError(t, err)

	bundle, err := LoadModel(cfg.Artifacts.Dir, cfg.Artifacts.Model)
	require.NoError(t, err)
	assert.Equal(t, result.RunID, bundle.RunID)
	assert.Equal(t, model.LiveColumns, bundle.Columns)
	assert.Equal(t, encoder.Classes, bundle.Vocabulary)

	// the restored forest still predicts
	label, err := bundle.Predict(rows[1].Vector())
	require.NoError(t, err)
	assert.True(t, label == 0 || label == 1)
}

func TestTrain_NoData(t *testing.T) {
	cfg := testConfig(t)

	_, err := Train(cfg, nil, features.Fit(nil))
	assert.ErrorIs(t, err, storage.ErrNoData)

	// no artifact left behind
	_, statErr := os.Stat(filepath.Join(cfg.Artifacts.Dir, cfg.Artifacts.Model))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadModel_Missing(t *testing.T) {
	_, err := LoadModel(t.TempDir(), "model.json")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
