package ml

import (
	"fmt"
	"time"

	randomforest "github.com/malaschitz/randomForest"
)

// Model is the serialized training artifact: the fitted forest together
// with the exact ordered feature columns it was fitted on and the
// product name vocabulary fitted over the same dataset. Persisting the
// three as one unit keeps training and inference encodings consistent.
type Model struct {
	RunID      string               `json:"run_id"`
	TrainedAt  time.Time            `json:"trained_at"`
	Columns    []string             `json:"columns"`
	Vocabulary []string             `json:"vocabulary"`
	Accuracy   float64              `json:"accuracy"`
	Forest     *randomforest.Forest `json:"forest"`
}

// Predict returns the binary label for one sample. The sample must
// carry exactly the columns the model was fitted on, in order.
func (m *Model) Predict(x []float64) (int, error) {
	if m.Forest == nil {
		return 0, fmt.Errorf("model has no fitted forest")
	}
	if len(x) != len(m.Columns) {
		return 0, fmt.Errorf("expected %d features, got %d", len(m.Columns), len(x))
	}
	return argmax(m.Forest.Vote(x)), nil
}
