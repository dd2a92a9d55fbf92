package predictor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/freshkart/reorder/infra/config"
	"github.com/freshkart/reorder/internal/math/ml"
	"github.com/freshkart/reorder/internal/metrics"
	"github.com/freshkart/reorder/internal/model"
)

// ErrOutOfRange signals a single-record input outside the value ranges
// the model was trained on.
var ErrOutOfRange = errors.New("value out of range")

// MissingColumnsError rejects a batch whose header lacks required
// feature columns, naming the missing ones.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Record is one hand-entered order to score.
type Record struct {
	UserID              int     `json:"user_id"`
	ProductID           int     `json:"product_id"`
	OrderDow            int     `json:"order_dow"`
	OrderHourOfDay      int     `json:"order_hour_of_day"`
	AddToCartOrder      int     `json:"add_to_cart_order"`
	UserTotalOrders     int     `json:"user_total_orders"`
	ProductReorderRate  float64 `json:"product_reorder_rate"`
	DaysSincePriorOrder float64 `json:"days_since_prior_order"`
}

func (r Record) value(col string) (float64, bool) {
	switch col {
	case model.ColUserID:
		return float64(r.UserID), true
	case model.ColProductID:
		return float64(r.ProductID), true
	case model.ColOrderDow:
		return float64(r.OrderDow), true
	case model.ColOrderHourOfDay:
		return float64(r.OrderHourOfDay), true
	case model.ColAddToCartOrder:
		return float64(r.AddToCartOrder), true
	case model.ColUserTotalOrders:
		return float64(r.UserTotalOrders), true
	case model.ColProductReorderRate:
		return r.ProductReorderRate, true
	case model.ColDaysSincePriorOrder:
		return r.DaysSincePriorOrder, true
	}
	return 0, false
}

// Outcome is the result of scoring a single record.
type Outcome struct {
	Predictable bool   `json:"predictable"`
	Reordered   bool   `json:"reordered"`
	Reason      string `json:"reason,omitempty"`
}

// Predictor scores records against a loaded model bundle.
type Predictor struct {
	model  *ml.Model
	bounds config.BoundsConfig
}

func New(m *ml.Model, bounds config.BoundsConfig) *Predictor {
	return &Predictor{
		model:  m,
		bounds: bounds,
	}
}

// Single scores one hand-entered record.
//
// An id beyond the configured ceilings short-circuits to a
// non-predictable outcome without invoking the model; a value outside
// the trained ranges is an input error.
func (p *Predictor) Single(rec Record) (Outcome, error) {
	if rec.UserID > p.bounds.MaxUserID || rec.ProductID > p.bounds.MaxProductID {
		log.Warn().Int("user", rec.UserID).Int("product", rec.ProductID).Msg("id beyond known ceiling")
		metrics.Observer.Prediction("single", "out_of_domain")
		return Outcome{
			Predictable: false,
			Reason:      "unknown user or product, reorder cannot be predicted reliably",
		}, nil
	}
	if err := p.validate(rec); err != nil {
		return Outcome{}, err
	}

	x := make([]float64, 0, len(p.model.Columns))
	for _, col := range p.model.Columns {
		v, ok := rec.value(col)
		if !ok {
			return Outcome{}, fmt.Errorf("model expects unsupported column %q", col)
		}
		x = append(x, v)
	}

	label, err := p.model.Predict(x)
	if err != nil {
		return Outcome{}, err
	}
	outcome := Outcome{Predictable: true, Reordered: label == 1}
	metrics.Observer.Prediction("single", labelName(label))
	return outcome, nil
}

func (p *Predictor) validate(rec Record) error {
	switch {
	case rec.UserID < 1:
		return fmt.Errorf("user_id %d: %w", rec.UserID, ErrOutOfRange)
	case rec.ProductID < 1:
		return fmt.Errorf("product_id %d: %w", rec.ProductID, ErrOutOfRange)
	case rec.OrderDow < 0 || rec.OrderDow > 6:
		return fmt.Errorf("order_dow %d: %w", rec.OrderDow, ErrOutOfRange)
	case rec.OrderHourOfDay < 0 || rec.OrderHourOfDay > 23:
		return fmt.Errorf("order_hour_of_day %d: %w", rec.OrderHourOfDay, ErrOutOfRange)
	case rec.AddToCartOrder < 1:
		return fmt.Errorf("add_to_cart_order %d: %w", rec.AddToCartOrder, ErrOutOfRange)
	case rec.UserTotalOrders < 1:
		return fmt.Errorf("user_total_orders %d: %w", rec.UserTotalOrders, ErrOutOfRange)
	case rec.ProductReorderRate < 0 || rec.ProductReorderRate > 1:
		return fmt.Errorf("product_reorder_rate %v: %w", rec.ProductReorderRate, ErrOutOfRange)
	case rec.DaysSincePriorOrder < 0 || rec.DaysSincePriorOrder > p.bounds.MaxDaysSincePrior:
		return fmt.Errorf("days_since_prior_order %v: %w", rec.DaysSincePriorOrder, ErrOutOfRange)
	}
	return nil
}

func labelName(label int) string {
	if label == 1 {
		return "reorder"
	}
	return "no_reorder"
}
