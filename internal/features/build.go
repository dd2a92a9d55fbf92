package features

import (
	"github.com/rs/zerolog/log"

	"github.com/freshkart/reorder/internal/metrics"
	"github.com/freshkart/reorder/internal/model"
)

// joined is one line item with its order and product attributes
// attached. The ok flags stand in for the nulls of a left join.
type joined struct {
	item       model.LineItem
	order      model.Order
	hasOrder   bool
	product    model.Product
	hasProduct bool
}

// Build turns the three raw tables into the feature row set.
//
// The pipeline is a fixed sequence: left-join line items with products
// and orders, filter unknown references, aggregate per-user and
// per-product statistics, fill missing values, encode the product name
// and project onto the final column set. The result may be empty if the
// inputs are empty or every row fails the join and filter chain; callers
// must abort training in that case rather than fit on nothing.
func Build(orders []model.Order, products []model.Product, items []model.LineItem) ([]model.FeatureRow, *Encoder) {
	orderIndex := ordersByID(orders)
	productIndex := productsByID(products)

	// left joins keep every line item, attaching what matches
	rows := make([]joined, 0, len(items))
	for _, it := range items {
		j := joined{item: it}
		j.order, j.hasOrder = orderIndex[it.OrderID]
		j.product, j.hasProduct = productIndex[it.ProductID]
		rows = append(rows, j)
	}

	// guard against stale or corrupt references
	kept := rows[:0]
	dropped := 0
	for _, j := range rows {
		if !j.hasOrder || !j.hasProduct {
			dropped++
			continue
		}
		kept = append(kept, j)
	}
	if dropped > 0 {
		log.Warn().Int("rows", dropped).Msg("dropped line items with unknown user or product")
	}

	userTotals := maxOrderNumberByUser(orders)
	productStats := reorderStatsByProduct(items)

	// the encoder is fitted once over the filled name column
	names := make([]string, len(kept))
	for i, j := range kept {
		names[i] = j.product.ProductName
	}
	encoder := Fit(names)

	features := make([]model.FeatureRow, 0, len(kept))
	incomplete := 0
	for _, j := range kept {
		stat, ok := productStats[j.item.ProductID]
		code, known := encoder.Transform(j.product.ProductName)
		total, hasUser := userTotals[j.order.UserID]
		if !ok || !known || !hasUser {
			// the final null drop
			incomplete++
			continue
		}

		days := FillDays(j.order.DaysSincePriorOrder)

		features = append(features, model.FeatureRow{
			UserID:              j.order.UserID,
			ProductID:           j.item.ProductID,
			ProductNameEncoded:  code,
			OrderDow:            j.order.OrderDow,
			OrderHourOfDay:      j.order.OrderHourOfDay,
			AddToCartOrder:      j.item.AddToCartOrder,
			UserTotalOrders:     total,
			ProductReorderRate:  stat.rate(),
			DaysSincePriorOrder: days,
			Reordered:           j.item.Reordered,
		})
	}
	if incomplete > 0 {
		log.Warn().Int("rows", incomplete).Msg("dropped incomplete feature rows")
	}

	log.Info().
		Int("line_items", len(items)).
		Int("features", len(features)).
		Int("vocabulary", encoder.Len()).
		Msg("built feature rows")
	metrics.Observer.Rows("features", len(features))

	return features, encoder
}

// FillDays replaces a missing days_since_prior_order with 0. First
// orders have no prior gap; treating the gap as 0 keeps first-order
// records in the dataset. Applying the fill twice is a no-op.
func FillDays(days *float64) float64 {
	if days == nil {
		return 0
	}
	return *days
}
