package model

// Feature column names, in the order they appear in the feature table file.
const (
	ColUserID              = "user_id"
	ColProductID           = "product_id"
	ColProductNameEncoded  = "product_name_encoded"
	ColOrderDow            = "order_dow"
	ColOrderHourOfDay      = "order_hour_of_day"
	ColAddToCartOrder      = "add_to_cart_order"
	ColUserTotalOrders     = "user_total_orders"
	ColProductReorderRate  = "product_reorder_rate"
	ColDaysSincePriorOrder = "days_since_prior_order"
	ColReordered           = "reordered"
)

// FeatureColumns is the full column set of the feature table,
// label last.
var FeatureColumns = []string{
	ColUserID,
	ColProductID,
	ColProductNameEncoded,
	ColOrderDow,
	ColOrderHourOfDay,
	ColAddToCartOrder,
	ColUserTotalOrders,
	ColProductReorderRate,
	ColDaysSincePriorOrder,
	ColReordered,
}

// LiveColumns is the column set the model is fitted on and the only
// set the prediction paths accept. The encoded product name is kept in
// the feature table for offline use but stays out of the live contract.
var LiveColumns = []string{
	ColUserID,
	ColProductID,
	ColOrderDow,
	ColOrderHourOfDay,
	ColAddToCartOrder,
	ColUserTotalOrders,
	ColProductReorderRate,
	ColDaysSincePriorOrder,
}

// FeatureRow is one fully joined, aggregated and cleaned record,
// ready for fitting or prediction.
type FeatureRow struct {
	UserID              int     `json:"user_id"`
	ProductID           int     `json:"product_id"`
	ProductNameEncoded  int     `json:"product_name_encoded"`
	OrderDow            int     `json:"order_dow"`
	OrderHourOfDay      int     `json:"order_hour_of_day"`
	AddToCartOrder      int     `json:"add_to_cart_order"`
	UserTotalOrders     int     `json:"user_total_orders"`
	ProductReorderRate  float64 `json:"product_reorder_rate"`
	DaysSincePriorOrder float64 `json:"days_since_prior_order"`
	Reordered           int     `json:"reordered"`
}

// Vector returns the row's live feature values in LiveColumns order.
func (r FeatureRow) Vector() []float64 {
	return []float64{
		float64(r.UserID),
		float64(r.ProductID),
		float64(r.OrderDow),
		float64(r.OrderHourOfDay),
		float64(r.AddToCartOrder),
		float64(r.UserTotalOrders),
		r.ProductReorderRate,
		r.DaysSincePriorOrder,
	}
}

// Record returns all feature table values in FeatureColumns order,
// label included.
func (r FeatureRow) Record() []float64 {
	return []float64{
		float64(r.UserID),
		float64(r.ProductID),
		float64(r.ProductNameEncoded),
		float64(r.OrderDow),
		float64(r.OrderHourOfDay),
		float64(r.AddToCartOrder),
		float64(r.UserTotalOrders),
		r.ProductReorderRate,
		r.DaysSincePriorOrder,
		float64(r.Reordered),
	}
}
