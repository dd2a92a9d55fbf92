package model

// Order is one row of the orders table.
// DaysSincePriorOrder is nil for a user's first order.
type Order struct {
	OrderID             int      `json:"order_id"`
	UserID              int      `json:"user_id"`
	OrderNumber         int      `json:"order_number"`
	OrderDow            int      `json:"order_dow"`
	OrderHourOfDay      int      `json:"order_hour_of_day"`
	DaysSincePriorOrder *float64 `json:"days_since_prior_order"`
}

// Product is one row of the products table.
type Product struct {
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name"`
	AisleID      int    `json:"aisle_id"`
	DepartmentID int    `json:"department_id"`
}

// LineItem is one (order, product) pairing with its cart position
// and reorder flag.
type LineItem struct {
	OrderID        int `json:"order_id"`
	ProductID      int `json:"product_id"`
	AddToCartOrder int `json:"add_to_cart_order"`
	Reordered      int `json:"reordered"`
}
