package features

import (
	"github.com/freshkart/reorder/internal/model"
)

// reorderStat accumulates per-product line item counts.
type reorderStat struct {
	reorders int
	total    int
}

func (s reorderStat) rate() float64 {
	return float64(s.reorders) / float64(s.total)
}

// maxOrderNumberByUser groups the orders table by user and keeps the
// maximum order_number, i.e. the user's total order count.
func maxOrderNumberByUser(orders []model.Order) map[int]int {
	totals := make(map[int]int, len(orders))
	for _, o := range orders {
		if o.OrderNumber > totals[o.UserID] {
			totals[o.UserID] = o.OrderNumber
		}
	}
	return totals
}

// reorderStatsByProduct groups the full line item table by product,
// counting line items and summing the reordered flag. A product present
// in the result has total >= 1 by construction.
func reorderStatsByProduct(items []model.LineItem) map[int]reorderStat {
	stats := make(map[int]reorderStat)
	for _, it := range items {
		s := stats[it.ProductID]
		s.total++
		if it.Reordered != 0 {
			s.reorders++
		}
		stats[it.ProductID] = s
	}
	return stats
}

// ordersByID indexes the orders table for the line item join.
func ordersByID(orders []model.Order) map[int]model.Order {
	index := make(map[int]model.Order, len(orders))
	for _, o := range orders {
		index[o.OrderID] = o
	}
	return index
}

// productsByID indexes the products table for the line item join.
func productsByID(products []model.Product) map[int]model.Product {
	index := make(map[int]model.Product, len(products))
	for _, p := range products {
		index[p.ProductID] = p
	}
	return index
}
