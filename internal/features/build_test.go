package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freshkart/reorder/internal/model"
)

func days(v float64) *float64 {
	return &v
}

func TestBuild_SingleFirstOrder(t *testing.T) {
	orders := []model.Order{
		{OrderID: 1, UserID: 1, OrderNumber: 1, OrderDow: 2, OrderHourOfDay: 10, DaysSincePriorOrder: nil},
	}
	products := []model.Product{
		{ProductID: 7, ProductName: "Bananas"},
	}
	items := []model.LineItem{
		{OrderID: 1, ProductID: 7, AddToCartOrder: 1, Reordered: 0},
	}

	rows, encoder := Build(orders, products, items)

	assert.Equal(t, 1, len(rows))
	row := rows[0]
	assert.Equal(t, 1, row.UserID)
	assert.Equal(t, 7, row.ProductID)
	assert.Equal(t, 1, row.UserTotalOrders)
	assert.Equal(t, 0.0, row.DaysSincePriorOrder)
	assert.Equal(t, 0.0, row.ProductReorderRate)
	assert.Equal(t, 0, row.Reordered)
	assert.Equal(t, 2, row.OrderDow)
	assert.Equal(t, 10, row.OrderHourOfDay)
	assert.Equal(t, 1, row.AddToCartOrder)

	code, ok := encoder.Transform("Bananas")
	assert.True(t, ok)
	assert.Equal(t, code, row.ProductNameEncoded)
}

func TestBuild_UnknownReferencesAreDropped(t *testing.T) {
	type test struct {
		orders   []model.Order
		products []model.Product
		items    []model.LineItem
		expect   int
	}

	tests := map[string]test{
		"unknown-product": {
			orders:   []model.Order{{OrderID: 1, UserID: 1, OrderNumber: 1}},
			products: []model.Product{{ProductID: 7, ProductName: "Bananas"}},
			items: []model.LineItem{
				{OrderID: 1, ProductID: 7, AddToCartOrder: 1},
				{OrderID: 1, ProductID: 99, AddToCartOrder: 2},
			},
			expect: 1,
		},
		"unknown-order": {
			orders:   []model.Order{{OrderID: 1, UserID: 1, OrderNumber: 1}},
			products: []model.Product{{ProductID: 7, ProductName: "Bananas"}},
			items: []model.LineItem{
				{OrderID: 1, ProductID: 7, AddToCartOrder: 1},
				{OrderID: 2, ProductID: 7, AddToCartOrder: 1},
			},
			expect: 1,
		},
		"all-unknown": {
			orders:   []model.Order{{OrderID: 1, UserID: 1, OrderNumber: 1}},
			products: []model.Product{{ProductID: 7, ProductName: "Bananas"}},
			items: []model.LineItem{
				{OrderID: 5, ProductID: 99, AddToCartOrder: 1},
			},
			expect: 0,
		},
		"empty-inputs": {
			orders:   []model.Order{},
			products: []model.Product{},
			items:    []model.LineItem{},
			expect:   0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rows, _ := Build(tt.orders, tt.products, tt.items)
			assert.Equal(t, tt.expect, len(rows))
			for _, row := range rows {
				assert.Equal(t, 1, row.UserID)
				assert.Equal(t, 7, row.ProductID)
			}
		})
	}
}

func TestBuild_UserTotalOrders(t *testing.T) {
	orders := []model.Order{
		{OrderID: 1, UserID: 1, OrderNumber: 1, DaysSincePriorOrder: nil},
		{OrderID: 2, UserID: 1, OrderNumber: 2, DaysSincePriorOrder: days(3)},
		{OrderID: 3, UserID: 1, OrderNumber: 5, DaysSincePriorOrder: days(7)},
		{OrderID: 4, UserID: 2, OrderNumber: 1, DaysSincePriorOrder: nil},
	}
	products := []model.Product{
		{ProductID: 7, ProductName: "Bananas"},
	}
	items := []model.LineItem{
		{OrderID: 1, ProductID: 7, AddToCartOrder: 1, Reordered: 0},
		{OrderID: 3, ProductID: 7, AddToCartOrder: 2, Reordered: 1},
		{OrderID: 4, ProductID: 7, AddToCartOrder: 1, Reordered: 0},
	}

	rows, _ := Build(orders, products, items)

	assert.Equal(t, 3, len(rows))
	for _, row := range rows {
		if row.UserID == 1 {
			assert.Equal(t, 5, row.UserTotalOrders)
		} else {
			assert.Equal(t, 1, row.UserTotalOrders)
		}
	}
}

func TestBuild_ProductReorderRate(t *testing.T) {
	orders := []model.Order{
		{OrderID: 1, UserID: 1, OrderNumber: 1},
		{OrderID: 2, UserID: 2, OrderNumber: 1},
		{OrderID: 3, UserID: 3, OrderNumber: 1},
		{OrderID: 4, UserID: 4, OrderNumber: 1},
	}
	products := []model.Product{
		{ProductID: 7, ProductName: "Bananas"},
		{ProductID: 8, ProductName: "Avocado"},
	}
	items := []model.LineItem{
		{OrderID: 1, ProductID: 7, AddToCartOrder: 1, Reordered: 1},
		{OrderID: 2, ProductID: 7, AddToCartOrder: 1, Reordered: 0},
		{OrderID: 3, ProductID: 7, AddToCartOrder: 1, Reordered: 1},
		{OrderID: 4, ProductID: 7, AddToCartOrder: 1, Reordered: 1},
		{OrderID: 1, ProductID: 8, AddToCartOrder: 2, Reordered: 0},
	}

	rows, _ := Build(orders, products, items)

	assert.Equal(t, 5, len(rows))
	for _, row := range rows {
		assert.True(t, row.ProductReorderRate >= 0 && row.ProductReorderRate <= 1)
		switch row.ProductID {
		case 7:
			assert.Equal(t, 0.75, row.ProductReorderRate)
		case 8:
			assert.Equal(t, 0.0, row.ProductReorderRate)
		}
	}
}

func TestFillDays_Idempotent(t *testing.T) {
	assert.Equal(t, 0.0, FillDays(nil))

	once := FillDays(nil)
	twice := FillDays(&once)
	assert.Equal(t, once, twice)

	v := 7.0
	filled := FillDays(&v)
	assert.Equal(t, 7.0, filled)
	assert.Equal(t, filled, FillDays(&filled))
}
