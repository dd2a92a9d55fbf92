package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoader(t *testing.T) *Loader {
	t.Helper()
	loader, err := Open("sqlite3://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { loader.Close() })

	// an in-memory sqlite exists per connection
	loader.db.SetMaxOpenConns(1)

	statements := []string{
		`CREATE TABLE orders (order_id INTEGER, user_id INTEGER, order_number INTEGER, order_dow INTEGER, order_hour_of_day INTEGER, days_since_prior_order REAL)`,
		`CREATE TABLE products (product_id INTEGER, product_name TEXT, aisle_id INTEGER, department_id INTEGER)`,
		`CREATE TABLE order_products__train (order_id INTEGER, product_id INTEGER, add_to_cart_order INTEGER, reordered INTEGER)`,
		`INSERT INTO orders VALUES (1, 1, 1, 2, 10, NULL)`,
		`INSERT INTO orders VALUES (2, 1, 2, 4, 16, 7.0)`,
		`INSERT INTO products VALUES (7, 'Bananas', 24, 4)`,
		`INSERT INTO products VALUES (8, NULL, 24, 4)`,
		`INSERT INTO order_products__train VALUES (1, 7, 1, 0)`,
		`INSERT INTO order_products__train VALUES (2, 7, 1, 1)`,
	}
	for _, stmt := range statements {
		_, err := loader.db.Exec(stmt)
		require.NoError(t, err)
	}
	return loader
}

func TestOpen(t *testing.T) {
	type test struct {
		datasource string
		err        bool
	}

	tests := map[string]test{
		"sqlite":        {datasource: "sqlite3://:memory:"},
		"no-separator":  {datasource: "instacart.db", err: true},
		"unknown-driver": {datasource: "oracle://somewhere", err: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			loader, err := Open(tt.datasource)
			if tt.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				loader.Close()
			}
		})
	}
}

func TestLoader_Orders(t *testing.T) {
	loader := testLoader(t)

	orders := loader.Orders("orders")
	require.Equal(t, 2, len(orders))

	assert.Equal(t, 1, orders[0].OrderID)
	assert.Nil(t, orders[0].DaysSincePriorOrder)

	require.NotNil(t, orders[1].DaysSincePriorOrder)
	assert.Equal(t, 7.0, *orders[1].DaysSincePriorOrder)
}

func TestLoader_Products(t *testing.T) {
	loader := testLoader(t)

	products := loader.Products("products")
	require.Equal(t, 2, len(products))
	assert.Equal(t, "Bananas", products[0].ProductName)
	// a null name degrades to the empty string for the pipeline to fill
	assert.Equal(t, "", products[1].ProductName)
}

func TestLoader_LineItems(t *testing.T) {
	loader := testLoader(t)

	items := loader.LineItems("order_products__train")
	require.Equal(t, 2, len(items))
	assert.Equal(t, 0, items[0].Reordered)
	assert.Equal(t, 1, items[1].Reordered)
}

func TestLoader_MissingTableDegradesToEmpty(t *testing.T) {
	loader := testLoader(t)

	assert.Empty(t, loader.Orders("no_such_table"))
	assert.Empty(t, loader.Products("no_such_table"))
	assert.Empty(t, loader.LineItems("no_such_table"))
}
