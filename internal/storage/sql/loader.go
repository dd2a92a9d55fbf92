package sql

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	// driver for the sqlite snapshot database
	_ "github.com/mattn/go-sqlite3"

	"github.com/freshkart/reorder/internal/metrics"
	"github.com/freshkart/reorder/internal/model"
)

// Loader reads whole tables from a relational snapshot into memory.
//
// Reads never fail past the loader boundary: any error is logged and
// degrades to an empty result. Callers must treat an empty table as
// "pipeline cannot proceed".
type Loader struct {
	driverName     string
	dataSourceName string
	db             *sql.DB
}

// Open parses a datasource string of the form driver://dsn and opens
// the database it points at.
func Open(datasource string) (*Loader, error) {
	dses := strings.Split(datasource, "://")
	if len(dses) != 2 {
		return nil, fmt.Errorf("expecting but cannot find :// in datasource %v", datasource)
	}
	loader := &Loader{driverName: dses[0], dataSourceName: dses[1]}

	switch loader.driverName {
	case "sqlite3", "mysql":
		db, err := sql.Open(loader.driverName, loader.dataSourceName)
		if err != nil {
			return nil, fmt.Errorf("could not open %s datasource: %w", loader.driverName, err)
		}
		loader.db = db
	default:
		return nil, fmt.Errorf("unsupported datasource driver %v", loader.driverName)
	}
	return loader, nil
}

// Close releases the underlying connection.
func (l *Loader) Close() error {
	return l.db.Close()
}

// Orders loads the full contents of the given orders table.
func (l *Loader) Orders(table string) []model.Order {
	rows, err := l.db.Query(fmt.Sprintf("SELECT order_id, user_id, order_number, order_dow, order_hour_of_day, days_since_prior_order FROM %s", table))
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("could not load table")
		return []model.Order{}
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		var days sql.NullFloat64
		if err := rows.Scan(&o.OrderID, &o.UserID, &o.OrderNumber, &o.OrderDow, &o.OrderHourOfDay, &days); err != nil {
			log.Error().Err(err).Str("table", table).Msg("could not scan row")
			return []model.Order{}
		}
		if days.Valid {
			v := days.Float64
			o.DaysSincePriorOrder = &v
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		log.Error().Err(err).Str("table", table).Msg("could not read all rows")
		return []model.Order{}
	}
	log.Info().Str("table", table).Int("rows", len(orders)).Msg("loaded table")
	metrics.Observer.Rows(table, len(orders))
	return orders
}

// Products loads the full contents of the given products table.
func (l *Loader) Products(table string) []model.Product {
	rows, err := l.db.Query(fmt.Sprintf("SELECT product_id, product_name, aisle_id, department_id FROM %s", table))
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("could not load table")
		return []model.Product{}
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		var name sql.NullString
		if err := rows.Scan(&p.ProductID, &name, &p.AisleID, &p.DepartmentID); err != nil {
			log.Error().Err(err).Str("table", table).Msg("could not scan row")
			return []model.Product{}
		}
		p.ProductName = name.String
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Error().Err(err).Str("table", table).Msg("could not read all rows")
		return []model.Product{}
	}
	log.Info().Str("table", table).Int("rows", len(products)).Msg("loaded table")
	metrics.Observer.Rows(table, len(products))
	return products
}

// LineItems loads the full contents of the given order products table.
func (l *Loader) LineItems(table string) []model.LineItem {
	rows, err := l.db.Query(fmt.Sprintf("SELECT order_id, product_id, add_to_cart_order, reordered FROM %s", table))
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("could not load table")
		return []model.LineItem{}
	}
	defer rows.Close()

	items := make([]model.LineItem, 0)
	for rows.Next() {
		var it model.LineItem
		if err := rows.Scan(&it.OrderID, &it.ProductID, &it.AddToCartOrder, &it.Reordered); err != nil {
			log.Error().Err(err).Str("table", table).Msg("could not scan row")
			return []model.LineItem{}
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		log.Error().Err(err).Str("table", table).Msg("could not read all rows")
		return []model.LineItem{}
	}
	log.Info().Str("table", table).Int("rows", len(items)).Msg("loaded table")
	metrics.Observer.Rows(table, len(items))
	return items
}
