package features

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/freshkart/reorder/internal/model"
	"github.com/freshkart/reorder/internal/storage"
)

// WriteCSV persists the feature table as a flat delimited file with a
// header row, label last.
func WriteCSV(path string, rows []model.FeatureRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create feature file '%s': %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(model.FeatureColumns); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.UserID),
			strconv.Itoa(r.ProductID),
			strconv.Itoa(r.ProductNameEncoded),
			strconv.Itoa(r.OrderDow),
			strconv.Itoa(r.OrderHourOfDay),
			strconv.Itoa(r.AddToCartOrder),
			strconv.Itoa(r.UserTotalOrders),
			strconv.FormatFloat(r.ProductReorderRate, 'f', -1, 64),
			strconv.FormatFloat(r.DaysSincePriorOrder, 'f', -1, 64),
			strconv.Itoa(r.Reordered),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("could not write row: %w", err)
		}
	}
	return nil
}

// ReadCSV loads a feature table previously written with WriteCSV.
func ReadCSV(path string) ([]model.FeatureRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open feature file '%s': %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read feature file '%s': %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("feature file '%s' has no header: %w", path, storage.ErrNoData)
	}

	header := records[0]
	if len(header) != len(model.FeatureColumns) {
		return nil, fmt.Errorf("unexpected header %v in '%s'", header, path)
	}
	for i, col := range model.FeatureColumns {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected column %q at position %d in '%s'", header[i], i, path)
		}
	}

	rows := make([]model.FeatureRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("bad row %v in '%s': %w", record, path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(record []string) (model.FeatureRow, error) {
	var row model.FeatureRow
	ints := []*int{
		&row.UserID, &row.ProductID, &row.ProductNameEncoded,
		&row.OrderDow, &row.OrderHourOfDay, &row.AddToCartOrder,
		&row.UserTotalOrders,
	}
	for i, dst := range ints {
		v, err := strconv.Atoi(record[i])
		if err != nil {
			return row, err
		}
		*dst = v
	}
	rate, err := strconv.ParseFloat(record[7], 64)
	if err != nil {
		return row, err
	}
	row.ProductReorderRate = rate
	days, err := strconv.ParseFloat(record[8], 64)
	if err != nil {
		return row, err
	}
	row.DaysSincePriorOrder = days
	label, err := strconv.Atoi(record[9])
	if err != nil {
		return row, err
	}
	row.Reordered = label
	return row, nil
}
