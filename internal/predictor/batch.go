package predictor

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/freshkart/reorder/internal/metrics"
	"github.com/freshkart/reorder/internal/storage"
)

// PredictionColumn is appended to every scored batch.
const PredictionColumn = "reordered_prediction"

// Summary counts the outcomes of a scored batch.
type Summary struct {
	Total     int `json:"total"`
	Reorder   int `json:"reorder"`
	NoReorder int `json:"no_reorder"`
}

// Batch scores a CSV of orders. The input must contain at least the
// feature columns the model was fitted on; extra columns are echoed
// untouched and the prediction is appended as a new column.
//
// A header missing required columns rejects the whole batch before any
// prediction is attempted.
func (p *Predictor) Batch(r io.Reader, w io.Writer) (Summary, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return Summary{}, fmt.Errorf("empty batch: %w", storage.ErrNoData)
	}
	if err != nil {
		return Summary{}, fmt.Errorf("could not read batch header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	missing := make([]string, 0)
	for _, col := range p.model.Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return Summary{}, &MissingColumnsError{Columns: missing}
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(append(header, PredictionColumn)); err != nil {
		return Summary{}, fmt.Errorf("could not write header: %w", err)
	}

	var summary Summary
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Summary{}, fmt.Errorf("could not read batch row %d: %w", summary.Total+1, err)
		}

		x := make([]float64, 0, len(p.model.Columns))
		for _, col := range p.model.Columns {
			v, err := strconv.ParseFloat(record[index[col]], 64)
			if err != nil {
				return Summary{}, fmt.Errorf("bad value %q for column %q in row %d: %w", record[index[col]], col, summary.Total+1, err)
			}
			x = append(x, v)
		}

		label, err := p.model.Predict(x)
		if err != nil {
			return Summary{}, err
		}
		if err := writer.Write(append(record, strconv.Itoa(label))); err != nil {
			return Summary{}, fmt.Errorf("could not write row: %w", err)
		}

		summary.Total++
		if label == 1 {
			summary.Reorder++
		} else {
			summary.NoReorder++
		}
		metrics.Observer.Prediction("batch", labelName(label))
	}

	log.Info().
		Int("total", summary.Total).
		Int("reorder", summary.Reorder).
		Int("no_reorder", summary.NoReorder).
		Msg("scored batch")
	return summary, nil
}
