package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/freshkart/reorder/internal/model"
	"github.com/freshkart/reorder/internal/predictor"
)

// Predict scores one hand-entered order posted as json.
func Predict(p *predictor.Predictor, debug bool) Route {
	return Route{
		Action: Api,
		Path:   "predict",
		Method: POST,
		Exec: func(r *http.Request) ([]byte, int, error) {
			var rec predictor.Record
			if err := JsonRead(r, debug, &rec); err != nil {
				return nil, http.StatusBadRequest, err
			}
			outcome, err := p.Single(rec)
			if err != nil {
				if errors.Is(err, predictor.ErrOutOfRange) {
					return nil, http.StatusBadRequest, err
				}
				return nil, http.StatusInternalServerError, err
			}
			b, err := json.Marshal(outcome)
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return b, http.StatusOK, nil
		},
	}
}

// Batch scores a csv of orders posted as the request body and returns
// the csv with the prediction column appended.
func Batch(p *predictor.Predictor) Route {
	return Route{
		Action: Api,
		Path:   "batch",
		Method: POST,
		Exec: func(r *http.Request) ([]byte, int, error) {
			var out bytes.Buffer
			_, err := p.Batch(r.Body, &out)
			if err != nil {
				var missing *predictor.MissingColumnsError
				if errors.As(err, &missing) {
					return nil, http.StatusBadRequest, missing
				}
				return nil, http.StatusBadRequest, err
			}
			return out.Bytes(), http.StatusOK, nil
		},
	}
}

// Products serves the id to name pairs the dashboard offers for selection.
func Products(products []model.Product) Route {
	return Route{
		Action: Data,
		Path:   "products",
		Method: GET,
		Exec: func(r *http.Request) ([]byte, int, error) {
			b, err := json.Marshal(products)
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return b, http.StatusOK, nil
		},
	}
}
