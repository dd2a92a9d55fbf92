package predictor

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/reorder/internal/math/ml"
	"github.com/freshkart/reorder/internal/model"
)

func TestBatch_MissingColumns(t *testing.T) {
	p := New(&ml.Model{Columns: model.LiveColumns}, bounds())

	// order_dow column is absent
	in := strings.NewReader(
		"user_id,product_id,order_hour_of_day,add_to_cart_order,user_total_orders,product_reorder_rate,days_since_prior_order\n" +
			"1,7,10,1,5,0.9,7\n")
	var out bytes.Buffer

	_, err := p.Batch(in, &out)
	require.Error(t, err)

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"order_dow"}, missing.Columns)
	assert.Contains(t, err.Error(), "order_dow")

	// zero predictions produced
	assert.Equal(t, 0, out.Len())
}

func TestBatch_Predicts(t *testing.T) {
	p := New(fittedModel(t), bounds())

	in := strings.NewReader(
		"note,user_id,product_id,order_dow,order_hour_of_day,add_to_cart_order,user_total_orders,product_reorder_rate,days_since_prior_order\n" +
			"likely,1,7,2,10,1,5,0.9,7\n" +
			"unlikely,2,8,4,16,2,3,0.1,3\n")
	var out bytes.Buffer

	summary, err := p.Batch(in, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Reorder)
	assert.Equal(t, 1, summary.NoReorder)

	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Equal(t, 3, len(records))

	// input columns are echoed, prediction appended
	assert.Equal(t, "note", records[0][0])
	assert.Equal(t, PredictionColumn, records[0][len(records[0])-1])
	assert.Equal(t, "likely", records[1][0])
	assert.Equal(t, "1", records[1][len(records[1])-1])
	assert.Equal(t, "0", records[2][len(records[2])-1])
}

func TestBatch_Empty(t *testing.T) {
	p := New(&ml.Model{Columns: model.LiveColumns}, bounds())

	var out bytes.Buffer
	_, err := p.Batch(strings.NewReader(""), &out)
	assert.Error(t, err)
}

func TestBatch_BadValue(t *testing.T) {
	p := New(fittedModel(t), bounds())

	in := strings.NewReader(
		"user_id,product_id,order_dow,order_hour_of_day,add_to_cart_order,user_total_orders,product_reorder_rate,days_since_prior_order\n" +
			"1,7,two,10,1,5,0.9,7\n")
	var out bytes.Buffer

	_, err := p.Batch(in, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order_dow")
}
