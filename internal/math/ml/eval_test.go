package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	train, test := Split(100, 0.8, 42)

	assert.Equal(t, 80, len(train))
	assert.Equal(t, 20, len(test))

	seen := make(map[int]struct{})
	for _, idx := range append(append([]int{}, train...), test...) {
		_, dup := seen[idx]
		assert.False(t, dup)
		seen[idx] = struct{}{}
	}
	assert.Equal(t, 100, len(seen))

	// same seed, same partitions
	train2, test2 := Split(100, 0.8, 42)
	assert.Equal(t, train, train2)
	assert.Equal(t, test, test2)

	// different seed, different shuffle
	train3, _ := Split(100, 0.8, 7)
	assert.NotEqual(t, train, train3)
}

func TestConfusionMatrix(t *testing.T) {
	actual := []int{1, 1, 1, 0, 0, 0, 0, 1}
	predicted := []int{1, 1, 0, 0, 0, 1, 0, 1}

	cm := Confusion(actual, predicted)

	assert.Equal(t, 3, cm.Counts[0][0])
	assert.Equal(t, 1, cm.Counts[0][1])
	assert.Equal(t, 1, cm.Counts[1][0])
	assert.Equal(t, 3, cm.Counts[1][1])
	assert.Equal(t, 0.75, cm.Accuracy())
}

func TestClassificationReport(t *testing.T) {
	actual := []int{1, 1, 1, 1, 0, 0, 0, 0, 0, 0}
	predicted := []int{1, 1, 0, 0, 0, 0, 0, 0, 0, 1}

	report := Confusion(actual, predicted).Classification()

	assert.Equal(t, 2, len(report.Classes))

	notReordered := report.Classes[0]
	assert.Equal(t, "Not Reordered", notReordered.Label)
	assert.Equal(t, 6, notReordered.Support)
	assert.InDelta(t, 5.0/7.0, notReordered.Precision, 1e-9)
	assert.InDelta(t, 5.0/6.0, notReordered.Recall, 1e-9)

	reordered := report.Classes[1]
	assert.Equal(t, "Reordered", reordered.Label)
	assert.Equal(t, 4, reordered.Support)
	assert.InDelta(t, 2.0/3.0, reordered.Precision, 1e-9)
	assert.InDelta(t, 0.5, reordered.Recall, 1e-9)

	assert.Equal(t, 0.7, report.Accuracy)
	assert.Contains(t, report.String(), "Reordered")
}

func TestConfusionMatrix_Empty(t *testing.T) {
	cm := Confusion(nil, nil)
	assert.Equal(t, 0.0, cm.Accuracy())
}
