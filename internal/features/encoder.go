package features

import (
	"sort"
)

// UnknownProduct is the sentinel used in place of a missing product name,
// so the encoder never sees an empty value.
const UnknownProduct = "Unknown"

// Encoder maps product names onto a dense integer range.
//
// The mapping is fitted once over the dataset used to build features
// and must be carried unchanged to inference: codes are assigned to the
// sorted vocabulary, so the same input always yields the same code.
type Encoder struct {
	Classes []string `json:"classes"`
	codes   map[string]int
}

// NewEncoder restores an encoder from a fitted vocabulary.
func NewEncoder(classes []string) *Encoder {
	enc := &Encoder{Classes: classes}
	enc.index()
	return enc
}

// Fit builds the vocabulary from the given column of names.
func Fit(names []string) *Encoder {
	seen := make(map[string]struct{}, len(names))
	classes := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			name = UnknownProduct
		}
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			classes = append(classes, name)
		}
	}
	sort.Strings(classes)
	return NewEncoder(classes)
}

func (e *Encoder) index() {
	e.codes = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		e.codes[c] = i
	}
}

// Transform returns the code for the given name.
// The second return is false for names outside the fitted vocabulary.
func (e *Encoder) Transform(name string) (int, bool) {
	if name == "" {
		name = UnknownProduct
	}
	if e.codes == nil {
		e.index()
	}
	code, ok := e.codes[name]
	return code, ok
}

// Len returns the vocabulary size.
func (e *Encoder) Len() int {
	return len(e.Classes)
}
