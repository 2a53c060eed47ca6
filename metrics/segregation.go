package metrics

import "github.com/katalvlaran/divintseg/table"

// Segregation computes 1 − Integration for each distinct value of
// Options.By, in the same order Integration reports. It is purely derived:
// the complement is taken over the exact integration values, never
// recomputed from raw counts, so Segregation and DI(..., AddSegregation)
// can never drift apart.
//
// Errors: exactly those of Integration.
func Segregation(t *table.Table, opts Options) ([]GroupValue, error) {
	ints, err := Integration(t, opts)
	if err != nil {
		return nil, err
	}

	out := make([]GroupValue, len(ints))
	for i, gv := range ints {
		out[i] = GroupValue{Key: gv.Key, Value: 1 - gv.Value}
	}

	return out, nil
}
