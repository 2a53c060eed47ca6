package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/divintseg/metrics"
)

// TestSegregation_Complement verifies S = 1 − I exactly, key by key.
func TestSegregation_Complement(t *testing.T) {
	tbl := newTable(t, []string{"region"}, []string{"A", "B", "C"}, regionRows())

	opts := metrics.DefaultOptions()
	opts.By = "region"

	ints, err := metrics.Integration(tbl, opts)
	require.NoError(t, err)
	segs, err := metrics.Segregation(tbl, opts)
	require.NoError(t, err)

	require.Len(t, segs, len(ints))
	for i := range ints {
		require.Equal(t, ints[i].Key, segs[i].Key)
		// Exact equality: segregation is the complement of the very value
		// integration reported, not an independent recomputation.
		require.Equal(t, 1-ints[i].Value, segs[i].Value, "key %q", ints[i].Key)
	}
}

// TestSegregation_Values pins the fixture values.
func TestSegregation_Values(t *testing.T) {
	tbl := newTable(t, []string{"region"}, []string{"A", "B", "C"}, regionRows())

	opts := metrics.DefaultOptions()
	opts.By = "region"
	got, err := metrics.Segregation(tbl, opts)
	require.NoError(t, err)

	wantByKey(t, got, map[string]float64{
		"X": 1.0 / 3.0,
		"Y": 1.0,
		"Z": 1.0 - 0.03*(2.0/3.0),
	})
}

// TestSegregation_PropagatesErrors confirms Segregation fails exactly when
// Integration does.
func TestSegregation_PropagatesErrors(t *testing.T) {
	tbl := newTable(t, []string{"region"}, []string{"A"}, []row{{[]string{"X"}, []float64{1}}})

	_, err := metrics.Segregation(tbl, metrics.Options{})
	require.ErrorIs(t, err, metrics.ErrMissingBy)
}
