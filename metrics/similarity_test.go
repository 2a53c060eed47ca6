package metrics_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/divintseg/metrics"
)

// TestDissimilarity_Values checks the index of dissimilarity on
// hand-computed rows against a balanced two-group reference.
func TestDissimilarity_Values(t *testing.T) {
	tbl := newTable(t, nil, []string{"A", "B"}, []row{
		{nil, []float64{5, 5}},    // matches the reference exactly
		{nil, []float64{75, 25}},  // shifted by 0.25 per group
		{nil, []float64{10, 0}},   // fully concentrated
		{nil, []float64{0, 0}},    // empty row
	})

	got, err := metrics.Dissimilarity(tbl, map[string]float64{"A": 50, "B": 50})
	require.NoError(t, err)

	want := []float64{0.0, 0.25, 0.5, 0.0}
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], epsMetric, "row %d", i)
	}
}

// TestDissimilarity_Disjoint verifies the maximum: a row sharing no groups
// with the reference scores 1.
func TestDissimilarity_Disjoint(t *testing.T) {
	tbl := newTable(t, nil, []string{"A", "B"}, []row{
		{nil, []float64{10, 0}},
	})

	got, err := metrics.Dissimilarity(tbl, map[string]float64{"A": 0, "B": 7})
	require.NoError(t, err)
	require.InDelta(t, 1.0, got[0], epsMetric)
}

// TestSimilarity_Complement verifies similarity = 1 − dissimilarity.
func TestSimilarity_Complement(t *testing.T) {
	tbl := newTable(t, nil, []string{"A", "B"}, []row{
		{nil, []float64{75, 25}},
	})
	ref, err := metrics.NewSimilarityReference(map[string]float64{"A": 50, "B": 50})
	require.NoError(t, err)

	dis, err := ref.Dissimilarity(tbl)
	require.NoError(t, err)
	sim, err := ref.Similarity(tbl)
	require.NoError(t, err)
	require.Equal(t, 1-dis[0], sim[0])
}

// TestSimilarityReference_Reuse verifies one reference scores several
// tables identically to the one-shot wrappers.
func TestSimilarityReference_Reuse(t *testing.T) {
	counts := map[string]float64{"A": 30, "B": 70}
	ref, err := metrics.NewSimilarityReference(counts)
	require.NoError(t, err)

	tbl := newTable(t, nil, []string{"A", "B"}, []row{
		{nil, []float64{30, 70}},
		{nil, []float64{70, 30}},
	})

	fromRef, err := ref.Dissimilarity(tbl)
	require.NoError(t, err)
	oneShot, err := metrics.Dissimilarity(tbl, counts)
	require.NoError(t, err)
	require.Equal(t, oneShot, fromRef)
	require.InDelta(t, 0.0, fromRef[0], epsMetric)
	require.InDelta(t, 0.4, fromRef[1], epsMetric)
}

// TestSimilarity_Errors verifies eager validation of references and input.
func TestSimilarity_Errors(t *testing.T) {
	tbl := newTable(t, nil, []string{"A", "B", "C"}, []row{
		{nil, []float64{1, 1, 1}},
	})

	_, err := metrics.NewSimilarityReference(map[string]float64{"A": -1})
	if !errors.Is(err, metrics.ErrInvalidCount) {
		t.Errorf("negative reference error = %v; want ErrInvalidCount", err)
	}

	_, err = metrics.NewSimilarityReference(map[string]float64{"A": 0, "B": 0})
	if !errors.Is(err, metrics.ErrEmptyReference) {
		t.Errorf("empty reference error = %v; want ErrEmptyReference", err)
	}

	// Reference lacks the table's C column.
	_, err = metrics.Dissimilarity(tbl, map[string]float64{"A": 1, "B": 1})
	if !errors.Is(err, metrics.ErrMissingGroup) {
		t.Errorf("missing group error = %v; want ErrMissingGroup", err)
	}

	ref, err := metrics.NewSimilarityReference(map[string]float64{"A": 1})
	require.NoError(t, err)
	if _, err = ref.Dissimilarity(nil); !errors.Is(err, metrics.ErrNilTable) {
		t.Errorf("nil table error = %v; want ErrNilTable", err)
	}
}
