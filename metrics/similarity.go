package metrics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/divintseg/table"
)

// SimilarityReference holds the precomputed population fractions of a
// reference community, for repeated dissimilarity/similarity scoring of
// tables against it. Build once, score many.
type SimilarityReference struct {
	fractions map[string]float64
}

// NewSimilarityReference builds a reference from group name → count.
//
// Errors:
//   - ErrInvalidCount — a count is negative, NaN, or infinite.
//   - ErrEmptyReference — the counts sum to zero.
func NewSimilarityReference(counts map[string]float64) (*SimilarityReference, error) {
	var total float64
	for name, c := range counts {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return nil, fmt.Errorf("%w: group %q has %v", ErrInvalidCount, name, c)
		}
		total += c
	}
	if total == 0 {
		return nil, ErrEmptyReference
	}

	fr := make(map[string]float64, len(counts))
	for name, c := range counts {
		fr[name] = c / total
	}

	return &SimilarityReference{fractions: fr}, nil
}

// Dissimilarity computes the index of dissimilarity of every row of t
// against the reference, in row order: half the total absolute difference
// between the row's group fractions and the reference's,
// 0.5·Σᵢ |pᵢ − refᵢ|, matched by group column name.
//
// The index is in [0, 1]: 0 when the row's composition matches the
// reference exactly, 1 when the two share no groups at all. Rows with zero
// population score 0.
//
// Errors:
//   - ErrNilTable — t is nil.
//   - ErrMissingGroup — a group column of t is absent from the reference.
func (r *SimilarityReference) Dissimilarity(t *table.Table) ([]float64, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	names := t.GroupColumns()
	refs := make([]float64, len(names))
	for i, name := range names {
		f, ok := r.fractions[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingGroup, name)
		}
		refs[i] = f
	}

	gIdx, err := t.GroupIndices(nil)
	if err != nil {
		return nil, err
	}

	out := make([]float64, t.Len())
	for i := 0; i < t.Len(); i++ {
		var total float64
		for _, gi := range gIdx {
			total += t.CountAt(i, gi)
		}
		if total == 0 {
			continue // empty row: nothing to compare, scores 0
		}

		var sum float64
		for j, gi := range gIdx {
			sum += math.Abs(t.CountAt(i, gi)/total - refs[j])
		}
		out[i] = 0.5 * sum
	}

	return out, nil
}

// Similarity computes 1 − Dissimilarity for every row of t, in row order.
func (r *SimilarityReference) Similarity(t *table.Table) ([]float64, error) {
	dis, err := r.Dissimilarity(t)
	if err != nil {
		return nil, err
	}

	for i := range dis {
		dis[i] = 1 - dis[i]
	}

	return dis, nil
}

// Dissimilarity scores every row of t against a one-shot reference given
// as group name → count. For repeated scoring against the same reference,
// build a SimilarityReference once instead.
func Dissimilarity(t *table.Table, reference map[string]float64) ([]float64, error) {
	ref, err := NewSimilarityReference(reference)
	if err != nil {
		return nil, err
	}

	return ref.Dissimilarity(t)
}

// Similarity is the complement wrapper of Dissimilarity.
func Similarity(t *table.Table, reference map[string]float64) ([]float64, error) {
	ref, err := NewSimilarityReference(reference)
	if err != nil {
		return nil, err
	}

	return ref.Similarity(t)
}
