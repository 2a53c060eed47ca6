package metrics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/divintseg/table"
)

// gini computes the Gini–Simpson index D = Σ p(1-p) of one count vector
// and its total population. A zero total yields (0, 0); callers apply
// their ZeroPolicy on top.
func gini(counts []float64) (d, total float64) {
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0, 0
	}

	var p float64
	for _, c := range counts {
		p = c / total
		d += p * (1 - p)
	}

	return d, total
}

// zeroScore maps an empty community to its policy-dependent score.
// key annotates the ZeroStrict error with the offending community.
func zeroScore(policy ZeroPolicy, key string) (float64, error) {
	switch policy {
	case ZeroAsNaN:
		return math.NaN(), nil
	case ZeroStrict:
		return 0, fmt.Errorf("%w: %q", ErrZeroPopulation, key)
	default:
		return 0, nil
	}
}

// Diversity computes the Gini–Simpson index of a single community given
// its raw group counts: the probability that two independently drawn
// members belong to different groups.
//
// The result is in [0, 1]: 0 when a single group holds the whole
// population, (k-1)/k for an even split across k groups. A community with
// zero total population scores 0.
//
// Errors:
//   - ErrInvalidCount — a count is negative, NaN, or infinite.
func Diversity(counts []float64) (float64, error) {
	for i, c := range counts {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return 0, fmt.Errorf("%w: index %d has %v", ErrInvalidCount, i, c)
		}
	}

	d, _ := gini(counts)

	return d, nil
}

// DiversityTable computes the Gini–Simpson index of every row of t
// independently, in row order. Options.GroupColumns selects the columns to
// treat as groups (empty = all group columns); Options.By and Options.Over
// are ignored. Zero-population rows score per Options.ZeroPolicy.
//
// Errors:
//   - ErrNilTable, ErrBadPolicy — malformed call.
//   - table.ErrUnknownColumn — GroupColumns names no such group column.
//   - ErrZeroPopulation — an empty row under ZeroStrict.
func DiversityTable(t *table.Table, opts Options) ([]float64, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if err := opts.ZeroPolicy.validate(); err != nil {
		return nil, err
	}
	gIdx, err := t.GroupIndices(opts.GroupColumns)
	if err != nil {
		return nil, err
	}

	out := make([]float64, t.Len())
	counts := make([]float64, len(gIdx))
	for i := 0; i < t.Len(); i++ {
		for j, gi := range gIdx {
			counts[j] = t.CountAt(i, gi)
		}
		d, total := gini(counts)
		if total == 0 {
			if d, err = zeroScore(opts.ZeroPolicy, fmt.Sprintf("row %d", i)); err != nil {
				return nil, err
			}
		}
		out[i] = d
	}

	return out, nil
}
