package metrics

import (
	"github.com/katalvlaran/divintseg/table"
)

// DI computes the combined diversity/integration report of a table:
// one row per distinct value of Options.By, in first-appearance order,
// holding
//
//   - Diversity   — the Gini–Simpson index of the community's pooled
//     counts (all its rows summed per group, then scored as one
//     community),
//   - Integration — the population-weighted average diversity of its
//     inner units (see Integration),
//   - Segregation — 1 − Integration, populated only when
//     Options.AddSegregation is set and derived from the same integration
//     values reported here.
//
// Errors:
//   - ErrNilTable, ErrMissingBy, ErrSameByOver, ErrBadPolicy — malformed call.
//   - table.ErrUnknownColumn — By, Over, or GroupColumns name no such column.
//   - ErrZeroPopulation — an entirely empty community under ZeroStrict.
func DI(t *table.Table, opts Options) (*DIResult, error) {
	if err := validateGrouping(t, opts); err != nil {
		return nil, err
	}

	// Pool every community's counts across all its rows, Over included.
	pooled, err := t.SumBy(opts.By, opts.GroupColumns)
	if err != nil {
		return nil, err
	}

	ints, err := Integration(t, opts)
	if err != nil {
		return nil, err
	}

	// Both folds key by first appearance of By, so they align index-wise.
	res := &DIResult{
		rows:           make([]DIRow, len(pooled)),
		index:          make(map[string]int, len(pooled)),
		hasSegregation: opts.AddSegregation,
	}
	for i, g := range pooled {
		d, total := gini(g.Sums)
		if total == 0 {
			if d, err = zeroScore(opts.ZeroPolicy, g.Key); err != nil {
				return nil, err
			}
		}

		row := DIRow{Key: g.Key, Diversity: d, Integration: ints[i].Value}
		if opts.AddSegregation {
			row.Segregation = 1 - row.Integration
		}
		res.rows[i] = row
		res.index[g.Key] = i
	}

	return res, nil
}
