package metrics

import (
	"github.com/katalvlaran/divintseg/table"
)

// validateGrouping checks the shared preconditions of the grouped
// operations (Integration, Segregation, DI, Isolation).
func validateGrouping(t *table.Table, opts Options) error {
	if t == nil {
		return ErrNilTable
	}
	if err := opts.ZeroPolicy.validate(); err != nil {
		return err
	}
	if opts.By == "" {
		return ErrMissingBy
	}
	if opts.Over != "" && opts.Over == opts.By {
		return ErrSameByOver
	}

	return nil
}

// integrationOf folds one outer group's inner pools into its integration
// value. Empty inner units weigh 0 and are skipped before their diversity
// is ever consulted; an entirely empty group scores per policy.
func integrationOf(g table.NestedGroup, policy ZeroPolicy) (float64, error) {
	var groupTotal float64
	totals := make([]float64, len(g.Inner))
	for j, inner := range g.Inner {
		totals[j] = inner.Total()
		groupTotal += totals[j]
	}
	if groupTotal == 0 {
		return zeroScore(policy, g.Key)
	}

	var integration float64
	for j, inner := range g.Inner {
		if totals[j] == 0 {
			continue // weight 0, diversity undefined but irrelevant
		}
		d, _ := gini(inner.Sums)
		integration += totals[j] / groupTotal * d
	}

	return integration, nil
}

// Integration computes, for each distinct value of Options.By, the
// population-weighted average diversity of its inner units: the chance
// that a random member meets a member of another group within their own
// inner unit.
//
// Inner units are the pooled (By, Over) pairs when Options.Over is set;
// otherwise every row stands alone. Output order is the first appearance
// of each By value. For every group g, 0 ≤ I_g ≤ D_g ≤ 1 where D_g is the
// diversity of g's pooled counts.
//
// Errors:
//   - ErrNilTable, ErrMissingBy, ErrSameByOver, ErrBadPolicy — malformed call.
//   - table.ErrUnknownColumn — By, Over, or GroupColumns name no such column.
//   - ErrZeroPopulation — an entirely empty outer group under ZeroStrict.
func Integration(t *table.Table, opts Options) ([]GroupValue, error) {
	if err := validateGrouping(t, opts); err != nil {
		return nil, err
	}

	nested, err := t.SumByPair(opts.By, opts.Over, opts.GroupColumns)
	if err != nil {
		return nil, err
	}

	out := make([]GroupValue, len(nested))
	for i, g := range nested {
		v, err := integrationOf(g, opts.ZeroPolicy)
		if err != nil {
			return nil, err
		}
		out[i] = GroupValue{Key: g.Key, Value: v}
	}

	return out, nil
}
