package metrics

import (
	"fmt"

	"github.com/katalvlaran/divintseg/table"
)

// Isolation computes, for each distinct value of opts.By, the isolation of
// the named group: the average, over that group's members in the
// community, of their own group's share of the inner unit they live in.
//
// For each inner unit j of community g, let n_j be the unit's members of
// the named group and N_j its whole population. Then
//
//	Isolation_g = Σ_j (n_j / n_g) · (n_j / N_j)
//
// where n_g = Σ_j n_j. High isolation means members of the group mostly
// live in units dominated by their own group; an integrated group sees low
// isolation even when it is large overall.
//
// Inner units follow opts.Over exactly as in Integration; opts.ZeroPolicy
// applies to communities with no members of the named group at all
// (ZeroAsZero reports 0). Output order is the first appearance of each
// By value.
//
// Errors:
//   - ErrNilTable, ErrMissingBy, ErrSameByOver, ErrBadPolicy — malformed call.
//   - table.ErrUnknownColumn — group, By, or Over name no such column.
//   - ErrZeroPopulation — a community without group members under ZeroStrict.
func Isolation(t *table.Table, group string, opts Options) ([]GroupValue, error) {
	if err := validateGrouping(t, opts); err != nil {
		return nil, err
	}
	if _, err := t.GroupIndex(group); err != nil {
		return nil, err
	}

	nested, err := t.SumByPair(opts.By, opts.Over, opts.GroupColumns)
	if err != nil {
		return nil, err
	}

	// The fold above may have been asked for a subset of group columns;
	// resolve the named group's position within that subset.
	gPos, err := groupPosition(t, group, opts.GroupColumns)
	if err != nil {
		return nil, err
	}

	out := make([]GroupValue, len(nested))
	for i, g := range nested {
		// n_g: the community's total members of the named group.
		var members float64
		for _, inner := range g.Inner {
			members += inner.Sums[gPos]
		}
		if members == 0 {
			v, zerr := zeroScore(opts.ZeroPolicy, g.Key)
			if zerr != nil {
				return nil, zerr
			}
			out[i] = GroupValue{Key: g.Key, Value: v}

			continue
		}

		var isolation float64
		for _, inner := range g.Inner {
			n := inner.Sums[gPos]
			if n == 0 {
				continue
			}
			total := inner.Total()
			isolation += n / members * (n / total)
		}
		out[i] = GroupValue{Key: g.Key, Value: isolation}
	}

	return out, nil
}

// groupPosition locates group within the effective group-column selection:
// the explicit list when given, otherwise the table's declaration order.
func groupPosition(t *table.Table, group string, selection []string) (int, error) {
	if len(selection) == 0 {
		return t.GroupIndex(group)
	}
	for i, name := range selection {
		if name == group {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: group column %q", table.ErrUnknownColumn, group)
}
