package table

import (
	"fmt"
	"math"
)

// New declares a table with the given key and group columns.
// keyCols may be empty (a table of standalone communities); groupCols must
// name at least one column. Names must be unique across both sets.
//
// Errors:
//   - ErrNoGroupColumns if groupCols is empty.
//   - ErrDuplicateColumn if any name repeats.
func New(keyCols, groupCols []string) (*Table, error) {
	if len(groupCols) == 0 {
		return nil, ErrNoGroupColumns
	}

	t := &Table{
		keyNames:   append([]string(nil), keyCols...),
		groupNames: append([]string(nil), groupCols...),
		keyIdx:     make(map[string]int, len(keyCols)),
		groupIdx:   make(map[string]int, len(groupCols)),
		keyCols:    make([][]string, len(keyCols)),
		groupCols:  make([][]float64, len(groupCols)),
	}

	seen := make(map[string]struct{}, len(keyCols)+len(groupCols))
	for i, name := range t.keyNames {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
		t.keyIdx[name] = i
	}
	for i, name := range t.groupNames {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
		t.groupIdx[name] = i
	}

	return t, nil
}

// Append adds one row. keys must align with KeyColumns and counts with
// GroupColumns. Validation is eager and atomic: on error the table is
// unchanged.
//
// Errors:
//   - ErrRowWidth if either slice has the wrong length.
//   - ErrNegativeCount if any count is < 0.
//   - ErrNotFinite if any count is NaN or infinite.
func (t *Table) Append(keys []string, counts []float64) error {
	if len(keys) != len(t.keyNames) {
		return fmt.Errorf("%w: got %d key cells, want %d", ErrRowWidth, len(keys), len(t.keyNames))
	}
	if len(counts) != len(t.groupNames) {
		return fmt.Errorf("%w: got %d counts, want %d", ErrRowWidth, len(counts), len(t.groupNames))
	}
	for i, c := range counts {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: column %q", ErrNotFinite, t.groupNames[i])
		}
		if c < 0 {
			return fmt.Errorf("%w: column %q has %v", ErrNegativeCount, t.groupNames[i], c)
		}
	}

	for i, k := range keys {
		t.keyCols[i] = append(t.keyCols[i], k)
	}
	for i, c := range counts {
		t.groupCols[i] = append(t.groupCols[i], c)
	}
	t.rows++

	return nil
}

// Len reports the number of rows.
func (t *Table) Len() int { return t.rows }

// KeyColumns returns the key column names in declaration order.
func (t *Table) KeyColumns() []string {
	return append([]string(nil), t.keyNames...)
}

// GroupColumns returns the group column names in declaration order.
func (t *Table) GroupColumns() []string {
	return append([]string(nil), t.groupNames...)
}

// HasKeyColumn reports whether name is a declared key column.
func (t *Table) HasKeyColumn(name string) bool {
	_, ok := t.keyIdx[name]

	return ok
}

// GroupIndex resolves a group column name to its position.
// Returns ErrUnknownColumn when name is not a group column.
func (t *Table) GroupIndex(name string) (int, error) {
	i, ok := t.groupIdx[name]
	if !ok {
		return 0, fmt.Errorf("%w: group column %q", ErrUnknownColumn, name)
	}

	return i, nil
}

// GroupIndices resolves a list of group column names to positions.
// An empty list selects every group column, in declaration order.
func (t *Table) GroupIndices(names []string) ([]int, error) {
	if len(names) == 0 {
		idx := make([]int, len(t.groupNames))
		for i := range idx {
			idx[i] = i
		}

		return idx, nil
	}

	idx := make([]int, len(names))
	for i, name := range names {
		gi, err := t.GroupIndex(name)
		if err != nil {
			return nil, err
		}
		idx[i] = gi
	}

	return idx, nil
}

// KeyAt returns the key cell of row i in the named key column.
// Returns ErrUnknownColumn when col is not a key column.
func (t *Table) KeyAt(i int, col string) (string, error) {
	ki, ok := t.keyIdx[col]
	if !ok {
		return "", fmt.Errorf("%w: key column %q", ErrUnknownColumn, col)
	}

	return t.keyCols[ki][i], nil
}

// CountAt returns the count of row i in group column position j.
// Positions come from GroupIndex/GroupIndices; bounds are the caller's
// responsibility, as with slice indexing.
func (t *Table) CountAt(i, j int) float64 {
	return t.groupCols[j][i]
}

// Counts returns a copy of row i's counts across all group columns.
func (t *Table) Counts(i int) []float64 {
	out := make([]float64, len(t.groupCols))
	for j := range t.groupCols {
		out[j] = t.groupCols[j][i]
	}

	return out
}
