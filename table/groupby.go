package table

import "fmt"

// keyColumn resolves a key column name to its backing slice.
func (t *Table) keyColumn(name string) ([]string, error) {
	ki, ok := t.keyIdx[name]
	if !ok {
		return nil, fmt.Errorf("%w: key column %q", ErrUnknownColumn, name)
	}

	return t.keyCols[ki], nil
}

// SumBy pools group counts per distinct value of the key column by.
// groups selects the group columns to pool; empty selects all of them.
// Output order is the first appearance of each key value in the table.
//
// Time: O(n·g). Memory: O(u·g) for u distinct keys.
func (t *Table) SumBy(by string, groups []string) ([]Group, error) {
	byCol, err := t.keyColumn(by)
	if err != nil {
		return nil, err
	}
	gIdx, err := t.GroupIndices(groups)
	if err != nil {
		return nil, err
	}

	var out []Group
	pos := make(map[string]int)
	for i := 0; i < t.rows; i++ {
		key := byCol[i]
		p, ok := pos[key]
		if !ok {
			p = len(out)
			pos[key] = p
			out = append(out, Group{Key: key, Sums: make([]float64, len(gIdx))})
		}
		for j, gi := range gIdx {
			out[p].Sums[j] += t.groupCols[gi][i]
		}
	}

	return out, nil
}

// SumByPair pools group counts per (by, over) key pair and nests the inner
// pools under each distinct outer key. When over is empty, every row is its
// own inner unit (the inner Group keys are then empty strings).
//
// Both the outer keys and each outer key's inner pools appear in
// first-appearance order.
//
// Time: O(n·g). Memory: O(p·g) for p distinct pairs.
func (t *Table) SumByPair(by, over string, groups []string) ([]NestedGroup, error) {
	byCol, err := t.keyColumn(by)
	if err != nil {
		return nil, err
	}
	var overCol []string
	if over != "" {
		if overCol, err = t.keyColumn(over); err != nil {
			return nil, err
		}
	}
	gIdx, err := t.GroupIndices(groups)
	if err != nil {
		return nil, err
	}

	var out []NestedGroup
	outerPos := make(map[string]int)
	innerPos := make(map[string]map[string]int)

	for i := 0; i < t.rows; i++ {
		outer := byCol[i]
		op, ok := outerPos[outer]
		if !ok {
			op = len(out)
			outerPos[outer] = op
			out = append(out, NestedGroup{Key: outer})
			innerPos[outer] = make(map[string]int)
		}

		// Without an over column each row stands alone, so a fresh inner
		// pool is opened unconditionally.
		var ip int
		if overCol == nil {
			ip = len(out[op].Inner)
			out[op].Inner = append(out[op].Inner, Group{Sums: make([]float64, len(gIdx))})
		} else {
			inner := overCol[i]
			if ip, ok = innerPos[outer][inner]; !ok {
				ip = len(out[op].Inner)
				innerPos[outer][inner] = ip
				out[op].Inner = append(out[op].Inner, Group{Key: inner, Sums: make([]float64, len(gIdx))})
			}
		}

		for j, gi := range gIdx {
			out[op].Inner[ip].Sums[j] += t.groupCols[gi][i]
		}
	}

	return out, nil
}
