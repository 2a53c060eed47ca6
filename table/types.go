// Package table defines the Table type, grouped-fold result types, and
// sentinel errors for the table subpackage of
// github.com/katalvlaran/divintseg.
package table

import "errors"

// Sentinel errors for table construction and access.
var (
	// ErrNoGroupColumns indicates a table was declared without any group-count columns.
	ErrNoGroupColumns = errors.New("table: at least one group column is required")
	// ErrDuplicateColumn indicates a column name appears more than once across key and group columns.
	ErrDuplicateColumn = errors.New("table: column names must be unique")
	// ErrUnknownColumn indicates a referenced column name does not exist in the expected role.
	ErrUnknownColumn = errors.New("table: unknown column")
	// ErrRowWidth indicates an appended row does not match the declared column counts.
	ErrRowWidth = errors.New("table: row width does not match declared columns")
	// ErrNegativeCount indicates a group count is negative.
	ErrNegativeCount = errors.New("table: group counts must be non-negative")
	// ErrNotFinite indicates a group count is NaN or infinite.
	ErrNotFinite = errors.New("table: group counts must be finite")
)

// Table is a column-oriented population table. Key columns hold string
// cells naming the unit a row belongs to (region, tract, …); group columns
// hold non-negative finite counts, one column per demographic group.
//
// The group column set is identical and aligned across all rows by
// construction. A Table is safe for concurrent readers once built.
//
// Callers with integer or composite keys format them into strings before
// appending; key cells are compared by string equality.
type Table struct {
	keyNames   []string
	groupNames []string
	keyIdx     map[string]int
	groupIdx   map[string]int

	// Struct-of-arrays storage: one slice per column.
	keyCols   [][]string
	groupCols [][]float64
	rows      int
}

// Group holds the pooled counts of one distinct key value.
// Sums is aligned with the group columns the fold was asked for.
type Group struct {
	Key  string
	Sums []float64
}

// Total returns the pooled population of the group (sum of Sums).
func (g Group) Total() float64 {
	var t float64
	for _, s := range g.Sums {
		t += s
	}

	return t
}

// NestedGroup holds, for one distinct outer-key value, the pooled counts of
// each of its inner units in first-appearance order.
type NestedGroup struct {
	Key   string
	Inner []Group
}
