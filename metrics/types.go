// Package metrics defines options, result types, and sentinel errors for
// the metrics subpackage of github.com/katalvlaran/divintseg.
package metrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for metric computations.
var (
	// ErrNilTable indicates a nil *table.Table was passed.
	ErrNilTable = errors.New("metrics: table must be non-nil")
	// ErrMissingBy indicates Options.By was left empty on an operation that groups rows.
	ErrMissingBy = errors.New("metrics: option By must name a key column")
	// ErrSameByOver indicates Options.By and Options.Over name the same column.
	ErrSameByOver = errors.New("metrics: options By and Over must name different columns")
	// ErrInvalidCount indicates a directly supplied count is negative, NaN, or infinite.
	ErrInvalidCount = errors.New("metrics: group counts must be finite and non-negative")
	// ErrZeroPopulation indicates a community has zero total population under ZeroStrict.
	ErrZeroPopulation = errors.New("metrics: community has zero total population")
	// ErrEmptyReference indicates a similarity reference with zero total population.
	ErrEmptyReference = errors.New("metrics: reference community must have positive total population")
	// ErrMissingGroup indicates the similarity reference lacks a group column of the table.
	ErrMissingGroup = errors.New("metrics: reference is missing a group column of the table")
	// ErrBadPolicy indicates an unknown ZeroPolicy value.
	ErrBadPolicy = errors.New("metrics: unknown zero-population policy")
)

// ZeroPolicy controls how a community with zero total population is scored.
//
//   - ZeroAsZero — report 0. Matches the weighting rule: an empty unit
//     carries zero weight, so treating its diversity as 0 never skews an
//     aggregate. This is the default.
//
//   - ZeroAsNaN  — report NaN for the empty unit itself. Aggregation
//     weights are unaffected (an empty unit still weighs 0), so NaN never
//     leaks into a weighted sum.
//
//   - ZeroStrict — fail with ErrZeroPopulation when an empty row (or an
//     entirely empty outer group) is encountered.
type ZeroPolicy int

const (
	// ZeroAsZero scores empty communities as 0 diversity/integration.
	ZeroAsZero ZeroPolicy = iota

	// ZeroAsNaN scores empty communities as NaN.
	ZeroAsNaN

	// ZeroStrict rejects empty communities with ErrZeroPopulation.
	ZeroStrict
)

// validate reports ErrBadPolicy for values outside the declared set.
func (p ZeroPolicy) validate() error {
	if p < ZeroAsZero || p > ZeroStrict {
		return fmt.Errorf("%w: %d", ErrBadPolicy, p)
	}

	return nil
}

// Options configures the table-level metric operations.
//
// Fields:
//   - By           — key column whose distinct values partition rows into
//     communities. Required by Integration, Segregation, DI, Isolation.
//   - Over         — key column subdividing each community into the inner
//     units whose diversity is averaged. Empty means each row is its own
//     inner unit.
//   - GroupColumns — explicit group columns to use. Empty means all group
//     columns of the table, in declaration order.
//   - AddSegregation — if true, DI adds a segregation column derived from
//     the same integration values.
//   - ZeroPolicy   — scoring of zero-population communities (see ZeroPolicy).
//
// Example:
//
//	opts := metrics.DefaultOptions()
//	opts.By, opts.Over = "region", "tract"
//	opts.AddSegregation = true
//
//	res, err := metrics.DI(t, opts)
//	if err != nil {
//	  // handle table.ErrUnknownColumn, metrics.ErrMissingBy, ...
//	}
type Options struct {
	By             string
	Over           string
	GroupColumns   []string
	AddSegregation bool
	ZeroPolicy     ZeroPolicy
}

// DefaultOptions returns Options with the default settings:
// no grouping columns set, all group columns selected, ZeroAsZero policy.
func DefaultOptions() Options {
	return Options{ZeroPolicy: ZeroAsZero}
}

// GroupValue pairs one outer-key value with one metric value.
type GroupValue struct {
	Key   string
	Value float64
}

// DIRow is one line of a combined DI report: the pooled diversity,
// integration, and (when requested) segregation of one community.
type DIRow struct {
	Key         string
	Diversity   float64
	Integration float64
	Segregation float64
}

// DIResult is the combined report produced by DI, keyed by the distinct
// values of Options.By in first-appearance order.
type DIResult struct {
	rows           []DIRow
	index          map[string]int
	hasSegregation bool
}

// Len reports the number of communities in the report.
func (r *DIResult) Len() int { return len(r.rows) }

// At returns the i-th row of the report.
func (r *DIResult) At(i int) DIRow { return r.rows[i] }

// Row looks a community up by its outer-key value.
func (r *DIResult) Row(key string) (DIRow, bool) {
	i, ok := r.index[key]
	if !ok {
		return DIRow{}, false
	}

	return r.rows[i], true
}

// Rows returns a copy of all rows in report order.
func (r *DIResult) Rows() []DIRow {
	return append([]DIRow(nil), r.rows...)
}

// HasSegregation reports whether the Segregation fields were populated.
func (r *DIResult) HasSegregation() bool { return r.hasSegregation }
