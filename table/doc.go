// Package table provides the in-memory population table consumed by the
// metrics package: named key columns (string cells identifying geographic
// or administrative units) plus validated group-count columns (non-negative
// finite float64 counts, one column per demographic group).
//
// What:
//
//   - Table wraps a column-oriented store: ordered key columns and ordered
//     group columns, identical and aligned across every row.
//   - Append validates each row eagerly and atomically; a Table can never
//     hold a negative, NaN, or infinite count.
//   - SumBy pools group counts per distinct key value; SumByPair pools per
//     (outer, inner) key pair, nested under each outer key.
//
// Why:
//
//   - Census analysis: tracts within counties, blocks within block groups.
//   - Any grouped-count aggregation where downstream math assumes aligned,
//     non-negative columns and deterministic group ordering.
//
// Determinism:
//
//   - All folds emit keys in first-appearance order of the input rows.
//     Two calls over the same Table yield identical output.
//   - No fold mutates the stored data; accessors return copies.
//
// Complexity:
//
//   - Append:    O(k+g) per row (k key columns, g group columns).
//   - SumBy:     O(n·g), Memory: O(u·g)   (n rows, u distinct keys).
//   - SumByPair: O(n·g), Memory: O(p·g)   (p distinct key pairs).
//
// Errors:
//
//   - ErrNoGroupColumns: a table needs at least one group column.
//   - ErrDuplicateColumn: a column name repeats across key and group sets.
//   - ErrUnknownColumn: a referenced column does not exist in its role.
//   - ErrRowWidth: appended row width disagrees with the declared columns.
//   - ErrNegativeCount: a group count is negative.
//   - ErrNotFinite: a group count is NaN or infinite.
package table
