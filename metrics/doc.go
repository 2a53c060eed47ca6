// Package metrics computes the diversity, integration, and segregation of
// communities described by a population table, plus two companion indices
// (dissimilarity/similarity against a reference, and per-group isolation).
//
// What:
//
//   - Diversity — the Gini–Simpson index of one community: the probability
//     that two independently drawn members belong to different groups,
//     D = Σᵢ pᵢ(1−pᵢ) where pᵢ is group i's population share.
//   - Integration — for each outer community, the population-weighted
//     average of its inner units' diversity: I = Σⱼ (Nⱼ/ΣN)·Dⱼ.
//   - Segregation — the complement 1 − I, derived from the same
//     integration values.
//   - DI — the combined report: pooled diversity, integration, and
//     optionally segregation per community.
//   - SimilarityReference / Dissimilarity / Similarity — index of
//     dissimilarity of each row against a fixed reference community.
//   - Isolation — average own-group exposure of one named group per
//     community.
//
// Why:
//
//   - Census work: how diverse is a county, and how evenly is that
//     diversity spread across its tracts?
//   - Any nested grouping where "diverse overall" and "integrated within"
//     must be told apart: I ≤ D always, with equality only when every
//     inner unit mirrors the pooled whole.
//
// Determinism:
//
//   - Results are keyed in first-appearance order of the outer key.
//   - Pure functions of their input: repeated calls are bit-identical.
//
// Zero-population policy:
//
//   - Inner units with zero population always carry zero weight in
//     integration, so they can never inject NaN into a weighted sum.
//   - What the empty unit itself scores is set by Options.ZeroPolicy:
//     0 (ZeroAsZero, the default), NaN (ZeroAsNaN), or a hard
//     ErrZeroPopulation failure (ZeroStrict).
//
// Complexity:
//
//   - Diversity:   O(g) per community (g groups).
//   - Integration: O(n·g), Memory: O(p·g)  (n rows, p distinct key pairs).
//   - DI:          O(n·g), Memory: O(u·g + p·g)  (u distinct outer keys).
//
// Errors:
//
//   - ErrNilTable, ErrMissingBy, ErrSameByOver, ErrBadPolicy: malformed call.
//   - table.ErrUnknownColumn: By/Over/GroupColumns name no such column.
//   - ErrInvalidCount: a directly supplied count is negative or not finite.
//   - ErrZeroPopulation: empty community under ZeroStrict.
//   - ErrEmptyReference, ErrMissingGroup: malformed similarity reference.
package metrics
