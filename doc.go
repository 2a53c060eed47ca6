// Package divintseg computes diversity, integration, and segregation
// metrics over tabular group-count data — typically census-style counts
// of population subgroups across nested geographic units.
//
// 🚀 What is divintseg?
//
//	A small, pure-Go library that brings together:
//		• Population tables: named key columns plus validated non-negative
//		  group-count columns, with deterministic group-by folds
//		• Diversity: the Gini–Simpson index, per row or per pooled community
//		• Integration: population-weighted average of inner-unit diversity
//		• Segregation: the complement of integration
//		• Extras: dissimilarity/similarity against a reference community,
//		  and per-group isolation
//
// ✨ Why choose divintseg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed traversal order, stable first-appearance keyed
//     output, bit-identical results on repeated calls
//   - Pure Go – no cgo, no hidden deps
//   - Explicit policies – zero-population rows handled by a documented,
//     selectable policy rather than silent NaN propagation
//
// Everything is organized under two subpackages:
//
//	table/   — the Population Table: construction, validation, grouped sums
//	metrics/ — Diversity, Integration, Segregation, DI, similarity, isolation
//
// Quick example:
//
//	t, _ := table.New([]string{"region", "tract"}, []string{"A", "B", "C"})
//	t.Append([]string{"X", "X1"}, []float64{36, 36, 36})
//	t.Append([]string{"X", "X2"}, []float64{72, 0, 36})
//
//	res, err := metrics.DI(t, metrics.Options{
//		By:             "region",
//		Over:           "tract",
//		AddSegregation: true,
//	})
//
// Each metric is a pure function of its input: no caching, no shared state,
// no side effects. Concurrent calls on distinct tables need no coordination.
//
//	go get github.com/katalvlaran/divintseg
package divintseg
