package metrics_test

import (
	"testing"

	"github.com/katalvlaran/divintseg/table"
)

// row pairs one fixture row's key cells with its group counts.
type row struct {
	keys   []string
	counts []float64
}

// newTable builds a table from fixture rows, failing the test on any error.
func newTable(t *testing.T, keyCols, groupCols []string, rows []row) *table.Table {
	t.Helper()

	tbl, err := table.New(keyCols, groupCols)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	for i, r := range rows {
		if err = tbl.Append(r.keys, r.counts); err != nil {
			t.Fatalf("Append row %d: %v", i, err)
		}
	}

	return tbl
}

// regionRows is the three-region fixture: X holds equally diverse rows of
// different sizes, Y holds three fully homogeneous rows, Z pairs a small
// diverse row with a large homogeneous one.
func regionRows() []row {
	return []row{
		{[]string{"X"}, []float64{10, 10, 10}},
		{[]string{"X"}, []float64{20, 20, 20}},
		{[]string{"X"}, []float64{30, 30, 30}},
		{[]string{"Y"}, []float64{100, 0, 0}},
		{[]string{"Y"}, []float64{0, 100, 0}},
		{[]string{"Y"}, []float64{0, 0, 100}},
		{[]string{"Z"}, []float64{1, 1, 1}},
		{[]string{"Z"}, []float64{97, 0, 0}},
	}
}

// subregionRows nests the same three regions one level deeper.
func subregionRows() []row {
	return []row{
		{[]string{"X", "X1"}, []float64{10, 10, 10}},
		{[]string{"X", "X1"}, []float64{20, 20, 20}},
		{[]string{"X", "X1"}, []float64{30, 30, 30}},
		{[]string{"X", "X2"}, []float64{100, 0, 0}},
		{[]string{"X", "X2"}, []float64{0, 100, 0}},
		{[]string{"X", "X2"}, []float64{0, 0, 100}},
		{[]string{"Y", "Y1"}, []float64{10, 0, 0}},
		{[]string{"Y", "Y1"}, []float64{20, 0, 0}},
		{[]string{"Y", "Y1"}, []float64{30, 0, 0}},
		{[]string{"Y", "Y2"}, []float64{0, 10, 0}},
		{[]string{"Y", "Y2"}, []float64{0, 20, 0}},
		{[]string{"Y", "Y2"}, []float64{0, 30, 0}},
		{[]string{"Z", "Z1"}, []float64{20, 0, 0}},
		{[]string{"Z", "Z1"}, []float64{15, 0, 0}},
		{[]string{"Z", "Z1"}, []float64{25, 0, 0}},
		{[]string{"Z", "Z1"}, []float64{37, 0, 0}},
		{[]string{"Z", "Z2"}, []float64{1, 1, 1}},
	}
}

// zDiversity is the diversity of Z pooled: shares 0.98/0.01/0.01.
const zDiversity = 0.98*0.02 + 0.01*0.99 + 0.01*0.99

// epsMetric is the tolerance for metric comparisons; all fixtures are
// exact in small rationals, so a tight epsilon suffices.
const epsMetric = 1e-12
