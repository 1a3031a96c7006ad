package excelsummary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datasetOf(columns []string, rows ...[]Value) *Dataset {
	return &Dataset{Path: "mem.xlsx", Sheet: "Sheet1", Columns: columns, Rows: rows}
}

func TestProfileColumns_Categorical(t *testing.T) {
	ds := datasetOf([]string{"A", "B", "C"})
	for i := 0; i < 25; i++ {
		a := "even"
		if i%2 == 1 {
			a = "odd"
		}
		ds.Rows = append(ds.Rows, []Value{str(a), num(fmt.Sprint(i)), Missing})
	}

	report := NewReport(ds, 3)
	require.Len(t, report.Profiles, 3)

	assert.Equal(t, 2, report.Profiles[0].Distinct)
	assert.Equal(t, 25, report.Profiles[1].Distinct)
	assert.Equal(t, 0, report.Profiles[2].Distinct)

	categorical := report.Categorical()
	require.Len(t, categorical, 2)
	assert.Equal(t, "A", categorical[0].Name)
	assert.Equal(t, []Value{str("even"), str("odd")}, categorical[0].Values)
	assert.Equal(t, "C", categorical[1].Name)
	assert.Empty(t, categorical[1].Values)
}

func TestProfileColumns_ThresholdBoundary(t *testing.T) {
	for _, n := range []int{19, 20, 21} {
		t.Run(fmt.Sprintf("%d distinct", n), func(t *testing.T) {
			ds := datasetOf([]string{"X"})
			for i := 0; i < n; i++ {
				ds.Rows = append(ds.Rows, []Value{num(fmt.Sprint(i))})
			}
			p := ProfileColumns(ds)[0]
			assert.Equal(t, n, p.Distinct)
			assert.Equal(t, n < CategoricalThreshold, p.Categorical())
		})
	}
}

func TestProfileColumns_MissingMarker(t *testing.T) {
	ds := datasetOf([]string{"X"},
		[]Value{str("a")},
		[]Value{Missing},
		[]Value{str("b")},
		[]Value{str("a")},
		[]Value{Missing},
	)

	p := ProfileColumns(ds)[0]
	assert.Equal(t, 2, p.Distinct)
	assert.Equal(t, []Value{str("a"), Missing, str("b")}, p.Values)
}

func TestProfileColumns_KindMatters(t *testing.T) {
	ds := datasetOf([]string{"X"},
		[]Value{str("1")},
		[]Value{num("1")},
	)

	p := ProfileColumns(ds)[0]
	assert.Equal(t, 2, p.Distinct)
}

func TestNewReport_Preview(t *testing.T) {
	for _, rows := range []int{0, 1, 3, 10} {
		t.Run(fmt.Sprintf("%d rows", rows), func(t *testing.T) {
			ds := datasetOf([]string{"X"})
			for i := 0; i < rows; i++ {
				ds.Rows = append(ds.Rows, []Value{num(fmt.Sprint(i))})
			}
			report := NewReport(ds, 3)
			assert.Len(t, report.Preview, min(3, rows))
			assert.Equal(t, rows, report.RowCount)
		})
	}
}
