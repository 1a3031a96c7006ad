package excelsummary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnNames(t *testing.T) {
	tests := []struct {
		name   string
		header []Value
		width  int
		want   []string
	}{
		{name: "plain", header: []Value{str("a"), str("b")}, width: 2, want: []string{"a", "b"}},
		{name: "blank cells", header: []Value{Missing, str("b"), str("  ")}, width: 3, want: []string{"Unnamed: 0", "b", "Unnamed: 2"}},
		{name: "wider than header", header: []Value{str("a")}, width: 3, want: []string{"a", "Unnamed: 1", "Unnamed: 2"}},
		{name: "duplicates", header: []Value{str("a"), str("a"), str("a")}, width: 3, want: []string{"a", "a.1", "a.2"}},
		{name: "duplicate collides", header: []Value{str("a"), str("a.1"), str("a")}, width: 3, want: []string{"a", "a.1", "a.2"}},
		{name: "numeric header", header: []Value{num("2024")}, width: 1, want: []string{"2024"}},
		{name: "no header", width: 0, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, columnNames(tt.header, tt.width))
		})
	}
}

func TestDataset_Head(t *testing.T) {
	ds := datasetOf([]string{"X"}, []Value{str("a")}, []Value{str("b")})

	assert.Len(t, ds.Head(3), 2)
	assert.Len(t, ds.Head(1), 1)
	assert.Empty(t, ds.Head(0))
	assert.Empty(t, ds.Head(-1))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "NaN", Missing.String())
	assert.Equal(t, "x", str("x").String())
	assert.Equal(t, "missing", Missing.Kind.String())
	assert.Equal(t, "number", num("1").Kind.String())
}
