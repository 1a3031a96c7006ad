package excelsummary

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindMissing Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "missing"
	}
}

// Value is a single cell. The zero Value is the missing marker.
type Value struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text,omitempty"`
}

var Missing = Value{}

func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

func (v Value) String() string {
	if v.IsMissing() {
		return "NaN"
	}
	return v.Text
}

// Dataset is one sheet loaded into memory. Every row has exactly
// len(Columns) values.
type Dataset struct {
	Path    string
	Sheet   string
	Columns []string
	Rows    [][]Value
}

func (d *Dataset) Column(idx int) []Value {
	out := make([]Value, len(d.Rows))
	for r, row := range d.Rows {
		out[r] = row[idx]
	}
	return out
}

// Head returns the first n rows, or all of them when fewer exist.
func (d *Dataset) Head(n int) [][]Value {
	if n < 0 {
		n = 0
	}
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	return d.Rows[:n]
}

// columnNames builds width names from the header row. Blank header cells
// become "Unnamed: <idx>" and repeated names get ".1", ".2" suffixes.
func columnNames(header []Value, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)
	for idx := 0; idx < width; idx++ {
		name := ""
		if idx < len(header) && !header[idx].IsMissing() {
			name = header[idx].Text
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", idx)
		}
		if _, dup := seen[name]; dup {
			base := name
			for {
				seen[base]++
				name = fmt.Sprintf("%s.%d", base, seen[base])
				if _, taken := seen[name]; !taken {
					break
				}
			}
		}
		seen[name] = 0
		names[idx] = name
	}
	return names
}
