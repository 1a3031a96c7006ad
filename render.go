package excelsummary

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	toon "github.com/mateuszkardas/toon-go"
	"golang.org/x/text/width"
)

// RenderText writes the column list, the row preview and the categorical
// value sets of r.
func RenderText(w io.Writer, r *Report) error {
	var b strings.Builder

	b.WriteString("Columns:\n")
	for _, c := range r.Columns {
		b.WriteString("- " + c + "\n")
	}

	b.WriteString(fmt.Sprintf("\nFirst %d rows:\n", r.Limit))
	b.WriteString(previewTable(r.Columns, r.Preview))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("\nPotential Categorical Fields (Unique values < %d):\n", CategoricalThreshold))
	for _, p := range r.Categorical() {
		b.WriteString(p.Name + ": " + valueSet(p.Values) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// previewTable lays rows out under their column names. The row index is
// left-aligned, every column is right-aligned to its widest cell.
func previewTable(columns []string, rows [][]Value) string {
	if len(rows) == 0 {
		return "Empty DataFrame\nColumns: [" + strings.Join(columns, ", ") + "]\nIndex: []"
	}

	idxWidth := len(strconv.Itoa(len(rows) - 1))
	widths := make([]int, len(columns))
	for c, name := range columns {
		widths[c] = displayWidth(name)
		for _, row := range rows {
			if w := displayWidth(row[c].String()); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", idxWidth))
	for c, name := range columns {
		b.WriteString("  " + padLeft(name, widths[c]))
	}
	for r, row := range rows {
		b.WriteString("\n")
		b.WriteString(padRight(strconv.Itoa(r), idxWidth))
		for c, v := range row {
			b.WriteString("  " + padLeft(v.String(), widths[c]))
		}
	}
	return b.String()
}

func valueSet(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		switch v.Kind {
		case KindMissing:
			parts[i] = "nan"
		case KindString:
			parts[i] = "'" + v.Text + "'"
		default:
			parts[i] = v.Text
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// displayWidth counts terminal cells; East Asian wide runes take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func padLeft(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}

func padRight(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// RenderTOON encodes r in TOON. Preview rows are keyed by column name and
// value sets are joined with "|".
func RenderTOON(r *Report) (string, error) {
	return toon.Marshal(buildTOONPayload(r), nil)
}

func buildTOONPayload(r *Report) map[string]interface{} {
	preview := make([]map[string]interface{}, 0, len(r.Preview))
	for _, row := range r.Preview {
		m := make(map[string]interface{}, len(r.Columns))
		for c, name := range r.Columns {
			m[name] = row[c].String()
		}
		preview = append(preview, m)
	}

	categorical := make([]map[string]interface{}, 0, len(r.Profiles))
	for _, p := range r.Categorical() {
		values := make([]string, len(p.Values))
		for i, v := range p.Values {
			values[i] = v.String()
		}
		categorical = append(categorical, map[string]interface{}{
			"name":     p.Name,
			"distinct": p.Distinct,
			"values":   strings.Join(values, "|"),
		})
	}

	return map[string]interface{}{
		"path":        r.Path,
		"sheet":       r.Sheet,
		"row_count":   r.RowCount,
		"columns":     r.Columns,
		"preview":     preview,
		"categorical": categorical,
	}
}
