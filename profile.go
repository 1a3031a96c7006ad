package excelsummary

// CategoricalThreshold is the exclusive upper bound on distinct values for a
// column to be reported as categorical.
const CategoricalThreshold = 20

type ColumnProfile struct {
	Name     string  `json:"name"`
	Distinct int     `json:"distinct"`
	Values   []Value `json:"values"`
}

func (p ColumnProfile) Categorical() bool {
	return p.Distinct < CategoricalThreshold
}

// ProfileColumns computes distinct values for every column over all rows.
// Values keep first-appearance order; the missing marker is listed where it
// first appears but is not counted.
func ProfileColumns(ds *Dataset) []ColumnProfile {
	profiles := make([]ColumnProfile, len(ds.Columns))
	for idx, name := range ds.Columns {
		profiles[idx] = profileColumn(name, ds.Column(idx))
	}
	return profiles
}

func profileColumn(name string, values []Value) ColumnProfile {
	p := ColumnProfile{Name: name, Values: []Value{}}
	seen := make(map[Value]struct{})
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		p.Values = append(p.Values, v)
		if !v.IsMissing() {
			p.Distinct++
		}
	}
	if p.Distinct == 0 {
		p.Values = []Value{}
	}
	return p
}

type Report struct {
	Path     string          `json:"path"`
	Sheet    string          `json:"sheet"`
	Columns  []string        `json:"columns"`
	RowCount int             `json:"row_count"`
	Limit    int             `json:"preview_limit"`
	Preview  [][]Value       `json:"preview"`
	Profiles []ColumnProfile `json:"profiles"`
}

// NewReport profiles ds and keeps its first previewRows rows.
func NewReport(ds *Dataset, previewRows int) *Report {
	return &Report{
		Path:     ds.Path,
		Sheet:    ds.Sheet,
		Columns:  ds.Columns,
		RowCount: len(ds.Rows),
		Limit:    previewRows,
		Preview:  ds.Head(previewRows),
		Profiles: ProfileColumns(ds),
	}
}

// Categorical returns the profiles below CategoricalThreshold in column order.
func (r *Report) Categorical() []ColumnProfile {
	out := make([]ColumnProfile, 0, len(r.Profiles))
	for _, p := range r.Profiles {
		if p.Categorical() {
			out = append(out, p)
		}
	}
	return out
}
