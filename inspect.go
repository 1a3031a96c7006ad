package excelsummary

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/thedatashed/xlsxreader"
	"github.com/xuri/excelize/v2"
)

// Inspector reads one sheet of a workbook into a Dataset. The workbook is
// opened twice: excelize for workbook structure, xlsxreader for streaming the
// rows with their cell types.
type Inspector struct {
	filePath         string
	file             *excelize.File
	xl               *xlsxreader.XlsxFileCloser
	sheet            string
	headerRow        int
	date1904         bool
	progressCallback func(ProgressInfo)
	progressChan     chan<- ProgressInfo
}

type InspectorOption func(*Inspector)

type ProgressInfo struct {
	Phase   string  `json:"phase"`
	Sheet   string  `json:"sheet,omitempty"`
	Current int     `json:"current"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// WithSheet selects the sheet to load. The first sheet of the workbook is
// used when unset.
func WithSheet(name string) InspectorOption {
	return func(i *Inspector) {
		i.sheet = name
	}
}

// WithHeaderRow sets the 1-based row holding the column names. Rows above it
// are ignored.
func WithHeaderRow(row int) InspectorOption {
	return func(i *Inspector) {
		if row > 0 {
			i.headerRow = row
		}
	}
}

func WithProgressCallback(fn func(ProgressInfo)) InspectorOption {
	return func(i *Inspector) {
		i.progressCallback = fn
	}
}

func WithProgressChannel(ch chan<- ProgressInfo) InspectorOption {
	return func(i *Inspector) {
		i.progressChan = ch
	}
}

func New(filePath string, opts ...InspectorOption) (*Inspector, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, &DataLoadError{Path: filePath, Err: fmt.Errorf("file not found: %w", err)}
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, &DataLoadError{Path: filePath, Err: fmt.Errorf("failed to open excel file: %w", err)}
	}

	xl, err := xlsxreader.OpenFile(filePath)
	if err != nil {
		f.Close()
		return nil, &DataLoadError{Path: filePath, Err: fmt.Errorf("failed to open excel file: %w", err)}
	}

	ins := &Inspector{
		filePath:  filePath,
		file:      f,
		xl:        xl,
		headerRow: 1,
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		ins.date1904 = *props.Date1904
	}

	for _, opt := range opts {
		opt(ins)
	}

	return ins, nil
}

func (i *Inspector) Close() error {
	if i.file != nil {
		i.file.Close()
	}
	if i.xl != nil {
		i.xl.Close()
	}
	return nil
}

// LoadFile opens path, loads the selected sheet and closes the workbook.
func LoadFile(path string, opts ...InspectorOption) (*Dataset, error) {
	ins, err := New(path, opts...)
	if err != nil {
		return nil, err
	}
	defer ins.Close()
	return ins.Load()
}

// Load streams the selected sheet into a Dataset. Blank rows are skipped and
// every row is padded to the final column count.
func (i *Inspector) Load() (*Dataset, error) {
	sheet, err := i.resolveSheet()
	if err != nil {
		return nil, &DataLoadError{Path: i.filePath, Err: err}
	}

	total := i.sheetRowCount(sheet)
	i.emitProgress("load_rows", sheet, 0, total)

	var (
		header    []Value
		hasHeader bool
		rows      [][]Value
		width     int
		scanned   int
		loadErr   error
	)
	for row := range i.xl.ReadRows(sheet) {
		// Keep draining after a failure so the reader goroutine can exit.
		if loadErr != nil {
			continue
		}
		if row.Error != nil {
			loadErr = fmt.Errorf("failed to read row: %w", row.Error)
			continue
		}
		scanned++
		if scanned%100 == 0 {
			i.emitProgress("load_rows", sheet, scanned, total)
		}
		if row.Index < i.headerRow {
			continue
		}

		values, err := i.rowValues(sheet, row.Cells)
		if err != nil {
			loadErr = err
			continue
		}
		if isBlankRow(values) {
			continue
		}
		if len(values) > width {
			width = len(values)
		}
		if !hasHeader {
			header = values
			hasHeader = true
			continue
		}
		rows = append(rows, values)
	}
	if loadErr != nil {
		return nil, &DataLoadError{Path: i.filePath, Err: loadErr}
	}
	i.emitProgress("load_rows", sheet, scanned, total)

	ds := &Dataset{
		Path:    i.filePath,
		Sheet:   sheet,
		Columns: columnNames(header, width),
		Rows:    make([][]Value, 0, len(rows)),
	}
	for _, r := range rows {
		ds.Rows = append(ds.Rows, padRow(r, width))
	}
	return ds, nil
}

func (i *Inspector) resolveSheet() (string, error) {
	sheets := i.file.GetSheetList()
	if i.sheet == "" {
		if len(sheets) == 0 {
			return "", fmt.Errorf("workbook has no sheets")
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == i.sheet {
			return s, nil
		}
	}
	return "", fmt.Errorf("sheet not found: %s", i.sheet)
}

// sheetRowCount reports the last row of the sheet's used range, or 0 when the
// workbook does not record a dimension.
func (i *Inspector) sheetRowCount(sheet string) int {
	dim, err := i.file.GetSheetDimension(sheet)
	if err != nil || dim == "" {
		return 0
	}
	parts := strings.Split(dim, ":")
	_, row, err := excelize.CellNameToCoordinates(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return row
}

func (i *Inspector) emitProgress(phase, sheet string, current, total int) {
	if i.progressCallback == nil && i.progressChan == nil {
		return
	}
	pct := 0.0
	if total > 0 {
		pct = (float64(current) / float64(total)) * 100.0
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
	}
	info := ProgressInfo{
		Phase:   phase,
		Sheet:   sheet,
		Current: current,
		Total:   total,
		Percent: pct,
	}
	if i.progressCallback != nil {
		i.progressCallback(info)
	}
	if i.progressChan != nil {
		select {
		case i.progressChan <- info:
		default:
		}
	}
}

// rowValues places each streamed cell at its column position. The reader
// omits empty cells, so gaps are filled with missing values.
func (i *Inspector) rowValues(sheet string, cells []xlsxreader.Cell) ([]Value, error) {
	var out []Value
	for _, cell := range cells {
		col, err := excelize.ColumnNameToNumber(cell.Column)
		if err != nil {
			return nil, fmt.Errorf("invalid cell reference %s%d: %w", cell.Column, cell.Row, err)
		}
		for len(out) < col {
			out = append(out, Missing)
		}
		v, err := i.cellValue(sheet, cell)
		if err != nil {
			return nil, err
		}
		out[col-1] = v
	}
	return trimTrailingMissing(out), nil
}

func (i *Inspector) cellValue(sheet string, cell xlsxreader.Cell) (Value, error) {
	if cell.Value == "" {
		return Missing, nil
	}
	switch cell.Type {
	case xlsxreader.TypeNumerical:
		return Value{Kind: KindNumber, Text: cell.Value}, nil
	case xlsxreader.TypeBoolean:
		return Value{Kind: KindBool, Text: boolText(cell.Value)}, nil
	case xlsxreader.TypeDateTime:
		text, err := i.dateText(sheet, cell)
		if err != nil {
			return Missing, err
		}
		return Value{Kind: KindDate, Text: text}, nil
	default:
		return Value{Kind: KindString, Text: cell.Value}, nil
	}
}

func boolText(raw string) string {
	switch raw {
	case "1":
		return "True"
	case "0":
		return "False"
	default:
		return raw
	}
}

// dateText converts the stored serial of a date cell, rounded to the nearest
// second. The streaming reader truncates, which can drop a second.
func (i *Inspector) dateText(sheet string, cell xlsxreader.Cell) (string, error) {
	ref := cell.Column + strconv.Itoa(cell.Row)
	raw, err := i.file.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", fmt.Errorf("failed to read date cell %s: %w", ref, err)
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Not a serial (ISO 8601 date cell); keep the reader's text.
		return cell.Value, nil
	}
	t, err := excelize.ExcelDateToTime(serial, i.date1904)
	if err != nil {
		return "", fmt.Errorf("invalid date in cell %s: %w", ref, err)
	}
	return t.Round(time.Second).Format("2006-01-02 15:04:05"), nil
}

func trimTrailingMissing(row []Value) []Value {
	last := -1
	for i, v := range row {
		if !v.IsMissing() {
			last = i
		}
	}
	return row[:last+1]
}

func isBlankRow(row []Value) bool {
	for _, v := range row {
		if !v.IsMissing() {
			return false
		}
	}
	return true
}

func padRow(row []Value, width int) []Value {
	out := make([]Value, width)
	copy(out, row)
	return out
}
