package excelsummary

// DataLoadError reports a spreadsheet that could not be read into a Dataset:
// a missing file, an unsupported or corrupt format, or a failure while
// streaming its rows.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
