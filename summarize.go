package excelsummary

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

type Format int

const (
	FormatText Format = iota
	FormatTOON
)

// Summarizer prints a profile of each spreadsheet it is given. Load failures
// are reported in the output and never returned.
type Summarizer struct {
	out         io.Writer
	logger      *slog.Logger
	previewRows int
	format      Format
	loadOpts    []InspectorOption
}

type SummarizerOption func(*Summarizer)

func WithLogger(l *slog.Logger) SummarizerOption {
	return func(s *Summarizer) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithPreviewRows(n int) SummarizerOption {
	return func(s *Summarizer) {
		if n >= 0 {
			s.previewRows = n
		}
	}
}

func WithFormat(f Format) SummarizerOption {
	return func(s *Summarizer) {
		s.format = f
	}
}

// WithLoadOptions passes opts to the Inspector for every file.
func WithLoadOptions(opts ...InspectorOption) SummarizerOption {
	return func(s *Summarizer) {
		s.loadOpts = append(s.loadOpts, opts...)
	}
}

func NewSummarizer(out io.Writer, opts ...SummarizerOption) *Summarizer {
	s := &Summarizer{
		out:         out,
		logger:      slog.New(slog.DiscardHandler),
		previewRows: 3,
		format:      FormatText,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize writes one block for path: a header, the profile or an error
// line, and a blank trailer.
func (s *Summarizer) Summarize(path string) {
	fmt.Fprintf(s.out, "--- Analyzing %s ---\n", path)
	if err := s.summarize(path); err != nil {
		var loadErr *DataLoadError
		if errors.As(err, &loadErr) {
			s.logger.Warn("failed to load spreadsheet", "path", path, "error", err)
			fmt.Fprintf(s.out, "Error reading %s: %v\n", path, loadErr.Err)
		} else {
			s.logger.Error("failed to write summary", "path", path, "error", err)
		}
	}
	fmt.Fprint(s.out, "\n\n")
}

func (s *Summarizer) summarize(path string) error {
	start := time.Now()
	ds, err := LoadFile(path, s.loadOpts...)
	if err != nil {
		return err
	}
	s.logger.Debug("loaded spreadsheet",
		"path", path,
		"sheet", ds.Sheet,
		"rows", len(ds.Rows),
		"columns", len(ds.Columns),
		"elapsed", time.Since(start),
	)

	report := NewReport(ds, s.previewRows)
	if s.format == FormatTOON {
		out, err := RenderTOON(report)
		if err != nil {
			return fmt.Errorf("failed to render TOON: %w", err)
		}
		_, err = fmt.Fprintln(s.out, out)
		return err
	}
	return RenderText(s.out, report)
}
