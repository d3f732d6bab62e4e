package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// CSVWriter appends records of type T to a CSV stream, writing the header
// with the first row. A nil writer discards everything, so callers can leave
// output disabled without branching.
type CSVWriter[T any] struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewCSVWriter creates the file at path, including missing parent
// directories. It returns nil when path is empty.
func NewCSVWriter[T any](path string) (*CSVWriter[T], error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return &CSVWriter[T]{w: f, closer: f}, nil
}

// NewCSVStream writes to w. Close does not close w.
func NewCSVStream[T any](w io.Writer) *CSVWriter[T] {
	return &CSVWriter[T]{w: w}
}

// Write appends rows.
func (c *CSVWriter[T]) Write(rows ...T) error {
	if c == nil || len(rows) == 0 {
		return nil
	}
	if !c.headerWritten {
		if err := gocsv.Marshal(rows, c.w); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
		c.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, c.w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the writer owns one.
func (c *CSVWriter[T]) Close() error {
	if c == nil || c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// ReadCSV parses every row of the CSV file at path.
func ReadCSV[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var rows []T
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}
