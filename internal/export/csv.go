package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// CSVWriter writes a table as RFC 4180 CSV with a header row.
type CSVWriter struct {
	output io.Writer
	opts   options
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer, opts ...Option) *CSVWriter {
	return &CSVWriter{output: output, opts: newOptions(opts)}
}

// Write outputs the header and every record of t.
func (w *CSVWriter) Write(t Table) error {
	return encode(w.output, w.opts.gzip, func(out io.Writer) error {
		cw := csv.NewWriter(out)
		if err := cw.Write(t.Header()); err != nil {
			return fmt.Errorf("failed to write %s header: %w", t.Name(), err)
		}
		if err := cw.WriteAll(t.Records()); err != nil {
			return fmt.Errorf("failed to write %s records: %w", t.Name(), err)
		}
		return nil
	})
}

var gzipMagic = []byte{0x1f, 0x8b}

// ReadCSV parses CSV produced by CSVWriter, gzip-compressed or not.
// It returns the header and the remaining records.
func ReadCSV(r io.Reader) ([]string, [][]string, error) {
	br := bufio.NewReader(r)

	var src io.Reader = br
	if magic, err := br.Peek(len(gzipMagic)); err == nil && bytes.Equal(magic, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	cr := csv.NewReader(src)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrEmptyCSV
		}
		return nil, nil, err
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if records == nil {
		records = [][]string{}
	}
	return header, records, nil
}
