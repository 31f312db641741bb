package export

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Table is a named set of records sharing one header.
type Table interface {
	Name() string
	Header() []string
	Records() [][]string
}

// Writer writes a whole table to its destination.
type Writer interface {
	Write(t Table) error
}

// Format selects the file encoding of exported tables.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Option configures the CSV and JSON writers.
type Option func(*options)

type options struct {
	gzip   bool
	indent string
}

// WithGzip compresses the output with gzip.
func WithGzip() Option {
	return func(o *options) {
		o.gzip = true
	}
}

// WithPrettyPrint indents JSON output by two spaces. CSV output ignores it.
func WithPrettyPrint() Option {
	return func(o *options) {
		o.indent = "  "
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewWriter returns the writer for format f.
func NewWriter(output io.Writer, f Format, opts ...Option) (Writer, error) {
	switch f {
	case FormatCSV:
		return NewCSVWriter(output, opts...), nil
	case FormatJSON:
		return NewJSONWriter(output, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// encode runs write against output, through a gzip stream when compress is set.
func encode(output io.Writer, compress bool, write func(io.Writer) error) error {
	if !compress {
		return write(output)
	}

	zw := gzip.NewWriter(output)
	if err := write(zw); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}
