package export

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"
)

// JSONWriter writes a table as an array of objects. Object keys follow the
// column order of the header. Every value is a JSON string, the same text the
// CSV writer would emit; numeric-looking cells are not converted.
type JSONWriter struct {
	output io.Writer
	opts   options
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...Option) *JSONWriter {
	return &JSONWriter{output: output, opts: newOptions(opts)}
}

// Write outputs every record of t.
func (w *JSONWriter) Write(t Table) error {
	data, err := marshalTable(t)
	if err != nil {
		return err
	}

	if w.opts.indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", w.opts.indent); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	data = append(data, '\n')

	return encode(w.output, w.opts.gzip, func(out io.Writer) error {
		_, err := out.Write(data)
		return err
	})
}

// marshalTable encodes t compactly, keeping column order within each object.
func marshalTable(t Table) ([]byte, error) {
	header := t.Header()
	keys := make([][]byte, len(header))
	for i, h := range header {
		k, err := json.Marshal(h)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, rec := range t.Records() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, k := range keys {
			if j > 0 {
				buf.WriteByte(',')
			}
			var cell string
			if j < len(rec) {
				cell = rec[j]
			}
			v, err := json.Marshal(cell)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
