package export

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/nao1215/senadoexport/internal/analysis"
)

// maxCellWidth truncates long cells such as bill summaries.
const maxCellWidth = 60

// PreviewWriter prints the first rows of a table for a quick look in the
// terminal.
type PreviewWriter struct {
	output  io.Writer
	rows    int
	columns []string
}

// NewPreviewWriter creates a PreviewWriter that prints up to rows records.
// When columns are given, only those columns are shown; unknown names are
// ignored.
func NewPreviewWriter(output io.Writer, rows int, columns ...string) *PreviewWriter {
	return &PreviewWriter{output: output, rows: rows, columns: columns}
}

// Write renders the preview of t.
func (w *PreviewWriter) Write(t Table) error {
	idx := columnIndexes(t.Header(), w.columns)

	tw := newTableWriter(w.output)
	tw.SetTitle("%s", t.Name())

	header := make(table.Row, 0, len(idx))
	for _, i := range idx {
		header = append(header, t.Header()[i])
	}
	tw.AppendHeader(header)

	records := t.Records()
	shown := max(0, min(w.rows, len(records)))
	for _, rec := range records[:shown] {
		row := make(table.Row, 0, len(idx))
		for _, i := range idx {
			var cell string
			if i < len(rec) {
				cell = truncate(rec[i], maxCellWidth)
			}
			row = append(row, cell)
		}
		tw.AppendRow(row)
	}
	tw.AppendFooter(table.Row{strconv.Itoa(shown) + " of " + strconv.Itoa(len(records)) + " rows"})

	tw.Render()
	return nil
}

// WriteDistribution prints a distribution with counts and percentages.
func WriteDistribution(output io.Writer, title, keyHeader string, d analysis.Distribution) {
	tw := newTableWriter(output)
	tw.SetTitle("%s", title)
	tw.AppendHeader(table.Row{keyHeader, "senadores", "%"})
	for _, c := range d {
		tw.AppendRow(table.Row{c.Key, c.N, strconv.FormatFloat(d.Share(c), 'f', 1, 64)})
	}
	tw.AppendFooter(table.Row{"total", d.Total(), ""})
	tw.Render()
}

func newTableWriter(output io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetOutputMirror(output)
	return tw
}

// columnIndexes maps column names to header positions. With no names, every
// column is selected.
func columnIndexes(header, columns []string) []int {
	if len(columns) == 0 {
		idx := make([]int, len(header))
		for i := range header {
			idx[i] = i
		}
		return idx
	}

	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[h] = i
	}
	idx := make([]int, 0, len(columns))
	for _, c := range columns {
		if i, ok := pos[c]; ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// truncate shortens s to maxLen runes with an ellipsis.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
