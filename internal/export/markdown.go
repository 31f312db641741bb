package export

import (
	"io"
	"path/filepath"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/senadoexport/internal/analysis"
	"github.com/nao1215/senadoexport/internal/model"
)

// maxPieSlices caps the party pie chart; smaller parties are grouped.
const maxPieSlices = 8

// MarkdownWriter writes the run summary of a dataset as GitHub Flavored
// Markdown.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the summary of ds.
func (w *MarkdownWriter) Write(ds *model.Dataset) error {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, ds)
	w.writeTables(md, ds)
	w.writeDetail(md, ds)
	w.writeDistributions(md, ds)
	w.writeErrors(md, ds)
	w.writeFooter(md)

	return md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, ds *model.Dataset) {
	md.H1("Resumo da exportação")
	md.PlainText("")

	rows := [][]string{
		{"Início", ds.StartedAt.Format("2006-01-02 15:04:05 MST")},
		{"Linhas exportadas", strconv.Itoa(ds.TotalRows())},
	}
	if ds.ProgressBillID != "" {
		rows = append(rows, []string{"Matéria das tramitações", "`" + ds.ProgressBillID + "`"})
	}
	if ds.VotesSenatorID != "" {
		rows = append(rows, []string{"Senador das votações", "`" + ds.VotesSenatorID + "`"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Propriedade", "Valor"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeTables(md *markdown.Markdown, ds *model.Dataset) {
	md.H2("Tabelas")
	md.PlainText("")

	files := make(map[string]string, len(ds.Files))
	for _, f := range ds.Files {
		files[tableOfFile(f)] = filepath.Base(f)
	}

	rows := make([][]string, 0, 5)
	for _, t := range ds.Tables() {
		file := files[t.Name()]
		if file == "" {
			file = "-"
		}
		rows = append(rows, []string{
			t.Name(),
			strconv.Itoa(t.Len()),
			strconv.Itoa(ds.Skipped[t.Name()]),
			file,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Tabela", "Linhas", "Descartadas", "Arquivo"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(ds.Skipped) > 0 {
		md.Note("Registros sem campos obrigatórios foram descartados; veja o log para os detalhes.")
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeDetail(md *markdown.Markdown, ds *model.Dataset) {
	if ds.Detail == nil {
		return
	}
	md.H2("Detalhe do senador")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Código", "Nome", "Partido", "UF"},
		Rows:   [][]string{{ds.Detail.ID, ds.Detail.Name, orDash(ds.Detail.Party), orDash(ds.Detail.State)}},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeDistributions(md *markdown.Markdown, ds *model.Dataset) {
	if len(ds.Senators) == 0 {
		return
	}

	parties := analysis.ByParty(ds.Senators)
	md.H2("Senadores por partido")
	md.PlainText("")
	writeDistributionTable(md, "Partido", parties)
	writePieChart(md, "Senadores por partido", parties)

	md.H2("Senadores por UF")
	md.PlainText("")
	writeDistributionTable(md, "UF", analysis.ByState(ds.Senators))
}

func writeDistributionTable(md *markdown.Markdown, keyHeader string, d analysis.Distribution) {
	rows := make([][]string, 0, len(d))
	for _, c := range d {
		rows = append(rows, []string{c.Key, strconv.Itoa(c.N), strconv.FormatFloat(d.Share(c), 'f', 1, 64)})
	}
	md.Table(markdown.TableSet{
		Header: []string{keyHeader, "Senadores", "%"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writePieChart(md *markdown.Markdown, title string, d analysis.Distribution) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(title),
		piechart.WithShowData(true),
	)

	others := 0
	for i, c := range d {
		if i < maxPieSlices {
			chart.LabelAndIntValue(c.Key, uint64(c.N)) //nolint:gosec // counts are non-negative
			continue
		}
		others += c.N
	}
	if others > 0 {
		chart.LabelAndIntValue("Outros", uint64(others)) //nolint:gosec // counts are non-negative
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeErrors(md *markdown.Markdown, ds *model.Dataset) {
	if len(ds.Errors) == 0 {
		return
	}
	md.H2("Falhas")
	md.PlainText("")
	md.Warningf("%d etapa(s) falharam; os arquivos podem estar incompletos.", len(ds.Errors))
	md.PlainText("")
	md.BulletList(ds.Errors...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Gerado por [senadoexport](https://github.com/nao1215/senadoexport) a partir dos Dados Abertos do Senado Federal*")
}

// tableOfFile returns the table name a file was exported from.
func tableOfFile(path string) string {
	name := filepath.Base(path)
	for ext := filepath.Ext(name); ext != ""; ext = filepath.Ext(name) {
		name = name[:len(name)-len(ext)]
	}
	return name
}

func orDash(s string) string {
	if s == "" {
		return analysis.BlankKey
	}
	return s
}
