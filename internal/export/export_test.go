package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/senadoexport/internal/analysis"
	"github.com/nao1215/senadoexport/internal/model"
)

func senatorTable(rows ...model.Senator) *model.Table {
	return model.NewTable(model.TableSenators, model.SenatorColumns, rows)
}

var sampleSenators = []model.Senator{
	{ID: "5672", Name: "Ana Souza", Party: "PT", State: "BA", Email: "sen.ana@senado.leg.br"},
	{ID: "0042", Name: "Bruno, o \"Velho\"", Party: "PL", State: "SP"},
	{ID: "7", Name: "Carla\nLima", Party: "", State: "MG"},
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"csv", "json"} {
		f, err := ParseFormat(s)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", s, err)
		}
		if string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, expected %q", s, f, s)
		}
	}

	if _, err := ParseFormat("xlsx"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xlsx) error = %v, expected ErrUnknownFormat", err)
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		table string
		f     Format
		gzip  bool
		want  string
	}{
		{model.TableSenators, FormatCSV, false, "senadores_atuais.csv"},
		{model.TableBills, FormatCSV, false, "materias_legislativas.csv"},
		{model.TableProgress, FormatJSON, false, "tramitacoes.json"},
		{model.TableVotes, FormatCSV, true, "votacoes.csv.gz"},
	}
	for _, tt := range tests {
		if got := FileName(tt.table, tt.f, tt.gzip); got != tt.want {
			t.Errorf("FileName(%q, %q, %v) = %q, expected %q", tt.table, tt.f, tt.gzip, got, tt.want)
		}
	}
}

func TestCSVWriter(t *testing.T) {
	t.Parallel()

	t.Run("header only for empty table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := NewCSVWriter(&buf).Write(senatorTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "id,nome,partido,uf,email,foto_url,pagina_url\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, expected %q", got, want)
		}
	})

	t.Run("quotes special characters", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := NewCSVWriter(&buf).Write(senatorTable(sampleSenators[1])); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"Bruno, o ""Velho"""`) {
			t.Errorf("expected quoted name in output: %s", buf.String())
		}
	})
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	table := senatorTable(sampleSenators...)

	for _, compress := range []bool{false, true} {
		compress := compress
		name := "plain"
		var opts []Option
		if compress {
			name = "gzip"
			opts = append(opts, WithGzip())
		}

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := NewCSVWriter(&buf, opts...).Write(table); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := bytes.HasPrefix(buf.Bytes(), gzipMagic); got != compress {
				t.Errorf("gzip magic present = %v, expected %v", got, compress)
			}

			header, records, err := ReadCSV(&buf)
			if err != nil {
				t.Fatalf("ReadCSV() error = %v", err)
			}
			if diff := cmp.Diff(model.SenatorColumns, header); diff != "" {
				t.Errorf("header mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(table.Records(), records); diff != "" {
				t.Errorf("records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	if _, _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, ErrEmptyCSV) {
		t.Errorf("ReadCSV(empty) error = %v, expected ErrEmptyCSV", err)
	}

	header, records, err := ReadCSV(strings.NewReader("a,b\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(header) != 2 || records == nil || len(records) != 0 {
		t.Errorf("ReadCSV(header only) = %v, %v", header, records)
	}

	if _, _, err := ReadCSV(strings.NewReader("a,b\n1,2,3\n")); err == nil {
		t.Error("expected error for ragged record")
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("array of objects in column order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := NewJSONWriter(&buf).Write(senatorTable(sampleSenators...)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got []map[string]string
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len = %d, expected 3", len(got))
		}
		if got[1]["id"] != "0042" {
			t.Errorf("id = %q, expected %q (leading zeros kept)", got[1]["id"], "0042")
		}
		if got[2]["nome"] != "Carla\nLima" {
			t.Errorf("nome = %q, expected embedded newline", got[2]["nome"])
		}

		out := buf.String()
		if strings.Index(out, `"id"`) > strings.Index(out, `"nome"`) {
			t.Errorf("expected id before nome: %s", out)
		}
	})

	t.Run("numeric-looking cells stay strings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := NewJSONWriter(&buf).Write(senatorTable(sampleSenators...)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got []map[string]any
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		for i, want := range []string{"5672", "0042", "7"} {
			if id, ok := got[i]["id"].(string); !ok || id != want {
				t.Errorf("row %d id = %#v, expected string %q", i, got[i]["id"], want)
			}
		}
		if party, ok := got[2]["partido"].(string); !ok || party != "" {
			t.Errorf("empty party = %#v, expected empty string", got[2]["partido"])
		}
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := NewJSONWriter(&buf).Write(senatorTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := buf.String(); got != "[]\n" {
			t.Errorf("output = %q, expected %q", got, "[]\n")
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := NewJSONWriter(&buf, WithPrettyPrint()).Write(senatorTable(sampleSenators[0])); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n    \"id\": \"5672\"") {
			t.Errorf("expected indented output, got: %s", buf.String())
		}
	})
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates directory and csv file", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "data", "nested")
		path, err := WriteFile(dir, senatorTable(sampleSenators...), FormatCSV)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := filepath.Join(dir, "senadores_atuais.csv"); path != want {
			t.Errorf("path = %q, expected %q", path, want)
		}

		f, err := os.Open(path) //nolint:gosec // test file
		if err != nil {
			t.Fatalf("failed to open: %v", err)
		}
		defer f.Close()

		_, records, err := ReadCSV(f)
		if err != nil {
			t.Fatalf("ReadCSV() error = %v", err)
		}
		if len(records) != 3 {
			t.Errorf("records = %d, expected 3", len(records))
		}
	})

	t.Run("gzip json file name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path, err := WriteFile(dir, senatorTable(), FormatJSON, WithGzip())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filepath.Base(path) != "senadores_atuais.json.gz" {
			t.Errorf("file = %q, expected senadores_atuais.json.gz", filepath.Base(path))
		}
	})

	t.Run("unknown format leaves no file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := WriteFile(dir, senatorTable(), Format("xml"))
		if !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("error = %v, expected ErrUnknownFormat", err)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Errorf("expected empty dir, found %d entries", len(entries))
		}
	})
}

func TestPreviewWriter(t *testing.T) {
	t.Parallel()

	rows := make([]model.Senator, 0, 7)
	for i := 0; i < 7; i++ {
		rows = append(rows, model.Senator{ID: string(rune('A' + i)), Name: "Senador " + string(rune('A'+i)), Party: "PT", State: "BA", Email: "x@senado.leg.br"})
	}

	var buf bytes.Buffer
	if err := NewPreviewWriter(&buf, 5, "nome", "partido", "uf", "missing").Write(senatorTable(rows...)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Senador E") {
		t.Errorf("expected fifth row in preview: %s", out)
	}
	if strings.Contains(out, "Senador F") {
		t.Errorf("expected sixth row to be cut: %s", out)
	}
	if strings.Contains(out, "x@senado.leg.br") {
		t.Errorf("expected email column to be hidden: %s", out)
	}
	if !strings.Contains(strings.ToLower(out), "5 of 7 rows") {
		t.Errorf("expected row count footer: %s", out)
	}
}

func TestWriteDistribution(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WriteDistribution(&buf, "Senadores por partido", "partido", analysis.Distribution{{Key: "PL", N: 3}, {Key: "PT", N: 1}})

	out := buf.String()
	for _, want := range []string{"PL", "PT", "75.0", "25.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output: %s", want, out)
		}
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	ds := model.NewDataset()
	ds.StartedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ds.Senators = sampleSenators
	ds.Bills = []model.Bill{{ID: "160000", Acronym: "PL", Number: "1", Year: "2024"}}
	ds.ProgressBillID = "160000"
	ds.Detail = &model.SenatorDetail{ID: "5672", Name: "Ana Souza", Party: "PT", State: "BA"}
	ds.AddSkipped(model.TableSenators, 2)
	ds.Files = []string{filepath.Join("data", "senadores_atuais.csv")}
	ds.Errors = []string{"fetch-votes: boom"}

	var buf bytes.Buffer
	if err := NewMarkdownWriter(&buf).Write(ds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Resumo da exportação",
		"2024-05-01 10:00:00 UTC",
		"| senadores_atuais | 3 | 2 | senadores_atuais.csv |",
		"| materias_legislativas | 1 | 0 | - |",
		"## Detalhe do senador",
		"Ana Souza",
		"```mermaid",
		"## Senadores por UF",
		"fetch-votes: boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in summary:\n%s", want, out)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := WriteSummary(dir, model.NewDataset())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != SummaryFileName {
		t.Errorf("file = %q, expected %q", filepath.Base(path), SummaryFileName)
	}
	data, err := os.ReadFile(path) //nolint:gosec // test file
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	if strings.Contains(string(data), "Senadores por partido") {
		t.Error("expected no distribution section without senators")
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"curto", 10, "curto"},
		{"ementa longa demais", 10, "ementa ..."},
		{"ação", 3, "açã"},
		{"tramitação", 9, "tramit..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.max, got, tt.want)
		}
	}
}
