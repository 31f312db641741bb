package pipeline

import (
	"context"
	"io"
	"log/slog"

	"github.com/nao1215/senadoexport/internal/export"
	"github.com/nao1215/senadoexport/internal/model"
)

// previewColumns lists the columns shown by the terminal preview. Tables
// without an entry show every column.
var previewColumns = map[string][]string{
	model.TableSenators: {"nome", "partido", "uf"},
	model.TableBills:    {"sigla", "numero", "ano", "ementa"},
}

// ExportOptions controls how and where tables are written.
type ExportOptions struct {
	// Dir receives one file per non-empty table.
	Dir string

	// Format is the file encoding.
	Format export.Format

	// Gzip compresses every table file.
	Gzip bool

	// Summary also writes export.SummaryFileName.
	Summary bool

	// PreviewRows prints the first rows of each table to Preview. Zero
	// disables the preview.
	PreviewRows int

	// Preview receives the terminal preview. Nil disables it.
	Preview io.Writer
}

// ExportStep writes the dataset's tables to files.
type ExportStep struct {
	opts   ExportOptions
	logger *slog.Logger
}

// NewExportStep creates an ExportStep.
func NewExportStep(opts ExportOptions, logger *slog.Logger) *ExportStep {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Format == "" {
		opts.Format = export.FormatCSV
	}
	return &ExportStep{opts: opts, logger: logger}
}

// Name returns the step name.
func (s *ExportStep) Name() string { return "export" }

// Do writes every non-empty table and records the paths in ds.Files.
// Empty tables produce no file.
func (s *ExportStep) Do(_ context.Context, ds *model.Dataset) error {
	var writeOpts []export.Option
	if s.opts.Gzip {
		writeOpts = append(writeOpts, export.WithGzip())
	}
	if s.opts.Format == export.FormatJSON {
		writeOpts = append(writeOpts, export.WithPrettyPrint())
	}

	for _, t := range ds.Tables() {
		if t.Len() == 0 {
			s.logger.Debug("skipping empty table", "table", t.Name())
			continue
		}

		path, err := export.WriteFile(s.opts.Dir, t, s.opts.Format, writeOpts...)
		if err != nil {
			return err
		}
		ds.Files = append(ds.Files, path)
		s.logger.Info("table exported", "table", t.Name(), "rows", t.Len(), "path", path)

		if err := s.preview(t); err != nil {
			return err
		}
	}

	if s.opts.Summary {
		path, err := export.WriteSummary(s.opts.Dir, ds)
		if err != nil {
			return err
		}
		ds.Files = append(ds.Files, path)
		s.logger.Info("summary written", "path", path)
	}
	return nil
}

func (s *ExportStep) preview(t *model.Table) error {
	if s.opts.Preview == nil || s.opts.PreviewRows <= 0 {
		return nil
	}
	return export.NewPreviewWriter(s.opts.Preview, s.opts.PreviewRows, previewColumns[t.Name()]...).Write(t)
}
