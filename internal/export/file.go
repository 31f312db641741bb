package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/senadoexport/internal/model"
)

// SummaryFileName is the name of the Markdown run summary.
const SummaryFileName = "resumo.md"

// FileName returns the file name of a table exported in format f.
func FileName(table string, f Format, compress bool) string {
	name := table + "." + string(f)
	if compress {
		name += ".gz"
	}
	return name
}

// WriteFile writes t into dir, creating dir if needed, and returns the path
// written.
func WriteFile(dir string, t Table, f Format, opts ...Option) (path string, err error) {
	o := newOptions(opts)
	path = filepath.Join(dir, FileName(t.Name(), f, o.gzip))

	err = createFile(dir, path, func(file *os.File) error {
		w, err := NewWriter(file, f, opts...)
		if err != nil {
			return err
		}
		return w.Write(t)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// WriteSummary writes the Markdown summary of ds into dir and returns the
// path written.
func WriteSummary(dir string, ds *model.Dataset) (string, error) {
	path := filepath.Join(dir, SummaryFileName)
	err := createFile(dir, path, func(file *os.File) error {
		return NewMarkdownWriter(file).Write(ds)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// createFile creates path inside dir and runs write on it. The file is
// removed again if write fails.
func createFile(dir, path string, write func(*os.File) error) (err error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	file, err := os.Create(path) //nolint:gosec // output path is built from the configured directory
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := write(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
