package writer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/home-energy-audit/energy-import/context_values"
	"github.com/home-energy-audit/energy-import/table"
	"github.com/home-energy-audit/energy-import/tables"
)

type Format string

const (
	FormatCsv   Format = "csv"
	FormatJsonl Format = "jsonl"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCsv, FormatJsonl:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format '%s': must be one of %s, %s", s, FormatCsv, FormatJsonl)
	}
}

// tableEncoder writes a table to an open file
type tableEncoder func(f *os.File, t *table.Table) error

// Writer persists extracted tables and text into the clean data directory
// tables are written as <dir>/<name>.<format>, text as <dir>/<name>.txt
type Writer struct {
	destPath string
	format   Format
	encode   tableEncoder
}

func NewWriter(destPath string, format Format) (*Writer, error) {
	w := &Writer{destPath: destPath, format: format}
	switch format {
	case FormatCsv:
		w.encode = encodeCsv
	case FormatJsonl:
		w.encode = encodeJsonl
	default:
		return nil, fmt.Errorf("unsupported output format '%s'", format)
	}
	return w, nil
}

// WriteOutput writes every table and text of the output, returning the paths written
func (w *Writer) WriteOutput(ctx context.Context, o *tables.Output) ([]string, error) {
	var paths []string
	for _, t := range o.Tables {
		p, err := w.WriteTable(ctx, t.Name, t.Table)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	for _, t := range o.Texts {
		p, err := w.WriteText(ctx, t.Name, t.Text)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func (w *Writer) WriteTable(ctx context.Context, name string, t *table.Table) (string, error) {
	filename := filepath.Join(w.destPath, fmt.Sprintf("%s.%s", name, w.format))
	err := w.writeFile(filename, func(f *os.File) error {
		return w.encode(f, t)
	})
	if err != nil {
		return "", err
	}
	logWrite(ctx, filename, "rows", t.NumRows())
	return filename, nil
}

func (w *Writer) WriteText(ctx context.Context, name, text string) (string, error) {
	filename := filepath.Join(w.destPath, name+".txt")
	err := w.writeFile(filename, func(f *os.File) error {
		_, err := f.WriteString(text)
		return err
	})
	if err != nil {
		return "", err
	}
	logWrite(ctx, filename, "bytes", len(text))
	return filename, nil
}

func (w *Writer) writeFile(filename string, write func(*os.File) error) error {
	if err := os.MkdirAll(w.destPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.destPath, err)
	}

	file, err := os.Create(filename)
	if err != nil {
		slog.Error("failed to create output file", "error", err)
		return fmt.Errorf("failed to create output file %s: %w", filename, err)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return file.Close()
}

func logWrite(ctx context.Context, filename string, args ...any) {
	args = append([]any{"file", filename}, args...)
	if executionId, err := context_values.ExecutionIdFromContext(ctx); err == nil {
		args = append(args, "execution_id", executionId)
	}
	slog.Info("wrote output file", args...)
}
