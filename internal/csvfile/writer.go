package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/draftclean/internal/core"
	"github.com/spf13/afero"
)

// Writer persists tables as delimited files.
type Writer struct {
	fs        afero.Fs
	delimiter rune
}

// NewWriter creates a writer over fsys using delimiter (default ',').
func NewWriter(fsys afero.Fs, delimiter rune) *Writer {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Writer{fs: fsys, delimiter: delimiter}
}

// Write stores t at path: one header row, then one row per record with the
// record's field order. Missing cells are written empty and no index column
// is added.
//
// The table is written to a temporary file next to path and renamed into
// place, so path is either the complete new file or untouched. A replaced
// file keeps its permissions; a new one gets 0644.
func (w *Writer) Write(path string, t *core.Table) (err error) {
	if err := validDelimiter(w.delimiter); err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, statErr := w.fs.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("write destination %s: %w", path, err)
	}

	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write destination %s: %w", path, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			w.fs.Remove(tmpName)
		}
	}()

	cw := csv.NewWriter(tmp)
	cw.Comma = w.delimiter

	if err = cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write destination %s: %w", path, err)
	}

	row := make([]string, 0, len(t.Columns))
	for _, rec := range t.Records {
		row = row[:0]
		for _, f := range rec.Fields {
			row = append(row, f.Cell.String())
		}
		if err = cw.Write(row); err != nil {
			return fmt.Errorf("write destination %s: line %d: %w", path, rec.Line, err)
		}
	}

	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("write destination %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("write destination %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write destination %s: %w", path, err)
	}
	if err = w.fs.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("write destination %s: %w", path, err)
	}
	if err = w.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write destination %s: %w", path, err)
	}

	return nil
}
