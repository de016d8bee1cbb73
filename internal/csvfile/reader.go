// Package csvfile loads and persists delimited draft tables.
//
// Reading is the input collaborator of the cleaning pipeline: it turns a
// delimited file into a core.Table, signalling a *core.MissingInputError when
// the source does not exist. Writing is the output collaborator: it persists
// a table with no index column, replacing the destination atomically.
//
// Both sides work on an afero.Fs so tests can run against memory.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/JonMunkholm/draftclean/internal/core"
	"github.com/spf13/afero"
)

// DefaultMissingMarkers are the Team and Position texts read as "no value",
// matching the NA list used by common data-frame CSV loaders. An empty cell
// is always missing regardless of this list. Other columns keep marker text
// verbatim.
var DefaultMissingMarkers = []string{
	"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// ReadOptions controls how a source file is parsed.
type ReadOptions struct {
	Delimiter      rune     // Field separator (default ',')
	MissingMarkers []string // Team/Position texts treated as missing
	MaxFileSize    int64    // Largest accepted source in bytes, 0 for no limit
}

// Source is a loaded file together with its read statistics.
type Source struct {
	Path      string
	Size      int64
	BytesRead int64
	Table     *core.Table
}

// Reader loads delimited files into tables.
type Reader struct {
	fs      afero.Fs
	opts    ReadOptions
	missing map[string]bool
}

// NewReader creates a reader over fsys.
func NewReader(fsys afero.Fs, opts ReadOptions) *Reader {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	missing := make(map[string]bool, len(opts.MissingMarkers))
	for _, m := range opts.MissingMarkers {
		missing[m] = true
	}
	return &Reader{fs: fsys, opts: opts, missing: missing}
}

// Load reads the file at path.
//
// Returns *core.MissingInputError if path does not exist. Rows shorter than
// the header are kept with their trailing fields absent so the assembler can
// report them; rows longer than the header are rejected. Blank lines are
// skipped. Invalid UTF-8 anywhere in the file is an "encoding error".
func (r *Reader) Load(path string) (*Source, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &core.MissingInputError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("invalid csv: %s is a directory", path)
	}
	if r.opts.MaxFileSize > 0 && info.Size() > r.opts.MaxFileSize {
		return nil, fmt.Errorf("file too large: %s is %d bytes, limit is %d", path, info.Size(), r.opts.MaxFileSize)
	}
	if err := validDelimiter(r.opts.Delimiter); err != nil {
		return nil, err
	}

	f, err := r.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src := wrapSource(f)
	table, err := r.parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Source{
		Path:      path,
		Size:      info.Size(),
		BytesRead: src.n,
		Table:     table,
	}, nil
}

func (r *Reader) parse(src io.Reader) (*core.Table, error) {
	cr := csv.NewReader(src)
	cr.Comma = r.opts.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: no header row")
	}
	if err != nil {
		return nil, err
	}

	headerLine, _ := cr.FieldPos(0)
	if err := checkEncoding(header, headerLine); err != nil {
		return nil, err
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	table := &core.Table{Columns: columns}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		if len(row) > len(columns) {
			return nil, fmt.Errorf("invalid csv: line %d has %d fields, header has %d", line, len(row), len(columns))
		}
		if err := checkEncoding(row, line); err != nil {
			return nil, err
		}

		rec := core.Record{Line: line, Fields: make([]core.Field, len(row))}
		for i, v := range row {
			rec.Fields[i] = core.Field{Name: columns[i], Cell: r.cell(columns[i], v)}
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}

// cell converts raw text for column name. Empty cells are always missing;
// marker text only counts as missing in the Team and Position columns, where
// it feeds the split rules.
func (r *Reader) cell(name, v string) core.Cell {
	if v == "" {
		return core.Missing()
	}
	if (name == core.ColTeam || name == core.ColPosition) && r.missing[v] {
		return core.Missing()
	}
	return core.Text(v)
}

// checkEncoding rejects fields that are not valid UTF-8.
func checkEncoding(fields []string, line int) error {
	for i, f := range fields {
		if !utf8.ValidString(f) {
			return fmt.Errorf("encoding error: line %d field %d is not valid UTF-8", line, i+1)
		}
	}
	return nil
}

// validDelimiter mirrors the checks encoding/csv applies to Comma.
func validDelimiter(d rune) error {
	if d == 0 || d == '"' || d == '\r' || d == '\n' || !utf8.ValidRune(d) || d == utf8.RuneError {
		return fmt.Errorf("invalid delimiter %q", d)
	}
	return nil
}
