package core

// Canonical column names. These four lead every output row.
const (
	ColRank     = "Rank"
	ColPlayer   = "Player"
	ColTeam     = "Team"
	ColPosition = "Position"
)

// CanonicalColumns is the fixed leading column order of an assembled table.
var CanonicalColumns = []string{ColRank, ColPlayer, ColTeam, ColPosition}

// Cell is an optional text value.
// Valid=false means no value was recorded; Valid=true with an empty Value
// means the value is present but empty.
type Cell struct {
	Value string
	Valid bool
}

// Text returns a present cell holding s.
func Text(s string) Cell {
	return Cell{Value: s, Valid: true}
}

// Missing returns a cell with no recorded value.
func Missing() Cell {
	return Cell{}
}

// String returns the cell text, or "" for a missing cell.
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

// IsBlank reports whether the cell is missing or holds the empty string.
func (c Cell) IsBlank() bool {
	return !c.Valid || c.Value == ""
}

// Field is one named value within a record.
type Field struct {
	Name string
	Cell Cell
}

// Record is one table row as an ordered list of named fields.
type Record struct {
	Line   int // 1-indexed source line, 0 if unknown
	Fields []Field
}

// Get returns the first field called name.
// The boolean is false when the record has no such field at all.
func (r Record) Get(name string) (Cell, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Cell, true
		}
	}
	return Cell{}, false
}

// Has reports whether the record carries a field called name.
func (r Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns the field names in record order.
func (r Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// Table is an ordered sequence of records sharing one header.
type Table struct {
	Columns []string
	Records []Record
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}
