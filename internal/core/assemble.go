package core

// assemble.go turns a loaded table into its cleaned, canonically ordered form.
//
// Assembly happens in two passes:
//  1. Schema check: header columns first, then every row, so a structural
//     problem aborts before any row is transformed.
//  2. Transform: each row gets its normalized Team/Position and is rebuilt
//     in the order produced by ColumnOrder.

// Report summarizes how the normalizer treated the rows of a table.
type Report struct {
	Rows       int
	RuleCounts map[SplitRule]int
	Patterns   []PatternError // Rows whose team text matched no split rule
}

// Count returns the number of rows handled by rule.
func (r *Report) Count(rule SplitRule) int {
	if r == nil {
		return 0
	}
	return r.RuleCounts[rule]
}

// Repaired returns the number of rows whose combined code was split.
func (r *Report) Repaired() int {
	return r.Count(RuleCombinedCode)
}

// Result is the output of Assemble.
type Result struct {
	Table  *Table
	Report Report
}

// ColumnOrder returns the output column list for a header:
// Rank, Player, Team, Position, then every other column in its original
// relative order. Repeats of the four canonical names are dropped.
func ColumnOrder(columns []string) []string {
	order := make([]string, 0, len(columns))
	order = append(order, CanonicalColumns...)

	for _, col := range columns {
		if isCanonical(col) {
			continue
		}
		order = append(order, col)
	}
	return order
}

func isCanonical(name string) bool {
	for _, c := range CanonicalColumns {
		if name == c {
			return true
		}
	}
	return false
}

// ValidateColumns checks that every canonical column is in the header.
func ValidateColumns(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}

	var missing []string
	for _, c := range CanonicalColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}

	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// ValidateRecord checks that a row carries both the Team and Position fields.
// Empty or missing values are fine; an absent field is not.
func ValidateRecord(rec Record) error {
	for _, name := range []string{ColTeam, ColPosition} {
		if !rec.Has(name) {
			return &SchemaError{Line: rec.Line, Field: name}
		}
	}
	return nil
}

// Assemble normalizes every row of t and reorders its columns.
// The input table is not modified. Row count and row order are preserved,
// and fields other than Team and Position keep their values.
//
// Returns a *SchemaError, with no partial result, if the header lacks a
// canonical column or any row lacks its Team or Position field. A nil table
// lacks every canonical column.
func Assemble(t *Table) (*Result, error) {
	if t == nil {
		return nil, &SchemaError{Missing: append([]string(nil), CanonicalColumns...)}
	}
	if err := ValidateColumns(t.Columns); err != nil {
		return nil, err
	}
	for _, rec := range t.Records {
		if err := ValidateRecord(rec); err != nil {
			return nil, err
		}
	}

	order := ColumnOrder(t.Columns)
	out := &Table{
		Columns: order,
		Records: make([]Record, 0, len(t.Records)),
	}
	report := Report{
		Rows:       len(t.Records),
		RuleCounts: make(map[SplitRule]int, len(SplitRules)),
	}

	for _, rec := range t.Records {
		team, _ := rec.Get(ColTeam)
		position, _ := rec.Get(ColPosition)

		split := NormalizeTeamPosition(team, position)
		report.RuleCounts[split.Rule]++
		if split.Rule == RuleFallback && split.Team != "" {
			report.Patterns = append(report.Patterns, PatternError{Line: rec.Line, Team: split.Team})
		}

		out.Records = append(out.Records, reorder(rec, order, split))
	}

	return &Result{Table: out, Report: report}, nil
}

// reorder rebuilds rec in column order with the split applied.
// Non-canonical fields are taken positionally so repeated column names keep
// their own values.
func reorder(rec Record, order []string, split Split) Record {
	rank, _ := rec.Get(ColRank)
	player, _ := rec.Get(ColPlayer)

	fields := make([]Field, 0, len(order))
	fields = append(fields,
		Field{Name: ColRank, Cell: rank},
		Field{Name: ColPlayer, Cell: player},
		Field{Name: ColTeam, Cell: Text(split.Team)},
		Field{Name: ColPosition, Cell: Text(split.Position)},
	)
	for _, f := range rec.Fields {
		if !isCanonical(f.Name) {
			fields = append(fields, f)
		}
	}

	// Short rows: absent trailing columns become missing cells.
	for i := len(fields); i < len(order); i++ {
		fields = append(fields, Field{Name: order[i]})
	}

	return Record{Line: rec.Line, Fields: fields}
}
