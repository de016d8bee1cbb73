package core

import (
	"errors"
	"reflect"
	"testing"
)

// newRecord builds a record from alternating name/value pairs.
// A value of nil produces a missing cell.
func newRecord(line int, kv ...any) Record {
	rec := Record{Line: line}
	for i := 0; i+1 < len(kv); i += 2 {
		name := kv[i].(string)
		cell := Missing()
		if s, ok := kv[i+1].(string); ok {
			cell = Text(s)
		}
		rec.Fields = append(rec.Fields, Field{Name: name, Cell: cell})
	}
	return rec
}

func cellValues(rec Record) []string {
	out := make([]string, len(rec.Fields))
	for i, f := range rec.Fields {
		out[i] = f.Cell.String()
	}
	return out
}

func TestColumnOrder(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    []string
	}{
		{
			name:    "already canonical",
			columns: []string{"Rank", "Player", "Team", "Position"},
			want:    []string{"Rank", "Player", "Team", "Position"},
		},
		{
			name:    "extra columns keep relative order",
			columns: []string{"Bye", "Team", "ADP", "Player", "Position", "Rank", "Tier"},
			want:    []string{"Rank", "Player", "Team", "Position", "Bye", "ADP", "Tier"},
		},
		{
			name:    "repeated canonical names are dropped",
			columns: []string{"Rank", "Player", "Team", "Position", "Notes", "Team"},
			want:    []string{"Rank", "Player", "Team", "Position", "Notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnOrder(tt.columns)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ColumnOrder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssemble_CombinedCode(t *testing.T) {
	table := &Table{
		Columns: []string{"Rank", "Player", "Team", "Position"},
		Records: []Record{
			newRecord(2, "Rank", "1", "Player", "John Doe", "Team", "KciD", "Position", ""),
		},
	}

	res, err := Assemble(table)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	got := cellValues(res.Table.Records[0])
	want := []string{"1", "John Doe", "Kci", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("row = %v, want %v", got, want)
	}
	if res.Report.Repaired() != 1 {
		t.Errorf("Repaired() = %d, want 1", res.Report.Repaired())
	}
}

func TestAssemble_AlreadySplitIsReordered(t *testing.T) {
	table := &Table{
		Columns: []string{"Position", "Team", "Player", "Rank"},
		Records: []Record{
			newRecord(2, "Position", "QB", "Team", "NE", "Player", "Jane Roe", "Rank", "2"),
		},
	}

	res, err := Assemble(table)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	rec := res.Table.Records[0]
	if names := rec.Names(); !reflect.DeepEqual(names, CanonicalColumns) {
		t.Errorf("field order = %v, want %v", names, CanonicalColumns)
	}
	want := []string{"2", "Jane Roe", "NE", "QB"}
	if got := cellValues(rec); !reflect.DeepEqual(got, want) {
		t.Errorf("row = %v, want %v", got, want)
	}
	if res.Report.Count(RulePositionPresent) != 1 {
		t.Errorf("position_present count = %d, want 1", res.Report.Count(RulePositionPresent))
	}
}

func TestAssemble_OrderAndRowCountInvariants(t *testing.T) {
	columns := []string{"ADP", "Team", "Player", "Bye", "Position", "Rank", "Tier"}
	table := &Table{Columns: columns}
	teams := []any{"KciD", "NE", "UtahFC", "freeagent", nil, ""}
	for i, team := range teams {
		table.Records = append(table.Records, newRecord(i+2,
			"ADP", "1.5",
			"Team", team,
			"Player", "P",
			"Bye", "7",
			"Position", "",
			"Rank", "1",
			"Tier", "A",
		))
	}

	res, err := Assemble(table)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if res.Table.Len() != table.Len() {
		t.Fatalf("row count = %d, want %d", res.Table.Len(), table.Len())
	}

	wantOrder := []string{"Rank", "Player", "Team", "Position", "ADP", "Bye", "Tier"}
	if !reflect.DeepEqual(res.Table.Columns, wantOrder) {
		t.Errorf("Columns = %v, want %v", res.Table.Columns, wantOrder)
	}

	for i, rec := range res.Table.Records {
		if names := rec.Names(); !reflect.DeepEqual(names, wantOrder) {
			t.Errorf("row %d order = %v, want %v", i, names, wantOrder)
		}
		if rec.Line != table.Records[i].Line {
			t.Errorf("row %d line = %d, want %d", i, rec.Line, table.Records[i].Line)
		}
		for _, name := range []string{"Rank", "Player", "ADP", "Bye", "Tier"} {
			before, _ := table.Records[i].Get(name)
			after, _ := rec.Get(name)
			if before != after {
				t.Errorf("row %d %s = %+v, want %+v", i, name, after, before)
			}
		}
	}

	report := res.Report
	if report.Rows != len(teams) {
		t.Errorf("Report.Rows = %d, want %d", report.Rows, len(teams))
	}
	if report.Count(RuleCombinedCode) != 2 {
		t.Errorf("combined_code = %d, want 2", report.Count(RuleCombinedCode))
	}
	if report.Count(RuleTeamMissing) != 1 {
		t.Errorf("team_missing = %d, want 1", report.Count(RuleTeamMissing))
	}
	// "NE", "freeagent" and the empty-but-present team.
	if report.Count(RuleFallback) != 3 {
		t.Errorf("fallback = %d, want 3", report.Count(RuleFallback))
	}
	if len(report.Patterns) != 2 {
		t.Errorf("Patterns = %v, want 2 entries", report.Patterns)
	}
}

func TestAssemble_DoesNotModifyInput(t *testing.T) {
	table := &Table{
		Columns: []string{"Team", "Position", "Rank", "Player"},
		Records: []Record{
			newRecord(2, "Team", "KciD", "Position", "", "Rank", "1", "Player", "A"),
		},
	}

	if _, err := Assemble(table); err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	team, _ := table.Records[0].Get("Team")
	if team.Value != "KciD" {
		t.Errorf("input Team = %q, want unchanged %q", team.Value, "KciD")
	}
	if table.Columns[0] != "Team" {
		t.Errorf("input Columns = %v, want unchanged", table.Columns)
	}
}

func TestAssemble_RepeatedExtraColumnsKeepTheirValues(t *testing.T) {
	table := &Table{
		Columns: []string{"Rank", "Note", "Player", "Team", "Position", "Note"},
		Records: []Record{
			newRecord(2, "Rank", "1", "Note", "first", "Player", "A", "Team", "NE", "Position", "QB", "Note", "second"),
		},
	}

	res, err := Assemble(table)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	want := []string{"1", "A", "NE", "QB", "first", "second"}
	if got := cellValues(res.Table.Records[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("row = %v, want %v", got, want)
	}
}

func TestAssemble_ShortRowPadsMissingTail(t *testing.T) {
	table := &Table{
		Columns: []string{"Rank", "Player", "Team", "Position", "Bye"},
		Records: []Record{
			newRecord(2, "Rank", "1", "Player", "A", "Team", "NE", "Position", "QB"),
		},
	}

	res, err := Assemble(table)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	rec := res.Table.Records[0]
	bye, ok := rec.Get("Bye")
	if !ok {
		t.Fatal("expected padded Bye field")
	}
	if bye.Valid {
		t.Errorf("padded Bye = %+v, want missing", bye)
	}
}

func TestAssemble_SchemaErrors(t *testing.T) {
	tests := []struct {
		name        string
		table       *Table
		wantLine    int
		wantField   string
		wantMissing []string
	}{
		{
			name:        "nil table",
			table:       nil,
			wantMissing: []string{"Rank", "Player", "Team", "Position"},
		},
		{
			name: "header lacks position",
			table: &Table{
				Columns: []string{"Rank", "Player", "Team"},
			},
			wantMissing: []string{"Position"},
		},
		{
			name: "header lacks rank and player",
			table: &Table{
				Columns: []string{"Team", "Position"},
			},
			wantMissing: []string{"Rank", "Player"},
		},
		{
			name: "row lacks position field",
			table: &Table{
				Columns: []string{"Rank", "Player", "Team", "Position"},
				Records: []Record{
					newRecord(2, "Rank", "1", "Player", "A", "Team", "NE", "Position", "QB"),
					newRecord(3, "Rank", "2", "Player", "B", "Team", "KciD"),
				},
			},
			wantLine:  3,
			wantField: "Position",
		},
		{
			name: "row lacks team field",
			table: &Table{
				Columns: []string{"Rank", "Player", "Team", "Position"},
				Records: []Record{
					newRecord(4, "Rank", "1", "Player", "A"),
				},
			},
			wantLine:  4,
			wantField: "Team",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Assemble(tt.table)
			if err == nil {
				t.Fatal("Assemble() expected error")
			}
			if res != nil {
				t.Errorf("Assemble() result = %+v, want nil", res)
			}

			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("error type = %T, want *SchemaError", err)
			}
			if schemaErr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", schemaErr.Line, tt.wantLine)
			}
			if schemaErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", schemaErr.Field, tt.wantField)
			}
			if !reflect.DeepEqual(schemaErr.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", schemaErr.Missing, tt.wantMissing)
			}
		})
	}
}

func TestAssemble_EmptyAndMissingFieldsAreAccepted(t *testing.T) {
	table := &Table{
		Columns: []string{"Rank", "Player", "Team", "Position"},
		Records: []Record{
			newRecord(2, "Rank", "1", "Player", "A", "Team", nil, "Position", nil),
			newRecord(3, "Rank", "2", "Player", "B", "Team", "", "Position", ""),
		},
	}

	res, err := Assemble(table)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	for i, rec := range res.Table.Records {
		team, _ := rec.Get("Team")
		pos, _ := rec.Get("Position")
		if team.String() != "" || pos.String() != "" {
			t.Errorf("row %d = (%q, %q), want empty pair", i, team.String(), pos.String())
		}
	}
	if res.Report.Count(RuleTeamMissing) != 1 || res.Report.Count(RuleFallback) != 1 {
		t.Errorf("RuleCounts = %v, want one team_missing and one fallback", res.Report.RuleCounts)
	}
	if len(res.Report.Patterns) != 0 {
		t.Errorf("Patterns = %v, want none for empty team", res.Report.Patterns)
	}
}
