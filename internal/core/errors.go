package core

import (
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// MissingInputError is returned when the source file does not exist.
type MissingInputError struct {
	Path string
	Err  error // Underlying stat error, may be nil
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("The file %s does not exist.", e.Path)
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// SchemaError is returned when the header or a row lacks a required field.
// Line is 0 for header problems.
type SchemaError struct {
	Line    int      // 1-indexed source line of the offending row
	Field   string   // Field absent from the row (row-level errors)
	Missing []string // Columns absent from the header (header-level errors)
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: missing required field %q", e.Line, e.Field)
	}
	return fmt.Sprintf("missing required field %q", e.Field)
}

// PatternError records a team value that no split rule could decompose.
// It is informational only: the team text is kept and the run continues.
type PatternError struct {
	Line int
	Team string
}

func (e PatternError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: team %q does not match a combined code", e.Line, e.Team)
	}
	return fmt.Sprintf("team %q does not match a combined code", e.Team)
}

// UnexpectedError wraps any other failure during load, transform or write.
// The wrapped error carries the stack captured when it was created; format
// with %+v to print it.
type UnexpectedError struct {
	Op  string
	Err error
}

// NewUnexpectedError wraps err for operation op, recording a stack trace.
// Returns nil if err is nil.
func NewUnexpectedError(op string, err error) *UnexpectedError {
	if err == nil {
		return nil
	}
	return &UnexpectedError{Op: op, Err: pkgerrors.WithStack(err)}
}

func (e *UnexpectedError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// Format implements fmt.Formatter so %+v prints the diagnostic trace.
func (e *UnexpectedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s: %+v", e.Op, e.Err)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
