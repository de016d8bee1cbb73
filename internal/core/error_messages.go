package core

// error_messages.go maps technical errors to user-friendly messages with
// codes for support reference.
//
// # Input Errors (IN001-IN099)
//
//	IN001 - Missing input: The source file does not exist
//	        Action: Check the source path argument or SOURCE_PATH
//
// # Schema Errors (SCH001-SCH099)
//
//	SCH001 - Missing column: A required column is missing from the header
//	         Action: Ensure the file has Rank, Player, Team and Position columns
//	         Patterns: "missing required column"
//
//	SCH002 - Missing field: A row is shorter than the header
//	         Action: Check the reported line for missing delimiters
//	         Patterns: "missing required field"
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large    Patterns: "file too large"
//	FILE002 - Invalid CSV       Patterns: "invalid csv", "parse error"
//	FILE003 - Encoding error    Patterns: "encoding error"
//	FILE004 - Bad delimiter     Patterns: "invalid delimiter"
//	FILE005 - Empty file        Patterns: "empty file"
//
// # Output Errors (OUT001-OUT099)
//
//	OUT001 - Write failed: The destination could not be written
//	         Patterns: "write destination"
//
// # Default Error (ERR000)
//
// Fallback when no typed error or pattern matches. Check the diagnostic trace
// printed with the error for the original cause.
//
// Typed errors are matched with errors.As before any pattern. Patterns are
// matched case-insensitively using strings.Contains; the first match wins.

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	missingInputMessage = UserMessage{
		Message: "The source file does not exist",
		Action:  "Check the source path argument or SOURCE_PATH",
		Code:    "IN001",
	}
	missingColumnMessage = UserMessage{
		Message: "A required column is missing from the header",
		Action:  "Ensure the file has Rank, Player, Team and Position columns",
		Code:    "SCH001",
	}
	missingFieldMessage = UserMessage{
		Message: "A row is missing its Team or Position field",
		Action:  "Check the reported line for missing delimiters",
		Code:    "SCH002",
	}
)

var errorPatterns = []errorPattern{
	{pattern: "missing required column", msg: missingColumnMessage},
	{pattern: "missing required field", msg: missingFieldMessage},
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "Source file exceeds the maximum size limit",
			Action:  "Raise INPUT_MAX_FILE_SIZE or split the file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid delimited table",
			Action:  "Ensure every row has the same number of columns as the header",
			Code:    "FILE002",
		},
	},
	{
		pattern: "parse error",
		msg: UserMessage{
			Message: "File is not a valid delimited table",
			Action:  "Check quoting around the reported line",
			Code:    "FILE002",
		},
	},
	{
		pattern: "encoding error",
		msg: UserMessage{
			Message: "File contains invalid characters",
			Action:  "Save file as UTF-8 encoding",
			Code:    "FILE003",
		},
	},
	{
		pattern: "invalid delimiter",
		msg: UserMessage{
			Message: "The configured delimiter is not usable",
			Action:  "Set INPUT_DELIMITER/OUTPUT_DELIMITER to a single character",
			Code:    "FILE004",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The source file is empty",
			Action:  "Provide a file with a header row",
			Code:    "FILE005",
		},
	},
	{
		pattern: "write destination",
		msg: UserMessage{
			Message: "The destination file could not be written",
			Action:  "Check that the destination directory is writable",
			Code:    "OUT001",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the diagnostic trace for the original cause",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Typed errors win over text patterns. If nothing matches, the generic
// ERR000 message is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var missing *MissingInputError
	if errors.As(err, &missing) {
		return missingInputMessage
	}

	var schema *SchemaError
	if errors.As(err, &schema) {
		if len(schema.Missing) > 0 {
			return missingColumnMessage
		}
		return missingFieldMessage
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
