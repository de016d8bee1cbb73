// Package core provides the business logic for cleaning fantasy draft tables.
//
// This package holds the domain rules independent of any file format or CLI.
// It can be driven by the csvfile reader/writer, by the pipeline, or directly
// by tests.
//
// # Architecture
//
//   - Row Normalizer: [NormalizeTeamPosition] decides the (Team, Position)
//     pair for a single row using a fixed rule precedence.
//   - Table Assembler: [Assemble] applies the normalizer to every row and
//     reorders the columns into Rank, Player, Team, Position, then the rest.
//   - Errors: typed failures ([MissingInputError], [SchemaError],
//     [UnexpectedError]) plus the informational [PatternError].
//
// # Missing vs Empty
//
// A [Cell] distinguishes a missing value (Valid=false) from a present but
// empty one (Valid=true, Value=""). The normalizer treats them differently:
// a missing team short-circuits to ("", ""), while an empty team still goes
// through the combined-code match and its fallback.
//
// # Combined Codes
//
// Source files sometimes glue a team abbreviation to a position code, for
// example "KciD" or "UtahFC". The stem is "Utah" or one uppercase letter
// followed by two lowercase letters; the code is one or two uppercase letters
// and must end the string:
//
//	NormalizeTeamPosition(Text("KciD"), Missing())   // Kci, D
//	NormalizeTeamPosition(Text("UtahFC"), Missing()) // Utah, FC
//	NormalizeTeamPosition(Text("NE"), Text("QB"))    // NE, QB (unchanged)
//
// # Error Handling
//
// Errors are mapped to user-facing messages with support codes by
// [MapError]:
//
//   - IN001: source file does not exist
//   - SCH001-SCH002: required columns or fields missing
//   - FILE001-FILE005: size, format and encoding problems
//   - OUT001: destination could not be written
package core
