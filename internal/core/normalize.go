package core

// normalize.go splits combined "Team+Position" strings.
//
// Draft exports occasionally leave the Position column empty and glue the
// position code onto the team abbreviation ("KciD", "UtahFC"). The rules
// below recover the pair without ever losing the original team text.

import "regexp"

// combinedCodeRegex matches a team stem immediately followed by a 1-2 letter
// position code. "Utah" is the only stem that is not one uppercase letter
// followed by two lowercase letters.
var combinedCodeRegex = regexp.MustCompile(`^(Utah|[A-Z][a-z]{2})([A-Z]{1,2})$`)

// SplitRule identifies which normalizer rule produced a Split.
type SplitRule int

const (
	RulePositionPresent SplitRule = iota
	RuleTeamMissing
	RuleCombinedCode
	RuleFallback
)

// SplitRules lists every rule in evaluation order.
var SplitRules = []SplitRule{RulePositionPresent, RuleTeamMissing, RuleCombinedCode, RuleFallback}

func (r SplitRule) String() string {
	switch r {
	case RulePositionPresent:
		return "position_present"
	case RuleTeamMissing:
		return "team_missing"
	case RuleCombinedCode:
		return "combined_code"
	case RuleFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Split is the normalized (Team, Position) pair for one row.
type Split struct {
	Team     string
	Position string
	Rule     SplitRule
}

// NormalizeTeamPosition decides the Team and Position values for a row.
// Rules are evaluated in order and the first match wins:
//  1. Position present and non-empty: both values are returned unchanged.
//  2. Team missing: ("", "").
//  3. Team is a stem plus position code: (stem, code).
//  4. Otherwise: the team text is kept verbatim with an empty position.
func NormalizeTeamPosition(team, position Cell) Split {
	if !position.IsBlank() {
		return Split{Team: team.String(), Position: position.Value, Rule: RulePositionPresent}
	}

	if !team.Valid {
		return Split{Rule: RuleTeamMissing}
	}

	if m := combinedCodeRegex.FindStringSubmatch(team.Value); m != nil {
		return Split{Team: m[1], Position: m[2], Rule: RuleCombinedCode}
	}

	return Split{Team: team.Value, Rule: RuleFallback}
}
