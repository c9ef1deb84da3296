// Package playbyplay derives kicking and defensive events that the box score
// does not expose from free-text play descriptions.
package playbyplay

import (
	"regexp"
	"strconv"
	"strings"
)

// Participant is a team taking part in a play, as tagged by the provider.
type Participant struct {
	TeamID string
	Type   string // "offense" or "defense"
}

// Play is one play-by-play entry.
type Play struct {
	Text         string
	Participants []Participant
}

// TeamTable maps provider team ids to abbreviations for one game.
type TeamTable map[string]string

// Has reports whether abbr belongs to one of the table's teams.
func (t TeamTable) Has(abbr string) bool {
	for _, a := range t {
		if strings.EqualFold(a, abbr) {
			return true
		}
	}
	return false
}

// KickKind distinguishes field goals from extra points.
type KickKind int

const (
	FieldGoal KickKind = iota + 1
	ExtraPoint
)

// Kick is a single kicking attempt.
type Kick struct {
	Kicker   string
	Kind     KickKind
	Distance int // zero for extra points
	Made     bool
}

// Events is everything a single play contributed. Empty fields mean no credit.
type Events struct {
	Kick           *Kick
	FumbleRecovery string // recovering team abbreviation
	BlockedKick    string // blocking team abbreviation
	Safety         string // team credited with the safety
}

// IsZero reports whether the play contributed nothing.
func (e Events) IsZero() bool {
	return e.Kick == nil && e.FumbleRecovery == "" && e.BlockedKick == "" && e.Safety == ""
}

// Extractor turns one play into events. Implementations must not fail: a
// description they cannot read yields zero Events.
type Extractor interface {
	Extract(play Play, teams TeamTable) Events
}

var (
	fieldGoalPattern   = regexp.MustCompile(`([A-Z]\.[A-Za-z]+)\s+(\d+)\s+(?i:yards?\s+field\s+goal)`)
	extraPointPattern  = regexp.MustCompile(`([A-Z]\.[A-Za-z]+)\s+(?i:extra\s+point)`)
	recoveredByPattern = regexp.MustCompile(`(?i)recovered\s+by\s+([A-Z]{2,3})-`)
	safetyPattern      = regexp.MustCompile(`\bSAFETY\b`)
)

// PatternExtractor matches the provider's play description grammar with
// regular expressions.
type PatternExtractor struct{}

// NewPatternExtractor returns the default extractor.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

// Extract implements Extractor.
func (PatternExtractor) Extract(play Play, teams TeamTable) Events {
	var ev Events
	text := play.Text
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "field goal"):
		ev.Kick = fieldGoal(text, lower)
	case strings.Contains(lower, "extra point"):
		ev.Kick = extraPoint(text, lower)
	}

	if (strings.Contains(lower, "fumble") || strings.Contains(lower, "muff")) &&
		strings.Contains(lower, "recovered by") {
		if m := recoveredByPattern.FindStringSubmatch(text); m != nil {
			ev.FumbleRecovery = strings.ToUpper(m[1])
		}
	}

	if strings.Contains(lower, "blocked") &&
		(strings.Contains(lower, "kick") || strings.Contains(lower, "field goal")) {
		ev.BlockedKick = defenseTeam(play, teams)
	}

	if safetyPattern.MatchString(text) {
		ev.Safety = defenseTeam(play, teams)
	}

	return ev
}

func fieldGoal(text, lower string) *Kick {
	m := fieldGoalPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	distance, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}

	made, ok := outcome(lower)
	if !ok {
		return nil
	}
	return &Kick{Kicker: m[1], Kind: FieldGoal, Distance: distance, Made: made}
}

func extraPoint(text, lower string) *Kick {
	m := extraPointPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	made, ok := outcome(lower)
	if !ok {
		return nil
	}
	return &Kick{Kicker: m[1], Kind: ExtraPoint, Made: made}
}

// outcome classifies a kick; ok is false when the text states neither result.
func outcome(lower string) (made bool, ok bool) {
	if strings.Contains(lower, "is good") {
		return true, true
	}
	if strings.Contains(lower, "no good") || strings.Contains(lower, "missed") || strings.Contains(lower, "blocked") {
		return false, true
	}
	return false, false
}

// defenseTeam resolves the first participant tagged "defense".
func defenseTeam(play Play, teams TeamTable) string {
	for _, p := range play.Participants {
		if p.Type != "defense" {
			continue
		}
		return teams[p.TeamID]
	}
	return ""
}
