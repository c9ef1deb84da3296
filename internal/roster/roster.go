// Package roster defines fantasy roster entries and resolves them against the
// statistics collected for a weekend.
package roster

import (
	"fmt"
	"strings"
)

// Roster positions.
const (
	QB      = "QB"
	RB      = "RB"
	WR      = "WR"
	TE      = "TE"
	FLEX    = "FLEX"
	Kicker  = "K"
	Defense = "D/ST"
)

// Entry is one roster slot.
type Entry struct {
	Name     string `yaml:"name" json:"name"`
	Position string `yaml:"position" json:"position"`
	Team     string `yaml:"team" json:"team"`
}

// IsDefense reports whether the entry is a team defense/special teams slot.
func (e Entry) IsDefense() bool {
	return strings.Contains(e.Name, "D/ST") || strings.Contains(e.Name, "DST") || e.Position == Defense
}

// IsKicker reports whether the entry is a kicker slot.
func (e Entry) IsKicker() bool {
	return !e.IsDefense() && e.Position == Kicker
}

// Validate checks that the entry can be resolved.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("entry has no name")
	}
	if strings.TrimSpace(e.Team) == "" {
		return fmt.Errorf("entry %q has no team", e.Name)
	}
	switch e.Position {
	case QB, RB, WR, TE, FLEX, Kicker, Defense:
		return nil
	default:
		return fmt.Errorf("entry %q has unknown position %q", e.Name, e.Position)
	}
}

// Team is a named fantasy roster.
type Team struct {
	Name   string  `yaml:"name" json:"name"`
	Roster []Entry `yaml:"roster" json:"roster"`
}
