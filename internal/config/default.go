package config

import (
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/ingest/espn"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/roster"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/scoring"
)

// DefaultLeague is the 2026 conference championship matchup.
func DefaultLeague() League {
	return League{
		Weekend: "Conference Championships - Jan 25-26, 2026",
		Scoreboard: espn.ScoreboardQuery{
			Dates:      "20260125-20260126",
			SeasonType: 3,
			Limit:      100,
		},
		Team1: roster.Team{
			Name: "TEAM 1",
			Roster: []roster.Entry{
				{Name: "Drake Maye", Position: roster.QB, Team: "NE"},
				{Name: "RJ Harvey", Position: roster.RB, Team: "DEN"},
				{Name: "Kyren Williams", Position: roster.RB, Team: "LAR"},
				{Name: "Puka Nacua", Position: roster.WR, Team: "LAR"},
				{Name: "Davante Adams", Position: roster.WR, Team: "LAR"},
				{Name: "Hunter Henry", Position: roster.TE, Team: "NE"},
				{Name: "Kayshon Boutte", Position: roster.WR, Team: "NE"},
				{Name: "Patriots D/ST", Position: roster.Defense, Team: "NE"},
				{Name: "Jason Myers", Position: roster.Kicker, Team: "SEA"},
			},
		},
		Team2: roster.Team{
			Name: "TEAM 2",
			Roster: []roster.Entry{
				{Name: "Matthew Stafford", Position: roster.QB, Team: "LAR"},
				{Name: "Kenneth Walker", Position: roster.RB, Team: "SEA"},
				{Name: "Rhamondre Stevenson", Position: roster.RB, Team: "NE"},
				{Name: "Jaxon Smith-Njigba", Position: roster.WR, Team: "SEA"},
				{Name: "Courtland Sutton", Position: roster.WR, Team: "DEN"},
				{Name: "Colby Parkinson", Position: roster.TE, Team: "LAR"},
				{Name: "Stefon Diggs", Position: roster.WR, Team: "NE"},
				{Name: "Seahawks D/ST", Position: roster.Defense, Team: "SEA"},
				{Name: "Will Lutz", Position: roster.Kicker, Team: "DEN"},
			},
		},
		Rules: scoring.DefaultRules(),
	}
}
