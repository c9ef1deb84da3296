package matchup

import (
	"fmt"
	"strings"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/roster"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

// StatSummary renders the short stat line shown next to an entry, e.g.
// "312 pass yds, 2 pass TD, 1 INT". position is the resolved position; an
// unknown position yields "No stats".
func StatSummary(position string, line stats.Line) string {
	var parts []string
	add := func(n int, unit string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, unit))
		}
	}

	switch position {
	case roster.QB:
		add(line.PassingYards, "pass yds")
		add(line.PassingTDs, "pass TD")
		add(line.Interceptions, "INT")
		add(line.RushingYards, "rush yds")
		add(line.RushingTDs, "rush TD")

	case roster.RB, roster.WR, roster.TE, roster.FLEX:
		add(line.RushingYards, "rush yds")
		add(line.RushingTDs, "rush TD")
		add(line.Receptions, "rec")
		add(line.ReceivingYards, "rec yds")
		add(line.ReceivingTDs, "rec TD")

	case roster.Kicker:
		made, missed := line.FieldGoalsMade(), line.FieldGoalsMissed()
		parts = append(parts,
			fmt.Sprintf("%d/%d FG", made, made+missed),
			fmt.Sprintf("%d/%d XP", line.PATMade, line.PATMade+line.PATMissed),
		)

	case roster.Defense:
		parts = append(parts, fmt.Sprintf("%d PA", max(line.PointsAllowed, 0)))
		if line.Sacks > 0 {
			plural := ""
			if line.Sacks > 1 {
				plural = "s"
			}
			parts = append(parts, fmt.Sprintf("%d sack%s", int(line.Sacks), plural))
		}
		add(line.DefInterceptions, "INT")
		add(line.FumbleRecoveries, "FR")
		add(line.BlockedKicks, "BLK")
	}

	if len(parts) == 0 {
		return "No stats"
	}
	return strings.Join(parts, ", ")
}
