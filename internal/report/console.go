// Package report renders a computed matchup for people: a plain-text console
// breakdown and an HTML standings page.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/matchup"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/roster"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

const ruleWidth = 80

// WriteConsole prints both teams' breakdowns followed by the final score.
func WriteConsole(w io.Writer, r *matchup.Result) error {
	cw := &consoleWriter{w: w}
	rule := strings.Repeat("=", ruleWidth)

	cw.printf("\n%s\n", rule)
	cw.printf("%s\n", strings.ToUpper(r.Weekend))
	cw.printf("%s\n", rule)

	for _, team := range []matchup.TeamResult{r.Team1, r.Team2} {
		cw.team(team, rule)
	}

	cw.printf("\n%s\nFINAL SCORE\n%s\n", rule, rule)
	cw.printf("%s: %.2f points\n", r.Team1.Name, r.Team1.Total)
	cw.printf("%s: %.2f points\n", r.Team2.Name, r.Team2.Total)
	cw.printf("%s\n\n", rule)

	out := r.Outcome()
	if out.Tie {
		cw.printf("TIE GAME!\n")
	} else {
		cw.printf("%s WINS by %.2f points!\n", out.Winner, out.Margin)
	}

	if len(r.Top) > 0 {
		cw.printf("\nTOP PERFORMERS\n")
		for _, p := range r.Top {
			cw.printf("%d. %s (%s, %s) - %.2f pts - %s\n", p.Rank, p.Entry.Name, p.Entry.Position, p.Entry.Team, p.Points, p.Summary)
		}
	}

	return cw.err
}

// consoleWriter keeps the first write error so the report body stays linear.
type consoleWriter struct {
	w   io.Writer
	err error
}

func (c *consoleWriter) printf(format string, args ...interface{}) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, args...)
}

func (c *consoleWriter) team(t matchup.TeamResult, rule string) {
	c.printf("\n%s\n%s\n%s\n\n", rule, t.Name, rule)

	for i, e := range t.Entries {
		c.printf("%d. %s (%s, %s) - %.2f pts\n", i+1, e.Entry.Name, e.Entry.Position, e.Entry.Team, e.Points)
		c.detail(e)
		c.printf("\n")
	}

	c.printf("%s\nTOTAL POINTS: %.2f\n%s\n", rule, t.Total, rule)
}

func (c *consoleWriter) detail(e matchup.ScoredEntry) {
	l := e.Line
	if l.PassingYards > 0 {
		c.printf("   Passing: %d yds, %d TD, %d INT\n", l.PassingYards, l.PassingTDs, l.Interceptions)
	}
	if l.RushingYards > 0 {
		c.printf("   Rushing: %d yds, %d TD\n", l.RushingYards, l.RushingTDs)
	}
	if l.Receptions > 0 {
		c.printf("   Receiving: %d rec, %d yds, %d TD\n", l.Receptions, l.ReceivingYards, l.ReceivingTDs)
	}
	if l.FumblesLost > 0 {
		c.printf("   Fumbles lost: %d\n", l.FumblesLost)
	}

	switch e.Resolved.Kind {
	case roster.KindDefense:
		c.printf("   Points Allowed: %d\n", l.PointsAllowed)
		c.printf("   Sacks: %g, INTs: %d, Fumbles Recovered: %d\n", l.Sacks, l.DefInterceptions, l.FumbleRecoveries)
		if l.Safeties > 0 || l.BlockedKicks > 0 {
			c.printf("   Safeties: %d, Blocked Kicks: %d\n", l.Safeties, l.BlockedKicks)
		}
		if l.ReturnTDs > 0 {
			c.printf("   Return TDs: %d\n", l.ReturnTDs)
		}
	case roster.KindKicker:
		c.kicking(l.Kicking)
	}

	if !e.Resolved.Matched {
		c.printf("   (no stats found)\n")
	}
}

func (c *consoleWriter) kicking(k stats.Kicking) {
	made, missed := k.FieldGoalsMade(), k.FieldGoalsMissed()
	if made == 0 && missed == 0 && k.PATMade == 0 && k.PATMissed == 0 {
		return
	}
	c.printf("   FG: %d/%d, XP: %d/%d\n", made, made+missed, k.PATMade, k.PATMade+k.PATMissed)

	bands := []struct {
		n     int
		label string
	}{
		{k.FG0To39, "0-39 yds: %d made"},
		{k.FG40To49, "40-49 yds: %d made"},
		{k.FG50Plus, "50+ yds: %d made"},
		{k.Miss0To39, "0-39 yds: %d missed"},
		{k.Miss40To49, "40-49 yds: %d missed"},
		{k.Miss50Plus, "50+ yds: %d missed"},
	}
	for _, b := range bands {
		if b.n > 0 {
			c.printf("     "+b.label+"\n", b.n)
		}
	}
}
