package playbyplay

import "github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"

// Collect runs ex over every play of one game and folds the events into a
// fresh book holding kicker records and partial defense records.
func Collect(ex Extractor, plays []Play, teams TeamTable) *stats.Book {
	book := stats.NewBook()
	for _, play := range plays {
		Apply(book, ex.Extract(play, teams), teams)
	}
	return book
}

// Apply folds one play's events into book. Team credits naming a team that
// did not play in the game are dropped.
func Apply(book *stats.Book, ev Events, teams TeamTable) {
	if ev.Kick != nil {
		applyKick(book.Kicker(ev.Kick.Kicker), ev.Kick)
	}
	if ev.FumbleRecovery != "" && teams.Has(ev.FumbleRecovery) {
		book.Defense(ev.FumbleRecovery).FumbleRecoveries++
	}
	if ev.BlockedKick != "" && teams.Has(ev.BlockedKick) {
		book.Defense(ev.BlockedKick).BlockedKicks++
	}
	if ev.Safety != "" && teams.Has(ev.Safety) {
		book.Defense(ev.Safety).Safeties++
	}
}

func applyKick(k *stats.KickerStats, kick *Kick) {
	if kick.Kind == ExtraPoint {
		if kick.Made {
			k.PATMade++
		} else {
			k.PATMissed++
		}
		return
	}

	switch {
	case kick.Distance <= 39:
		if kick.Made {
			k.FG0To39++
		} else {
			k.Miss0To39++
		}
	case kick.Distance <= 49:
		if kick.Made {
			k.FG40To49++
		} else {
			k.Miss40To49++
		}
	default:
		if kick.Made {
			k.FG50Plus++
		} else {
			k.Miss50Plus++
		}
	}
}
