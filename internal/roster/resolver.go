package roster

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

// Kind says which record family a resolved entry came from.
type Kind int

const (
	KindPlayer Kind = iota + 1
	KindKicker
	KindDefense
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindKicker:
		return "kicker"
	case KindDefense:
		return "defense"
	default:
		return "unknown"
	}
}

// Resolved is the statistics record chosen for one entry. Exactly one of
// Player, Kicker and Defense is set, matching Kind.
type Resolved struct {
	Entry   Entry
	Kind    Kind
	Matched bool // false when a zero record was synthesized

	// Position is the position used for stat summaries: the provider's
	// position for players, K or D/ST otherwise.
	Position string

	Player  *stats.PlayerStats
	Kicker  *stats.KickerStats
	Defense *stats.DefenseStats
}

// Line returns the scoring line of the resolved record.
func (r Resolved) Line() stats.Line {
	switch {
	case r.Defense != nil:
		return r.Defense.Line()
	case r.Kicker != nil:
		return r.Kicker.Line()
	case r.Player != nil:
		return r.Player.Line()
	default:
		return stats.EmptyLine()
	}
}

// Resolver looks roster entries up in a stats.Book. It never fails: missing
// data resolves to a zero record.
type Resolver struct {
	book  *stats.Book
	keys  []stats.PlayerKey
	kicks []string
	fold  cases.Caser
}

// NewResolver creates a resolver over book. The book must not change while
// the resolver is in use.
func NewResolver(book *stats.Book) *Resolver {
	if book == nil {
		book = stats.NewBook()
	}
	return &Resolver{
		book:  book,
		keys:  book.PlayerKeys(),
		kicks: book.KickerTokens(),
		fold:  cases.Fold(),
	}
}

// Resolve picks the record for e.
func (r *Resolver) Resolve(e Entry) Resolved {
	switch {
	case e.IsDefense():
		return r.resolveDefense(e)
	case e.IsKicker():
		return r.resolveKicker(e)
	default:
		return r.resolvePlayer(e)
	}
}

func (r *Resolver) resolveDefense(e Entry) Resolved {
	res := Resolved{Entry: e, Kind: KindDefense, Position: Defense}
	team := strings.ToUpper(e.Team)
	if d, ok := r.book.Defenses[team]; ok {
		res.Defense = d
		res.Matched = true
		return res
	}
	res.Defense = &stats.DefenseStats{Team: team}
	return res
}

// resolveKicker matches the entry's surname against play-by-play tokens such
// as "W.Lutz".
func (r *Resolver) resolveKicker(e Entry) Resolved {
	res := Resolved{Entry: e, Kind: KindKicker, Position: Kicker}

	fields := strings.Fields(e.Name)
	if len(fields) > 0 {
		surname := r.normalize(fields[len(fields)-1])
		for _, token := range r.kicks {
			if strings.Contains(r.normalize(token), surname) {
				res.Kicker = r.book.Kickers[token]
				res.Matched = true
				return res
			}
		}
	}

	res.Kicker = &stats.KickerStats{}
	return res
}

func (r *Resolver) resolvePlayer(e Entry) Resolved {
	res := Resolved{Entry: e, Kind: KindPlayer}

	if p := r.findPlayer(e); p != nil {
		res.Player = p
		res.Matched = true
		res.Position = p.Position
		return res
	}

	res.Player = &stats.PlayerStats{
		Key:      stats.PlayerKey{Team: e.Team},
		Name:     e.Name,
		Team:     e.Team,
		Position: "N/A",
	}
	res.Position = res.Player.Position
	return res
}

func (r *Resolver) findPlayer(e Entry) *stats.PlayerStats {
	for _, key := range r.keys {
		p := r.book.Players[key]
		if p.Name == e.Name && strings.EqualFold(p.Team, e.Team) {
			return p
		}
	}

	want := r.normalize(e.Name)
	if want == "" {
		return nil
	}
	for _, key := range r.keys {
		p := r.book.Players[key]
		if strings.EqualFold(p.Team, e.Team) && strings.Contains(r.normalize(p.Name), want) {
			return p
		}
	}
	return nil
}

// normalize case-folds s and strips diacritics so "Nacúa" matches "Nacua".
func (r *Resolver) normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return r.fold.String(strings.TrimSpace(out))
}
