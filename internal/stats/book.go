package stats

import "sort"

// Book accumulates every record seen during one run. It is written by a
// single goroutine while games are processed and treated as read-only after.
type Book struct {
	Players  map[PlayerKey]*PlayerStats
	Kickers  map[string]*KickerStats
	Defenses map[string]*DefenseStats
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{
		Players:  make(map[PlayerKey]*PlayerStats),
		Kickers:  make(map[string]*KickerStats),
		Defenses: make(map[string]*DefenseStats),
	}
}

// Player returns the record for key, creating it when missing.
func (b *Book) Player(key PlayerKey) *PlayerStats {
	p, ok := b.Players[key]
	if !ok {
		p = &PlayerStats{Key: key, Team: key.Team}
		b.Players[key] = p
	}
	return p
}

// Kicker returns the record for token, creating it when missing.
func (b *Book) Kicker(token string) *KickerStats {
	k, ok := b.Kickers[token]
	if !ok {
		k = &KickerStats{Token: token}
		b.Kickers[token] = k
	}
	return k
}

// Defense returns the record for team, creating it when missing.
func (b *Book) Defense(team string) *DefenseStats {
	d, ok := b.Defenses[team]
	if !ok {
		d = &DefenseStats{Team: team}
		b.Defenses[team] = d
	}
	return d
}

// Merge folds other into b. Records are summed, never overwritten.
func (b *Book) Merge(other *Book) {
	if other == nil {
		return
	}
	for key, p := range other.Players {
		b.Player(key).Add(p)
	}
	for token, k := range other.Kickers {
		b.Kicker(token).Add(k)
	}
	for team, d := range other.Defenses {
		b.Defense(team).Add(d)
	}
}

// KickerTokens returns the kicker tokens in sorted order.
func (b *Book) KickerTokens() []string {
	tokens := make([]string, 0, len(b.Kickers))
	for token := range b.Kickers {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// PlayerKeys returns player keys ordered by team then player id.
func (b *Book) PlayerKeys() []PlayerKey {
	keys := make([]PlayerKey, 0, len(b.Players))
	for key := range b.Players {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Team != keys[j].Team {
			return keys[i].Team < keys[j].Team
		}
		return keys[i].PlayerID < keys[j].PlayerID
	})
	return keys
}

// Counts reports how many records of each kind the book holds.
func (b *Book) Counts() (players, kickers, defenses int) {
	return len(b.Players), len(b.Kickers), len(b.Defenses)
}
