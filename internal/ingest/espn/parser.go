package espn

import (
	"strconv"
	"strings"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/playbyplay"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

// ESPN box-score category names.
const (
	categoryPassing       = "passing"
	categoryRushing       = "rushing"
	categoryReceiving     = "receiving"
	categoryFumbles       = "fumbles"
	categoryDefensive     = "defensive"
	categoryInterceptions = "interceptions"
)

// noData is ESPN's placeholder for an empty stat cell.
const noData = "--"

// column is a stat looked up by label, falling back to a positional index
// when the category carries no labels or the label is absent.
type column struct {
	label    string
	fallback int
}

var (
	passYards = column{"YDS", 1}
	passTDs   = column{"TD", 3}
	passInts  = column{"INT", 4}

	rushYards = column{"YDS", 1}
	rushTDs   = column{"TD", 3}

	recCount = column{"REC", 0}
	recYards = column{"YDS", 1}
	recTDs   = column{"TD", 3}

	fumblesLost = column{"LOST", 1}

	defSacks = column{"SACKS", -1}

	intCount = column{"INT", 0}
	intTDs   = column{"TD", 2}
)

// ParseScoreboardGameIDs returns the event ids of a scoreboard in order.
func ParseScoreboardGameIDs(scoreboard map[string]interface{}) []string {
	events := extractArray(scoreboard, "events")
	ids := make([]string, 0, len(events))
	for _, eventInterface := range events {
		event, ok := eventInterface.(map[string]interface{})
		if !ok {
			continue
		}
		if id := extractString(event, "id"); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ParseGame reads one summary payload. A missing section yields empty output
// for that section, never an error.
func ParseGame(gameID string, summary map[string]interface{}) *ParsedGame {
	teams := ParseTeams(summary)
	table := ParseTeamTable(summary, teams)

	book := ParseBoxScore(summary)
	book.Merge(ParseDefense(summary, teams))

	return &ParsedGame{
		ID:      gameID,
		Teams:   teams,
		Table:   table,
		Players: book,
		Plays:   ParsePlays(summary),
	}
}

// ParseTeams reads the competitors and their final scores from the header.
func ParseTeams(summary map[string]interface{}) []TeamMeta {
	header := extractMap(summary, "header")
	competitions := extractArray(header, "competitions")
	if len(competitions) == 0 {
		return nil
	}
	comp, ok := competitions[0].(map[string]interface{})
	if !ok {
		return nil
	}

	var teams []TeamMeta
	for _, compInterface := range extractArray(comp, "competitors") {
		competitor, ok := compInterface.(map[string]interface{})
		if !ok {
			continue
		}
		team := extractMap(competitor, "team")
		meta := TeamMeta{
			Abbreviation: strings.ToUpper(extractString(team, "abbreviation")),
			ESPNID:       fallbackString(extractString(team, "id"), extractString(competitor, "id")),
		}
		if raw, ok := competitor["score"]; ok {
			meta.Score = parseInt(raw)
			meta.HasScore = true
		}
		if meta.Abbreviation == "" {
			continue
		}
		teams = append(teams, meta)
	}
	return teams
}

// ParseTeamTable maps ESPN team ids to abbreviations using the box score,
// completed from the header competitors.
func ParseTeamTable(summary map[string]interface{}, teams []TeamMeta) playbyplay.TeamTable {
	table := playbyplay.TeamTable{}
	for _, teamData := range boxscoreTeams(summary) {
		team := extractMap(teamData, "team")
		id := extractString(team, "id")
		abbr := strings.ToUpper(extractString(team, "abbreviation"))
		if id != "" && abbr != "" {
			table[id] = abbr
		}
	}
	for _, t := range teams {
		if _, ok := table[t.ESPNID]; !ok && t.ESPNID != "" {
			table[t.ESPNID] = t.Abbreviation
		}
	}
	return table
}

// ParseBoxScore folds the offensive categories of every athlete into player
// records keyed by (team, athlete id).
func ParseBoxScore(summary map[string]interface{}) *stats.Book {
	book := stats.NewBook()

	for _, teamData := range boxscoreTeams(summary) {
		teamAbbr := teamAbbreviation(teamData)

		for _, statInterface := range extractArray(teamData, "statistics") {
			statGroup, ok := statInterface.(map[string]interface{})
			if !ok {
				continue
			}
			category := strings.ToLower(extractString(statGroup, "name"))
			if !isOffensiveCategory(category) {
				continue
			}
			labels := labelIndex(statGroup)

			for _, athleteInterface := range extractArray(statGroup, "athletes") {
				athleteData, ok := athleteInterface.(map[string]interface{})
				if !ok {
					continue
				}
				athlete := extractMap(athleteData, "athlete")
				name := fallbackString(extractString(athlete, "displayName"), extractString(athlete, "shortName"))
				playerID := fallbackString(extractString(athlete, "id"), name)
				if playerID == "" {
					continue
				}

				parsed := &stats.PlayerStats{
					Key:      stats.PlayerKey{Team: teamAbbr, PlayerID: playerID},
					Name:     name,
					Team:     teamAbbr,
					Position: fallbackString(extractString(extractMap(athlete, "position"), "abbreviation"), "N/A"),
				}
				applyCategory(parsed, category, labels, extractArray(athleteData, "stats"))
				book.Player(parsed.Key).Add(parsed)
			}
		}
	}

	return book
}

func isOffensiveCategory(category string) bool {
	switch category {
	case categoryPassing, categoryRushing, categoryReceiving, categoryFumbles:
		return true
	}
	return false
}

func applyCategory(p *stats.PlayerStats, category string, labels map[string]int, values []interface{}) {
	get := func(c column) int {
		return statInt(values, c.index(labels))
	}

	switch category {
	case categoryPassing:
		p.PassingYards = get(passYards)
		p.PassingTDs = get(passTDs)
		p.Interceptions = get(passInts)
	case categoryRushing:
		p.RushingYards = get(rushYards)
		p.RushingTDs = get(rushTDs)
	case categoryReceiving:
		p.Receptions = get(recCount)
		p.ReceivingYards = get(recYards)
		p.ReceivingTDs = get(recTDs)
	case categoryFumbles:
		p.FumblesLost = get(fumblesLost)
	}
}

// ParseDefense builds the partial defense record of every team in the box
// score: points allowed, sacks, interceptions and interception return TDs.
func ParseDefense(summary map[string]interface{}, teams []TeamMeta) *stats.Book {
	book := stats.NewBook()

	for _, teamData := range boxscoreTeams(summary) {
		teamAbbr := teamAbbreviation(teamData)
		def := book.Defense(teamAbbr)
		def.PointsAllowed = pointsAllowed(teamAbbr, teams)

		for _, statInterface := range extractArray(teamData, "statistics") {
			statGroup, ok := statInterface.(map[string]interface{})
			if !ok {
				continue
			}
			labels := labelIndex(statGroup)
			athletes := extractArray(statGroup, "athletes")

			switch strings.ToLower(extractString(statGroup, "name")) {
			case categoryDefensive:
				idx := defSacks.index(labels)
				if idx < 0 {
					continue
				}
				for _, a := range athletes {
					def.Sacks += statFloat(athleteStats(a), idx)
				}
			case categoryInterceptions:
				for _, a := range athletes {
					values := athleteStats(a)
					def.Interceptions += statInt(values, intCount.index(labels))
					def.ReturnTDs += statInt(values, intTDs.index(labels))
				}
			}
		}
	}

	return book
}

// pointsAllowed is the first other competitor's score, or 0 when the header
// has none.
func pointsAllowed(teamAbbr string, teams []TeamMeta) int {
	for _, t := range teams {
		if t.Abbreviation != teamAbbr && t.HasScore {
			return t.Score
		}
	}
	return 0
}

// ParsePlays flattens drives.previous[].plays[] in order.
func ParsePlays(summary map[string]interface{}) []playbyplay.Play {
	drives := extractMap(summary, "drives")

	var plays []playbyplay.Play
	for _, driveInterface := range extractArray(drives, "previous") {
		drive, ok := driveInterface.(map[string]interface{})
		if !ok {
			continue
		}
		for _, playInterface := range extractArray(drive, "plays") {
			play, ok := playInterface.(map[string]interface{})
			if !ok {
				continue
			}
			parsed := playbyplay.Play{Text: extractString(play, "text")}
			for _, pInterface := range extractArray(play, "teamParticipants") {
				participant, ok := pInterface.(map[string]interface{})
				if !ok {
					continue
				}
				parsed.Participants = append(parsed.Participants, playbyplay.Participant{
					TeamID: idString(participant["id"]),
					Type:   extractString(participant, "type"),
				})
			}
			plays = append(plays, parsed)
		}
	}
	return plays
}

// Helper functions

func boxscoreTeams(summary map[string]interface{}) []map[string]interface{} {
	boxscore := extractMap(summary, "boxscore")
	var out []map[string]interface{}
	for _, teamInterface := range extractArray(boxscore, "players") {
		if teamData, ok := teamInterface.(map[string]interface{}); ok {
			out = append(out, teamData)
		}
	}
	return out
}

func teamAbbreviation(teamData map[string]interface{}) string {
	abbr := strings.ToUpper(extractString(extractMap(teamData, "team"), "abbreviation"))
	return fallbackString(abbr, "UNK")
}

func labelIndex(statGroup map[string]interface{}) map[string]int {
	index := make(map[string]int)
	for i, labelInterface := range extractArray(statGroup, "labels") {
		if label, ok := labelInterface.(string); ok {
			if _, seen := index[label]; !seen {
				index[label] = i
			}
		}
	}
	return index
}

// index resolves the column against a label row. Labels win when they name
// the column; otherwise the positional fallback is used.
func (c column) index(labels map[string]int) int {
	if idx, ok := labels[c.label]; ok {
		return idx
	}
	return c.fallback
}

func athleteStats(athleteInterface interface{}) []interface{} {
	athlete, ok := athleteInterface.(map[string]interface{})
	if !ok {
		return nil
	}
	return extractArray(athlete, "stats")
}

func statInt(values []interface{}, idx int) int {
	if idx < 0 || idx >= len(values) {
		return 0
	}
	return parseInt(values[idx])
}

func statFloat(values []interface{}, idx int) float64 {
	if idx < 0 || idx >= len(values) {
		return 0
	}
	return parseFloat(values[idx])
}

func extractString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

func fallbackString(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func extractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]interface{}); ok {
			return arrVal
		}
	}
	return []interface{}{}
}

// idString accepts ids encoded either as strings or numbers.
func idString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

func parseInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		val = strings.TrimSpace(val)
		if val == "" || val == noData {
			return 0
		}
		i, err := strconv.Atoi(val)
		if err != nil {
			return int(parseFloat(val))
		}
		return i
	case int:
		return val
	default:
		return 0
	}
}

func parseFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		val = strings.TrimSpace(val)
		if val == "" || val == noData {
			return 0
		}
		f, _ := strconv.ParseFloat(val, 64)
		return f
	case int:
		return float64(val)
	default:
		return 0
	}
}
