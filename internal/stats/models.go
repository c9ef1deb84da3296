package stats

// NoPointsAllowed marks a Line that does not belong to a defense.
const NoPointsAllowed = -1

// PlayerKey identifies an offensive player within one team.
type PlayerKey struct {
	Team     string `json:"team"`
	PlayerID string `json:"player_id"`
}

// PlayerStats holds the offensive box-score totals for one player
type PlayerStats struct {
	Key      PlayerKey `json:"key"`
	Name     string    `json:"name"`
	Team     string    `json:"team"`
	Position string    `json:"position"`

	PassingYards  int `json:"passing_yards"`
	PassingTDs    int `json:"passing_tds"`
	Passing2Pt    int `json:"passing_2pt"`
	Interceptions int `json:"interceptions"`

	RushingYards int `json:"rushing_yards"`
	RushingTDs   int `json:"rushing_tds"`
	Rushing2Pt   int `json:"rushing_2pt"`

	Receptions     int `json:"receptions"`
	ReceivingYards int `json:"receiving_yards"`
	ReceivingTDs   int `json:"receiving_tds"`
	Receiving2Pt   int `json:"receiving_2pt"`

	FumblesLost int `json:"fumbles_lost"`
}

// Add accumulates other into p. Identity fields are only filled when empty.
func (p *PlayerStats) Add(other *PlayerStats) {
	if other == nil {
		return
	}
	if p.Name == "" {
		p.Name = other.Name
	}
	if p.Team == "" {
		p.Team = other.Team
	}
	if p.Position == "" {
		p.Position = other.Position
	}

	p.PassingYards += other.PassingYards
	p.PassingTDs += other.PassingTDs
	p.Passing2Pt += other.Passing2Pt
	p.Interceptions += other.Interceptions
	p.RushingYards += other.RushingYards
	p.RushingTDs += other.RushingTDs
	p.Rushing2Pt += other.Rushing2Pt
	p.Receptions += other.Receptions
	p.ReceivingYards += other.ReceivingYards
	p.ReceivingTDs += other.ReceivingTDs
	p.Receiving2Pt += other.Receiving2Pt
	p.FumblesLost += other.FumblesLost
}

// Line converts the record into a scoring line.
func (p *PlayerStats) Line() Line {
	return Line{
		PassingYards:   p.PassingYards,
		PassingTDs:     p.PassingTDs,
		Passing2Pt:     p.Passing2Pt,
		Interceptions:  p.Interceptions,
		RushingYards:   p.RushingYards,
		RushingTDs:     p.RushingTDs,
		Rushing2Pt:     p.Rushing2Pt,
		Receptions:     p.Receptions,
		ReceivingYards: p.ReceivingYards,
		ReceivingTDs:   p.ReceivingTDs,
		Receiving2Pt:   p.Receiving2Pt,
		FumblesLost:    p.FumblesLost,
		PointsAllowed:  NoPointsAllowed,
	}
}

// Kicking holds PAT and field goal outcomes, field goals banded by distance.
type Kicking struct {
	PATMade   int `json:"pat_made"`
	PATMissed int `json:"pat_missed"`

	FG0To39    int `json:"fg_0_39"`
	FG40To49   int `json:"fg_40_49"`
	FG50Plus   int `json:"fg_50_plus"`
	Miss0To39  int `json:"fg_miss_0_39"`
	Miss40To49 int `json:"fg_miss_40_49"`
	Miss50Plus int `json:"fg_miss_50_plus"`
}

// FieldGoalsMade returns made field goals across all bands.
func (k Kicking) FieldGoalsMade() int {
	return k.FG0To39 + k.FG40To49 + k.FG50Plus
}

// FieldGoalsMissed returns missed field goals across all bands.
func (k Kicking) FieldGoalsMissed() int {
	return k.Miss0To39 + k.Miss40To49 + k.Miss50Plus
}

func (k *Kicking) add(other Kicking) {
	k.PATMade += other.PATMade
	k.PATMissed += other.PATMissed
	k.FG0To39 += other.FG0To39
	k.FG40To49 += other.FG40To49
	k.FG50Plus += other.FG50Plus
	k.Miss0To39 += other.Miss0To39
	k.Miss40To49 += other.Miss40To49
	k.Miss50Plus += other.Miss50Plus
}

// KickerStats is keyed by the short play-by-play token, e.g. "W.Lutz".
type KickerStats struct {
	Token string `json:"token"`
	Kicking
}

// Add accumulates other into k.
func (k *KickerStats) Add(other *KickerStats) {
	if other == nil {
		return
	}
	if k.Token == "" {
		k.Token = other.Token
	}
	k.Kicking.add(other.Kicking)
}

// Line converts the record into a scoring line.
func (k *KickerStats) Line() Line {
	return Line{
		Kicking:       k.Kicking,
		PointsAllowed: NoPointsAllowed,
	}
}

// DefenseStats holds one team's defense/special teams totals.
type DefenseStats struct {
	Team             string  `json:"team"`
	PointsAllowed    int     `json:"points_allowed"`
	Sacks            float64 `json:"sacks"`
	Interceptions    int     `json:"defensive_interceptions"`
	FumbleRecoveries int     `json:"fumble_recoveries"`
	Safeties         int     `json:"safeties"`
	BlockedKicks     int     `json:"blocked_kicks"`
	ReturnTDs        int     `json:"return_tds"`
}

// Add accumulates other into d.
func (d *DefenseStats) Add(other *DefenseStats) {
	if other == nil {
		return
	}
	if d.Team == "" {
		d.Team = other.Team
	}
	d.PointsAllowed += other.PointsAllowed
	d.Sacks += other.Sacks
	d.Interceptions += other.Interceptions
	d.FumbleRecoveries += other.FumbleRecoveries
	d.Safeties += other.Safeties
	d.BlockedKicks += other.BlockedKicks
	d.ReturnTDs += other.ReturnTDs
}

// Line converts the record into a scoring line.
func (d *DefenseStats) Line() Line {
	return Line{
		PointsAllowed:    d.PointsAllowed,
		Sacks:            d.Sacks,
		DefInterceptions: d.Interceptions,
		FumbleRecoveries: d.FumbleRecoveries,
		Safeties:         d.Safeties,
		BlockedKicks:     d.BlockedKicks,
		ReturnTDs:        d.ReturnTDs,
	}
}

// Line is the flattened statistics record the scorer consumes. Blocks that do
// not apply to a record are left at zero; PointsAllowed is NoPointsAllowed for
// anything but a defense.
type Line struct {
	PassingYards  int `json:"passing_yards"`
	PassingTDs    int `json:"passing_tds"`
	Passing2Pt    int `json:"passing_2pt"`
	Interceptions int `json:"interceptions"`

	RushingYards int `json:"rushing_yards"`
	RushingTDs   int `json:"rushing_tds"`
	Rushing2Pt   int `json:"rushing_2pt"`

	Receptions     int `json:"receptions"`
	ReceivingYards int `json:"receiving_yards"`
	ReceivingTDs   int `json:"receiving_tds"`
	Receiving2Pt   int `json:"receiving_2pt"`

	FumblesLost int `json:"fumbles_lost"`

	Kicking

	PointsAllowed    int     `json:"points_allowed"`
	Sacks            float64 `json:"sacks"`
	DefInterceptions int     `json:"defensive_interceptions"`
	FumbleRecoveries int     `json:"fumble_recoveries"`
	Safeties         int     `json:"safeties"`
	BlockedKicks     int     `json:"blocked_kicks"`
	ReturnTDs        int     `json:"return_tds"`
}

// EmptyLine returns a zeroed non-defense line.
func EmptyLine() Line {
	return Line{PointsAllowed: NoPointsAllowed}
}
