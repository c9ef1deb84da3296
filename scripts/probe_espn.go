// Command probe_espn fetches one slate from the live ESPN API and prints what
// the ingest pipeline extracts from its first game.
//
//	go run ./scripts -dates 20260125-20260126
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/ingest/espn"
)

func main() {
	dates := flag.String("dates", "20260125-20260126", "Scoreboard dates")
	seasonType := flag.Int("seasontype", 3, "Season type (3 = postseason)")
	flag.Parse()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	log := logger.WithField("app", "probe-espn")

	client := espn.New(espn.BaseURL, espn.DefaultTimeout, log)
	ctx := context.Background()

	scoreboard, err := client.FetchScoreboard(ctx, espn.ScoreboardQuery{Dates: *dates, SeasonType: *seasonType, Limit: 100})
	if err != nil {
		log.WithError(err).Error("scoreboard failed")
		os.Exit(1)
	}

	ids := espn.ParseScoreboardGameIDs(scoreboard)
	fmt.Printf("scoreboard %s: %d games %v\n", *dates, len(ids), ids)
	if len(ids) == 0 {
		return
	}

	summary, err := client.FetchGameSummary(ctx, ids[0])
	if err != nil {
		log.WithError(err).WithField("game_id", ids[0]).Error("summary failed")
		os.Exit(1)
	}

	game := espn.ParseGame(ids[0], summary)
	for _, team := range game.Teams {
		fmt.Printf("  %-4s id=%s score=%d\n", team.Abbreviation, team.ESPNID, team.Score)
	}
	fmt.Printf("  plays: %d\n", len(game.Plays))

	book := espn.NewIngester(client, nil, log).ProcessSummary(ids[0], summary)
	players, kickers, defenses := book.Counts()
	fmt.Printf("  players=%d kickers=%d defenses=%d\n", players, kickers, defenses)
	for _, token := range book.KickerTokens() {
		k := book.Kickers[token]
		fmt.Printf("  K %-12s FG %d/%d XP %d/%d\n", token, k.FieldGoalsMade(), k.FieldGoalsMade()+k.FieldGoalsMissed(), k.PATMade, k.PATMade+k.PATMissed)
	}
	for team, d := range book.Defenses {
		fmt.Printf("  D/ST %-4s PA=%d sacks=%.1f INT=%d FR=%d BLK=%d\n", team, d.PointsAllowed, d.Sacks, d.Interceptions, d.FumbleRecoveries, d.BlockedKicks)
	}
}
