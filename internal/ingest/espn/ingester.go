package espn

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/playbyplay"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/stats"
)

// Source is the subset of Client the ingester needs.
type Source interface {
	FetchScoreboard(ctx context.Context, q ScoreboardQuery) (map[string]interface{}, error)
	FetchGameSummary(ctx context.Context, gameID string) (map[string]interface{}, error)
}

// Ingester walks a slate one game at a time and folds every game into a
// single stats.Book.
type Ingester struct {
	source    Source
	extractor playbyplay.Extractor
	log       *logrus.Entry
}

// NewIngester creates an ingester. A nil extractor uses the pattern extractor.
func NewIngester(source Source, extractor playbyplay.Extractor, log *logrus.Entry) *Ingester {
	if extractor == nil {
		extractor = playbyplay.NewPatternExtractor()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Ingester{
		source:    source,
		extractor: extractor,
		log:       log.WithField("component", "ingest"),
	}
}

// Ingest fetches the slate and every game's summary sequentially. Transport
// failures are logged and leave that game out; the result is never nil.
func (i *Ingester) Ingest(ctx context.Context, q ScoreboardQuery) *IngestResult {
	result := &IngestResult{Book: stats.NewBook()}

	i.log.WithFields(logrus.Fields{
		"dates":       q.Dates,
		"season_type": q.SeasonType,
	}).Info("fetching scoreboard")

	scoreboard, err := i.source.FetchScoreboard(ctx, q)
	if err != nil {
		i.log.WithError(err).Warn("scoreboard unavailable, processing nothing")
		return result
	}

	result.GameIDs = ParseScoreboardGameIDs(scoreboard)
	i.log.WithField("games", len(result.GameIDs)).Info("found games")

	for _, gameID := range result.GameIDs {
		summary, err := i.source.FetchGameSummary(ctx, gameID)
		if err != nil {
			i.log.WithError(err).WithField("game_id", gameID).Warn("game summary unavailable, skipping")
			result.Failed = append(result.Failed, gameID)
			continue
		}

		result.Book.Merge(i.ProcessSummary(gameID, summary))
		result.Processed = append(result.Processed, gameID)
	}

	players, kickers, defenses := result.Book.Counts()
	i.log.WithFields(logrus.Fields{
		"players":  players,
		"kickers":  kickers,
		"defenses": defenses,
		"failed":   len(result.Failed),
	}).Info("ingest complete")

	return result
}

// ProcessSummary runs box-score aggregation and play-by-play extraction over
// one game's payload and returns the merged book for that game.
func (i *Ingester) ProcessSummary(gameID string, summary map[string]interface{}) *stats.Book {
	game := ParseGame(gameID, summary)

	book := game.Players
	book.Merge(playbyplay.Collect(i.extractor, game.Plays, game.Table))

	i.log.WithFields(logrus.Fields{
		"game_id": gameID,
		"plays":   len(game.Plays),
		"teams":   len(game.Table),
	}).Debug("game processed")

	return book
}
