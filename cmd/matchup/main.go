package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/config"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/ingest/espn"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/matchup"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/publisher"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/report"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/scoring"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/service"
)

const (
	appName    = "nfl-matchup"
	appVersion = "1.0.0"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code.
func run() int {
	cfg, err := config.FromEnv()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	var (
		leagueFile = flag.String("league", cfg.LeagueFile, "League YAML file (empty = built-in league)")
		outputFile = flag.String("output", cfg.OutputFile, "JSON document output path (empty = skip)")
		rulesFile  = flag.String("rules", "", "Scoring rules YAML, replaces the league's scoring section")
		dates      = flag.String("dates", "", "Override scoreboard dates, e.g. 20260125-20260126")
		topN       = flag.Int("top", cfg.TopN, "Number of top performers")
		quiet      = flag.Bool("quiet", false, "Skip the console report")
	)
	flag.Parse()

	logger := cfg.Logger()
	log := logger.WithField("app", appName)
	log.WithField("version", appVersion).Info("starting")

	league, err := config.LoadLeague(*leagueFile)
	if err != nil {
		log.WithError(err).Fatal("load league")
	}
	if *rulesFile != "" {
		rules, err := scoring.LoadRules(*rulesFile)
		if err != nil {
			log.WithError(err).Fatal("load rules")
		}
		league.Rules = rules
	}
	if *dates != "" {
		league.Scoreboard.Dates = *dates
	}

	client := espn.New(cfg.ESPNBaseURL, cfg.HTTPTimeout, log)
	ingester := espn.NewIngester(client, nil, log)

	opts := []service.Option{service.WithTopN(*topN)}
	if cfg.RedisURL != "" {
		pub, err := publisher.NewRedisPublisher(cfg.RedisURL, log)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, results will not be published")
		} else {
			defer pub.Close()
			opts = append(opts, service.WithPublisher(pub))
		}
	}

	tracker, err := service.NewTracker(ingester, league, log, opts...)
	if err != nil {
		log.WithError(err).Error("build tracker")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snap, err := tracker.Refresh(ctx)
	if err != nil {
		log.WithError(err).Error("compute matchup")
		return 1
	}

	if !*quiet {
		if err := report.WriteConsole(os.Stdout, snap.Result); err != nil {
			log.WithError(err).Error("write console report")
		}
	}

	if *outputFile != "" {
		if err := matchup.WriteDocument(*outputFile, snap.Document); err != nil {
			log.WithError(err).Error("write results")
			return 1
		}
		log.WithField("path", *outputFile).Info("results saved")
	}

	if len(snap.Ingest.Failed) > 0 {
		log.WithFields(logrus.Fields{
			"failed": snap.Ingest.Failed,
			"games":  snap.Ingest.Games,
		}).Warn("some games could not be fetched; totals may be incomplete")
	}
	return 0
}
