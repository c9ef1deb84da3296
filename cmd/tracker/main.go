package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/api/mcpserver"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/api/rest"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/config"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/ingest/espn"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/publisher"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/service"
)

const (
	serviceName    = "nfl-playoff-tracker"
	serviceVersion = "1.0.0"

	redisRetries    = 5
	redisRetryDelay = 2 * time.Second
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	leagueFile := flag.String("league", cfg.LeagueFile, "League YAML file (empty = built-in league)")
	flag.Parse()

	logger := cfg.Logger()
	log := logger.WithField("service", serviceName)
	log.WithField("version", serviceVersion).Info("starting")

	league, err := config.LoadLeague(*leagueFile)
	if err != nil {
		log.WithError(err).Fatal("load league")
	}

	client := espn.New(cfg.ESPNBaseURL, cfg.HTTPTimeout, log)
	ingester := espn.NewIngester(client, nil, log)

	opts := []service.Option{service.WithTopN(cfg.TopN)}
	if cfg.RedisURL != "" {
		pub := connectPublisher(cfg.RedisURL, log)
		if pub != nil {
			defer pub.Close()
			opts = append(opts, service.WithPublisher(pub))
		}
	}

	tracker, err := service.NewTracker(ingester, league, log, opts...)
	if err != nil {
		log.WithError(err).Fatal("build tracker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if _, err := tracker.Refresh(ctx); err != nil {
			log.WithError(err).Error("initial refresh failed")
		}
	}()

	mcp := mcpserver.Handler(mcpserver.NewServer(tracker, serviceVersion))
	server := rest.NewServer(tracker, rest.Options{
		Port:        cfg.RESTPort,
		Version:     serviceVersion,
		CORSOrigins: cfg.CORSOrigins,
		MCP:         mcp,
	}, log)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("REST server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("REST server shutdown")
	}
	log.Info("stopped")
}

// connectPublisher retries while Redis starts up. A nil return leaves
// publishing disabled.
func connectPublisher(url string, log *logrus.Entry) publisher.Publisher {
	for i := 1; i <= redisRetries; i++ {
		pub, err := publisher.NewRedisPublisher(url, log)
		if err == nil {
			return pub
		}
		log.WithError(err).WithFields(logrus.Fields{
			"attempt": i,
			"of":      redisRetries,
		}).Warn("redis connection failed")
		if i < redisRetries {
			time.Sleep(redisRetryDelay)
		}
	}
	log.Warn("redis unavailable, results will not be published")
	return nil
}
