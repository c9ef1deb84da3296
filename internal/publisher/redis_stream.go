// Package publisher hands computed matchups to the display layer through Redis.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/matchup"
)

const (
	ResultsStream = "fantasy.matchup.results"
	LatestKey     = "fantasy:matchup:latest"

	streamMaxLen   = 500
	connectTimeout = 5 * time.Second
)

// Publisher receives every computed matchup document.
type Publisher interface {
	Publish(ctx context.Context, runID string, doc matchup.Document) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// redisClient is the part of *redis.Client the publisher uses.
type redisClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisPublisher appends each document to a stream and keeps the newest one
// under a plain key for readers that only want the current standings.
type RedisPublisher struct {
	client redisClient
	log    *logrus.Entry
}

// NewRedisPublisher connects to redisURL and verifies the connection.
func NewRedisPublisher(redisURL string, log *logrus.Entry) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return newRedisPublisher(client, log), nil
}

func newRedisPublisher(client redisClient, log *logrus.Entry) *RedisPublisher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &RedisPublisher{client: client, log: log.WithField("component", "publisher")}
}

// Publish writes doc to the results stream and the latest key.
func (p *RedisPublisher) Publish(ctx context.Context, runID string, doc matchup.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: ResultsStream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"run_id":    runID,
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", ResultsStream, err)
	}

	if err := p.client.Set(ctx, LatestKey, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", LatestKey, err)
	}

	p.log.WithFields(logrus.Fields{
		"run_id":    runID,
		"stream_id": id,
	}).Info("matchup published")
	return nil
}

// HealthCheck pings Redis.
func (p *RedisPublisher) HealthCheck(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// Noop discards documents; used when no Redis is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, matchup.Document) error { return nil }
func (Noop) HealthCheck(context.Context) error                      { return nil }
func (Noop) Close() error                                           { return nil }
