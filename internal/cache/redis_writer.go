// Package cache publishes each run's score snapshots to Redis so other
// services can read live scores without burning Odds API quota. The
// JSON files stay the source of truth; everything here is best-effort.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mtlusa01/mattev-sports/pkg/models"
)

// TTL constants
const (
	SnapshotTTL  = 3 * time.Hour
	GameScoreTTL = 6 * time.Hour
)

// RedisWriter writes score snapshots to Redis
type RedisWriter struct {
	client *redis.Client
}

// NewRedisWriter creates a new Redis writer
func NewRedisWriter(client *redis.Client) *RedisWriter {
	return &RedisWriter{
		client: client,
	}
}

// WriteSnapshot stores a sport's full score set under one key plus a
// per-game key for point lookups
func (w *RedisWriter) WriteSnapshot(ctx context.Context, sportKey string, scores models.ScoreSet) error {
	if len(scores) == 0 {
		return nil
	}

	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	pipe := w.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("scores:snapshot:%s", sportKey), data, SnapshotTTL)

	for matchup, rec := range scores {
		recData, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling score %s: %w", matchup, err)
		}
		pipe.Set(ctx, fmt.Sprintf("scores:game:%s:%s", sportKey, matchup), recData, GameScoreTTL)
	}

	_, err = pipe.Exec(ctx)
	return err
}
