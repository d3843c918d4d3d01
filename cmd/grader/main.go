package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mtlusa01/mattev-sports/internal/cache"
	"github.com/mtlusa01/mattev-sports/internal/config"
	"github.com/mtlusa01/mattev-sports/internal/providers/espn"
	"github.com/mtlusa01/mattev-sports/internal/providers/oddsapi"
	"github.com/mtlusa01/mattev-sports/internal/registry"
	"github.com/mtlusa01/mattev-sports/internal/runner"
	"github.com/mtlusa01/mattev-sports/internal/store"
	"github.com/mtlusa01/mattev-sports/internal/writer"
)

// Batch entry point: one check-and-grade pass over every sport, then
// exit. The external scheduler triggers this every two hours. The
// process always exits 0; provider and file failures are logged and
// degrade to "no update this run".
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	if cfg.OddsAPIKey == "" {
		logrus.Warn("No ODDS_API_KEY set, Odds API sports will be skipped")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st := store.New(cfg.DataDir)
	reg := registry.New()
	r := runner.New(st, reg, oddsapi.New(cfg.OddsAPIKey), espn.New())

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("Invalid REDIS_URL, score cache disabled")
		} else {
			redisClient := redis.NewClient(opts)
			defer redisClient.Close()
			if err := redisClient.Ping(ctx).Err(); err != nil {
				logrus.WithError(err).Warn("Redis unreachable, score cache disabled")
			} else {
				r.WithCache(cache.NewRedisWriter(redisClient))
				logrus.Info("Score snapshot cache enabled")
			}
		}
	}

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logrus.WithError(err).Warn("Invalid DATABASE_URL, pick history disabled")
		} else {
			defer db.Close()
			if err := db.PingContext(ctx); err != nil {
				logrus.WithError(err).Warn("Postgres unreachable, pick history disabled")
			} else {
				r.WithHistory(writer.NewHistoryWriter(db))
				logrus.Info("Pick history writer enabled")
			}
		}
	}

	r.Run(ctx)
}
