package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// feedLength caps the per-player recent-rounds list.
const feedLength = 20

// RoundRecord is one round as stored on a player's recent feed.
type RoundRecord struct {
	PlayerID   uuid.UUID `json:"player_id"`
	PlayerCard string    `json:"player_card"`
	DealerCard string    `json:"dealer_card"`
	Result     int       `json:"result"`
	PlayedAt   int64     `json:"played_at"`
}

// Feed keeps a short per-player list of recent rounds in Redis so the profile
// page can show them without hitting Postgres.
type Feed struct {
	rdb *redis.Client
}

// Connect initializes the Redis client from environment variables:
//   - REDIS_ADDR (default "localhost:6379")
//   - REDIS_DB (optional, default 0)
func Connect(ctx context.Context) (*Feed, error) {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	dbIdx := getEnvInt("REDIS_DB", 0)

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIdx,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return &Feed{rdb: rdb}, nil
}

func (f *Feed) Close() error {
	return f.rdb.Close()
}

// Push appends a round to the player's feed and trims it to feedLength.
func (f *Feed) Push(ctx context.Context, rec RoundRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal round record: %w", err)
	}

	key := feedKey(rec.PlayerID)
	pipe := f.rdb.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, feedLength-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push to feed %s: %w", key, err)
	}
	return nil
}

// Recent returns up to n of the player's most recent rounds, newest first.
func (f *Feed) Recent(ctx context.Context, playerID uuid.UUID, n int64) ([]RoundRecord, error) {
	raw, err := f.rdb.LRange(ctx, feedKey(playerID), 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}

	recs := make([]RoundRecord, 0, len(raw))
	for _, item := range raw {
		var rec RoundRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal round record: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func feedKey(playerID uuid.UUID) string {
	return "war:recent:" + playerID.String()
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
