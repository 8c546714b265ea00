package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Host     string
	Port     string
	Password string

	StateTTL       time.Duration
	LeaderboardTTL time.Duration
}

// Client groups the short-lived stores backed by a single redis connection.
type Client struct {
	rdb *redis.Client

	// States holds pending OAuth state tokens.
	States *StateStore
	// Leaderboards caches serialized leaderboard payloads.
	Leaderboards *LeaderboardCache
}

func New(opts Options) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{
		rdb:          rdb,
		States:       &StateStore{rdb: rdb, ttl: opts.StateTTL},
		Leaderboards: &LeaderboardCache{rdb: rdb, ttl: opts.LeaderboardTTL},
	}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

type StateStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func (s *StateStore) Set(ctx context.Context, state string) error {
	return s.rdb.Set(ctx, "oauth_state:"+state, "1", s.ttl).Err()
}

// Check consumes the state token, so each one authorizes exactly one callback.
func (s *StateStore) Check(ctx context.Context, state string) (bool, error) {
	deleted, err := s.rdb.Del(ctx, "oauth_state:"+state).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

type LeaderboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func (c *LeaderboardCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.rdb.Get(ctx, "leaderboard:"+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, key string, value []byte) error {
	return c.rdb.Set(ctx, "leaderboard:"+key, value, c.ttl).Err()
}
