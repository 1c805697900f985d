package redis

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/gameutils/internal/model"
	"github.com/mcoot/gameutils/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveDocument(ctx context.Context, name string, data []byte) error {
	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, rosterKey(name), data, s.cfg.RosterTTL)
	pipe.SAdd(ctx, rosterIndexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetDocument(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, rosterKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDocumentNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Storage) ListDocuments(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, rosterIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	// Drop index entries whose documents have expired
	live := make([]string, 0, len(names))
	for _, name := range names {
		n, err := s.client.Exists(ctx, rosterKey(name)).Result()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			_ = s.client.SRem(ctx, rosterIndexKey(), name).Err()
			continue
		}
		live = append(live, name)
	}
	sort.Strings(live)
	return live, nil
}
