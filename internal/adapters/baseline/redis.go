package baseline

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SavedDependenciesRepository = (*RedisStore)(nil)

// DefaultRedisKey is the hash key used when none is configured.
const DefaultRedisKey = "retrial:baseline"

// RedisStore keeps the baseline in one redis hash, field per dependency key.
// Set runs DEL and HSET inside MULTI/EXEC.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// OpenRedisStore parses a redis:// URL and checks the connection.
func OpenRedisStore(ctx context.Context, url, key string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "field", "baseline.url")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreConnectFailed.Error()), "backend", domain.BackendRedis)
	}

	return NewRedisStore(client, key), nil
}

// NewRedisStore creates a RedisStore over an existing client.
func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// Describe returns the redis key.
func (s *RedisStore) Describe() string {
	return "redis:" + s.key
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Set replaces the hash in a single transaction.
func (s *RedisStore) Set(ctx context.Context, b domain.Baseline) error {
	entries := toEntries(b)
	values := make(map[string]any, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Checksum
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(values) > 0 {
			pipe.HSet(ctx, s.key, values)
		}
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", s.key)
	}
	return nil
}

// Get reads the hash. A missing key yields an empty baseline.
func (s *RedisStore) Get(ctx context.Context) (domain.Baseline, error) {
	values, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return domain.Baseline{}, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", s.key)
	}

	entries := make([]entryDTO, 0, len(values))
	for k, v := range values {
		entries = append(entries, entryDTO{Key: k, Checksum: v})
	}

	b, err := fromEntries(entries)
	if err != nil {
		return domain.Baseline{}, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return b, nil
}
