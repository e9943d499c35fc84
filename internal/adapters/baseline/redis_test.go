package baseline_test

import (
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retrial/internal/adapters/baseline"
	"go.trai.ch/retrial/internal/core/domain"
)

// setupRedisStore connects to RETRIAL_TEST_REDIS_URL and skips the test when it is unset or unreachable.
func setupRedisStore(t *testing.T) (*baseline.RedisStore, *redis.Client) {
	t.Helper()
	url := os.Getenv("RETRIAL_TEST_REDIS_URL")
	if url == "" {
		t.Skip("RETRIAL_TEST_REDIS_URL not set")
	}

	key := "retrial:test:" + t.Name()
	store, err := baseline.OpenRedisStore(t.Context(), url, key)
	if err != nil {
		t.Skipf("redis unreachable: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() {
		_ = client.Del(t.Context(), key).Err()
		_ = client.Close()
	})
	return store, client
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := setupRedisStore(t)

	want := sampleBaseline(t)
	require.NoError(t, store.Set(t.Context(), want))

	got, err := store.Get(t.Context())
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestRedisStore_SetReplacesHash(t *testing.T) {
	store, client := setupRedisStore(t)
	require.NoError(t, store.Set(t.Context(), sampleBaseline(t)))
	require.NoError(t, store.Set(t.Context(), domain.Baseline{}))

	n, err := client.Exists(t.Context(), "retrial:test:"+t.Name()).Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisStore_Describe(t *testing.T) {
	store := baseline.NewRedisStore(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "")
	assert.Equal(t, "redis:"+baseline.DefaultRedisKey, store.Describe())
	_ = store.Close()
}

func TestOpenRedisStore_InvalidURL(t *testing.T) {
	_, err := baseline.OpenRedisStore(t.Context(), "://nope", "")
	require.ErrorContains(t, err, domain.ErrInvalidConfig.Error())
}
