package redis_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cinta/pkg/adapters/redis"
	"github.com/aretw0/cinta/pkg/machine"
	"github.com/aretw0/cinta/pkg/ports"
	"github.com/aretw0/cinta/pkg/ports/tests"
)

func TestCache_Contract(t *testing.T) {
	cache, _ := newTestCache(t)
	tests.VerdictCacheContractTest(t, cache)
}

func newTestCache(t *testing.T, opts ...redis.Option) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return redis.NewFromClient(client, opts...), mr
}

func sampleKey() ports.RunKey {
	return ports.RunKey{
		Fingerprint: strings.Repeat("ab", 32),
		Input:       "abba",
		MaxSteps:    500,
	}
}

func sampleResult() machine.RunResult {
	return machine.RunResult{
		Verdict: machine.VerdictAccepted,
		Steps:   5,
		State:   "qf",
		Tape:    "abba",
		Head:    4,
	}
}

func TestCache_ProbeMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Probe(context.Background(), sampleKey())
	assert.True(t, errors.Is(err, machine.ErrRunNotCached))
}

func TestCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, sampleKey(), sampleResult()))

	got, err := cache.Probe(ctx, sampleKey())
	require.NoError(t, err)
	assert.Equal(t, sampleResult(), *got)
}

func TestCache_KeysAreBoundSpecific(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, sampleKey(), sampleResult()))

	// The same input under a different step bound is a different run.
	other := sampleKey()
	other.MaxSteps = 10
	_, err := cache.Probe(ctx, other)
	assert.True(t, errors.Is(err, machine.ErrRunNotCached))
}

func TestCache_TTLExpires(t *testing.T) {
	cache, mr := newTestCache(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, sampleKey(), sampleResult()))

	_, err := cache.Probe(ctx, sampleKey())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cache.Probe(ctx, sampleKey())
	assert.True(t, errors.Is(err, machine.ErrRunNotCached))
}

func TestCache_Prefix(t *testing.T) {
	cache, mr := newTestCache(t, redis.WithPrefix("answers:"))

	require.NoError(t, cache.Store(context.Background(), sampleKey(), sampleResult()))

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "answers:"))
}

func TestCache_CorruptPayload(t *testing.T) {
	cache, mr := newTestCache(t)

	key := "cinta:verdict:" + sampleKey().String()
	require.NoError(t, mr.Set(key, "not json"))

	_, err := cache.Probe(context.Background(), sampleKey())
	require.Error(t, err)
	assert.False(t, errors.Is(err, machine.ErrRunNotCached))
}
