// Package cache memoizes ATS scores in Redis, keyed by a hash of the scored document and
// the scoring mode.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// KeyPrefix namespaces every score key.
const KeyPrefix = "ats:score:"

// DefaultTTL applies when a store is created with a non-positive TTL.
const DefaultTTL = 24 * time.Hour

// Store is the cache contract used by the HTTP server.
type Store interface {
	Get(ctx context.Context, key string) (*types.ATSScore, bool, error)
	Set(ctx context.Context, key string, score *types.ATSScore) error
}

// ScoreKey derives the cache key for a document scored in the given mode. Documents
// that marshal to the same JSON share a key.
func ScoreKey(doc *types.ResumeDocument, mode string) (string, error) {
	if doc == nil {
		doc = &types.ResumeDocument{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document for cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return KeyPrefix + hex.EncodeToString(sum[:]) + ":" + mode, nil
}

// RedisStore is a Store backed by go-redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore parses a redis:// URL and returns a store. The connection is lazy; call
// Ping to verify it.
func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: ttl}, nil
}

// TTL returns the expiry applied to new entries.
func (r *RedisStore) TTL() time.Duration {
	return r.ttl
}

// Get returns the cached score for key. A miss is (nil, false, nil).
func (r *RedisStore) Get(ctx context.Context, key string) (*types.ATSScore, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached score: %w", err)
	}

	var score types.ATSScore
	if err := json.Unmarshal(raw, &score); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached score: %w", err)
	}
	return &score, true, nil
}

// Set stores score under key with the store's TTL.
func (r *RedisStore) Set(ctx context.Context, key string, score *types.ATSScore) error {
	if score == nil {
		return nil
	}
	data, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache score: %w", err)
	}
	return nil
}

// Delete drops a cached entry.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping tests the Redis connection
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.client.Close()
}
