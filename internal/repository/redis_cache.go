package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	communitySessionsKey = "community:sessions"
	sessionKeyPrefix     = "session:"
	exerciseCatalogKey   = "exercises:catalog"
)

var ErrCacheMiss = fmt.Errorf("cache miss")

// RedisCacheRepository caches read-heavy listings (community browse,
// exercise catalog, session details) with short TTLs.
type RedisCacheRepository struct {
	client *redis.Client
}

// NewRedisCacheRepository creates a new Redis cache repository
func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{
		client: client,
	}
}

// Get retrieves a value from cache by key with OTel tracing
func (r *RedisCacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Get",
		trace.WithAttributes(attribute.String("cache.key", key)),
	)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			span.SetAttributes(attribute.String("cache.result", "miss"))
			return ErrCacheMiss
		}
		span.RecordError(err)
		return fmt.Errorf("redis get error: %w", err)
	}

	span.SetAttributes(attribute.String("cache.result", "hit"))
	if err := json.Unmarshal(data, dest); err != nil {
		span.RecordError(err)
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// Set stores a value in cache with TTL and OTel tracing
func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Set",
		trace.WithAttributes(
			attribute.String("cache.key", key),
			attribute.Int64("cache.ttl_seconds", int64(ttl.Seconds())),
		),
	)
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}

// Delete removes keys from cache with OTel tracing
func (r *RedisCacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Delete",
		trace.WithAttributes(attribute.Int("cache.key_count", len(keys))),
	)
	defer span.End()

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis delete error: %w", err)
	}

	return nil
}

// SetCommunitySessions caches the shared-session browse list
func (r *RedisCacheRepository) SetCommunitySessions(ctx context.Context, data interface{}, ttl time.Duration) error {
	return r.Set(ctx, communitySessionsKey, data, ttl)
}

// GetCommunitySessions retrieves the cached shared-session browse list
func (r *RedisCacheRepository) GetCommunitySessions(ctx context.Context, dest interface{}) error {
	return r.Get(ctx, communitySessionsKey, dest)
}

// InvalidateCommunitySessions drops the browse list after any write
// that changes what the community sees (share toggle, rating, edit)
func (r *RedisCacheRepository) InvalidateCommunitySessions(ctx context.Context) error {
	return r.Delete(ctx, communitySessionsKey)
}

// SetSession caches one session document. Viewer-specific state
// (favorites, own rating) is never cached, only the document itself.
func (r *RedisCacheRepository) SetSession(ctx context.Context, sessionID string, data interface{}, ttl time.Duration) error {
	return r.Set(ctx, sessionKeyPrefix+sessionID, data, ttl)
}

// GetSession retrieves a cached session document
func (r *RedisCacheRepository) GetSession(ctx context.Context, sessionID string, dest interface{}) error {
	return r.Get(ctx, sessionKeyPrefix+sessionID, dest)
}

// InvalidateSession removes a session's cached document
func (r *RedisCacheRepository) InvalidateSession(ctx context.Context, sessionID string) error {
	return r.Delete(ctx, sessionKeyPrefix+sessionID)
}

// SetExerciseCatalog caches the unfiltered exercise list
func (r *RedisCacheRepository) SetExerciseCatalog(ctx context.Context, data interface{}, ttl time.Duration) error {
	return r.Set(ctx, exerciseCatalogKey, data, ttl)
}

// GetExerciseCatalog retrieves the cached exercise list
func (r *RedisCacheRepository) GetExerciseCatalog(ctx context.Context, dest interface{}) error {
	return r.Get(ctx, exerciseCatalogKey, dest)
}

// InvalidateExerciseCatalog drops the catalog cache after catalog writes
func (r *RedisCacheRepository) InvalidateExerciseCatalog(ctx context.Context) error {
	return r.Delete(ctx, exerciseCatalogKey)
}
