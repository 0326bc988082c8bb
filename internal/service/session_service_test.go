package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowfit/flowfit/internal/domain"
	"github.com/flowfit/flowfit/internal/repository"
)

type sessionRepoStub struct {
	session  *domain.Session
	getCalls int
}

func (s *sessionRepoStub) Create(ctx context.Context, session *domain.Session) error { return nil }

func (s *sessionRepoStub) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	s.getCalls++
	if s.session == nil || s.session.ID != id {
		return nil, domain.ErrSessionNotFound
	}
	clone := *s.session
	return &clone, nil
}

func (s *sessionRepoStub) ListByOwner(ctx context.Context, userID string) ([]*domain.Session, error) {
	return nil, nil
}

func (s *sessionRepoStub) ListShared(ctx context.Context) ([]*domain.Session, error) {
	return nil, nil
}

func (s *sessionRepoStub) Update(ctx context.Context, session *domain.Session) error { return nil }

func (s *sessionRepoStub) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	return nil
}

func (s *sessionRepoStub) SetShared(ctx context.Context, id string, shared bool) error { return nil }

func (s *sessionRepoStub) Delete(ctx context.Context, id string) error { return nil }

func newCacheForTest(t *testing.T) *repository.RedisCacheRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return repository.NewRedisCacheRepository(client)
}

func TestGetServesFromCacheAfterFirstRead(t *testing.T) {
	ctx := context.Background()
	cache := newCacheForTest(t)
	repo := &sessionRepoStub{session: &domain.Session{
		ID:        "s1",
		Name:      "Circuit du matin",
		CreatedBy: "alice",
	}}
	svc := NewSessionService(repo, nil, nil, nil, cache)

	first, err := svc.Get(ctx, "alice", "s1")
	require.NoError(t, err)
	second, err := svc.Get(ctx, "alice", "s1")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getCalls, "second read should come from cache")
	assert.Equal(t, first.Name, second.Name)
}

func TestGetChecksVisibilityOnCachedCopy(t *testing.T) {
	ctx := context.Background()
	cache := newCacheForTest(t)
	repo := &sessionRepoStub{session: &domain.Session{
		ID:        "s1",
		Name:      "Circuit du matin",
		CreatedBy: "alice",
	}}
	svc := NewSessionService(repo, nil, nil, nil, cache)

	_, err := svc.Get(ctx, "alice", "s1")
	require.NoError(t, err)

	// The cached copy is viewer-independent, so another user still
	// gets turned away from an unshared session.
	_, err = svc.Get(ctx, "bob", "s1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestInvalidateSessionForcesRefetch(t *testing.T) {
	ctx := context.Background()
	cache := newCacheForTest(t)
	repo := &sessionRepoStub{session: &domain.Session{
		ID:        "s1",
		Name:      "Circuit du matin",
		CreatedBy: "alice",
	}}
	svc := NewSessionService(repo, nil, nil, nil, cache)

	_, err := svc.Get(ctx, "alice", "s1")
	require.NoError(t, err)
	require.NoError(t, cache.InvalidateSession(ctx, "s1"))

	_, err = svc.Get(ctx, "alice", "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls)
}
