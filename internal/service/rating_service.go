package service

import (
	"context"
	"math"
	"time"

	"github.com/flowfit/flowfit/internal/domain"
	"github.com/flowfit/flowfit/internal/repository"
)

// RatingService records per-user ratings on shared sessions and keeps
// the denormalized mean on the session document in sync.
type RatingService struct {
	ratingRepo  domain.RatingRepository
	sessionRepo domain.SessionRepository
	cache       *repository.RedisCacheRepository
}

// NewRatingService creates a new rating service
func NewRatingService(
	ratingRepo domain.RatingRepository,
	sessionRepo domain.SessionRepository,
	cache *repository.RedisCacheRepository,
) *RatingService {
	return &RatingService{
		ratingRepo:  ratingRepo,
		sessionRepo: sessionRepo,
		cache:       cache,
	}
}

// Rate upserts the caller's rating and recomputes the session mean.
// The mean is recomputed from the full rating set rather than adjusted
// incrementally, so a replayed or re-submitted rating can never skew
// the aggregate.
func (s *RatingService) Rate(ctx context.Context, userID, sessionID string, value int) (*domain.Session, error) {
	if value < 1 || value > 5 {
		return nil, domain.ErrInvalidRating
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsShared {
		return nil, domain.ErrSessionNotShared
	}

	rating := &domain.Rating{
		UserID:    userID,
		SessionID: sessionID,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}

	all, err := s.ratingRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	mean := 0.0
	if len(all) > 0 {
		sum := 0
		for _, r := range all {
			sum += r.Value
		}
		// one decimal, matching what clients display
		mean = math.Round(float64(sum)/float64(len(all))*10) / 10
	}

	if err := s.sessionRepo.UpdateRating(ctx, sessionID, mean, len(all)); err != nil {
		return nil, err
	}
	session.Rating = mean
	session.RatingCount = len(all)

	_ = s.cache.InvalidateSession(ctx, sessionID)
	_ = s.cache.InvalidateCommunitySessions(ctx)
	return session, nil
}
