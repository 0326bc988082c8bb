package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/flowfit/flowfit/internal/domain"
	"github.com/flowfit/flowfit/internal/repository"
)

// DraftEntry is one requested exercise placement in a session submission.
type DraftEntry struct {
	ExerciseID string `json:"exercise_id"`
	Duration   int    `json:"duration"` // seconds, 0 = default
}

// DraftInput is a session draft as submitted by the client.
type DraftInput struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Difficulty  string       `json:"difficulty"`
	RestTime    int          `json:"rest_time"`
	ImageURL    string       `json:"image_url"`
	Exercises   []DraftEntry `json:"exercises"`
}

// SessionDetail is a session enriched with the viewer's relationship to
// it, assembled for the detail endpoint.
type SessionDetail struct {
	*domain.Session
	FavoriteCount int64 `json:"favorite_count"`
	IsFavorite    bool  `json:"is_favorite"`
	MyRating      int   `json:"my_rating,omitempty"`
}

// SessionService is the session store: it owns draft validation,
// duration computation and persistence. Every code path that changes
// the exercise list or rest time goes through the same
// domain.ComputeTotalDuration, so the stored duration always matches
// what the composer previews.
type SessionService struct {
	sessionRepo  domain.SessionRepository
	exerciseRepo domain.ExerciseRepository
	ratingRepo   domain.RatingRepository
	favoriteRepo domain.FavoriteRepository
	cache        *repository.RedisCacheRepository
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo domain.SessionRepository,
	exerciseRepo domain.ExerciseRepository,
	ratingRepo domain.RatingRepository,
	favoriteRepo domain.FavoriteRepository,
	cache *repository.RedisCacheRepository,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		exerciseRepo: exerciseRepo,
		ratingRepo:   ratingRepo,
		favoriteRepo: favoriteRepo,
		cache:        cache,
	}
}

// buildDraft replays the submitted entries through the composer so the
// order invariant and duplicate rejection apply to API submissions the
// same way they apply to interactive composition.
func (s *SessionService) buildDraft(ctx context.Context, input DraftInput) (*domain.SessionDraft, error) {
	draft := &domain.SessionDraft{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
		RestTime:    input.RestTime,
	}

	for _, entry := range input.Exercises {
		ex, err := s.exerciseRepo.GetByID(ctx, entry.ExerciseID)
		if err != nil {
			return nil, fmt.Errorf("invalid exercise %s: %w", entry.ExerciseID, err)
		}
		if err := draft.AddExercise(ex); err != nil {
			return nil, err
		}
		if entry.Duration < 0 {
			return nil, domain.ErrInvalidDuration
		}
		if entry.Duration > 0 {
			draft.Exercises[len(draft.Exercises)-1].Duration = entry.Duration
		}
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if !domain.ValidSessionCategory(draft.Category) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, draft.Category)
	}
	if !domain.ValidDifficulty(draft.Difficulty) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, draft.Difficulty)
	}
	return draft, nil
}

// Create validates a draft and persists it with its computed duration
func (s *SessionService) Create(ctx context.Context, userID string, input DraftInput) (*domain.Session, error) {
	draft, err := s.buildDraft(ctx, input)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		Name:        draft.Name,
		Description: draft.Description,
		Category:    draft.Category,
		Difficulty:  draft.Difficulty,
		RestTime:    draft.RestTime,
		Duration:    draft.TotalDuration(),
		Exercises:   draft.Exercises,
		ImageURL:    input.ImageURL,
		CreatedBy:   userID,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns a session if the viewer may see it (owner or shared).
// The document is cached briefly; visibility is still checked per
// viewer since the cached copy is viewer-independent.
func (s *SessionService) Get(ctx context.Context, userID, sessionID string) (*domain.Session, error) {
	var cached domain.Session
	if err := s.cache.GetSession(ctx, sessionID, &cached); err == nil {
		if !cached.VisibleTo(userID) {
			return nil, domain.ErrForbidden
		}
		return &cached, nil
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetSession(ctx, sessionID, session, 60*time.Second)

	if !session.VisibleTo(userID) {
		return nil, domain.ErrForbidden
	}
	return session, nil
}

// GetDetail returns a session plus the viewer's favorite/rating state.
// The three lookups are independent, so they run concurrently.
func (s *SessionService) GetDetail(ctx context.Context, userID, sessionID string) (*SessionDetail, error) {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	detail := &SessionDetail{Session: session}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.favoriteRepo.CountBySession(gCtx, sessionID)
		if err != nil {
			return err
		}
		detail.FavoriteCount = count
		return nil
	})
	g.Go(func() error {
		isFav, err := s.favoriteRepo.Exists(gCtx, userID, sessionID)
		if err != nil {
			return err
		}
		detail.IsFavorite = isFav
		return nil
	})
	g.Go(func() error {
		rating, err := s.ratingRepo.GetByUserAndSession(gCtx, userID, sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		}
		detail.MyRating = rating.Value
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

// ListMine returns the caller's sessions
func (s *SessionService) ListMine(ctx context.Context, userID string) ([]*domain.Session, error) {
	return s.sessionRepo.ListByOwner(ctx, userID)
}

// ListShared returns the community browse list, cached briefly since it
// is the hottest read in the app
func (s *SessionService) ListShared(ctx context.Context) ([]*domain.Session, error) {
	var cached []*domain.Session
	if err := s.cache.GetCommunitySessions(ctx, &cached); err == nil {
		return cached, nil
	}

	sessions, err := s.sessionRepo.ListShared(ctx)
	if err != nil {
		return nil, err
	}

	// Cache miss path: best-effort write-through
	_ = s.cache.SetCommunitySessions(ctx, sessions, 60*time.Second)
	return sessions, nil
}

// Update replaces a session's editable fields, recomputing duration
// from the new exercise list and rest time. Owner only.
func (s *SessionService) Update(ctx context.Context, userID, sessionID string, input DraftInput) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}

	draft, err := s.buildDraft(ctx, input)
	if err != nil {
		return nil, err
	}

	session.Name = draft.Name
	session.Description = draft.Description
	session.Category = draft.Category
	session.Difficulty = draft.Difficulty
	session.RestTime = draft.RestTime
	session.Duration = draft.TotalDuration()
	session.Exercises = draft.Exercises
	if input.ImageURL != "" {
		session.ImageURL = input.ImageURL
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	s.invalidate(ctx, sessionID, session.IsShared)
	return session, nil
}

// SetShared toggles community visibility. Owner only.
func (s *SessionService) SetShared(ctx context.Context, userID, sessionID string, shared bool) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}

	if err := s.sessionRepo.SetShared(ctx, sessionID, shared); err != nil {
		return nil, err
	}
	session.IsShared = shared

	s.invalidate(ctx, sessionID, true)
	return session, nil
}

// Delete removes a session and cascades to its ratings and favorites
// so no orphaned references survive. Owner only.
func (s *SessionService) Delete(ctx context.Context, userID, sessionID string) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.OwnedBy(userID) {
		return domain.ErrForbidden
	}

	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}
	if err := s.ratingRepo.DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("session deleted but ratings cleanup failed: %w", err)
	}
	if err := s.favoriteRepo.DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("session deleted but favorites cleanup failed: %w", err)
	}

	s.invalidate(ctx, sessionID, session.IsShared)
	return nil
}

// invalidate drops the session's cached detail and, when the change is
// community-visible, the browse list too
func (s *SessionService) invalidate(ctx context.Context, sessionID string, shared bool) {
	_ = s.cache.InvalidateSession(ctx, sessionID)
	if shared {
		_ = s.cache.InvalidateCommunitySessions(ctx)
	}
}
