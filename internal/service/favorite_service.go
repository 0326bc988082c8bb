package service

import (
	"context"
	"time"

	"github.com/flowfit/flowfit/internal/domain"
)

// FavoriteService manages per-user session bookmarks.
type FavoriteService struct {
	favoriteRepo domain.FavoriteRepository
	sessionRepo  domain.SessionRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favoriteRepo domain.FavoriteRepository, sessionRepo domain.SessionRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		sessionRepo:  sessionRepo,
	}
}

// Add bookmarks a session for the caller. Favoriting something already
// favorited is a no-op, not an error.
func (s *FavoriteService) Add(ctx context.Context, userID, sessionID string) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.VisibleTo(userID) {
		return domain.ErrForbidden
	}

	return s.favoriteRepo.Add(ctx, &domain.Favorite{
		UserID:    userID,
		SessionID: sessionID,
		CreatedAt: time.Now(),
	})
}

// Remove drops the caller's bookmark. Removing an absent bookmark is a
// no-op.
func (s *FavoriteService) Remove(ctx context.Context, userID, sessionID string) error {
	return s.favoriteRepo.Remove(ctx, userID, sessionID)
}

// List returns the caller's favorited sessions, skipping any that were
// deleted or un-shared since they were bookmarked.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]*domain.Session, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sessions := make([]*domain.Session, 0, len(favorites))
	for _, fav := range favorites {
		session, err := s.sessionRepo.GetByID(ctx, fav.SessionID)
		if err != nil {
			continue
		}
		if !session.VisibleTo(userID) {
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
