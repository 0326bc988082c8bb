package domain

import (
	"context"
	"time"
)

// Favorite marks a session as bookmarked by a user.
type Favorite struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	SessionID string    `json:"session_id" bson:"session_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type FavoriteRepository interface {
	Add(ctx context.Context, favorite *Favorite) error
	Remove(ctx context.Context, userID, sessionID string) error
	Exists(ctx context.Context, userID, sessionID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*Favorite, error)
	CountBySession(ctx context.Context, sessionID string) (int64, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}
