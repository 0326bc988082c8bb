package domain

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Rating is one user's score for a shared session. One rating per
// (user, session) pair; writes are upserts, never retractions.
type Rating struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	SessionID string    `json:"session_id" bson:"session_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Value     int       `json:"value" bson:"value"` // 1..5
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating *Rating) error
	ListBySession(ctx context.Context, sessionID string) ([]*Rating, error)
	GetByUserAndSession(ctx context.Context, userID, sessionID string) (*Rating, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}
