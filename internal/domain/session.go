package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionNotShared  = errors.New("session is not shared")
	ErrInvalidCategory   = errors.New("invalid session category")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// Session difficulty levels
const (
	DifficultyFacile    = "Facile"
	DifficultyMoyen     = "Moyen"
	DifficultyDifficile = "Difficile"
)

// DefaultExerciseDuration is assigned to an entry when it is added to a
// draft and the user has not picked a duration yet.
const DefaultExerciseDuration = 30

// AllowedRestTimes are the only rest intervals (seconds) a session may
// use between exercises.
var AllowedRestTimes = []int{5, 10, 15, 20}

// SessionCategories lists the valid categories for a session.
var SessionCategories = []string{CategoryMusculation, CategoryYoga, CategoryMobilite, CategoryMixte}

// SessionExercise is one exercise's placement inside a session.
// Order values always form the exact set {1..N}.
type SessionExercise struct {
	ExerciseID string `json:"exercise_id" bson:"exercise_id"`
	Name       string `json:"name" bson:"name"` // Denormalized for easy display
	Order      int    `json:"order" bson:"order"`
	Duration   int    `json:"duration" bson:"duration"` // seconds
}

// Session is a persisted, user-composed workout
type Session struct {
	ID          string             `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    string             `json:"category" bson:"category"`
	Difficulty  string             `json:"difficulty" bson:"difficulty"`
	RestTime    int                `json:"rest_time" bson:"rest_time"` // seconds between exercises
	Duration    int                `json:"duration" bson:"duration"`   // computed, seconds
	Exercises   []*SessionExercise `json:"exercises" bson:"exercises"`
	Rating      float64            `json:"rating" bson:"rating"`
	RatingCount int                `json:"rating_count" bson:"rating_count"`
	IsShared    bool               `json:"is_shared" bson:"is_shared"`
	ImageURL    string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedBy   string             `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// OwnedBy reports whether userID owns the session.
func (s *Session) OwnedBy(userID string) bool {
	return s.CreatedBy != "" && s.CreatedBy == userID
}

// VisibleTo reports whether userID may read the session: owners always,
// everyone else only when it is shared.
func (s *Session) VisibleTo(userID string) bool {
	return s.IsShared || s.OwnedBy(userID)
}

// ValidSessionCategory reports whether c is a known session category.
func ValidSessionCategory(c string) bool {
	for _, cat := range SessionCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// ValidDifficulty reports whether d is a known difficulty.
func ValidDifficulty(d string) bool {
	return d == DifficultyFacile || d == DifficultyMoyen || d == DifficultyDifficile
}

// ValidRestTime reports whether rt is one of the allowed rest values.
func ValidRestTime(rt int) bool {
	for _, v := range AllowedRestTimes {
		if rt == v {
			return true
		}
	}
	return false
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListByOwner(ctx context.Context, userID string) ([]*Session, error)
	ListShared(ctx context.Context) ([]*Session, error)
	Update(ctx context.Context, session *Session) error
	UpdateRating(ctx context.Context, id string, rating float64, count int) error
	SetShared(ctx context.Context, id string, shared bool) error
	Delete(ctx context.Context, id string) error
}
