package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrExerciseNotFound      = errors.New("exercise not found")
	ErrDuplicateExerciseName = errors.New("exercise name already exists")
)

// Exercise categories. Sessions additionally allow CategoryMixte when
// they combine exercises from several categories.
const (
	CategoryMusculation = "Musculation"
	CategoryYoga        = "Yoga"
	CategoryMobilite    = "Mobilité"
	CategoryMixte       = "Mixte"
)

// ExerciseCategories lists the valid categories for a single exercise.
var ExerciseCategories = []string{CategoryMusculation, CategoryYoga, CategoryMobilite}

// Exercise represents a move in the global library. Read-only from the
// composer and playback point of view.
type Exercise struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"` // Unique Index
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Category    string    `json:"category" bson:"category"`
	Subcategory string    `json:"subcategory" bson:"subcategory"` // e.g., "Jambes", "Dos"
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidExerciseCategory reports whether c is a known exercise category.
func ValidExerciseCategory(c string) bool {
	for _, cat := range ExerciseCategories {
		if c == cat {
			return true
		}
	}
	return false
}

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *Exercise) error
	GetByID(ctx context.Context, id string) (*Exercise, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*Exercise, error)
	Update(ctx context.Context, exercise *Exercise) error
	Delete(ctx context.Context, id string) error
}
