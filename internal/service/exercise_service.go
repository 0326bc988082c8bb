package service

import (
	"context"
	"time"

	"github.com/flowfit/flowfit/internal/domain"
	"github.com/flowfit/flowfit/internal/repository"
)

// ExerciseService manages the exercise catalog.
type ExerciseService struct {
	exerciseRepo domain.ExerciseRepository
	cache        *repository.RedisCacheRepository
}

// NewExerciseService creates a new exercise service
func NewExerciseService(exerciseRepo domain.ExerciseRepository, cache *repository.RedisCacheRepository) *ExerciseService {
	return &ExerciseService{
		exerciseRepo: exerciseRepo,
		cache:        cache,
	}
}

// Create adds an exercise to the catalog
func (s *ExerciseService) Create(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.Name == "" {
		return &domain.MissingFieldError{Field: "name"}
	}
	if !domain.ValidExerciseCategory(exercise.Category) {
		return &domain.MissingFieldError{Field: "category"}
	}

	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return err
	}
	_ = s.cache.InvalidateExerciseCatalog(ctx)
	return nil
}

// Get returns one exercise by ID
func (s *ExerciseService) Get(ctx context.Context, id string) (*domain.Exercise, error) {
	return s.exerciseRepo.GetByID(ctx, id)
}

// List returns the catalog, optionally filtered by name substring and
// category. The unfiltered catalog is cached since clients fetch it on
// every composer open.
func (s *ExerciseService) List(ctx context.Context, nameFilter, category string) ([]*domain.Exercise, error) {
	unfiltered := nameFilter == "" && category == ""
	if unfiltered {
		var cached []*domain.Exercise
		if err := s.cache.GetExerciseCatalog(ctx, &cached); err == nil {
			return cached, nil
		}
	}

	exercises, err := s.exerciseRepo.List(ctx, map[string]interface{}{
		"name":     nameFilter,
		"category": category,
	})
	if err != nil {
		return nil, err
	}

	if unfiltered {
		_ = s.cache.SetExerciseCatalog(ctx, exercises, 5*time.Minute)
	}
	return exercises, nil
}

// Update replaces an exercise's editable fields
func (s *ExerciseService) Update(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.Name == "" {
		return &domain.MissingFieldError{Field: "name"}
	}
	if !domain.ValidExerciseCategory(exercise.Category) {
		return &domain.MissingFieldError{Field: "category"}
	}

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return err
	}
	_ = s.cache.InvalidateExerciseCatalog(ctx)
	return nil
}

// Delete removes an exercise from the catalog. Sessions that already
// reference it keep their denormalized copy.
func (s *ExerciseService) Delete(ctx context.Context, id string) error {
	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.InvalidateExerciseCatalog(ctx)
	return nil
}
