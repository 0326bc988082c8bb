package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/flowfit/flowfit/internal/domain"
	"github.com/flowfit/flowfit/internal/playback"
)

// fail maps domain errors to HTTP status codes and renders the JSON
// error body all endpoints share.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var missing *domain.MissingFieldError
	var outOfRange *domain.IndexOutOfRangeError

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrExerciseNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrSessionNotShared):
		status = fiber.StatusForbidden
	case errors.As(err, &missing),
		errors.As(err, &outOfRange),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyExerciseList),
		errors.Is(err, domain.ErrInvalidRestTime),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, playback.ErrEmptyPlaybackList):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateExercise),
		errors.Is(err, domain.ErrDuplicateExerciseName),
		errors.Is(err, domain.ErrDuplicateEmail):
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
