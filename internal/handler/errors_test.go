package handler

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowfit/flowfit/internal/domain"
	"github.com/flowfit/flowfit/internal/playback"
)

func failStatus(t *testing.T, err error) int {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return fail(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestFailStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"session not found", domain.ErrSessionNotFound, 404},
		{"forbidden", domain.ErrForbidden, 403},
		{"not shared", domain.ErrSessionNotShared, 403},
		{"missing field", &domain.MissingFieldError{Field: "name"}, 400},
		{"rest time", domain.ErrInvalidRestTime, 400},
		{"unknown category", fmt.Errorf("%w: %q", domain.ErrInvalidCategory, "Cardio"), 400},
		{"unknown difficulty", fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, "Extrême"), 400},
		{"rating range", domain.ErrInvalidRating, 400},
		{"empty playback list", playback.ErrEmptyPlaybackList, 400},
		{"duplicate exercise", domain.ErrDuplicateExercise, 409},
		{"duplicate email", domain.ErrDuplicateEmail, 409},
		{"unexpected", fmt.Errorf("connection reset"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, failStatus(t, tc.err))
		})
	}
}
