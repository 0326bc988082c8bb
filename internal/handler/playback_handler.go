package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flowfit/flowfit/internal/middleware"
	"github.com/flowfit/flowfit/internal/service"
)

// PlaybackHandler handles the pre-start playback endpoints. The tick
// loop itself runs client-side; these endpoints hand the client the
// exact schedule the engine would produce.
type PlaybackHandler struct {
	playbackService *service.PlaybackService
}

// NewPlaybackHandler creates a new playback handler
func NewPlaybackHandler(playbackService *service.PlaybackService) *PlaybackHandler {
	return &PlaybackHandler{playbackService: playbackService}
}

func parsePlaybackOptions(c *fiber.Ctx) (service.PlaybackOptions, error) {
	var opts service.PlaybackOptions
	if len(c.Body()) == 0 {
		return opts, nil
	}
	if err := c.BodyParser(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// Preview handles POST /v1/sessions/:id/playback/preview
func (h *PlaybackHandler) Preview(c *fiber.Ctx) error {
	opts, err := parsePlaybackOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	preview, err := h.playbackService.Preview(c.Context(), middleware.UserID(c), c.Params("id"), opts)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(preview)
}

// Timeline handles POST /v1/sessions/:id/playback/timeline
func (h *PlaybackHandler) Timeline(c *fiber.Ctx) error {
	opts, err := parsePlaybackOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	timeline, err := h.playbackService.Timeline(c.Context(), middleware.UserID(c), c.Params("id"), opts)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(timeline)
}
