package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flowfit/flowfit/internal/middleware"
	"github.com/flowfit/flowfit/internal/service"
)

// SessionHandler handles workout session endpoints
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var input service.DraftInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.sessionService.Create(c.Context(), middleware.UserID(c), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// Get handles GET /v1/sessions/:id
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	detail, err := h.sessionService.GetDetail(c.Context(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(detail)
}

// ListMine handles GET /v1/sessions
func (h *SessionHandler) ListMine(c *fiber.Ctx) error {
	sessions, err := h.sessionService.ListMine(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// Update handles PUT /v1/sessions/:id
func (h *SessionHandler) Update(c *fiber.Ctx) error {
	var input service.DraftInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.sessionService.Update(c.Context(), middleware.UserID(c), c.Params("id"), input)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(session)
}

// Share handles PUT /v1/sessions/:id/share
func (h *SessionHandler) Share(c *fiber.Ctx) error {
	var req struct {
		Shared bool `json:"shared"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.sessionService.SetShared(c.Context(), middleware.UserID(c), c.Params("id"), req.Shared)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(session)
}

// Delete handles DELETE /v1/sessions/:id
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	if err := h.sessionService.Delete(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
