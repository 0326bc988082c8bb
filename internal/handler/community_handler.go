package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/flowfit/flowfit/internal/middleware"
	"github.com/flowfit/flowfit/internal/service"
)

// CommunityHandler handles the shared-session browse, rating and
// favorite endpoints
type CommunityHandler struct {
	sessionService  *service.SessionService
	ratingService   *service.RatingService
	favoriteService *service.FavoriteService
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(
	sessionService *service.SessionService,
	ratingService *service.RatingService,
	favoriteService *service.FavoriteService,
) *CommunityHandler {
	return &CommunityHandler{
		sessionService:  sessionService,
		ratingService:   ratingService,
		favoriteService: favoriteService,
	}
}

// ListShared handles GET /v1/community/sessions
func (h *CommunityHandler) ListShared(c *fiber.Ctx) error {
	sessions, err := h.sessionService.ListShared(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// Rate handles PUT /v1/community/sessions/:id/rating
func (h *CommunityHandler) Rate(c *fiber.Ctx) error {
	var req struct {
		Rating int `json:"rating"`
	}
	if err := c.BodyParser(&req); err != nil {
		// Also accept the value as a query param for simple clients
		if v, qerr := strconv.Atoi(c.Query("rating")); qerr == nil {
			req.Rating = v
		} else {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	session, err := h.ratingService.Rate(c.Context(), middleware.UserID(c), c.Params("id"), req.Rating)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"rating":       session.Rating,
		"rating_count": session.RatingCount,
	})
}

// Favorite handles PUT /v1/community/sessions/:id/favorite
func (h *CommunityHandler) Favorite(c *fiber.Ctx) error {
	if err := h.favoriteService.Add(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Session added to favorites",
	})
}

// Unfavorite handles DELETE /v1/community/sessions/:id/favorite
func (h *CommunityHandler) Unfavorite(c *fiber.Ctx) error {
	if err := h.favoriteService.Remove(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListFavorites handles GET /v1/favorites
func (h *CommunityHandler) ListFavorites(c *fiber.Ctx) error {
	sessions, err := h.favoriteService.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"sessions": sessions,
		"count":    len(sessions),
	})
}
