package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flowfit/flowfit/internal/domain"
	"github.com/flowfit/flowfit/internal/service"
)

// ExerciseHandler handles exercise catalog endpoints
type ExerciseHandler struct {
	exerciseService *service.ExerciseService
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(exerciseService *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

type exerciseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	ImageURL    string `json:"image_url"`
}

// Create handles POST /v1/exercises
func (h *ExerciseHandler) Create(c *fiber.Ctx) error {
	var req exerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	exercise := &domain.Exercise{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		ImageURL:    req.ImageURL,
	}
	if err := h.exerciseService.Create(c.Context(), exercise); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(exercise)
}

// Get handles GET /v1/exercises/:id
func (h *ExerciseHandler) Get(c *fiber.Ctx) error {
	exercise, err := h.exerciseService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(exercise)
}

// List handles GET /v1/exercises?name=&category=
func (h *ExerciseHandler) List(c *fiber.Ctx) error {
	exercises, err := h.exerciseService.List(c.Context(), c.Query("name"), c.Query("category"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"exercises": exercises,
		"count":     len(exercises),
	})
}

// Update handles PUT /v1/exercises/:id
func (h *ExerciseHandler) Update(c *fiber.Ctx) error {
	var req exerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	exercise := &domain.Exercise{
		ID:          c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		ImageURL:    req.ImageURL,
	}
	if err := h.exerciseService.Update(c.Context(), exercise); err != nil {
		return fail(c, err)
	}

	return c.JSON(exercise)
}

// Delete handles DELETE /v1/exercises/:id
func (h *ExerciseHandler) Delete(c *fiber.Ctx) error {
	if err := h.exerciseService.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
