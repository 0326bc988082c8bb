package handler

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/flowfit/flowfit/internal/middleware"
	"github.com/flowfit/flowfit/internal/service"
)

// MediaHandler handles image upload endpoints
type MediaHandler struct {
	mediaService *service.MediaService
	maxUploadMB  int64
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService *service.MediaService, maxUploadMB int64) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		maxUploadMB:  maxUploadMB,
	}
}

// UploadImage handles POST /v1/media/images
func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid multipart form: " + err.Error(),
		})
	}

	files := form.File["image"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing 'image' field in form data",
		})
	}
	imageFile := files[0]

	maxBytes := h.maxUploadMB * 1024 * 1024
	if imageFile.Size > maxBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("file size exceeds maximum of %dMB", h.maxUploadMB),
		})
	}

	fileHandle, err := imageFile.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer fileHandle.Close()

	data, err := io.ReadAll(fileHandle)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	contentType := imageFile.Header.Get("Content-Type")
	url, err := h.mediaService.UploadImage(c.Context(), middleware.UserID(c), data, contentType)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImageType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid file type, only JPEG, PNG, and WebP images are allowed",
			})
		}
		if errors.Is(err, service.ErrMediaUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "media storage unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to store image: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}
