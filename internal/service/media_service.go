package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/flowfit/flowfit/internal/repository"
)

var (
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrMediaUnavailable     = errors.New("media storage unavailable")
)

var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// MediaService stores uploaded images under ULID object keys so keys
// sort by upload time and never collide.
type MediaService struct {
	media *repository.MediaS3Repository
}

// NewMediaService creates a new media service
func NewMediaService(media *repository.MediaS3Repository) *MediaService {
	return &MediaService{media: media}
}

// UploadImage stores an image and returns its public URL
func (s *MediaService) UploadImage(ctx context.Context, userID string, data []byte, contentType string) (string, error) {
	ext, ok := imageContentTypes[strings.ToLower(contentType)]
	if !ok {
		return "", ErrUnsupportedImageType
	}

	// The S3 repository is optional at startup; uploads fail cleanly
	// when storage never came up.
	if s.media == nil {
		return "", ErrMediaUnavailable
	}

	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
	key := path.Join("images", userID, fmt.Sprintf("%s%s", id.String(), ext))

	return s.media.Upload(ctx, data, key, contentType)
}
