package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadImageRejectsUnknownContentType(t *testing.T) {
	svc := NewMediaService(nil)

	_, err := svc.UploadImage(context.Background(), "user-1", []byte("gif89a"), "image/gif")
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestUploadImageWithoutStorage(t *testing.T) {
	svc := NewMediaService(nil)

	_, err := svc.UploadImage(context.Background(), "user-1", []byte("jpeg"), "image/jpeg")
	assert.ErrorIs(t, err, ErrMediaUnavailable)
}
