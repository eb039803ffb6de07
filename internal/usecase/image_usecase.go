package usecase

import (
	"context"

	"atelier/internal/domain/service"

	"github.com/google/uuid"
)

// ImageUsecase stores and lists a user's uploaded images.
type ImageUsecase interface {
	Upload(ctx context.Context, userID uuid.UUID, input *UploadImageInput) (string, error)
	List(ctx context.Context, userID uuid.UUID) ([]service.StoredObject, error)
}

// UploadImageInput is a single uploaded file.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Data        []byte
}
