package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"atelier/config"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func createTestImageService(t *testing.T, maxSize int64) (usecase.ImageUsecase, *mockSvc.MockObjectStorage) {
	storage := mockSvc.NewMockObjectStorage(t)

	return NewImageService(ImageServiceParams{
		Storage: storage,
		Config:  &config.Config{Storage: &config.StorageConfig{MaxImageSize: maxSize}},
		Logger:  discardLogger(),
	}), storage
}

func TestImageService_Upload(t *testing.T) {
	images, storage := createTestImageService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	storage.EXPECT().Put(ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, userID.String()+"/") && strings.HasSuffix(key, ".png") && len(key) == 36+1+64+4
	}), "image/png", pngHeader).Return("https://cdn/img.png", nil)

	url, err := images.Upload(ctx, userID, &usecase.UploadImageInput{Filename: "dress.PNG", Data: pngHeader})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/img.png", url)
}

func TestImageService_Upload_Rejections(t *testing.T) {
	images, _ := createTestImageService(t, 32)
	ctx := context.Background()

	_, err := images.Upload(ctx, uuid.New(), &usecase.UploadImageInput{Filename: "a.png"})
	assert.True(t, errors.Is(err, domainerrors.ErrRequiredFieldsMissing))

	_, err = images.Upload(ctx, uuid.New(), &usecase.UploadImageInput{Filename: "a.txt", Data: []byte("plain text")})
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedImage))

	_, err = images.Upload(ctx, uuid.New(), &usecase.UploadImageInput{Filename: "a.png", Data: append(bytes.Clone(pngHeader), bytes.Repeat([]byte{0}, 64)...)})
	assert.True(t, errors.Is(err, domainerrors.ErrImageTooLarge))
}

func TestImageService_List(t *testing.T) {
	images, storage := createTestImageService(t, 0)
	ctx := context.Background()
	userID := uuid.New()
	objects := []service.StoredObject{{Key: userID.String() + "/abc.png"}}

	storage.EXPECT().List(ctx, userID.String()+"/").Return(objects, nil)

	got, err := images.List(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, objects, got)
}
