package impl

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"
	"atelier/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxImageSize = 10 << 20

// imageService implements the ImageUsecase interface.
type imageService struct {
	storage service.ObjectStorage
	maxSize int64
	logger  *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	Storage service.ObjectStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	maxSize := int64(defaultMaxImageSize)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageSize > 0 {
		maxSize = params.Config.Storage.MaxImageSize
	}

	return &imageService{
		storage: params.Storage,
		maxSize: maxSize,
		logger:  params.Logger,
	}
}

// Upload stores the image under <userID>/<sha256><ext>; identical uploads share a key.
func (srv *imageService) Upload(ctx context.Context, userID uuid.UUID, input *usecase.UploadImageInput) (string, error) {
	if len(input.Data) == 0 {
		return "", errors.Wrap(domainerrors.ErrRequiredFieldsMissing, "file is required")
	}
	if int64(len(input.Data)) > srv.maxSize {
		return "", errors.Wrapf(domainerrors.ErrImageTooLarge, "%s exceeds %s", util.FormatBytes(int64(len(input.Data))), util.FormatBytes(srv.maxSize))
	}

	contentType := http.DetectContentType(input.Data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.Wrapf(domainerrors.ErrUnsupportedImage, "detected %s", contentType)
	}

	key := userID.String() + "/" + util.ContentAddress(input.Data) + imageExtension(input.Filename, contentType)

	url, err := srv.storage.Put(ctx, key, contentType, input.Data)
	if err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Image uploaded",
		slog.Any("userID", userID), slog.String("key", key), slog.String("size", util.FormatBytes(int64(len(input.Data)))))

	return url, nil
}

// List returns the caller's uploaded images.
func (srv *imageService) List(ctx context.Context, userID uuid.UUID) ([]service.StoredObject, error) {
	objects, err := srv.storage.List(ctx, userID.String()+"/")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list images")
	}

	return objects, nil
}

func imageExtension(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && strings.HasPrefix(mime.TypeByExtension(ext), "image/") {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}
