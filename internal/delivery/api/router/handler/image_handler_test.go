package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/service"
	mockUC "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImageHandler_Upload(t *testing.T) {
	imageUC := mockUC.NewMockImageUsecase(t)
	h := NewImageHandler(ImageHandlerParams{ImageUC: imageUC, Logger: discardLogger})
	userID := uuid.New()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="dress.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	imageUC.EXPECT().
		Upload(mock.Anything, userID, &usecase.UploadImageInput{
			Filename:    "dress.png",
			ContentType: "image/png",
			Data:        []byte("\x89PNG\r\n\x1a\n"),
		}).
		Return("https://cdn.example.com/"+userID.String()+"/abc.png", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/images", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	authenticate(c, userID, entity.RoleDesigner)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]string
	decodeData(t, rec, &got)
	assert.Equal(t, "https://cdn.example.com/"+userID.String()+"/abc.png", got["url"])
}

func TestImageHandler_Upload_MissingFile(t *testing.T) {
	h := NewImageHandler(ImageHandlerParams{ImageUC: mockUC.NewMockImageUsecase(t), Logger: discardLogger})

	c, rec := newJSONContext(http.MethodPost, "/api/images", `{}`)
	authenticate(c, uuid.New(), entity.RoleDesigner)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImageHandler_List(t *testing.T) {
	imageUC := mockUC.NewMockImageUsecase(t)
	h := NewImageHandler(ImageHandlerParams{ImageUC: imageUC, Logger: discardLogger})
	userID := uuid.New()

	imageUC.EXPECT().
		List(mock.Anything, userID).
		Return([]service.StoredObject{{Key: userID.String() + "/a.png", URL: "https://cdn/a.png", Size: 10}}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/images", "")
	authenticate(c, userID, entity.RoleDesigner)

	require.NoError(t, h.List(c))

	var got []imageView
	decodeData(t, rec, &got)
	assert.Equal(t, []imageView{{Key: userID.String() + "/a.png", URL: "https://cdn/a.png", Size: 10}}, got)
}
