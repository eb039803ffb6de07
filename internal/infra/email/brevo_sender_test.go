package email

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier/config"
	"atelier/internal/domain/constants"
	"atelier/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBrevoSender_SendTemplate(t *testing.T) {
	var got brevoTemplateRequest
	var headers http.Header
	var path string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		headers = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<1@smtp>"}`))
	}))
	defer server.Close()

	sender, err := NewBrevoSender(&config.EmailConfig{
		APIKey:      "key-123",
		BaseURL:     server.URL + "/v3/",
		SenderName:  "Your Marketplace",
		SenderEmail: "noreply@yourmarketplace.com",
	}, newDiscardLogger())
	require.NoError(t, err)

	err = sender.SendTemplate(context.Background(), service.TemplateEmail{
		To:         "buyer@example.com",
		TemplateID: 1,
		Params:     map[string]any{"product_name": "Gown", "order_id": "Mint1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v3/smtp/email", path)
	assert.Equal(t, "key-123", headers.Get("api-key"))
	assert.Equal(t, "application/json", headers.Get("accept"))
	assert.Equal(t, "application/json", headers.Get("content-type"))
	assert.Equal(t, brevoContact{Name: "Your Marketplace", Email: "noreply@yourmarketplace.com"}, got.Sender)
	assert.Equal(t, []brevoContact{{Email: "buyer@example.com"}}, got.To)
	assert.Equal(t, int64(1), got.TemplateID)
	assert.Equal(t, "Gown", got.Params["product_name"])
}

func TestBrevoSender_SendTemplate_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"invalid_parameter"}`))
	}))
	defer server.Close()

	sender, err := NewBrevoSender(&config.EmailConfig{APIKey: "key", BaseURL: server.URL}, newDiscardLogger())
	require.NoError(t, err)

	err = sender.SendTemplate(context.Background(), service.TemplateEmail{To: "a@b.c", TemplateID: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "invalid_parameter")
}

func TestBrevoSender_SendTemplate_MissingRecipient(t *testing.T) {
	sender, err := NewBrevoSender(&config.EmailConfig{APIKey: "key"}, newDiscardLogger())
	require.NoError(t, err)

	assert.Error(t, sender.SendTemplate(context.Background(), service.TemplateEmail{TemplateID: 1}))
}

func TestNewEmailSender(t *testing.T) {
	logger := newDiscardLogger()

	sender, err := NewEmailSender(&config.Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopSender{}, sender)
	assert.NoError(t, sender.SendTemplate(context.Background(), service.TemplateEmail{To: "a@b.c"}))

	_, err = NewEmailSender(&config.Config{Email: &config.EmailConfig{Provider: constants.EmailProviderBrevo}}, logger)
	assert.ErrorContains(t, err, "apiKey is required")

	sender, err = NewEmailSender(&config.Config{Email: &config.EmailConfig{Provider: constants.EmailProviderBrevo, APIKey: "k"}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &brevoSender{}, sender)

	_, err = NewEmailSender(&config.Config{Email: &config.EmailConfig{Provider: "smtp"}}, logger)
	assert.ErrorContains(t, err, "unknown email provider")
}
