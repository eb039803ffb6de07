// Package email delivers transactional emails through the Brevo API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"atelier/config"
	"atelier/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBrevoBaseURL = "https://api.brevo.com/v3"
	defaultTimeout      = 10 * time.Second
	maxErrorBodyBytes   = 1024
)

type brevoSender struct {
	baseURL     string
	apiKey      string
	senderName  string
	senderEmail string
	httpClient  *http.Client
	logger      *slog.Logger
}

type brevoContact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoTemplateRequest struct {
	Sender     brevoContact   `json:"sender"`
	To         []brevoContact `json:"to"`
	TemplateID int64          `json:"templateId"`
	Params     map[string]any `json:"params,omitempty"`
}

// NewBrevoSender creates a sender for the Brevo transactional SMTP API.
func NewBrevoSender(cfg *config.EmailConfig, logger *slog.Logger) (service.EmailSender, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("email.apiKey is required for the brevo provider")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBrevoBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &brevoSender{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      cfg.APIKey,
		senderName:  cfg.SenderName,
		senderEmail: cfg.SenderEmail,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}, nil
}

// SendTemplate posts a templated email to Brevo.
func (s *brevoSender) SendTemplate(ctx context.Context, email service.TemplateEmail) error {
	if email.To == "" {
		return errors.New("email recipient is required")
	}

	body, err := json.Marshal(brevoTemplateRequest{
		Sender:     brevoContact{Name: s.senderName, Email: s.senderEmail},
		To:         []brevoContact{{Email: email.To}},
		TemplateID: email.TemplateID,
		Params:     email.Params,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "brevo request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return errors.Errorf("brevo returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	s.logger.Debug("Transactional email sent",
		slog.Int64("template_id", email.TemplateID),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}
