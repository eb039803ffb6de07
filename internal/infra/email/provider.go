package email

import (
	"context"
	"log/slog"

	"atelier/config"
	"atelier/internal/domain/constants"
	"atelier/internal/domain/service"

	"github.com/pkg/errors"
)

// noopSender drops emails; used when no provider is configured.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) SendTemplate(_ context.Context, email service.TemplateEmail) error {
	s.logger.Debug("[NoopEmail] Email delivery disabled, skipping",
		slog.Int64("template_id", email.TemplateID),
	)

	return nil
}

// NewEmailSender selects the email provider from configuration.
func NewEmailSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	if cfg.Email == nil || cfg.Email.Provider == "" || cfg.Email.Provider == constants.EmailProviderNoop {
		logger.Info("Email provider not configured, using no-op sender")

		return &noopSender{logger: logger}, nil
	}

	switch cfg.Email.Provider {
	case constants.EmailProviderBrevo:
		return NewBrevoSender(cfg.Email, logger)
	default:
		return nil, errors.Errorf("unknown email provider: %s", cfg.Email.Provider)
	}
}
