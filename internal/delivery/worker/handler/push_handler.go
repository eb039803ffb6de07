// Package handler holds the sync worker's HTTP handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/constants"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"
	"atelier/internal/errors"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var errMalformedPush = errors.New("malformed push message")

// PubSubMessage is the envelope of a Pub/Sub push delivery.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler reconciles the NFT named by each pushed transition event.
//
// Status codes steer Pub/Sub redelivery: 503 asks for a retry, 200 acknowledges
// (including events that can never succeed), 400 and 401 reject the delivery.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    func(req *http.Request) error
	logger         *slog.Logger
	reconcileUC    usecase.ReconcileUsecase
}

type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	ReconcileUC usecase.ReconcileUsecase
}

// NewPushHandler requires Google-signed push tokens when events come from Google
// Pub/Sub outside development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsubCfg := params.Config.PubSub

	return &PushHandler{
		verifyPushAuth: pubsubCfg != nil &&
			pubsubCfg.Provider == constants.PubSubProviderGoogle &&
			params.Config.Env.Env != constants.EnvDevelop,
		verifyToken: verifyPubSubToken,
		logger:      params.Logger,
		reconcileUC: params.ReconcileUC,
	}
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("Rejected push with invalid token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("Rejected malformed push", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(c.Request().Context(), msg, event)
	logger := h.logger.With(slog.String("request_id", requestID))
	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(c.Request().Context(), requestID), logger)

	logger.Info("Processing NFT event",
		slog.String("event_id", event.EventID),
		slog.String("message_id", msg.Message.MessageID),
		slog.String("token_address", event.TokenAddress),
		slog.String("kind", event.Kind))

	report, err := h.processEvent(ctx, event)
	if err != nil {
		retry := errors.IsRetryable(err)
		logger.Error("Failed to reconcile NFT",
			slog.String("token_address", event.TokenAddress),
			slog.Bool("retryable", retry),
			slog.Any("error", err))
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	logger.Info("NFT reconciled",
		slog.String("token_address", event.TokenAddress),
		slog.Int("corrected", report.Corrected))

	return c.NoContent(http.StatusOK)
}

// decodePush unwraps the envelope and its base64 JSON event. Events must name a token.
func decodePush(c echo.Context) (*PubSubMessage, *service.NFTChangedEvent, error) {
	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		return nil, nil, errors.Wrap(errMalformedPush, err.Error())
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(errMalformedPush, "data is not base64")
	}

	var event service.NFTChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(errMalformedPush, "data is not an nft event")
	}
	if event.TokenAddress == "" {
		return nil, nil, errors.Wrap(errMalformedPush, "event has no token address")
	}

	return &msg, &event, nil
}

// extractRequestID picks the first request id among the message attributes, the
// event payload and the HTTP request, generating one when none is set.
func (h *PushHandler) extractRequestID(ctx context.Context, msg *PubSubMessage, event *service.NFTChangedEvent) string {
	for _, id := range []string{
		msg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// processEvent marks every reconcile failure retryable except unknown tokens and
// rejected transitions, which would fail again on redelivery.
func (h *PushHandler) processEvent(ctx context.Context, event *service.NFTChangedEvent) (*usecase.ReconcileReport, error) {
	report, err := h.reconcileUC.ReconcileToken(ctx, event.TokenAddress, usecase.TriggerPush)
	switch {
	case err == nil:
		return report, nil
	case errors.IsAny(err, domainerrors.ErrNFTNotFound, domainerrors.ErrInvalidListingTransition):
		return nil, errors.WithStack(err)
	default:
		return nil, errors.Retryable(errors.WithStack(err))
	}
}
