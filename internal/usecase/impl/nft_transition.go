package impl

import (
	"context"
	"log/slog"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"

	"github.com/pkg/errors"
)

// applyTransition applies t to the locked nft and, when the projection changed, saves it
// together with the event in the caller's transaction. The returned event is nil when
// nothing changed.
func applyTransition(ctx context.Context, repo repository.NFTRepository, nft *entity.NFT, t entity.Transition) (*entity.NFTEvent, error) {
	event, changed, err := nft.Apply(t)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidTransition) {
			return nil, errors.Wrapf(domainerrors.ErrInvalidListingTransition, "%s from %s", t.Kind, nft.ListingState)
		}

		return nil, errors.Wrap(err, "failed to apply transition")
	}
	if !changed {
		return nil, nil
	}

	if err := repo.Save(ctx, nft); err != nil {
		return nil, errors.Wrap(err, "failed to save nft")
	}
	if err := repo.AppendEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to append nft event")
	}

	return event, nil
}

// publishEvents announces committed transitions. Delivery is best effort: the scheduled
// reconcile covers anything lost here.
func publishEvents(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, events ...*entity.NFTEvent) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	for _, event := range events {
		if event == nil {
			continue
		}

		msg := &service.NFTChangedEvent{
			RequestID:    requestID,
			EventID:      event.ID.String(),
			TokenAddress: event.TokenAddress,
			Kind:         string(event.Kind),
			ToState:      string(event.ToState),
			Source:       string(event.Source),
			Active:       event.Active,
		}
		if err := publisher.PublishNFTEvent(ctx, msg); err != nil {
			logger.Warn("Failed to publish nft event",
				slog.String("tokenAddress", event.TokenAddress),
				slog.String("kind", string(event.Kind)),
				slog.Any("error", err))
		}
	}
}
