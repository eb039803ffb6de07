package pubsub

import (
	"encoding/json"

	"atelier/internal/domain/service"
	"atelier/internal/errors"
)

// eventMessage is an NFT event in its transport form. Events for one mint share
// an ordering key so the worker applies them in commit order.
type eventMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodeEvent(event *service.NFTChangedEvent) (*eventMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode nft event")
	}

	attributes := map[string]string{
		"event_id":      event.EventID,
		"token_address": event.TokenAddress,
		"kind":          event.Kind,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &eventMessage{data: data, attributes: attributes, orderingKey: event.TokenAddress}, nil
}
