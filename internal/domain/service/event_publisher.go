package service

import (
	"context"
)

// NFTChangedEvent announces an applied NFT listing transition to the sync worker.
type NFTChangedEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	EventID      string `json:"event_id"`
	TokenAddress string `json:"token_address"`
	Kind         string `json:"kind"`
	ToState      string `json:"to_state"`
	Source       string `json:"source"`
	Active       bool   `json:"active"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNFTEvent publishes an NFT transition for asynchronous reconciliation
	PublishNFTEvent(ctx context.Context, event *NFTChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
