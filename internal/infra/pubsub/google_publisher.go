package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"atelier/internal/domain/service"
	"atelier/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that the topic exists
// before returning an ordered publisher for it.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher ready", slog.String("topic", topic))

	return &googlePubSubPublisher{client: client, publisher: publisher, logger: logger}, nil
}

// PublishNFTEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishNFTEvent(ctx context.Context, event *service.NFTChangedEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		// The ordering key stays paused after a failure until resumed.
		p.publisher.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "publish nft event %s", event.EventID)
	}

	p.logger.Debug("NFT event published",
		slog.String("event_id", event.EventID),
		slog.String("token_address", event.TokenAddress),
		slog.String("server_id", serverID))

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client == nil {
		return nil
	}

	return errors.WithStack(p.client.Close())
}
