package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService nudges the in-process bus. The relay treats any message
// on the topic as "outbox has new rows", so the payload is informational.
type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (p *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.pubSub.Publish(p.topicName, msg)
}
