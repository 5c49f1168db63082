package service

import (
	"context"
	"encoding/json"
	"time"

	"legal-ai-be/internal/repository/unitofwork"
	"legal-ai-be/pkg/events"
	pktNats "legal-ai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

const (
	relayBatchSize   = 50
	relaySweepEvery  = 30 * time.Second
	OutboxNudgeTopic = "OUTBOX_NUDGE"
)

// IRelayService drains the transactional outbox to the NATS bus.
type IRelayService interface {
	Start(ctx context.Context) error
}

// relayService wakes on in-process nudges and on a periodic sweep; the
// sweep catches rows whose nudge was lost to a crash between commit and
// publish. Publishing is at-least-once; consumers dedupe on event ids.
type relayService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         *zap.Logger
}

func NewRelayService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	logger *zap.Logger,
) IRelayService {
	return &relayService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (rs *relayService) Start(ctx context.Context) error {
	messages, err := rs.pubSub.Subscribe(ctx, rs.topicName)
	if err != nil {
		return err
	}

	go func() {
		ticker := time.NewTicker(relaySweepEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				rs.drain(ctx)
				msg.Ack()
			case <-ticker.C:
				rs.drain(ctx)
			}
		}
	}()

	return nil
}

func (rs *relayService) drain(ctx context.Context) {
	if rs.eventPublisher == nil {
		// NATS was unavailable at startup; rows stay queued until restart.
		return
	}

	uow := rs.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.OutboxRepository().FindUnpublished(ctx, relayBatchSize)
	if err != nil {
		rs.logger.Error("outbox fetch failed", zap.Error(err))
		return
	}

	for _, row := range rows {
		var payload map[string]interface{}
		if err := json.Unmarshal(row.Payload, &payload); err != nil {
			rs.logger.Error("corrupt outbox payload, skipping",
				zap.String("event_id", row.Id.String()),
				zap.Error(err),
			)
			// Mark it published so a bad row cannot wedge the relay.
			_ = uow.OutboxRepository().MarkPublished(ctx, row.Id, time.Now())
			continue
		}
		payload["event_id"] = row.Id.String()

		evt := events.BaseEvent{
			Type:       row.Topic,
			Data:       payload,
			OccurredAt: row.CreatedAt,
		}
		if err := rs.eventPublisher.Publish(ctx, evt); err != nil {
			rs.logger.Warn("event publish failed, will retry",
				zap.String("event_id", row.Id.String()),
				zap.Error(err),
			)
			return
		}
		if err := uow.OutboxRepository().MarkPublished(ctx, row.Id, time.Now()); err != nil {
			rs.logger.Error("failed to mark outbox row published",
				zap.String("event_id", row.Id.String()),
				zap.Error(err),
			)
			return
		}
	}
}
