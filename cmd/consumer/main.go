package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"legal-ai-be/internal/config"
	"legal-ai-be/pkg/events"
	pktNats "legal-ai-be/pkg/nats"

	"github.com/fatih/color"
)

// Tails the events stream with a durable consumer. Meant as the attachment
// point for downstream workers (analytics, audit); out of the box it logs
// every event so operators can watch the bus.
func main() {
	cfg := config.Load()

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Error: Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	handler := func(ctx context.Context, event events.Event) error {
		switch event.EventType() {
		case "events." + events.TypeTurnCompleted:
			color.Green("turn completed: conversation=%v sources=%v",
				event.Payload()["conversation_id"], event.Payload()["source_count"])
		case "events." + events.TypeConversationDeleted:
			color.Yellow("conversation deleted: %v", event.Payload()["conversation_id"])
		default:
			color.White("event %s: %v", event.EventType(), event.Payload())
		}
		return nil
	}

	if err := sub.Subscribe("events.>", "audit", handler); err != nil {
		log.Fatalf("Error: Failed to subscribe: %v", err)
	}

	color.Cyan("Consumer attached to events stream, press Ctrl+C to stop")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
}
