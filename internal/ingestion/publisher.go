package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"SmartSwap/internal/observability"

	"github.com/nats-io/nats.go/jetstream"
)

// OutboundPublisher publishes committed events to NATS for downstream
// consumers (price feeds, dashboards, reconciliation). Events are
// published after persistence is confirmed; subjects follow the pattern
// swap.engine.events.{event_type}.
type OutboundPublisher struct {
	js        jetstream.JetStream
	inputChan <-chan PublishableEvent
}

// PublishableEvent is a committed event ready for outbound publishing.
type PublishableEvent struct {
	Sequence  int64       `json:"sequence"`
	EventType string      `json:"event_type"`
	RequestID string      `json:"request_id"`
	Payload   interface{} `json:"payload"`
	StateHash []byte      `json:"state_hash"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewOutboundPublisher(js jetstream.JetStream, inputChan <-chan PublishableEvent) *OutboundPublisher {
	return &OutboundPublisher{
		js:        js,
		inputChan: inputChan,
	}
}

// Run starts the outbound publisher loop.
func (op *OutboundPublisher) Run(ctx context.Context) error {
	log := observability.NewLogger("publisher")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case evt, ok := <-op.inputChan:
			if !ok {
				return nil
			}

			if err := op.publish(ctx, evt); err != nil {
				// Non-fatal: downstream consumers can query the event log
				log.Warn().Err(err).Int64("sequence", evt.Sequence).Msg("outbound publish failed")
			}
		}
	}
}

func (op *OutboundPublisher) publish(ctx context.Context, evt PublishableEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	subject := fmt.Sprintf("swap.engine.events.%s", evt.EventType)
	_, err = op.js.Publish(ctx, subject, data)
	return err
}

// EnsureOutboundStream creates the outbound events stream.
func EnsureOutboundStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      "SWAP_ENGINE_EVENTS",
		Subjects:  []string{"swap.engine.events.>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    72 * time.Hour,
		Replicas:  1,
	})
	if err != nil {
		return fmt.Errorf("create outbound stream: %w", err)
	}
	log := observability.NewLogger("publisher")
	log.Info().Msg("ensured outbound stream SWAP_ENGINE_EVENTS")
	return nil
}
