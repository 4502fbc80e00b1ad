// Package ingestion is the shell between NATS JetStream and the engine:
// it validates and parses inbound requests, feeds them to the engine loop,
// and publishes committed events back out.
package ingestion

import (
	"context"
	"fmt"
	"time"

	"SmartSwap/internal/observability"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSSubscriber subscribes to JetStream subjects and feeds raw requests
// into the engine loop via requestChan.
type NATSSubscriber struct {
	js          jetstream.JetStream
	requestChan chan<- RawRequest
	consumers   []jetstream.ConsumeContext
}

// RawRequest is the received-but-untyped request from NATS, ready for the
// shell to parse into a typed converter request before dispatch.
type RawRequest struct {
	Subject     string
	RequestType string
	Data        []byte
	Received    time.Time
	AckFunc     func() // Call to ACK the NATS message after successful processing
	NakFunc     func() // Call to NAK on failure (will be redelivered)
}

// SubjectConfig maps NATS subjects to request types.
type SubjectConfig struct {
	Subject      string
	RequestType  string
	ConsumerName string
	StreamName   string
}

// DefaultSubjects returns the standard subject configuration. Each request
// type has its own subject so consumers scale independently.
func DefaultSubjects() []SubjectConfig {
	return []SubjectConfig{
		{Subject: "swap.requests.convert.>", RequestType: "Convert", ConsumerName: "swap-convert", StreamName: "SWAP_CONVERSIONS"},
		{Subject: "swap.requests.liquidity.fund.>", RequestType: "Fund", ConsumerName: "swap-fund", StreamName: "SWAP_LIQUIDITY"},
		{Subject: "swap.requests.liquidity.liquidate.>", RequestType: "Liquidate", ConsumerName: "swap-liquidate", StreamName: "SWAP_LIQUIDITY"},
		{Subject: "swap.requests.liquidity.add.>", RequestType: "AddLiquidity", ConsumerName: "swap-liquidity-add", StreamName: "SWAP_LIQUIDITY"},
		{Subject: "swap.requests.liquidity.remove.>", RequestType: "RemoveLiquidity", ConsumerName: "swap-liquidity-remove", StreamName: "SWAP_LIQUIDITY"},
		{Subject: "swap.requests.admin.reserve.>", RequestType: "AddReserve", ConsumerName: "swap-admin-reserve", StreamName: "SWAP_ADMIN"},
		{Subject: "swap.requests.admin.fee.>", RequestType: "SetFee", ConsumerName: "swap-admin-fee", StreamName: "SWAP_ADMIN"},
		{Subject: "swap.requests.admin.ownership.>", RequestType: "AcceptOwnership", ConsumerName: "swap-admin-ownership", StreamName: "SWAP_ADMIN"},
	}
}

func NewNATSSubscriber(js jetstream.JetStream, requestChan chan<- RawRequest) *NATSSubscriber {
	return &NATSSubscriber{
		js:          js,
		requestChan: requestChan,
	}
}

// Subscribe creates JetStream consumers for all configured subjects.
// Consumers use explicit ACK, max_deliver=5, ack_wait=30s.
func (ns *NATSSubscriber) Subscribe(ctx context.Context, subjects []SubjectConfig) error {
	log := observability.NewLogger("nats-subscriber")

	for _, cfg := range subjects {
		cfg := cfg
		consumer, err := ns.js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
			Durable:       cfg.ConsumerName,
			FilterSubject: cfg.Subject,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    5,
			DeliverPolicy: jetstream.DeliverAllPolicy,
		})
		if err != nil {
			return fmt.Errorf("create consumer %s: %w", cfg.ConsumerName, err)
		}

		consumerContext, err := consumer.Consume(func(msg jetstream.Msg) {
			raw := RawRequest{
				Subject:     msg.Subject(),
				RequestType: cfg.RequestType,
				Data:        msg.Data(),
				Received:    time.Now(),
				AckFunc:     func() { msg.Ack() },
				NakFunc:     func() { msg.Nak() },
			}

			select {
			case ns.requestChan <- raw:
				// Queued for processing
			case <-ctx.Done():
				msg.Nak()
			}
		})
		if err != nil {
			return fmt.Errorf("consume %s: %w", cfg.ConsumerName, err)
		}

		ns.consumers = append(ns.consumers, consumerContext)
		log.Info().Str("subject", cfg.Subject).Str("consumer", cfg.ConsumerName).Msg("subscribed")
	}

	return nil
}

// EnsureStreams creates the required JetStream streams if they don't
// exist. Streams use FileStorage, retention=Limits, max_age=72h.
func EnsureStreams(ctx context.Context, js jetstream.JetStream) error {
	log := observability.NewLogger("nats-subscriber")

	streams := []jetstream.StreamConfig{
		{
			Name:      "SWAP_CONVERSIONS",
			Subjects:  []string{"swap.requests.convert.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
		{
			Name:      "SWAP_LIQUIDITY",
			Subjects:  []string{"swap.requests.liquidity.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
		{
			Name:      "SWAP_ADMIN",
			Subjects:  []string{"swap.requests.admin.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
	}

	for _, cfg := range streams {
		if _, err := js.CreateOrUpdateStream(ctx, cfg); err != nil {
			return fmt.Errorf("create stream %s: %w", cfg.Name, err)
		}
		log.Info().Str("stream", cfg.Name).Msg("ensured stream")
	}

	return nil
}

// Stop gracefully stops all consumers.
func (ns *NATSSubscriber) Stop() {
	for _, cc := range ns.consumers {
		cc.Stop()
	}
	log := observability.NewLogger("nats-subscriber")
	log.Info().Msg("NATS subscribers stopped")
}

// ConnectNATS establishes a NATS connection and returns a JetStream context.
func ConnectNATS(url string) (*nats.Conn, jetstream.JetStream, error) {
	log := observability.NewLogger("nats")

	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info().Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("jetstream: %w", err)
	}

	return nc, js, nil
}
