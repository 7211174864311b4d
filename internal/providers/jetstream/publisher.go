package jetstream

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/eventra/eventra/internal/adapter"
	"github.com/eventra/eventra/internal/logger"
	"github.com/eventra/eventra/internal/messaging"
)

// Subjects published to the broker. The stream subscribes to
// "eventra.>" so new event types need no broker changes.
const (
	SubjectTicketPurchased   = "eventra.ticket.purchased"
	SubjectCertificateMinted = "eventra.certificate.minted"
)

// Config holds the configuration for the NATS JetStream publisher
type Config struct {
	StreamName string
}

type publisher struct {
	js         adapter.NatsJetStream
	json       adapter.JSON
	streamName string
}

// NewPublisher creates a NATS JetStream publisher and ensures the stream
// exists.
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	_, err := natsJS.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{"eventra.>"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		js:         natsJS,
		json:       jsonAdapter,
		streamName: cfg.StreamName,
	}, nil
}

func (p *publisher) PublishTicketPurchased(ctx context.Context, event messaging.TicketPurchased) error {
	return p.publish(ctx, SubjectTicketPurchased, event)
}

func (p *publisher) PublishCertificateMinted(ctx context.Context, event messaging.CertificateMinted) error {
	return p.publish(ctx, SubjectCertificateMinted, event)
}

func (p *publisher) publish(ctx context.Context, subject string, event interface{}) error {
	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	logger.Debug("publishing event", zap.String("subject", subject))

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (p *publisher) Close() {
	p.js.Close()
}
