package adapter

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/eventra/eventra/internal/logger"
)

//go:generate mockgen -source=nats.go -destination=../mocks/mock_nats.go -package=mocks -mock_names=NatsJetStream=MockNatsJetStream

// NatsJetStream abstracts the JetStream operations the publisher needs.
type NatsJetStream interface {
	CreateOrUpdateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error)
	Publish(ctx context.Context, subject string, payload []byte) (*jetstream.PubAck, error)
	Close()
}

type natsJetStream struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// NewNatsJetStream connects to the NATS server at endpoint and returns
// a JetStream handle. The connection reconnects indefinitely.
func NewNatsJetStream(endpoint string) (NatsJetStream, error) {
	conn, err := nats.Connect(endpoint,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &natsJetStream{
		conn: conn,
		js:   js,
	}, nil
}

func (n *natsJetStream) CreateOrUpdateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error) {
	return n.js.CreateOrUpdateStream(ctx, cfg)
}

func (n *natsJetStream) Publish(ctx context.Context, subject string, payload []byte) (*jetstream.PubAck, error) {
	return n.js.Publish(ctx, subject, payload)
}

func (n *natsJetStream) Close() {
	n.conn.Close()
}
