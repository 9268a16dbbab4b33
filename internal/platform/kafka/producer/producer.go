// Package producer wraps franz-go synchronous production so outbound
// adapters depend on a narrow surface.
package producer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"proposalbridge/pkg/platform/sentinel"
)

// Config captures producer settings.
type Config struct {
	Brokers []string
}

// Producer publishes records synchronously. Synchronous because the bridge
// must not acknowledge an inbound proposal whose outbound event was lost.
type Producer struct {
	client *kgo.Client
	logger *slog.Logger
}

type Option func(*Producer)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Producer) {
		p.logger = logger
	}
}

func New(cfg Config, opts ...Option) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	p := &Producer{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Produce publishes one record and waits for broker acknowledgement.
// Broker unavailability surfaces as sentinel.ErrUnavailable so callers can
// classify it without knowing the client library.
func (p *Producer) Produce(ctx context.Context, topic string, key, value []byte, headers map[string]string) error {
	rec := &kgo.Record{
		Topic: topic,
		Key:   key,
		Value: value,
	}
	for k, v := range headers {
		rec.Headers = append(rec.Headers, kgo.RecordHeader{Key: k, Value: []byte(v)})
	}

	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w: %w", topic, sentinel.ErrUnavailable, err)
	}
	return nil
}

// Ping verifies broker connectivity, for readiness probes.
func (p *Producer) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close flushes buffered records and releases the client.
func (p *Producer) Close() {
	p.client.Close()
}
