package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Publisher publishes comment events.
type Publisher interface {
	PublishCommentEvent(ctx context.Context, e CommentEvent) error
	Close()
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishCommentEvent(context.Context, CommentEvent) error { return nil }

func (NopPublisher) Close() {}

// KafkaConfig holds configuration for the Kafka publisher.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KafkaPublisher publishes comment events to Kafka/Redpanda.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	log    hclog.Logger
}

var _ Publisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher creates a new comment event publisher.
func NewKafkaPublisher(cfg KafkaConfig, log hclog.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),

		// Wait for all in-sync replicas to acknowledge.
		kgo.RequiredAcks(kgo.AllISRAcks()),

		// Linear backoff between retries, capped at 10s.
		kgo.RetryBackoffFn(func(tries int) time.Duration {
			backoff := time.Duration(tries) * 100 * time.Millisecond
			if backoff > 10*time.Second {
				backoff = 10 * time.Second
			}
			return backoff
		}),
		kgo.RequestRetries(5),
		kgo.ProducerLinger(5*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}

	return &KafkaPublisher{
		client: client,
		topic:  cfg.Topic,
		log:    log,
	}, nil
}

// PublishCommentEvent publishes e and waits for the broker to acknowledge it.
func (p *KafkaPublisher) PublishCommentEvent(ctx context.Context, e CommentEvent) error {
	record, err := newRecord(p.topic, e)
	if err != nil {
		return err
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("failed to publish comment event: %w", err)
	}

	p.log.Debug("published comment event",
		"id", e.ID,
		"type", e.Type,
		"comment_id", e.CommentID,
	)
	return nil
}

// Close closes the underlying client.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}

func newRecord(topic string, e CommentEvent) (*kgo.Record, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comment event: %w", err)
	}
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(e.partitionKey()),
		Value: value,
	}, nil
}
