package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one topic per entity, named "<prefix>.<entity>".
// Writers are created lazily and reused.
type KafkaPublisher struct {
	brokers     []string
	topicPrefix string
	now         func() time.Time
	newWriter   func(topic string) messageWriter

	mu      sync.Mutex
	writers map[string]messageWriter
}

// NewKafkaPublisher creates a KafkaPublisher.
func NewKafkaPublisher(brokers []string, topicPrefix string) *KafkaPublisher {
	p := &KafkaPublisher{
		brokers:     brokers,
		topicPrefix: topicPrefix,
		now:         time.Now,
		writers:     make(map[string]messageWriter),
	}
	p.newWriter = p.kafkaWriter
	return p
}

// Publish encodes change and writes it keyed by owner so one user's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, change Change) error {
	eventType := EventType(change)
	env, err := NewEnvelope(change, p.now())
	if err != nil {
		failedCounter.WithLabelValues(eventType).Inc()
		return fmt.Errorf("encode %s: %w", eventType, err)
	}
	value, err := json.Marshal(env)
	if err != nil {
		failedCounter.WithLabelValues(eventType).Inc()
		return fmt.Errorf("encode %s: %w", eventType, err)
	}

	key := change.OwnerID
	if key == 0 {
		key = change.ID
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(key, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "event_id", Value: []byte(env.EventID)},
		},
		Time: env.OccurredAt,
	}

	if err := p.writerForTopic(p.Topic(change.Entity)).WriteMessages(ctx, msg); err != nil {
		failedCounter.WithLabelValues(eventType).Inc()
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	publishedCounter.WithLabelValues(eventType).Inc()
	return nil
}

// Topic returns the topic used for entity.
func (p *KafkaPublisher) Topic(entity string) string {
	if p.topicPrefix == "" {
		return entity
	}
	return p.topicPrefix + "." + entity
}

func (p *KafkaPublisher) writerForTopic(topic string) messageWriter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}
	writer := p.newWriter(topic)
	p.writers[topic] = writer
	return writer
}

func (p *KafkaPublisher) kafkaWriter(topic string) messageWriter {
	return &kafka.Writer{
		Addr:                   kafka.TCP(p.brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		AllowAutoTopicCreation: true,
		Async:                  false,
	}
}

// Close releases all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}
