package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type stubWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *stubWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *stubWriter) Close() error {
	w.closed = true
	return nil
}

func newStubPublisher(prefix string, writerErr error) (*KafkaPublisher, map[string]*stubWriter) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, prefix)
	p.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
	created := make(map[string]*stubWriter)
	p.newWriter = func(topic string) messageWriter {
		w := &stubWriter{err: writerErr}
		created[topic] = w
		return w
	}
	return p, created
}

func TestPublishWritesEnvelopeKeyedByOwner(t *testing.T) {
	p, writers := newStubPublisher("fitness", nil)
	before := testutil.ToFloat64(publishedCounter.WithLabelValues("workout.created"))

	err := p.Publish(context.Background(), Change{
		Entity:  "workout",
		Action:  ActionCreated,
		ID:      7,
		OwnerID: 3,
		Record:  map[string]any{"name": "Morning Run"},
	})
	require.NoError(t, err)

	w := writers["fitness.workout"]
	require.NotNil(t, w)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	require.Equal(t, "3", string(msg.Key))
	require.Equal(t, "event_type", msg.Headers[0].Key)
	require.Equal(t, "workout.created", string(msg.Headers[0].Value))
	require.Equal(t, "event_id", msg.Headers[1].Key)
	require.NotEmpty(t, msg.Headers[1].Value)

	var env Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	require.Equal(t, "workout.created", env.EventType)
	require.Equal(t, int64(7), env.ID)
	require.Equal(t, int64(3), env.OwnerID)
	require.Equal(t, string(msg.Headers[1].Value), env.EventID)
	require.JSONEq(t, `{"name":"Morning Run"}`, string(env.Payload))

	require.Equal(t, before+1, testutil.ToFloat64(publishedCounter.WithLabelValues("workout.created")))
}

func TestPublishFallsBackToRecordIDKey(t *testing.T) {
	p, writers := newStubPublisher("fitness", nil)

	require.NoError(t, p.Publish(context.Background(), Change{Entity: "user", Action: ActionDeleted, ID: 12}))

	msg := writers["fitness.user"].messages[0]
	require.Equal(t, "12", string(msg.Key))

	var env Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	require.Empty(t, env.Payload)
}

func TestPublishReusesWriterPerTopic(t *testing.T) {
	p, writers := newStubPublisher("fitness", nil)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, Change{Entity: "goal", Action: ActionCreated, ID: 1, OwnerID: 1}))
	require.NoError(t, p.Publish(ctx, Change{Entity: "goal", Action: ActionUpdated, ID: 1, OwnerID: 1}))
	require.NoError(t, p.Publish(ctx, Change{Entity: "exercise", Action: ActionCreated, ID: 4}))

	require.Len(t, writers, 2)
	require.Len(t, writers["fitness.goal"].messages, 2)

	require.NoError(t, p.Close())
	require.True(t, writers["fitness.goal"].closed)
	require.True(t, writers["fitness.exercise"].closed)
}

func TestPublishCountsFailures(t *testing.T) {
	p, _ := newStubPublisher("fitness", errors.New("broker down"))
	before := testutil.ToFloat64(failedCounter.WithLabelValues("goal.deleted"))

	err := p.Publish(context.Background(), Change{Entity: "goal", Action: ActionDeleted, ID: 2, OwnerID: 1})
	require.ErrorContains(t, err, "publish goal.deleted")

	require.Equal(t, before+1, testutil.ToFloat64(failedCounter.WithLabelValues("goal.deleted")))
}

func TestPublishRejectsUnencodableRecord(t *testing.T) {
	p, writers := newStubPublisher("fitness", nil)

	err := p.Publish(context.Background(), Change{Entity: "user", Action: ActionCreated, ID: 1, Record: make(chan int)})
	require.ErrorContains(t, err, "encode user.created")
	require.Empty(t, writers)
}

func TestTopic(t *testing.T) {
	require.Equal(t, "fitness.nutrition_entry", NewKafkaPublisher(nil, "fitness").Topic("nutrition_entry"))
	require.Equal(t, "activity_log", NewKafkaPublisher(nil, "").Topic("activity_log"))
}
