package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/bistroboss/backend/pkg/logging"
)

const (
	TopicUsers    = "user_events"
	TopicPayments = "payment_events"
)

// Producer publishes domain events. A nil Producer is valid and drops every
// event, so callers publish unconditionally whether or not Kafka is
// configured.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	if len(brokers) == 0 {
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}

// Publish is best-effort: a broker failure is logged, never surfaced to the
// request that produced the event.
func (p *Producer) Publish(ctx context.Context, topic, key string, event any) {
	if p == nil {
		return
	}

	l := logging.FromContext(ctx)

	data, err := json.Marshal(event)
	if err != nil {
		l.Error("event_marshal_failed", "topic", topic, "error", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}); err != nil {
		l.Error("event_publish_failed", "topic", topic, "error", err)
	}
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
