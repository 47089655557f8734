package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// publishTimeout bounds how long a request waits on the writer.
const publishTimeout = 2 * time.Second

const (
	EventStudentCreated     = "student.created"
	EventTopicStatusUpdated = "topic.status_updated"
)

// Event is the envelope written to the progress topic.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

type StudentCreated struct {
	StudentID  int   `json:"studentId"`
	SubjectIDs []int `json:"subjectIds"`
}

type TopicStatusUpdated struct {
	StudentID  int  `json:"studentId"`
	TopicID    int  `json:"topicId"`
	IsComplete bool `json:"isComplete"`
}

// Publisher emits domain events. Implementations must be safe for concurrent use.
type Publisher interface {
	StudentCreated(ctx context.Context, e StudentCreated) error
	TopicStatusUpdated(ctx context.Context, e TopicStatusUpdated) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
	log     *zap.Logger
}

// NewKafkaPublisher returns a publisher whose writes are queued and delivered in the
// background. Delivery failures are logged, never returned to the caller.
func NewKafkaPublisher(brokers []string, topic string, log *zap.Logger) *KafkaPublisher {
	log = log.Named("kafka")
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{}, // events of one student stay ordered
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		Async:                  true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				log.Warn("Event delivery failed", zap.Int("messages", len(msgs)), zap.Error(err))
			}
		},
	}
	return newKafkaPublisher(writer, publishTimeout, log)
}

func newKafkaPublisher(w messageWriter, timeout time.Duration, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, timeout: timeout, log: log}
}

func (p *KafkaPublisher) StudentCreated(ctx context.Context, e StudentCreated) error {
	return p.publish(ctx, EventStudentCreated, e.StudentID, e)
}

func (p *KafkaPublisher) TopicStatusUpdated(ctx context.Context, e TopicStatusUpdated) error {
	return p.publish(ctx, EventTopicStatusUpdated, e.StudentID, e)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, studentID int, payload any) error {
	value, err := json.Marshal(Event{Type: eventType, OccurredAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(studentID)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	}
	// Detached from the request so a client hangup does not drop the event.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	p.log.Debug("Event queued", zap.String("type", eventType), zap.Int("student_id", studentID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) StudentCreated(context.Context, StudentCreated) error         { return nil }
func (NopPublisher) TopicStatusUpdated(context.Context, TopicStatusUpdated) error { return nil }
func (NopPublisher) Close() error                                                 { return nil }
