package event

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// Event routing keys published by the service.
const (
	UserRegistered   = "user.registered"
	SessionCompleted = "quiz.session.completed"
	ThemeCreated     = "theme.created"
	ThemeUpdated     = "theme.updated"
	ThemeDeleted     = "theme.deleted"
	QuestionCreated  = "question.created"
	QuestionUpdated  = "question.updated"
	QuestionDeleted  = "question.deleted"
)

// EventPublisher pushes lifecycle events onto a durable AMQP topic
// exchange. A nil *EventPublisher is valid and drops everything, so
// call sites do not need to care whether the broker is configured.
type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *logrus.Logger
}

func NewEventPublisher(amqpURL, exchange string, log *logrus.Logger) (*EventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &EventPublisher{conn: conn, channel: ch, exchange: exchange, log: log}, nil
}

// Publish sends {type, payload} as JSON, routed by the event type.
// Publish failures are logged, not propagated: events are best-effort
// and never fail a request.
func (p *EventPublisher) Publish(eventType string, payload any) {
	if p == nil {
		return
	}
	body, err := json.Marshal(map[string]any{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		p.log.WithError(err).WithField("event", eventType).Warn("marshal event")
		return
	}

	err = p.channel.Publish(
		p.exchange,
		eventType,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		p.log.WithError(err).WithField("event", eventType).Warn("publish event")
		return
	}
	p.log.WithField("event", eventType).Debug("event published")
}

func (p *EventPublisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
