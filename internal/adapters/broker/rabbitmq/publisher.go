package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"kizuna-dashboard/internal/domain/reminders"

	amqp "github.com/rabbitmq/amqp091-go"
)

const RoutingKeyReminderSent = "reminder.sent"

type Config struct {
	URL      string
	Exchange string
}

// channel es lo mínimo que se usa de *amqp.Channel.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher emite eventos de dominio a un exchange topic.
type Publisher struct {
	conn     *amqp.Connection
	exchange string

	mu sync.Mutex // amqp.Channel no es seguro para publicar en paralelo
	ch channel
}

func NewPublisher(cfg Config) (*Publisher, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("rabbitmq: url required")
	}
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: channel: %w", err)
	}

	p, err := newPublisher(ch, cfg.Exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string) (*Publisher, error) {
	if strings.TrimSpace(exchange) == "" {
		exchange = "kizuna.events"
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("rabbitmq: declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange}, nil
}

type reminderSentEvent struct {
	Event      string             `json:"event"`
	OccurredAt time.Time          `json:"occurred_at"`
	Reminder   reminders.Reminder `json:"reminder"`
}

func (p *Publisher) PublishReminderSent(ctx context.Context, r reminders.Reminder) error {
	body, err := json.Marshal(reminderSentEvent{
		Event:      RoutingKeyReminderSent,
		OccurredAt: r.SentAt,
		Reminder:   r,
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKeyReminderSent, false, false, amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    r.ID,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    r.SentAt,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq: publish %s: %w", RoutingKeyReminderSent, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
