package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel the publisher uses.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// DefaultDialTimeout bounds connection setup when no timeout is configured.
const DefaultDialTimeout = 2 * time.Second

// dialFunc opens a channel and returns a func that releases it and its connection.
// timeout covers the TCP connect and the AMQP handshake.
type dialFunc func(url string, timeout time.Duration) (channel, func(), error)

func dialAMQP(url string, timeout time.Duration) (channel, func(), error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	return ch, func() {
		_ = ch.Close()
		_ = conn.Close()
	}, nil
}

// AMQPPublisher publishes each event on its own short-lived connection to a
// durable queue through the default exchange. Messages are persistent.
type AMQPPublisher struct {
	url         string
	queue       string
	dialTimeout time.Duration
	dial        dialFunc
	now         func() time.Time
}

// NewAMQPPublisher returns a publisher for the given broker URL and queue.
// A non-positive dialTimeout selects DefaultDialTimeout.
func NewAMQPPublisher(url, queue string, dialTimeout time.Duration) *AMQPPublisher {
	if dialTimeout <= 0 {
		dialTimeout = DefaultDialTimeout
	}
	return &AMQPPublisher{url: url, queue: queue, dialTimeout: dialTimeout, dial: dialAMQP, now: time.Now}
}

// timeout shrinks the dial timeout to the time left on ctx.
func (p *AMQPPublisher) timeout(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	d := p.dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		left := time.Until(deadline)
		if left <= 0 {
			return 0, context.DeadlineExceeded
		}
		if left < d {
			d = left
		}
	}
	return d, nil
}

var _ Publisher = (*AMQPPublisher)(nil)

// PublishSearchCreated sends e as JSON to the configured queue.
func (p *AMQPPublisher) PublishSearchCreated(ctx context.Context, e SearchCreatedEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	timeout, err := p.timeout(ctx)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, release, err := p.dial(p.url, timeout)
	if err != nil {
		return err
	}
	defer release()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Type:         e.Type,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}
