package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"band-booking/internal/infra"
	"band-booking/internal/pkg/config"
	"band-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPNotifier publishes persistent JSON messages to a durable queue on
// the default exchange. The connection is opened lazily and reopened
// after a failure.
type AMQPNotifier struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPNotifier(cfg config.NotifyConfig, logger *slog.Logger) *AMQPNotifier {
	return &AMQPNotifier{url: cfg.AMQPURL, queue: cfg.Queue, logger: logger}
}

func (n *AMQPNotifier) PublishBookingConfirmed(ctx context.Context, event commands.BookingConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	ch, err := n.channel()
	if err != nil {
		return infra.WrapGatewayErr(n.logger, infra.KindUnavailable, "failed to open amqp channel", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    event.BookingID,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", n.queue, false, false, pub); err != nil {
		n.reset()
		return infra.WrapGatewayErr(n.logger, infra.KindUnavailable, "failed to publish booking confirmation", err)
	}
	return nil
}

// channel must be called with mu held.
func (n *AMQPNotifier) channel() (*amqp.Channel, error) {
	if n.ch != nil && !n.ch.IsClosed() {
		return n.ch, nil
	}
	n.reset()

	conn, err := amqp.Dial(n.url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(n.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	n.conn, n.ch = conn, ch
	return ch, nil
}

func (n *AMQPNotifier) reset() {
	if n.ch != nil {
		_ = n.ch.Close()
		n.ch = nil
	}
	if n.conn != nil {
		_ = n.conn.Close()
		n.conn = nil
	}
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reset()
	return nil
}
