package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"band-booking/internal/infra"
	"band-booking/internal/pkg/config"
	"band-booking/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes confirmations keyed by booking id.
type KafkaNotifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaNotifier(cfg config.NotifyConfig, logger *slog.Logger) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("kafka writer error", slog.Any("args", args), slog.String("msg", msg))
		}),
	}
	return &KafkaNotifier{writer: writer, logger: logger}
}

func (n *KafkaNotifier) PublishBookingConfirmed(ctx context.Context, event commands.BookingConfirmedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.BookingID),
		Value: value,
		Time:  event.ConfirmedAt,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte("booking.confirmed")},
		},
	})
	if err != nil {
		return infra.WrapGatewayErr(n.logger, infra.KindUnavailable, "failed to publish booking confirmation", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
