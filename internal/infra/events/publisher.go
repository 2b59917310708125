package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс логирования для издателя событий
type Logger interface {
	Warn(format string, v ...interface{})
}

// Publisher публикует события бронирований во внешнюю очередь
type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent)
	Close() error
}

// RabbitPublisher издатель поверх RabbitMQ
// Публикация fire-and-forget: ошибки логируются, но не влияют на основной сценарий
type RabbitPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  Logger
}

// NewRabbitPublisher создает издателя и объявляет durable-очередь
func NewRabbitPublisher(url, queueName string, logger Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events: failed to open channel: %w", err)
	}

	queue, err := channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("events: failed to declare queue: %w", err)
	}

	return &RabbitPublisher{
		conn:    conn,
		channel: channel,
		queue:   queue,
		logger:  logger,
	}, nil
}

// PublishBookingEvent публикует событие бронирования
// Вызывается после фиксации транзакции, ошибка публикации не откатывает операцию
func (p *RabbitPublisher) PublishBookingEvent(ctx context.Context, event BookingEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("events: failed to marshal %s event for booking %s: %v", event.Type, event.BookingID, err)
		return
	}

	err = p.channel.PublishWithContext(
		ctx,
		"",           // exchange
		p.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.logger.Warn("events: failed to publish %s event for booking %s: %v", event.Type, event.BookingID, err)
	}
}

// Close закрывает канал и соединение
func (p *RabbitPublisher) Close() error {
	var errs []error

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("events: errors while closing publisher: %v", errs)
	}
	return nil
}

// NoopPublisher заглушка, когда публикация событий выключена в конфигурации
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingEvent(ctx context.Context, event BookingEvent) {}

func (NoopPublisher) Close() error { return nil }
