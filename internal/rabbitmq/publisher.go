package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/pereval-api/internal/config"
	"github.com/magabrotheeeer/pereval-api/internal/models"
)

// PublishMessage сериализует message в JSON и публикует его как persistent-сообщение.
func PublishMessage(ch *amqp.Channel, exchange string, routingKey string, messageID string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    messageID,
			Timestamp:    time.Now().UTC(),
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Publisher отправляет события о новых перевалах.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	topology Topology
}

// NewPublisher подключается к брокеру и готовит топологию из конфига.
func NewPublisher(ctx context.Context, cfg config.RabbitMQ) (*Publisher, error) {
	const op = "rabbitmq.NewPublisher"
	conn, err := Connect(ctx, cfg.URL, cfg.MaxRetries, cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	topology := Topology{Exchange: cfg.Exchange, Queue: cfg.Queue, RoutingKey: cfg.RoutingKey}
	ch, err := SetupChannel(conn, topology)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Publisher{conn: conn, ch: ch, topology: topology}, nil
}

// Publish отправляет событие SubmittedEvent. EventID становится MessageId.
func (p *Publisher) Publish(ctx context.Context, event models.SubmittedEvent) error {
	const op = "rabbitmq.Publish"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := PublishMessage(p.ch, p.topology.Exchange, p.topology.RoutingKey, event.EventID, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает канал и соединение.
func (p *Publisher) Close() error {
	chErr := p.ch.Close()
	connErr := p.conn.Close()
	if chErr != nil {
		return chErr
	}
	return connErr
}
