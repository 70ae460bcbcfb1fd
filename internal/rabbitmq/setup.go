package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Topology описывает обменник и очередь для событий модерации.
type Topology struct {
	Exchange   string
	Queue      string
	RoutingKey string
}

// SetupChannel открывает канал и объявляет direct-обменник, очередь и привязку между ними.
func SetupChannel(conn *amqp.Connection, topology Topology) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = ch.ExchangeDeclare(
		topology.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = ch.QueueDeclare(
		topology.Queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, topology.Queue, err)
	}

	if err = ch.QueueBind(topology.Queue, topology.RoutingKey, topology.Exchange, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("%s: failed to bind queue %s with routing key %s: %w",
			op, topology.Queue, topology.RoutingKey, err)
	}
	return ch, nil
}
