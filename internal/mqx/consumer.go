package mqx

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"

	"visitor-iq/internal/logx"
)

var mqLogger = logx.GetScope("mqx")

// Handler processes one delivered message. A non-nil error requeues the
// message once; redelivered failures are dropped to avoid poison loops.
type Handler func(ctx context.Context, routingKey string, body []byte) error

// RabbitConsumer consumes a durable queue bound to the topic exchange.
type RabbitConsumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewRabbitConsumer dials the broker, declares the exchange and queue, and
// binds the queue with the given routing key pattern.
func NewRabbitConsumer(url, exchange, queue, bindingKey string) (*RabbitConsumer, error) {
	exchange = lo.Ternary(exchange != "", exchange, "events")
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	if err := ch.QueueBind(queue, bindingKey, exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	if err := ch.Qos(16, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &RabbitConsumer{conn: conn, ch: ch, queue: queue}, nil
}

// Start consumes until ctx is cancelled or the channel closes. It runs in
// its own goroutine and returns immediately.
func (c *RabbitConsumer) Start(ctx context.Context, h Handler) error {
	deliveries, err := c.ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				if err := h(ctx, d.RoutingKey, d.Body); err != nil {
					mqLogger.Sugar().Warnw("message handler failed",
						"queue", c.queue, "key", d.RoutingKey, "redelivered", d.Redelivered, "err", err)
					_ = d.Nack(false, !d.Redelivered)
					continue
				}
				_ = d.Ack(false)
			}
		}
	}()
	return nil
}

// Close closes the channel and connection.
func (c *RabbitConsumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
