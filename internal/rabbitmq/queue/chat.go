package queue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/chat-notifier/internal/config"
	"github.com/aliskhannn/chat-notifier/internal/model"
)

// ChatNotificationMessage is one queued notification request. The ID doubles
// as the dispatch id, so the worker-side pipeline writes to the same record
// the enqueue endpoint created.
type ChatNotificationMessage struct {
	ID           uuid.UUID              `json:"id"`
	Notification model.ChatNotification `json:"notification"`
}

// ChatNotificationQueue wires the exchange, the main queue, the retry queue
// and the DLQ for queued notification requests.
type ChatNotificationQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
}

// NewChatNotificationQueue declares the queue topology and returns a
// publisher/consumer pair bound to it.
func NewChatNotificationQueue(ch *rabbitmq.Channel, cfg *config.Config) (*ChatNotificationQueue, error) {
	mq := cfg.RabbitMQ

	exchange := rabbitmq.NewExchange(mq.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(mq.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": mq.Queue,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(mq.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": mq.DLQ,
	}

	mainQ, err := qm.DeclareQueue(mq.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, mq.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &ChatNotificationQueue{Publisher: pub, Consumer: cons, routingKey: mq.RoutingKey}, nil
}

// Publish marshals the message and publishes it with the given retry
// strategy.
func (q *ChatNotificationQueue) Publish(msg ChatNotificationMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes incoming messages and forwards them to out.
func (q *ChatNotificationQueue) Consume(out chan<- ChatNotificationMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var msg ChatNotificationMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			out <- msg
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
