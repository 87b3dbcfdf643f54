package worker

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/chat-notifier/internal/model"
	"github.com/aliskhannn/chat-notifier/internal/rabbitmq/queue"
	dispatchrepo "github.com/aliskhannn/chat-notifier/internal/repository/dispatch"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock_deps.go -package=mocks
type notificationConsumer interface {
	Consume(out chan<- queue.ChatNotificationMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.ChatNotificationMessage, strategy retry.Strategy)
}

type dispatchService interface {
	GetDispatchStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
}

// Notifier drains the notification queue with a pool of workers.
type Notifier struct {
	queue   notificationConsumer
	handler messageHandler
	service dispatchService
}

func NewNotifier(q notificationConsumer, h messageHandler, s dispatchService) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
		service: s,
	}
}

// Run starts workerCount workers and blocks until the context is cancelled.
// The broker may redeliver messages, so a message whose dispatch is already
// settled is skipped instead of being sent twice.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	msgChan := make(chan queue.ChatNotificationMessage)

	go func() {
		if err := n.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume messages")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg := <-msgChan:
					status, err := n.service.GetDispatchStatusByID(ctx, strategy, msg.ID)
					if err != nil && !errors.Is(err, dispatchrepo.ErrDispatchNotFound) {
						zlog.Logger.Printf("failed to get status for %s: %v", msg.ID, err)
					}

					if status == model.StatusSent || status == model.StatusSkipped {
						zlog.Logger.Printf("dispatch %s already settled, skipping", msg.ID)
						continue
					}

					n.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Print("notifier stopped")
}
