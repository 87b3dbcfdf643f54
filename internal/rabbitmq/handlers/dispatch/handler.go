package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/chat-notifier/internal/model"
	"github.com/aliskhannn/chat-notifier/internal/rabbitmq/queue"
	svc "github.com/aliskhannn/chat-notifier/internal/service/dispatch"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/dispatch/mock_service.go -package=mocks
type dispatchService interface {
	Dispatch(ctx context.Context, strategy retry.Strategy, id uuid.UUID, n model.ChatNotification) (svc.Result, error)
}

// Handler processes queued notification requests.
type Handler struct {
	service dispatchService
}

func NewHandler(service dispatchService) *Handler {
	return &Handler{service: service}
}

// HandleMessage runs the dispatch pipeline for one queued request, retrying
// provider failures with the configured backoff. A request that still fails
// after the last attempt is left for the broker to dead-letter.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.ChatNotificationMessage, strategy retry.Strategy) {
	attempt := 0
	currentDelay := strategy.Delay

	for attempt < strategy.Attempts {
		res, err := h.service.Dispatch(ctx, strategy, msg.ID, msg.Notification)
		if err == nil {
			zlog.Logger.Info().
				Str("dispatch_id", msg.ID.String()).
				Str("status", res.Status).
				Msg("queued notification dispatched")
			return
		}

		attempt++
		zlog.Logger.Warn().
			Err(err).
			Str("dispatch_id", msg.ID.String()).
			Msgf("failed to dispatch notification, retry %d/%d", attempt, strategy.Attempts)

		time.Sleep(currentDelay)
		currentDelay = time.Duration(float64(currentDelay) * strategy.Backoff)
	}

	zlog.Logger.Error().
		Str("dispatch_id", msg.ID.String()).
		Msgf("dispatch failed after %d attempts, moving to DLQ", attempt)
}
