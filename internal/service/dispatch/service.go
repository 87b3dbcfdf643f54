package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/chat-notifier/internal/mention"
	"github.com/aliskhannn/chat-notifier/internal/model"
	"github.com/aliskhannn/chat-notifier/internal/rabbitmq/queue"
	"github.com/aliskhannn/chat-notifier/pkg/push"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/dispatch/mock_deps.go -package=mocks
type dispatchRepository interface {
	SaveDispatch(ctx context.Context, d model.Dispatch) error
	GetDispatchStatusByID(ctx context.Context, id uuid.UUID) (string, error)
	GetRecentDispatches(ctx context.Context, limit int) ([]model.Dispatch, error)
}

type pushSender interface {
	SendBatch(ctx context.Context, messages []push.Message) (*push.BatchResponse, error)
}

type queuePublisher interface {
	Publish(msg queue.ChatNotificationMessage, strategy retry.Strategy) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Result is the outcome of one dispatch.
type Result struct {
	ID     uuid.UUID              `json:"id"`
	Status string                 `json:"status"`
	Batch  *push.BatchResponse    `json:"response,omitempty"`
	Trace  []model.RecipientTrace `json:"debug"`
}

// Service runs the chat notification pipeline: mention resolution, message
// building, the batch-send call, and the dispatch log.
type Service struct {
	repo   dispatchRepository
	sender pushSender
	queue  queuePublisher
	cache  cache
}

// NewService creates a dispatch service.
func NewService(repo dispatchRepository, sender pushSender, q queuePublisher, cache cache) *Service {
	return &Service{repo: repo, sender: sender, queue: q, cache: cache}
}

// Dispatch resolves mentions, builds per-recipient push messages and submits
// them to the provider in a single batch call. When no valid token survives
// filtering the provider is not called and the dispatch is recorded as
// skipped; that is a normal outcome, not an error. A failed provider call is
// returned as an error after recording the failure.
func (s *Service) Dispatch(ctx context.Context, strategy retry.Strategy, id uuid.UUID, n model.ChatNotification) (Result, error) {
	set := mention.Resolve(n.Message, n.MentionedUserIDs, n.Participants)
	messages, trace := BuildMessages(n, set)

	res := Result{ID: id, Trace: trace}

	d := model.Dispatch{
		ID:         id,
		ChatID:     n.ChatID,
		SenderID:   n.SenderID,
		GroupName:  n.GroupName,
		Recipients: len(messages),
	}

	if len(messages) == 0 {
		zlog.Logger.Info().
			Str("dispatch_id", id.String()).
			Str("chat_id", n.ChatID).
			Msg("no valid tokens to send")

		res.Status = model.StatusSkipped
		d.Status = model.StatusSkipped
		s.record(ctx, strategy, d)
		return res, nil
	}

	zlog.Logger.Info().
		Str("dispatch_id", id.String()).
		Str("chat_id", n.ChatID).
		Int("messages", len(messages)).
		Int("mentioned", len(set.IDs)).
		Msg("sending notification batch")

	batch, err := s.sender.SendBatch(ctx, messages)
	if err != nil {
		d.Status = model.StatusFailed
		s.record(ctx, strategy, d)
		return Result{}, fmt.Errorf("send batch: %w", err)
	}

	res.Status = model.StatusSent
	res.Batch = batch

	d.Status = model.StatusSent
	d.SuccessCount = batch.SuccessCount
	d.FailureCount = batch.FailureCount
	s.record(ctx, strategy, d)

	return res, nil
}

// Enqueue records a queued dispatch and publishes the request for the worker
// pool to process.
func (s *Service) Enqueue(ctx context.Context, strategy retry.Strategy, id uuid.UUID, n model.ChatNotification) error {
	d := model.Dispatch{
		ID:        id,
		ChatID:    n.ChatID,
		SenderID:  n.SenderID,
		GroupName: n.GroupName,
		Status:    model.StatusQueued,
	}
	s.record(ctx, strategy, d)

	msg := queue.ChatNotificationMessage{ID: id, Notification: n}
	if err := s.queue.Publish(msg, strategy); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}

	return nil
}

// GetDispatchStatusByID returns the status of a dispatch, checking the cache
// before the dispatch log.
func (s *Service) GetDispatchStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Str("dispatch_id", id.String()).Msg("failed to get dispatch status from cache")
	}

	if err != nil {
		status, err = s.repo.GetDispatchStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get dispatch status: %w", err)
		}

		if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
			zlog.Logger.Warn().Err(err).Str("dispatch_id", id.String()).Msg("failed to cache dispatch status")
		}
	}

	return status, nil
}

// GetRecentDispatches returns the most recent entries of the dispatch log.
func (s *Service) GetRecentDispatches(ctx context.Context, limit int) ([]model.Dispatch, error) {
	dispatches, err := s.repo.GetRecentDispatches(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent dispatches: %w", err)
	}

	return dispatches, nil
}

// record writes the dispatch row and the status cache entry. Both are
// observability state: the notifications are already out (or skipped) by the
// time this runs, so failures are logged rather than returned.
func (s *Service) record(ctx context.Context, strategy retry.Strategy, d model.Dispatch) {
	if err := s.repo.SaveDispatch(ctx, d); err != nil {
		zlog.Logger.Error().Err(err).Str("dispatch_id", d.ID.String()).Msg("failed to save dispatch")
	}

	if err := s.cache.SetWithRetry(ctx, strategy, d.ID.String(), d.Status); err != nil {
		zlog.Logger.Warn().Err(err).Str("dispatch_id", d.ID.String()).Msg("failed to cache dispatch status")
	}
}
