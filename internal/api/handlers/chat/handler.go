package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/chat-notifier/internal/api/dto"
	"github.com/aliskhannn/chat-notifier/internal/api/respond"
	"github.com/aliskhannn/chat-notifier/internal/config"
	"github.com/aliskhannn/chat-notifier/internal/model"
	dispatchrepo "github.com/aliskhannn/chat-notifier/internal/repository/dispatch"
	dispatchsvc "github.com/aliskhannn/chat-notifier/internal/service/dispatch"
)

const defaultRecentLimit = 20

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/chat/mock_service.go -package=mocks
type chatService interface {
	Dispatch(ctx context.Context, strategy retry.Strategy, id uuid.UUID, n model.ChatNotification) (dispatchsvc.Result, error)
	Enqueue(ctx context.Context, strategy retry.Strategy, id uuid.UUID, n model.ChatNotification) error
	GetDispatchStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
	GetRecentDispatches(ctx context.Context, limit int) ([]model.Dispatch, error)
}

type Handler struct {
	service   chatService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s chatService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

type sendResponse struct {
	ID       uuid.UUID              `json:"id"`
	Status   string                 `json:"status"`
	Message  string                 `json:"message,omitempty"`
	Response interface{}            `json:"response,omitempty"`
	Debug    []model.RecipientTrace `json:"debug"`
}

// Send dispatches a chat message notification synchronously.
func (h *Handler) Send(c *ginext.Context) {
	req, ok := h.decodeRequest(c)
	if !ok {
		return
	}

	id := uuid.New()

	result, err := h.service.Dispatch(c.Request.Context(), h.cfg.Retry, id, req.ToModel())
	if err != nil {
		zlog.Logger.Error().Err(err).Str("chat_id", string(req.ChatID)).Msg("failed to dispatch notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	resp := sendResponse{
		ID:     result.ID,
		Status: result.Status,
		Debug:  result.Trace,
	}

	if result.Status == model.StatusSkipped {
		resp.Message = "No valid tokens to send"
	} else {
		resp.Response = result.Batch
	}

	respond.OK(c.Writer, resp)
}

// Enqueue accepts a chat message notification for asynchronous dispatch.
func (h *Handler) Enqueue(c *ginext.Context) {
	req, ok := h.decodeRequest(c)
	if !ok {
		return
	}

	id := uuid.New()

	if err := h.service.Enqueue(c.Request.Context(), h.cfg.Retry, id, req.ToModel()); err != nil {
		zlog.Logger.Error().Err(err).Str("chat_id", string(req.ChatID)).Msg("failed to enqueue notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// GetStatus returns the status of a dispatch by its id.
func (h *Handler) GetStatus(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return
	}

	status, err := h.service.GetDispatchStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, dispatchrepo.ErrDispatchNotFound) {
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("dispatch not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("dispatch not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to get dispatch status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// GetRecent returns the most recent entries of the dispatch log.
func (h *Handler) GetRecent(c *ginext.Context) {
	limit := defaultRecentLimit
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			zlog.Logger.Warn().Str("limit", v).Msg("invalid limit")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = parsed
	}

	dispatches, err := h.service.GetRecentDispatches(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, dispatchrepo.ErrNoDispatchesFound) {
			respond.OK(c.Writer, []model.Dispatch{})
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get recent dispatches")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dispatches)
}

// decodeRequest decodes and validates the inbound payload, writing the error
// response itself when the request is rejected.
func (h *Handler) decodeRequest(c *ginext.Context) (dto.ChatNotificationRequest, bool) {
	var req dto.ChatNotificationRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().
			Err(err).
			Strs("missing", missingFields(req)).
			Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return req, false
	}

	return req, true
}

// missingFields lists the absent required fields for the diagnostic log.
func missingFields(req dto.ChatNotificationRequest) []string {
	var missing []string
	if req.ChatID == "" {
		missing = append(missing, "chatId")
	}
	if req.SenderID == "" {
		missing = append(missing, "senderId")
	}
	if req.Message == "" {
		missing = append(missing, "message")
	}
	if len(req.Participants) == 0 {
		missing = append(missing, "participants")
	}
	return missing
}
