package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/chat-notifier/internal/config"
	"github.com/aliskhannn/chat-notifier/internal/mocks/api/handlers/chat"
	"github.com/aliskhannn/chat-notifier/internal/model"
	dispatchrepo "github.com/aliskhannn/chat-notifier/internal/repository/dispatch"
	dispatchsvc "github.com/aliskhannn/chat-notifier/internal/service/dispatch"
	"github.com/aliskhannn/chat-notifier/pkg/push"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockchatService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockchatService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)
	return handler, mockService, cfg
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"chatId":   "42",
		"senderId": "1",
		"message":  "@Bob please check this",
		"participants": []map[string]interface{}{
			{"userId": "1", "name": "Alice", "fcmToken": []string{"alice-device-token"}},
			{"userId": "2", "name": "Bob", "fcmToken": []string{"bob-device-token"}},
		},
	}
}

func postJSON(t *testing.T, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/chat", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestHandler_Send_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	c, w := postJSON(t, validBody())

	result := dispatchsvc.Result{
		Status: model.StatusSent,
		Batch:  &push.BatchResponse{SuccessCount: 1},
		Trace: []model.RecipientTrace{
			{RecipientUserID: "2", RecipientName: "Bob", IsMentioned: true},
		},
	}

	mockService.EXPECT().
		Dispatch(
			gomock.Any(),
			cfg.Retry,
			gomock.AssignableToTypeOf(uuid.UUID{}),
			gomock.AssignableToTypeOf(model.ChatNotification{}),
		).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, id uuid.UUID, n model.ChatNotification) (dispatchsvc.Result, error) {
			assert.Equal(t, "42", n.ChatID)
			assert.Equal(t, model.DefaultType, n.Type)
			result.ID = id
			return result, nil
		})

	handler.Send(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"status":"sent"`)
	assert.Contains(t, w.Body.String(), `"debug"`)
}

func TestHandler_Send_NoValidTokens(t *testing.T) {
	handler, mockService, _ := setupHandler(t)
	c, w := postJSON(t, validBody())

	mockService.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dispatchsvc.Result{Status: model.StatusSkipped, Trace: []model.RecipientTrace{}}, nil)

	handler.Send(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "No valid tokens to send")
}

func TestHandler_Send_DispatchError(t *testing.T) {
	handler, mockService, _ := setupHandler(t)
	c, w := postJSON(t, validBody())

	mockService.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dispatchsvc.Result{}, errors.New("send batch: connection refused"))

	handler.Send(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestHandler_Send_InvalidJSON(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/chat", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestHandler_Send_MissingFields(t *testing.T) {
	handler, _, _ := setupHandler(t)

	body := validBody()
	delete(body, "senderId")
	c, w := postJSON(t, body)

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "validation error")
}

func TestHandler_Send_EmptyParticipants(t *testing.T) {
	handler, _, _ := setupHandler(t)

	body := validBody()
	body["participants"] = []map[string]interface{}{}
	c, w := postJSON(t, body)

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Send_NumericChatID(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	body := validBody()
	body["chatId"] = 42
	c, w := postJSON(t, body)

	mockService.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, _ uuid.UUID, n model.ChatNotification) (dispatchsvc.Result, error) {
			assert.Equal(t, "42", n.ChatID)
			return dispatchsvc.Result{Status: model.StatusSent}, nil
		})

	handler.Send(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Enqueue_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	c, w := postJSON(t, validBody())

	mockService.EXPECT().
		Enqueue(
			gomock.Any(),
			cfg.Retry,
			gomock.AssignableToTypeOf(uuid.UUID{}),
			gomock.AssignableToTypeOf(model.ChatNotification{}),
		).Return(nil)

	handler.Enqueue(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Enqueue_PublishError(t *testing.T) {
	handler, mockService, _ := setupHandler(t)
	c, w := postJSON(t, validBody())

	mockService.EXPECT().
		Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	handler.Enqueue(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/status/"+id.String(), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetDispatchStatusByID(gomock.Any(), cfg.Retry, id).
		Return(model.StatusQueued, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), model.StatusQueued)
}

func TestHandler_GetStatus_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/status/not-a-uuid", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.GetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetStatus_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/status/"+id.String(), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetDispatchStatusByID(gomock.Any(), cfg.Retry, id).
		Return("", dispatchrepo.ErrDispatchNotFound)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_GetRecent_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		GetRecentDispatches(gomock.Any(), defaultRecentLimit).
		Return([]model.Dispatch{{ChatID: "42", Status: model.StatusSent}}, nil)

	handler.GetRecent(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetRecent_CustomLimit(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications?limit=5", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		GetRecentDispatches(gomock.Any(), 5).
		Return([]model.Dispatch{}, nil)

	handler.GetRecent(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetRecent_NoneFound(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		GetRecentDispatches(gomock.Any(), defaultRecentLimit).
		Return(nil, dispatchrepo.ErrNoDispatchesFound)

	handler.GetRecent(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}
