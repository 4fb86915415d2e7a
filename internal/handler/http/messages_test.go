package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/crypto"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/mock"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/service"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMessageTestRouter(t *testing.T) (*mock.MockMessageService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	messageService := mock.NewMockMessageService(ctrl)

	h := NewHandler(&service.Services{MessageService: messageService}, config.App{}, logger.Nop())
	return messageService, h.Init()
}

func TestSendMessage_Success(t *testing.T) {
	messageService, router := newMessageTestRouter(t)

	req := models.SendMessageRequest{SenderID: 1, ReceiverID: 2, Content: "hello"}
	want := models.MessageView{ID: 10, SenderID: 1, ReceiverID: 2, Content: "hello"}

	messageService.EXPECT().
		Send(gomock.Any(), req).
		Return(want, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.MessageView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestSendMessage_InvalidJSON(t *testing.T) {
	_, router := newMessageTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader([]byte("{not json"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_ValidationError(t *testing.T) {
	messageService, router := newMessageTestRouter(t)

	messageService.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(models.MessageView{}, service.ErrValidationNoContent)

	body, err := json.Marshal(models.SendMessageRequest{SenderID: 1, ReceiverID: 2})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMessage_Success(t *testing.T) {
	messageService, router := newMessageTestRouter(t)

	want := models.MessageView{ID: 7, SenderID: 1, ReceiverID: 2, Content: "hi"}
	messageService.EXPECT().
		Get(gomock.Any(), int64(7)).
		Return(want, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/messages/7", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.MessageView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestGetMessage_NotFound(t *testing.T) {
	messageService, router := newMessageTestRouter(t)

	messageService.EXPECT().
		Get(gomock.Any(), int64(404)).
		Return(models.MessageView{}, store.ErrMessageNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/messages/404", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMessage_BrokenEnvelopeReturnsPlaceholderWith422(t *testing.T) {
	messageService, router := newMessageTestRouter(t)

	placeholderView := models.MessageView{ID: 7, SenderID: 1, ReceiverID: 2, Content: "[Encrypted Message]", Placeholder: true}
	messageService.EXPECT().
		Get(gomock.Any(), int64(7)).
		Return(placeholderView, crypto.ErrIntegrityFailure)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/messages/7", nil))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got models.MessageView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Placeholder)
	assert.Equal(t, "[Encrypted Message]", got.Content)
}

func TestGetMessage_InvalidID(t *testing.T) {
	_, router := newMessageTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/messages/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditMessage_Success(t *testing.T) {
	messageService, router := newMessageTestRouter(t)

	req := models.EditMessageRequest{SenderID: 1, ReceiverID: 2, Content: "edited"}
	want := models.MessageView{ID: 5, SenderID: 1, ReceiverID: 2, Content: "edited"}

	messageService.EXPECT().
		Edit(gomock.Any(), int64(5), req).
		Return(want, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/messages/5", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.MessageView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestDeleteMessage_Success(t *testing.T) {
	messageService, router := newMessageTestRouter(t)

	messageService.EXPECT().
		Delete(gomock.Any(), int64(5), int64(1)).
		Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/messages/5?sender_id=1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteMessage_MissingSenderID(t *testing.T) {
	_, router := newMessageTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/messages/5", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetConversation_Success(t *testing.T) {
	messageService, router := newMessageTestRouter(t)

	want := models.ConversationResponse{
		Messages: []models.MessageView{{ID: 1, SenderID: 1, ReceiverID: 2, Content: "a"}},
		Length:   1,
	}
	messageService.EXPECT().
		Conversation(gomock.Any(), int64(1), int64(2), uint64(50)).
		Return(want, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/conversations?user_a=1&user_b=2&limit=50", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ConversationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestGetConversation_MissingParty(t *testing.T) {
	_, router := newMessageTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/conversations?user_a=1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLatestConversations_Success(t *testing.T) {
	messageService, router := newMessageTestRouter(t)

	want := models.ConversationResponse{
		Messages: []models.MessageView{{ID: 9, SenderID: 3, ReceiverID: 1, Content: "latest"}},
		Length:   1,
	}
	messageService.EXPECT().
		LatestPerConversation(gomock.Any(), int64(1)).
		Return(want, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/conversations/latest?user_id=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ConversationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}
