package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/mock"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/service"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTransactionTestRouter(t *testing.T) (*mock.MockTransactionService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	transactionService := mock.NewMockTransactionService(ctrl)

	h := NewHandler(&service.Services{TransactionService: transactionService}, config.App{}, logger.Nop())
	return transactionService, h.Init()
}

func testRecordRequest() models.RecordTransactionRequest {
	return models.RecordTransactionRequest{
		OrderID: 77,
		UserID:  5,
		Payment: models.PaymentInfo{Method: "wallet", AmountCents: 12550, Currency: "BDT"},
		Contact: models.ContactInfo{Name: "A. Rahman", Phone: "+880123", Address: "Dhaka"},
	}
}

func TestRecordTransaction_Success(t *testing.T) {
	transactionService, router := newTransactionTestRouter(t)

	req := testRecordRequest()
	payload := models.TransactionPayload{Payment: req.Payment, Contact: req.Contact}
	want := models.TransactionView{ID: 1, OrderID: 77, UserID: 5, Payload: &payload}

	transactionService.EXPECT().
		Record(gomock.Any(), req).
		Return(want, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.TransactionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestRecordTransaction_DuplicateReturns409(t *testing.T) {
	transactionService, router := newTransactionTestRouter(t)

	transactionService.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(models.TransactionView{}, store.ErrDuplicateRecord)

	body, err := json.Marshal(testRecordRequest())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetTransaction_Success(t *testing.T) {
	transactionService, router := newTransactionTestRouter(t)

	payload := models.TransactionPayload{
		Payment: models.PaymentInfo{Method: "card", AmountCents: 900, Currency: "BDT"},
		Contact: models.ContactInfo{Name: "B", Phone: "+880456", Address: "Chittagong"},
	}
	want := models.TransactionView{ID: 2, OrderID: 77, UserID: 5, Payload: &payload}

	transactionService.EXPECT().
		Get(gomock.Any(), int64(77), int64(5)).
		Return(want, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transactions?order_id=77&user_id=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.TransactionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestGetTransaction_MissingParams(t *testing.T) {
	_, router := newTransactionTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transactions?order_id=77", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserHistory_Success(t *testing.T) {
	transactionService, router := newTransactionTestRouter(t)

	want := models.HistoryResponse{
		Transactions: []models.TransactionView{{ID: 1, OrderID: 77, UserID: 5}},
		Length:       1,
	}
	transactionService.EXPECT().
		History(gomock.Any(), int64(5), uint64(10)).
		Return(want, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/5/transactions?limit=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}
