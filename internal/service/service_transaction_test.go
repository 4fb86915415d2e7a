// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package service

import (
	"context"
	"testing"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/crypto"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/mock"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMarketplaceSecret = "test-marketplace-secret"

func newTestTransactionSvc(t *testing.T, ctrl *gomock.Controller) (TransactionService, *mock.MockTransactionRepository, crypto.FieldCodec) {
	t.Helper()
	mockRepo := mock.NewMockTransactionRepository(ctrl)
	codec := newTestCodec(t, testMarketplaceSecret)
	svc := NewTransactionService(mockRepo, codec, logger.Nop())
	return svc, mockRepo, codec
}

func testPayload() models.TransactionPayload {
	return models.TransactionPayload{
		Payment: models.PaymentInfo{
			Method:      "wallet",
			Reference:   "txn-8842",
			AmountCents: 14999,
			Currency:    "INR",
		},
		Contact: models.ContactInfo{
			Name:    "A. Buyer",
			Phone:   "+91-98000-00000",
			Address: "12 Market Road",
		},
	}
}

func TestTransactionService_Record_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, codec := newTestTransactionSvc(t, ctrl)
	ctx := context.Background()

	var saved models.Transaction
	mockRepo.EXPECT().
		SaveTransaction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			txn.ID = 21
			saved = *txn
			return nil
		})

	payload := testPayload()
	view, err := svc.Record(ctx, models.RecordTransactionRequest{
		OrderID: 100,
		UserID:  7,
		Payment: payload.Payment,
		Contact: payload.Contact,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(21), view.ID)
	require.NotNil(t, view.Payload)
	assert.Equal(t, payload, *view.Payload)

	// the envelope is keyed by (order, user); nothing sensitive is in the row
	var decrypted models.TransactionPayload
	require.NoError(t, codec.DecryptValue(saved.Payload, models.NewKeyContext(100, 7), &decrypted))
	assert.Equal(t, payload, decrypted)
	assert.NotContains(t, saved.Payload.Ciphertext, "Market Road")
}

func TestTransactionService_Record_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestTransactionSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Record(ctx, models.RecordTransactionRequest{OrderID: 0, UserID: 7, Payment: models.PaymentInfo{Method: "card"}})
	assert.ErrorIs(t, err, ErrValidationInvalidParty)

	_, err = svc.Record(ctx, models.RecordTransactionRequest{OrderID: 100, UserID: 7})
	assert.ErrorIs(t, err, ErrValidationNoPayment)
}

func TestTransactionService_Record_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestTransactionSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().SaveTransaction(ctx, gomock.Any()).Return(store.ErrDuplicateRecord)

	_, err := svc.Record(ctx, models.RecordTransactionRequest{OrderID: 100, UserID: 7, Payment: models.PaymentInfo{Method: "card"}})
	assert.ErrorIs(t, err, store.ErrDuplicateRecord)
}

func TestTransactionService_Get_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, codec := newTestTransactionSvc(t, ctrl)
	ctx := context.Background()

	payload := testPayload()
	envelope, err := codec.EncryptValue(payload, models.NewKeyContext(100, 7))
	require.NoError(t, err)

	mockRepo.EXPECT().GetTransaction(ctx, int64(100), int64(7)).Return(models.Transaction{
		ID:      21,
		OrderID: 100,
		UserID:  7,
		Payload: envelope,
	}, nil)

	view, err := svc.Get(ctx, 100, 7)
	require.NoError(t, err)
	require.NotNil(t, view.Payload)
	assert.Equal(t, payload, *view.Payload)
}

func TestTransactionService_Get_CorruptedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, codec := newTestTransactionSvc(t, ctrl)
	ctx := context.Background()

	envelope, err := codec.EncryptValue(testPayload(), models.NewKeyContext(100, 7))
	require.NoError(t, err)

	mockRepo.EXPECT().GetTransaction(ctx, int64(100), int64(7)).Return(models.Transaction{
		ID:      21,
		OrderID: 100,
		UserID:  7,
		Payload: corruptEnvelope(envelope),
	}, nil)

	view, err := svc.Get(ctx, 100, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrIntegrityFailure)
	assert.True(t, view.Placeholder)
	assert.Nil(t, view.Payload)
}

func TestTransactionService_History_IsolatesBrokenRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, codec := newTestTransactionSvc(t, ctrl)
	ctx := context.Background()

	good, err := codec.EncryptValue(testPayload(), models.NewKeyContext(100, 7))
	require.NoError(t, err)
	bad, err := codec.EncryptValue(testPayload(), models.NewKeyContext(101, 7))
	require.NoError(t, err)

	mockRepo.EXPECT().GetUserHistory(ctx, int64(7), uint64(20)).Return([]models.Transaction{
		{ID: 1, OrderID: 100, UserID: 7, Payload: good},
		{ID: 2, OrderID: 101, UserID: 7, Payload: corruptEnvelope(bad)},
	}, nil)

	resp, err := svc.History(ctx, 7, 20)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Length)

	assert.NotNil(t, resp.Transactions[0].Payload)
	assert.False(t, resp.Transactions[0].Placeholder)

	assert.Nil(t, resp.Transactions[1].Payload)
	assert.True(t, resp.Transactions[1].Placeholder)
}
