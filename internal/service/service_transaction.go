package service

import (
	"context"
	"fmt"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/crypto"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

type transactionService struct {
	transactionRepository store.TransactionRepository
	codec                 crypto.FieldCodec

	logger *logger.Logger
}

func NewTransactionService(transactionRepository store.TransactionRepository, codec crypto.FieldCodec, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		codec:                 codec,
		logger:                logger,
	}
}

// Record implements [TransactionService]. Payment and contact details are
// folded into one JSON payload and encrypted for the ordered (order, user)
// pair; the relational columns keep only the identifiers.
func (s *transactionService) Record(ctx context.Context, req models.RecordTransactionRequest) (models.TransactionView, error) {
	if req.OrderID <= 0 || req.UserID <= 0 {
		return models.TransactionView{}, ErrValidationInvalidParty
	}
	if req.Payment.Method == "" {
		return models.TransactionView{}, ErrValidationNoPayment
	}

	payload := models.TransactionPayload{
		Payment: req.Payment,
		Contact: req.Contact,
	}

	keyCtx := models.NewKeyContext(req.OrderID, req.UserID)
	envelope, err := s.codec.EncryptValue(payload, keyCtx)
	if err != nil {
		return models.TransactionView{}, fmt.Errorf("encrypt transaction payload: %w", err)
	}

	txn := models.Transaction{
		OrderID: req.OrderID,
		UserID:  req.UserID,
		Payload: envelope,
	}
	if err := s.transactionRepository.SaveTransaction(ctx, &txn); err != nil {
		return models.TransactionView{}, err
	}

	return models.TransactionView{
		ID:        txn.ID,
		OrderID:   txn.OrderID,
		UserID:    txn.UserID,
		Payload:   &payload,
		CreatedAt: txn.CreatedAt,
	}, nil
}

// Get implements [TransactionService].
func (s *transactionService) Get(ctx context.Context, orderID, userID int64) (models.TransactionView, error) {
	if orderID <= 0 || userID <= 0 {
		return models.TransactionView{}, ErrValidationInvalidParty
	}

	txn, err := s.transactionRepository.GetTransaction(ctx, orderID, userID)
	if err != nil {
		return models.TransactionView{}, err
	}

	view, err := s.decryptToView(txn)
	if err != nil {
		return view, fmt.Errorf("decrypt transaction %d: %w", txn.ID, err)
	}

	return view, nil
}

// History implements [TransactionService]. Per-record decrypt isolation, same
// as the message batch path.
func (s *transactionService) History(ctx context.Context, userID int64, limit uint64) (models.HistoryResponse, error) {
	if userID <= 0 {
		return models.HistoryResponse{}, ErrValidationInvalidParty
	}

	transactions, err := s.transactionRepository.GetUserHistory(ctx, userID, limit)
	if err != nil {
		return models.HistoryResponse{}, err
	}

	views := make([]models.TransactionView, 0, len(transactions))
	for _, txn := range transactions {
		view, err := s.decryptToView(txn)
		if err != nil {
			logger.FromContext(ctx).Warn().
				Str("func", "transactionService.History").
				Int64("transaction_id", txn.ID).
				Int64("order_id", txn.OrderID).
				Int64("user_id", txn.UserID).
				Err(err).
				Msg("transaction payload could not be decrypted, returning placeholder")
		}
		views = append(views, view)
	}

	return models.HistoryResponse{
		Transactions: views,
		Length:       len(views),
	}, nil
}

func (s *transactionService) decryptToView(txn models.Transaction) (models.TransactionView, error) {
	view := models.TransactionView{
		ID:        txn.ID,
		OrderID:   txn.OrderID,
		UserID:    txn.UserID,
		CreatedAt: txn.CreatedAt,
	}

	var payload models.TransactionPayload
	if err := s.codec.DecryptValue(txn.Payload, txn.Context(), &payload); err != nil {
		view.Placeholder = true
		return view, err
	}

	view.Payload = &payload
	return view, nil
}
