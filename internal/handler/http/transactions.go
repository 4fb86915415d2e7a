package http

import (
	"encoding/json"
	"net/http"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/utils"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

func (h *Handler) recordTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.recordTransaction").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.TransactionService.Record(r.Context(), req)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.recordTransaction").
			Int64("order_id", req.OrderID).
			Int64("user_id", req.UserID).
			Msg("error recording transaction")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	orderID, err := queryID(r, "order_id")
	if err != nil {
		http.Error(w, "invalid order_id", http.StatusBadRequest)
		return
	}
	userID, err := queryID(r, "user_id")
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	view, err := h.services.TransactionService.Get(r.Context(), orderID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getTransaction").
			Int64("order_id", orderID).
			Int64("user_id", userID).
			Msg("error getting transaction")

		if isDecryptError(err) {
			utils.WriteJSON(w, view, http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) getUserHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	limit := queryLimit(r)

	resp, err := h.services.TransactionService.History(r.Context(), userID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getUserHistory").
			Int64("user_id", userID).
			Msg("error getting user history")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
