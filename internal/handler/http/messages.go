package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/utils"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.MessageService.Send(r.Context(), req)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.sendMessage").
			Int64("sender_id", req.SenderID).
			Int64("receiver_id", req.ReceiverID).
			Msg("error sending message")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) editMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	var req models.EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.editMessage").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.MessageService.Edit(r.Context(), id, req)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.editMessage").
			Int64("message_id", id).
			Msg("error editing message")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}
	senderID, err := queryID(r, "sender_id")
	if err != nil {
		http.Error(w, "invalid sender_id", http.StatusBadRequest)
		return
	}

	if err := h.services.MessageService.Delete(r.Context(), id, senderID); err != nil {
		log.Err(err).
			Str("func", "*Handler.deleteMessage").
			Int64("message_id", id).
			Int64("sender_id", senderID).
			Msg("error deleting message")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	view, err := h.services.MessageService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getMessage").
			Int64("message_id", id).
			Msg("error getting message")

		// decryption failures still return the record: the placeholder view
		// travels in the body, the status reports the broken envelope
		if isDecryptError(err) {
			utils.WriteJSON(w, view, http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) getConversation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	firstUserID, err := queryID(r, "user_a")
	if err != nil {
		http.Error(w, "invalid user_a", http.StatusBadRequest)
		return
	}
	secondUserID, err := queryID(r, "user_b")
	if err != nil {
		http.Error(w, "invalid user_b", http.StatusBadRequest)
		return
	}
	limit := queryLimit(r)

	resp, err := h.services.MessageService.Conversation(r.Context(), firstUserID, secondUserID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getConversation").
			Int64("user_a", firstUserID).
			Int64("user_b", secondUserID).
			Msg("error getting conversation")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getLatestConversations(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := queryID(r, "user_id")
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	resp, err := h.services.MessageService.LatestPerConversation(r.Context(), userID)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getLatestConversations").
			Int64("user_id", userID).
			Msg("error getting latest conversations")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// pathID parses a positive int64 URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return parseID(chi.URLParam(r, name))
}

// queryID parses a positive int64 query parameter.
func queryID(r *http.Request, name string) (int64, error) {
	return parseID(r.URL.Query().Get(name))
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// queryLimit parses the optional "limit" query parameter; absent or invalid
// values mean no limit.
func queryLimit(r *http.Request) uint64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return limit
}
