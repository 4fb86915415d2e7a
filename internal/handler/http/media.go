package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/utils"
)

// maxMediaUploadBytes caps attachment uploads at 32 MiB of plaintext.
const maxMediaUploadBytes = 32 << 20

func (h *Handler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	senderID, err := queryID(r, "sender_id")
	if err != nil {
		http.Error(w, "invalid sender_id", http.StatusBadRequest)
		return
	}
	receiverID, err := queryID(r, "receiver_id")
	if err != nil {
		http.Error(w, "invalid receiver_id", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxMediaUploadBytes))
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadMedia").Msg("failed to read request body")
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		http.Error(w, "empty request body", http.StatusBadRequest)
		return
	}

	resp, err := h.services.MediaService.Upload(r.Context(), senderID, receiverID, contentType, data)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.uploadMedia").
			Int64("sender_id", senderID).
			Int64("receiver_id", receiverID).
			Msg("error uploading media")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) downloadMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid media id", http.StatusBadRequest)
		return
	}

	object, data, err := h.services.MediaService.Download(r.Context(), id)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.downloadMedia").
			Int64("media_id", id).
			Msg("error downloading media")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", object.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) deleteMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid media id", http.StatusBadRequest)
		return
	}

	if err := h.services.MediaService.Remove(r.Context(), id); err != nil {
		log.Err(err).
			Str("func", "*Handler.deleteMedia").
			Int64("media_id", id).
			Msg("error deleting media")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
