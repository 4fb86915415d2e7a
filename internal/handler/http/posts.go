package http

import (
	"encoding/json"
	"net/http"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/utils"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

func (h *Handler) sharePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SharePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sharePost").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.PostShareService.Share(r.Context(), req)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.sharePost").
			Int64("post_id", req.PostID).
			Int64("group_id", req.GroupID).
			Msg("error sharing post")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) getPostShare(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid share id", http.StatusBadRequest)
		return
	}

	view, err := h.services.PostShareService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getPostShare").
			Int64("share_id", id).
			Msg("error getting post share")

		if isDecryptError(err) {
			utils.WriteJSON(w, view, http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) getGroupFeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	groupID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid group id", http.StatusBadRequest)
		return
	}
	limit := queryLimit(r)

	resp, err := h.services.PostShareService.Feed(r.Context(), groupID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getGroupFeed").
			Int64("group_id", groupID).
			Msg("error getting group feed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
