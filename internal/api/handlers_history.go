package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/StronkOnes/BrieflyOS/internal/api/respond"
	"github.com/StronkOnes/BrieflyOS/internal/api/validate"
	"github.com/StronkOnes/BrieflyOS/internal/model"
	"github.com/StronkOnes/BrieflyOS/internal/services"
)

type HistoryHandler struct {
	svc *services.ContentService
	log zerolog.Logger
}

func NewHistoryHandler(svc *services.ContentService, log zerolog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: log}
}

func (h *HistoryHandler) CreateHistoryItem(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Type    string `json:"type"`
		Topic   string `json:"topic"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.HistoryItem(in.Type, in.Topic, in.Content); err != nil {
		respond.WriteBadRequest(w, "Type, topic, and content are required")
		return
	}

	item, err := h.svc.CreateHistoryItem(r.Context(), in.Type, in.Topic, in.Content)
	if err != nil {
		h.log.Error().Err(err).Msg("history create failed")
		respond.WriteInternalError(w, "Failed to save history item")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, item)
}

func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListHistory(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("history list failed")
		respond.WriteInternalError(w, "Failed to list history")
		return
	}
	respond.WriteJSON(w, http.StatusOK, items)
}

func (h *HistoryHandler) DeleteHistoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.WriteNotFound(w, "History item not found")
		return
	}

	if err := h.svc.DeleteHistoryItem(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "History item not found")
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("history delete failed")
		respond.WriteInternalError(w, "Failed to delete history item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
