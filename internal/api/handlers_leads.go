package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/StronkOnes/BrieflyOS/internal/api/respond"
	"github.com/StronkOnes/BrieflyOS/internal/api/validate"
	"github.com/StronkOnes/BrieflyOS/internal/services"
)

type LeadHandler struct {
	svc *services.CRMService
	log zerolog.Logger
}

func NewLeadHandler(svc *services.CRMService, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{svc: svc, log: log}
}

func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Stage string `json:"stage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.CreateLead(in.Name, in.Email, in.Stage); err != nil {
		respond.WriteBadRequest(w, "Name, email, and stage are required")
		return
	}

	lead, err := h.svc.CreateLead(r.Context(), in.Name, in.Email, in.Stage)
	if err != nil {
		h.log.Error().Err(err).Msg("lead create failed")
		respond.WriteInternalError(w, "Failed to save lead")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.svc.ListLeads(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("lead list failed")
		respond.WriteInternalError(w, "Failed to list leads")
		return
	}
	respond.WriteJSON(w, http.StatusOK, leads)
}

// ExportLeadsCSV streams the collection as a CSV attachment.
func (h *LeadHandler) ExportLeadsCSV(w http.ResponseWriter, r *http.Request) {
	leads, err := h.svc.ListLeads(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("lead export failed")
		respond.WriteInternalError(w, "Failed to export leads")
		return
	}
	if len(leads) == 0 {
		respond.WriteNotFound(w, "No leads to export")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(leadsCSV(leads)))
}
