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

type OpportunityHandler struct {
	svc *services.CRMService
	log zerolog.Logger
}

func NewOpportunityHandler(svc *services.CRMService, log zerolog.Logger) *OpportunityHandler {
	return &OpportunityHandler{svc: svc, log: log}
}

// opportunityInput uses pointers so absent fields are distinguishable from
// legitimate zero values.
type opportunityInput struct {
	LeadID      *int64   `json:"leadId"`
	LeadName    string   `json:"leadName"`
	Amount      *float64 `json:"amount"`
	Stage       string   `json:"stage"`
	Probability *int     `json:"probability"`
}

func (in *opportunityInput) validate() error {
	return validate.Opportunity(in.LeadID, in.LeadName, in.Amount, in.Stage, in.Probability)
}

func (in *opportunityInput) toModel() *model.Opportunity {
	return &model.Opportunity{
		LeadID:      *in.LeadID,
		LeadName:    in.LeadName,
		Amount:      *in.Amount,
		Stage:       in.Stage,
		Probability: *in.Probability,
	}
}

func (h *OpportunityHandler) CreateOpportunity(w http.ResponseWriter, r *http.Request) {
	var in opportunityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := in.validate(); err != nil {
		respond.WriteBadRequest(w, "Missing required opportunity fields")
		return
	}

	opp, err := h.svc.CreateOpportunity(r.Context(), in.toModel())
	if err != nil {
		h.log.Error().Err(err).Msg("opportunity create failed")
		respond.WriteInternalError(w, "Failed to save opportunity")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, opp)
}

func (h *OpportunityHandler) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	opps, err := h.svc.ListOpportunities(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("opportunity list failed")
		respond.WriteInternalError(w, "Failed to list opportunities")
		return
	}
	respond.WriteJSON(w, http.StatusOK, opps)
}

func (h *OpportunityHandler) UpdateOpportunity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.WriteNotFound(w, "Opportunity not found")
		return
	}

	var in opportunityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := in.validate(); err != nil {
		respond.WriteBadRequest(w, "Missing required opportunity fields")
		return
	}

	opp := in.toModel()
	opp.ID = id
	updated, err := h.svc.UpdateOpportunity(r.Context(), opp)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Opportunity not found")
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("opportunity update failed")
		respond.WriteInternalError(w, "Failed to update opportunity")
		return
	}
	respond.WriteJSON(w, http.StatusOK, updated)
}

func (h *OpportunityHandler) DeleteOpportunity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.WriteNotFound(w, "Opportunity not found")
		return
	}

	if err := h.svc.DeleteOpportunity(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Opportunity not found")
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("opportunity delete failed")
		respond.WriteInternalError(w, "Failed to delete opportunity")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CRMMetrics serves the aggregated dashboard figures.
func (h *OpportunityHandler) CRMMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Metrics(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("metrics aggregation failed")
		respond.WriteInternalError(w, "Failed to compute metrics")
		return
	}
	respond.WriteJSON(w, http.StatusOK, m)
}
