package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/StronkOnes/BrieflyOS/internal/api/respond"
	"github.com/StronkOnes/BrieflyOS/internal/api/validate"
	"github.com/StronkOnes/BrieflyOS/internal/pipeline"
)

// GenerationHandler exposes the content-generation pipeline. None of these
// endpoints persist anything; the UI saves results through the blog-posts
// and history endpoints afterwards.
type GenerationHandler struct {
	svc *pipeline.Service
	log zerolog.Logger
}

func NewGenerationHandler(svc *pipeline.Service, log zerolog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: log}
}

func (h *GenerationHandler) GenerateArticle(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.NonEmpty("topic", in.Topic); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	out, err := h.svc.GenerateArticle(r.Context(), in.Topic)
	if err != nil {
		h.log.Error().Err(err).Str("topic", in.Topic).Msg("article generation failed")
		respond.WriteInternalError(w, "Failed to generate article")
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GenerateScript serves the three script endpoints; the kind is fixed at
// route registration.
func (h *GenerationHandler) GenerateScript(kind pipeline.ScriptKind, failureMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Topic           string `json:"topic"`
			ResearchSummary string `json:"researchSummary"`
			ArticleDraft    string `json:"articleDraft"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respond.WriteBadRequest(w, "invalid json")
			return
		}
		if err := validate.NonEmpty("topic", in.Topic); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}

		script, err := h.svc.GenerateScript(r.Context(), kind, in.Topic, in.ResearchSummary)
		if err != nil {
			h.log.Error().Err(err).Str("kind", string(kind)).Msg("script generation failed")
			respond.WriteInternalError(w, failureMsg)
			return
		}
		respond.WriteJSON(w, http.StatusOK, map[string]string{"script": script})
	}
}

func (h *GenerationHandler) KPIAnalysis(w http.ResponseWriter, r *http.Request) {
	var in struct {
		LeadsData         json.RawMessage `json:"leadsData"`
		OpportunitiesData json.RawMessage `json:"opportunitiesData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}

	analysis, err := h.svc.AnalyzeKPIs(r.Context(), in.LeadsData, in.OpportunitiesData)
	if err != nil {
		h.log.Error().Err(err).Msg("kpi analysis failed")
		respond.WriteInternalError(w, "Failed to generate KPI analysis")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

func (h *GenerationHandler) CRMSummary(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CRMData json.RawMessage `json:"crmData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}

	summary, err := h.svc.SummarizeCRM(r.Context(), in.CRMData)
	if err != nil {
		h.log.Error().Err(err).Msg("crm summary failed")
		respond.WriteInternalError(w, "Failed to generate CRM summary")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (h *GenerationHandler) CampaignPlan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CampaignDetails json.RawMessage `json:"campaignDetails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}

	plan, err := h.svc.PlanCampaign(r.Context(), in.CampaignDetails)
	if err != nil {
		h.log.Error().Err(err).Msg("campaign planning failed")
		respond.WriteInternalError(w, "Failed to generate campaign plan")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"plan": plan})
}

func (h *GenerationHandler) GenerateEmail(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Context json.RawMessage `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}

	emailContent, err := h.svc.GenerateEmail(r.Context(), in.Context)
	if err != nil {
		h.log.Error().Err(err).Msg("email generation failed")
		respond.WriteInternalError(w, "Failed to generate email")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"emailContent": emailContent})
}

func (h *GenerationHandler) ContactScrape(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.NonEmpty("query", in.Query); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	contacts, err := h.svc.ScrapeContacts(r.Context(), in.Query)
	if err != nil {
		var pe *pipeline.ParseError
		if errors.As(err, &pe) {
			h.log.Warn().Str("query", in.Query).Msg("generated contacts not valid JSON, relaying raw text")
			respond.WriteJSON(w, http.StatusInternalServerError, respond.ErrorResponse{
				Error:     "The AI failed to return valid contact information. Please try a different query.",
				RawOutput: pe.RawOutput,
			})
			return
		}
		h.log.Error().Err(err).Msg("contact scrape failed")
		respond.WriteInternalError(w, "Failed to scrape contacts")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"contacts": contacts})
}
