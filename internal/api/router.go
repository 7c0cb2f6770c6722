package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/StronkOnes/BrieflyOS/internal/api/recovery"
	"github.com/StronkOnes/BrieflyOS/internal/ids"
	"github.com/StronkOnes/BrieflyOS/internal/pipeline"
	"github.com/StronkOnes/BrieflyOS/internal/services"
	"github.com/StronkOnes/BrieflyOS/internal/store"
)

// NewRouter wires all API routes to handlers.
func NewRouter(st store.Store, gen *pipeline.Service, log zerolog.Logger) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	idGen := ids.NewGenerator()
	crmSvc := services.NewCRMService(st, idGen)
	contentSvc := services.NewContentService(st, idGen)

	// Generation
	genHandler := NewGenerationHandler(gen, log)
	root.HandleFunc("/api/generate-article", genHandler.GenerateArticle).Methods("POST")
	root.HandleFunc("/api/generate-short-script", genHandler.GenerateScript(pipeline.ScriptShort, "Failed to generate short script")).Methods("POST")
	root.HandleFunc("/api/generate-podcast-script", genHandler.GenerateScript(pipeline.ScriptPodcast, "Failed to generate podcast script")).Methods("POST")
	root.HandleFunc("/api/generate-youtube-script", genHandler.GenerateScript(pipeline.ScriptYouTube, "Failed to generate YouTube script")).Methods("POST")
	root.HandleFunc("/api/kpi-analysis", genHandler.KPIAnalysis).Methods("POST")
	root.HandleFunc("/api/crm-summary", genHandler.CRMSummary).Methods("POST")
	root.HandleFunc("/api/campaign-plan", genHandler.CampaignPlan).Methods("POST")
	root.HandleFunc("/api/generate-email", genHandler.GenerateEmail).Methods("POST")
	root.HandleFunc("/api/contact-scrape", genHandler.ContactScrape).Methods("POST")

	// Leads
	leadHandler := NewLeadHandler(crmSvc, log)
	root.HandleFunc("/api/leads", leadHandler.CreateLead).Methods("POST")
	root.HandleFunc("/api/leads", leadHandler.ListLeads).Methods("GET")
	root.HandleFunc("/api/leads/export-csv", leadHandler.ExportLeadsCSV).Methods("GET")

	// Opportunities and metrics
	oppHandler := NewOpportunityHandler(crmSvc, log)
	root.HandleFunc("/api/opportunities", oppHandler.CreateOpportunity).Methods("POST")
	root.HandleFunc("/api/opportunities", oppHandler.ListOpportunities).Methods("GET")
	root.HandleFunc("/api/opportunities/{id}", oppHandler.UpdateOpportunity).Methods("PUT")
	root.HandleFunc("/api/opportunities/{id}", oppHandler.DeleteOpportunity).Methods("DELETE")
	root.HandleFunc("/api/crm/metrics", oppHandler.CRMMetrics).Methods("GET")

	// Blog posts
	postHandler := NewBlogPostHandler(contentSvc, log)
	root.HandleFunc("/api/blog-posts", postHandler.CreateBlogPost).Methods("POST")
	root.HandleFunc("/api/blog-posts", postHandler.ListBlogPosts).Methods("GET")
	root.HandleFunc("/api/blog-posts/{id}", postHandler.UpdateBlogPost).Methods("PUT")
	root.HandleFunc("/api/blog-posts/{id}", postHandler.DeleteBlogPost).Methods("DELETE")

	// History
	historyHandler := NewHistoryHandler(contentSvc, log)
	root.HandleFunc("/api/history", historyHandler.CreateHistoryItem).Methods("POST")
	root.HandleFunc("/api/history", historyHandler.ListHistory).Methods("GET")
	root.HandleFunc("/api/history/{id}", historyHandler.DeleteHistoryItem).Methods("DELETE")

	// Health
	healthHandler := NewHealthHandler(st)
	root.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	return root
}
