// Package storetest holds a compliance suite shared by store adapters.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/StronkOnes/BrieflyOS/internal/ids"
	"github.com/StronkOnes/BrieflyOS/internal/model"
	"github.com/StronkOnes/BrieflyOS/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()
	gen := ids.NewGenerator()
	now := time.Now().UTC().Format(time.RFC3339)

	// Leads: create then list.
	email := "lead-" + uuid.New().String() + "@example.test"
	lead := &model.Lead{ID: gen.Next(), Name: "Ada", Email: email, Stage: model.LeadStageNew, CreatedAt: now}
	if _, err := s.Leads().Create(ctx, lead); err != nil {
		t.Fatalf("CreateLead: %v", err)
	}
	gotLeads, err := s.Leads().List(ctx)
	if err != nil || len(gotLeads) != 1 {
		t.Fatalf("ListLeads: n=%d err=%v", len(gotLeads), err)
	}
	if gotLeads[0].Email != email || gotLeads[0].Stage != model.LeadStageNew {
		t.Fatalf("ListLeads: got=%+v", gotLeads[0])
	}

	// Opportunities: stage strings survive round trips verbatim.
	opp := &model.Opportunity{
		ID: gen.Next(), LeadID: lead.ID, LeadName: lead.Name,
		Amount: 1500, Stage: model.OppStageProspecting, Probability: 40, CreatedAt: now,
	}
	if _, err := s.Opportunities().Create(ctx, opp); err != nil {
		t.Fatalf("CreateOpportunity: %v", err)
	}
	gotOpps, err := s.Opportunities().List(ctx)
	if err != nil || len(gotOpps) != 1 || gotOpps[0].Stage != model.OppStageProspecting {
		t.Fatalf("ListOpportunities: got=%+v err=%v", gotOpps, err)
	}

	// Update replaces caller fields, preserves CreatedAt, flags unknown ids.
	upd := &model.Opportunity{
		ID: opp.ID, LeadID: opp.LeadID, LeadName: "Renamed Corp",
		Amount: 2500, Stage: model.OppStageWon, Probability: 100,
	}
	got, err := s.Opportunities().Update(ctx, upd)
	if err != nil {
		t.Fatalf("UpdateOpportunity: %v", err)
	}
	if got.LeadName != "Renamed Corp" || got.Stage != model.OppStageWon || got.CreatedAt != now {
		t.Fatalf("UpdateOpportunity: got=%+v", got)
	}
	if _, err := s.Opportunities().Update(ctx, &model.Opportunity{ID: 99999999}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("UpdateOpportunity unknown id: err=%v", err)
	}

	// Delete removes exactly one record; the second delete reports not found.
	if err := s.Opportunities().Delete(ctx, opp.ID); err != nil {
		t.Fatalf("DeleteOpportunity: %v", err)
	}
	if err := s.Opportunities().Delete(ctx, opp.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteOpportunity twice: err=%v", err)
	}
	if lst, err := s.Opportunities().List(ctx); err != nil || len(lst) != 0 {
		t.Fatalf("ListOpportunities after delete: n=%d err=%v", len(lst), err)
	}

	// Blog posts round-trip and full-field update.
	post := &model.BlogPost{ID: gen.Next(), Title: "T", Content: "C", Timestamp: now}
	if _, err := s.BlogPosts().Create(ctx, post); err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}
	posts, err := s.BlogPosts().List(ctx)
	if err != nil || len(posts) != 1 || posts[0].Title != "T" || posts[0].Content != "C" {
		t.Fatalf("ListBlogPosts: got=%+v err=%v", posts, err)
	}
	post.Content = "C2"
	post.Tags = "go,crm"
	if _, err := s.BlogPosts().Update(ctx, post); err != nil {
		t.Fatalf("UpdateBlogPost: %v", err)
	}
	if _, err := s.BlogPosts().Update(ctx, &model.BlogPost{ID: 1}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("UpdateBlogPost unknown id: err=%v", err)
	}
	if err := s.BlogPosts().Delete(ctx, post.ID); err != nil {
		t.Fatalf("DeleteBlogPost: %v", err)
	}

	// History: append, list, delete-by-id.
	item := &model.HistoryItem{ID: gen.Next(), Type: "Article", Topic: "ai", Content: "draft", Timestamp: now}
	if _, err := s.History().Create(ctx, item); err != nil {
		t.Fatalf("CreateHistory: %v", err)
	}
	hist, err := s.History().List(ctx)
	if err != nil || len(hist) != 1 || hist[0].Type != "Article" {
		t.Fatalf("ListHistory: got=%+v err=%v", hist, err)
	}
	if err := s.History().Delete(ctx, item.ID); err != nil {
		t.Fatalf("DeleteHistory: %v", err)
	}
	if err := s.History().Delete(ctx, item.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteHistory twice: err=%v", err)
	}
}
