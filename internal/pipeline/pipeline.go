// Package pipeline orchestrates completion calls for each content tool.
// Operations build prompts from caller fields, call the completion client
// once (twice for articles) and return the text. Nothing here persists;
// saving to history or blog posts is a separate call made by the UI.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/StronkOnes/BrieflyOS/internal/completion"
	"github.com/StronkOnes/BrieflyOS/internal/model"
)

// ScriptKind selects the persona and template for script generation.
type ScriptKind string

const (
	ScriptShort   ScriptKind = "short"
	ScriptPodcast ScriptKind = "podcast"
	ScriptYouTube ScriptKind = "youtube"
)

// ArticleResult carries both stages of article generation. The operation
// either returns both fields or fails as a unit.
type ArticleResult struct {
	ResearchSummary string `json:"researchSummary"`
	ArticleDraft    string `json:"articleDraft"`
}

// ParseError reports that the model did not return a decodable JSON array
// for contact-scrape. RawOutput holds the generated text for diagnostics.
type ParseError struct {
	RawOutput string
}

func (e *ParseError) Error() string {
	return "generated contacts are not a valid JSON array"
}

type Service struct {
	client completion.Client
}

func NewService(client completion.Client) *Service { return &Service{client: client} }

// GenerateArticle runs two sequential completions: a research summary seeded
// only by the topic, then an article draft seeded by the research output.
func (s *Service) GenerateArticle(ctx context.Context, topic string) (*ArticleResult, error) {
	research, err := s.client.Complete(ctx, researchPrompt(topic))
	if err != nil {
		return nil, fmt.Errorf("research step: %w", err)
	}
	draft, err := s.client.Complete(ctx, articlePrompt(research))
	if err != nil {
		return nil, fmt.Errorf("article step: %w", err)
	}
	return &ArticleResult{ResearchSummary: research, ArticleDraft: draft}, nil
}

// GenerateScript produces a script of the given kind. researchSummary is
// optional; the prompt notes its absence rather than omitting the clause.
func (s *Service) GenerateScript(ctx context.Context, kind ScriptKind, topic, researchSummary string) (string, error) {
	return s.client.Complete(ctx, scriptPrompt(kind, topic, researchSummary))
}

// AnalyzeKPIs embeds the caller-supplied lead and opportunity structures
// into a single analysis prompt.
func (s *Service) AnalyzeKPIs(ctx context.Context, leadsData, opportunitiesData json.RawMessage) (string, error) {
	return s.client.Complete(ctx, kpiAnalysisPrompt(leadsData, opportunitiesData))
}

func (s *Service) SummarizeCRM(ctx context.Context, crmData json.RawMessage) (string, error) {
	return s.client.Complete(ctx, crmSummaryPrompt(crmData))
}

func (s *Service) PlanCampaign(ctx context.Context, campaignDetails json.RawMessage) (string, error) {
	return s.client.Complete(ctx, campaignPlanPrompt(campaignDetails))
}

func (s *Service) GenerateEmail(ctx context.Context, emailContext json.RawMessage) (string, error) {
	return s.client.Complete(ctx, emailPrompt(emailContext))
}

// fencedJSON matches a ```json ... ``` block and captures the body.
var fencedJSON = regexp.MustCompile("```json\\n([\\s\\S]*?)\\n```")

// ScrapeContacts asks the model for a JSON array of contacts and parses it.
// The array is often wrapped in a fenced code block, so the inner JSON is
// extracted first. Undecodable output becomes a *ParseError carrying the raw
// text, never a crash.
func (s *Service) ScrapeContacts(ctx context.Context, query string) ([]model.Contact, error) {
	raw, err := s.client.Complete(ctx, contactScrapePrompt(query))
	if err != nil {
		return nil, err
	}

	body := raw
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		body = m[1]
	}

	var contacts []model.Contact
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &contacts); err != nil {
		return nil, &ParseError{RawOutput: raw}
	}
	return contacts, nil
}
