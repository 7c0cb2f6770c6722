package services

import (
	"context"
	"time"

	"github.com/StronkOnes/BrieflyOS/internal/crm"
	"github.com/StronkOnes/BrieflyOS/internal/ids"
	"github.com/StronkOnes/BrieflyOS/internal/model"
	"github.com/StronkOnes/BrieflyOS/internal/store"
)

// CRMService handles leads, opportunities and derived metrics. It assigns
// record ids and creation timestamps; stage and amount values are stored
// verbatim as supplied.
type CRMService struct {
	store store.Store
	ids   *ids.Generator
}

func NewCRMService(s store.Store, gen *ids.Generator) *CRMService {
	return &CRMService{store: s, ids: gen}
}

func (s *CRMService) CreateLead(ctx context.Context, name, email, stage string) (*model.Lead, error) {
	l := &model.Lead{
		ID:        s.ids.Next(),
		Name:      name,
		Email:     email,
		Stage:     stage,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return s.store.Leads().Create(ctx, l)
}

func (s *CRMService) ListLeads(ctx context.Context) ([]*model.Lead, error) {
	return s.store.Leads().List(ctx)
}

func (s *CRMService) CreateOpportunity(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error) {
	o.ID = s.ids.Next()
	o.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.store.Opportunities().Create(ctx, o)
}

func (s *CRMService) ListOpportunities(ctx context.Context) ([]*model.Opportunity, error) {
	return s.store.Opportunities().List(ctx)
}

func (s *CRMService) UpdateOpportunity(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error) {
	return s.store.Opportunities().Update(ctx, o)
}

func (s *CRMService) DeleteOpportunity(ctx context.Context, id int64) error {
	return s.store.Opportunities().Delete(ctx, id)
}

// Metrics aggregates dashboard figures from the current collections.
func (s *CRMService) Metrics(ctx context.Context) (*crm.Metrics, error) {
	leads, err := s.store.Leads().List(ctx)
	if err != nil {
		return nil, err
	}
	opps, err := s.store.Opportunities().List(ctx)
	if err != nil {
		return nil, err
	}
	m := crm.Aggregate(leads, opps)
	return &m, nil
}
