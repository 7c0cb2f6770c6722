package services

import (
	"context"
	"time"

	"github.com/StronkOnes/BrieflyOS/internal/ids"
	"github.com/StronkOnes/BrieflyOS/internal/model"
	"github.com/StronkOnes/BrieflyOS/internal/store"
)

// ContentService handles blog posts and the generation history log.
type ContentService struct {
	store store.Store
	ids   *ids.Generator
}

func NewContentService(s store.Store, gen *ids.Generator) *ContentService {
	return &ContentService{store: s, ids: gen}
}

func (s *ContentService) CreateBlogPost(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error) {
	p.ID = s.ids.Next()
	p.Timestamp = time.Now().UTC().Format(time.RFC3339)
	return s.store.BlogPosts().Create(ctx, p)
}

func (s *ContentService) ListBlogPosts(ctx context.Context) ([]*model.BlogPost, error) {
	return s.store.BlogPosts().List(ctx)
}

// UpdateBlogPost replaces every caller field and refreshes the timestamp,
// mirroring the full-field replace semantics of the API.
func (s *ContentService) UpdateBlogPost(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error) {
	p.Timestamp = time.Now().UTC().Format(time.RFC3339)
	return s.store.BlogPosts().Update(ctx, p)
}

func (s *ContentService) DeleteBlogPost(ctx context.Context, id int64) error {
	return s.store.BlogPosts().Delete(ctx, id)
}

func (s *ContentService) CreateHistoryItem(ctx context.Context, itemType, topic, content string) (*model.HistoryItem, error) {
	h := &model.HistoryItem{
		ID:        s.ids.Next(),
		Type:      itemType,
		Topic:     topic,
		Content:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return s.store.History().Create(ctx, h)
}

func (s *ContentService) ListHistory(ctx context.Context) ([]*model.HistoryItem, error) {
	return s.store.History().List(ctx)
}

func (s *ContentService) DeleteHistoryItem(ctx context.Context, id int64) error {
	return s.store.History().Delete(ctx, id)
}
