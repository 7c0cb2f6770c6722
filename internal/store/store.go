package store

import (
	"context"

	"github.com/StronkOnes/BrieflyOS/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (jsonfile, sqlite).
type Store interface {
	Leads() Leads
	Opportunities() Opportunities
	BlogPosts() BlogPosts
	History() History

	// HealthCheck verifies the backing storage is reachable.
	HealthCheck(ctx context.Context) error

	Close() error
}

// Leads supports create and list only; leads are never updated or deleted
// through the API.
type Leads interface {
	Create(ctx context.Context, l *model.Lead) (*model.Lead, error)
	List(ctx context.Context) ([]*model.Lead, error)
}

type Opportunities interface {
	Create(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error)
	List(ctx context.Context) ([]*model.Opportunity, error)
	// Update replaces every caller-supplied field of the record with the
	// given id and returns the stored result. model.ErrNotFound when the id
	// does not exist.
	Update(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error)
	Delete(ctx context.Context, id int64) error
}

type BlogPosts interface {
	Create(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error)
	List(ctx context.Context) ([]*model.BlogPost, error)
	Update(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error)
	Delete(ctx context.Context, id int64) error
}

// History is an append-only log with delete-by-id for user cleanup.
type History interface {
	Create(ctx context.Context, h *model.HistoryItem) (*model.HistoryItem, error)
	List(ctx context.Context) ([]*model.HistoryItem, error)
	Delete(ctx context.Context, id int64) error
}
