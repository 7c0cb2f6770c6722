// Package jsonfile persists each collection as one JSON array file with
// whole-file replace-on-write semantics. Reads are fail-open: a missing or
// corrupt file decodes as an empty collection and is logged, never surfaced.
// A process-wide mutex keeps a single process from interleaving its own
// read-modify-write cycles; cross-process writers still race last-write-wins.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/StronkOnes/BrieflyOS/internal/model"
	"github.com/StronkOnes/BrieflyOS/internal/store"
)

const (
	leadsFile         = "leads.json"
	opportunitiesFile = "opportunities.json"
	blogPostsFile     = "blogposts.json"
	historyFile       = "history.json"
)

type Store struct {
	dir string
	mu  sync.Mutex
	log zerolog.Logger
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) Leads() store.Leads { return leads{s} }
func (s *Store) Opportunities() store.Opportunities { return opportunities{s} }
func (s *Store) BlogPosts() store.BlogPosts { return blogPosts{s} }
func (s *Store) History() store.History { return history{s} }

func (s *Store) HealthCheck(ctx context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

func (s *Store) Close() error { return nil }

// readAll loads a collection file. Missing and malformed files both decode
// as an empty collection.
func readAll[T any](s *Store, file string) []*T {
	path := filepath.Join(s.dir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Error().Err(err).Str("file", file).Msg("collection file unreadable, treating as empty")
		}
		return []*T{}
	}
	var out []*T
	if err := json.Unmarshal(data, &out); err != nil {
		s.log.Error().Err(err).Str("file", file).Msg("collection file malformed, treating as empty")
		return []*T{}
	}
	return out
}

// writeAll replaces the collection file. The temp-file rename keeps a
// single process from leaving a torn file behind; it is not a cross-process
// guarantee.
func writeAll[T any](s *Store, file string, records []*T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", file, err)
	}
	path := filepath.Join(s.dir, file)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", file, err)
	}
	return nil
}

// --- Leads ---

type leads struct{ s *Store }

func (c leads) Create(ctx context.Context, l *model.Lead) (*model.Lead, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	all := readAll[model.Lead](c.s, leadsFile)
	all = append(all, l)
	if err := writeAll(c.s, leadsFile, all); err != nil {
		return nil, err
	}
	return l, nil
}

func (c leads) List(ctx context.Context) ([]*model.Lead, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return readAll[model.Lead](c.s, leadsFile), nil
}

// --- Opportunities ---

type opportunities struct{ s *Store }

func (c opportunities) Create(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	all := readAll[model.Opportunity](c.s, opportunitiesFile)
	all = append(all, o)
	if err := writeAll(c.s, opportunitiesFile, all); err != nil {
		return nil, err
	}
	return o, nil
}

func (c opportunities) List(ctx context.Context) ([]*model.Opportunity, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return readAll[model.Opportunity](c.s, opportunitiesFile), nil
}

func (c opportunities) Update(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	all := readAll[model.Opportunity](c.s, opportunitiesFile)
	for i, cur := range all {
		if cur.ID == o.ID {
			// CreatedAt survives updates; every caller field is replaced.
			o.CreatedAt = cur.CreatedAt
			all[i] = o
			if err := writeAll(c.s, opportunitiesFile, all); err != nil {
				return nil, err
			}
			return o, nil
		}
	}
	return nil, model.ErrNotFound
}

func (c opportunities) Delete(ctx context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	all := readAll[model.Opportunity](c.s, opportunitiesFile)
	kept := all[:0]
	for _, cur := range all {
		if cur.ID != id {
			kept = append(kept, cur)
		}
	}
	if len(kept) == len(all) {
		return model.ErrNotFound
	}
	return writeAll(c.s, opportunitiesFile, kept)
}

// --- Blog posts ---

type blogPosts struct{ s *Store }

func (c blogPosts) Create(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	all := readAll[model.BlogPost](c.s, blogPostsFile)
	all = append(all, p)
	if err := writeAll(c.s, blogPostsFile, all); err != nil {
		return nil, err
	}
	return p, nil
}

func (c blogPosts) List(ctx context.Context) ([]*model.BlogPost, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return readAll[model.BlogPost](c.s, blogPostsFile), nil
}

func (c blogPosts) Update(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	all := readAll[model.BlogPost](c.s, blogPostsFile)
	for i, cur := range all {
		if cur.ID == p.ID {
			all[i] = p
			if err := writeAll(c.s, blogPostsFile, all); err != nil {
				return nil, err
			}
			return p, nil
		}
	}
	return nil, model.ErrNotFound
}

func (c blogPosts) Delete(ctx context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	all := readAll[model.BlogPost](c.s, blogPostsFile)
	kept := all[:0]
	for _, cur := range all {
		if cur.ID != id {
			kept = append(kept, cur)
		}
	}
	if len(kept) == len(all) {
		return model.ErrNotFound
	}
	return writeAll(c.s, blogPostsFile, kept)
}

// --- History ---

type history struct{ s *Store }

func (c history) Create(ctx context.Context, h *model.HistoryItem) (*model.HistoryItem, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	all := readAll[model.HistoryItem](c.s, historyFile)
	all = append(all, h)
	if err := writeAll(c.s, historyFile, all); err != nil {
		return nil, err
	}
	return h, nil
}

func (c history) List(ctx context.Context) ([]*model.HistoryItem, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return readAll[model.HistoryItem](c.s, historyFile), nil
}

func (c history) Delete(ctx context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	all := readAll[model.HistoryItem](c.s, historyFile)
	kept := all[:0]
	for _, cur := range all {
		if cur.ID != id {
			kept = append(kept, cur)
		}
	}
	if len(kept) == len(all) {
		return model.ErrNotFound
	}
	return writeAll(c.s, historyFile, kept)
}
