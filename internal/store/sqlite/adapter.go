// Package sqlite implements store.Store on an embedded SQLite database,
// one table per collection. Rows are inserted with caller-assigned ids so
// the adapter stays interchangeable with the jsonfile driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/StronkOnes/BrieflyOS/internal/model"
	"github.com/StronkOnes/BrieflyOS/internal/store"
)

type Store struct {
	db *sql.DB
}

// New opens (or creates) the database file and ensures the schema.
func New(path string) (*Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewWithDB wires an existing connection (used by tests and the factory).
func NewWithDB(db *sql.DB) (*Store, error) {
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Leads() store.Leads { return leads{s.db} }
func (s *Store) Opportunities() store.Opportunities { return opportunities{s.db} }
func (s *Store) BlogPosts() store.BlogPosts { return blogPosts{s.db} }
func (s *Store) History() store.History { return history{s.db} }

func (s *Store) HealthCheck(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Close() error { return s.db.Close() }

// --- Leads ---

type leads struct{ db *sql.DB }

func (c leads) Create(ctx context.Context, l *model.Lead) (*model.Lead, error) {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO Leads (Id, Name, Email, Stage, CreatedAt) VALUES (?,?,?,?,?)`,
		l.ID, l.Name, l.Email, l.Stage, l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (c leads) List(ctx context.Context) ([]*model.Lead, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT Id, Name, Email, Stage, CreatedAt FROM Leads ORDER BY Id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Lead{}
	for rows.Next() {
		var l model.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Stage, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// --- Opportunities ---

type opportunities struct{ db *sql.DB }

func (c opportunities) Create(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error) {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO Opportunities (Id, LeadId, LeadName, Amount, Stage, Probability, CreatedAt) VALUES (?,?,?,?,?,?,?)`,
		o.ID, o.LeadID, o.LeadName, o.Amount, o.Stage, o.Probability, o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (c opportunities) List(ctx context.Context) ([]*model.Opportunity, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT Id, LeadId, LeadName, Amount, Stage, Probability, CreatedAt FROM Opportunities ORDER BY Id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Opportunity{}
	for rows.Next() {
		var o model.Opportunity
		if err := rows.Scan(&o.ID, &o.LeadID, &o.LeadName, &o.Amount, &o.Stage, &o.Probability, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

func (c opportunities) Update(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT CreatedAt FROM Opportunities WHERE Id = ?`, o.ID)
	if err := row.Scan(&o.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	_, err := c.db.ExecContext(ctx,
		`UPDATE Opportunities SET LeadId = ?, LeadName = ?, Amount = ?, Stage = ?, Probability = ? WHERE Id = ?`,
		o.LeadID, o.LeadName, o.Amount, o.Stage, o.Probability, o.ID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (c opportunities) Delete(ctx context.Context, id int64) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM Opportunities WHERE Id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Blog posts ---

type blogPosts struct{ db *sql.DB }

func (c blogPosts) Create(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error) {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO BlogPosts (Id, Title, Content, FeaturedImage, Tags, Categories, Timestamp) VALUES (?,?,?,?,?,?,?)`,
		p.ID, p.Title, p.Content, p.FeaturedImage, p.Tags, p.Categories, p.Timestamp)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (c blogPosts) List(ctx context.Context) ([]*model.BlogPost, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT Id, Title, Content, FeaturedImage, Tags, Categories, Timestamp FROM BlogPosts ORDER BY Id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.BlogPost{}
	for rows.Next() {
		var p model.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.FeaturedImage, &p.Tags, &p.Categories, &p.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (c blogPosts) Update(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error) {
	res, err := c.db.ExecContext(ctx,
		`UPDATE BlogPosts SET Title = ?, Content = ?, FeaturedImage = ?, Tags = ?, Categories = ?, Timestamp = ? WHERE Id = ?`,
		p.Title, p.Content, p.FeaturedImage, p.Tags, p.Categories, p.Timestamp, p.ID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return p, nil
}

func (c blogPosts) Delete(ctx context.Context, id int64) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM BlogPosts WHERE Id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- History ---

type history struct{ db *sql.DB }

func (c history) Create(ctx context.Context, h *model.HistoryItem) (*model.HistoryItem, error) {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO History (Id, Type, Topic, Content, Timestamp) VALUES (?,?,?,?,?)`,
		h.ID, h.Type, h.Topic, h.Content, h.Timestamp)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (c history) List(ctx context.Context) ([]*model.HistoryItem, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT Id, Type, Topic, Content, Timestamp FROM History ORDER BY Id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.HistoryItem{}
	for rows.Next() {
		var h model.HistoryItem
		if err := rows.Scan(&h.ID, &h.Type, &h.Topic, &h.Content, &h.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

func (c history) Delete(ctx context.Context, id int64) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM History WHERE Id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}
