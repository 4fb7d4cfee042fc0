package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
)

type UpdateRepository struct {
	db *sql.DB
}

func NewUpdateRepository(db *sql.DB) *UpdateRepository { return &UpdateRepository{db: db} }

var _ Updates = (*UpdateRepository)(nil)

const (
	insertUpdateSQL     = `INSERT INTO updates (topic, badge, message, author, created_at) VALUES (?, ?, ?, ?, ?)`
	selectUpdatesSQL    = `SELECT id, topic, badge, message, author, created_at FROM updates ORDER BY id DESC`
	selectUpdateByIDSQL = `SELECT id, topic, badge, message, author, created_at FROM updates WHERE id = ?`
	deleteUpdateSQL     = `DELETE FROM updates WHERE id = ?`
)

// List returns the feed newest-first.
func (r *UpdateRepository) List(ctx context.Context) ([]models.Update, error) {
	rows, err := r.db.QueryContext(ctx, selectUpdatesSQL)
	if err != nil {
		return nil, fmt.Errorf("select updates: %w", err)
	}
	defer rows.Close()

	out := make([]models.Update, 0, 32)
	for rows.Next() {
		var u models.Update
		if err := rows.Scan(&u.ID, &u.Topic, &u.Badge, &u.Message, &u.Author, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan update: %w", err)
		}
		u.CreatedAt = u.CreatedAt.UTC()
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one update. Returns (nil, nil) if not found.
func (r *UpdateRepository) GetByID(ctx context.Context, id int) (*models.Update, error) {
	var u models.Update
	err := r.db.QueryRowContext(ctx, selectUpdateByIDSQL, id).
		Scan(&u.ID, &u.Topic, &u.Badge, &u.Message, &u.Author, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select update %d: %w", id, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// Create inserts a feed entry. CreatedAt is set if zero.
func (r *UpdateRepository) Create(ctx context.Context, u models.Update) (int, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertUpdateSQL, u.Topic, u.Badge, u.Message, u.Author, u.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert update: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for update: %w", err)
	}
	return int(lastID), nil
}

func (r *UpdateRepository) Update(ctx context.Context, id int, p UpdatePatch) error {
	var b setBuilder
	if p.Topic != nil {
		b.add("topic", *p.Topic)
	}
	if p.Badge != nil {
		b.add("badge", *p.Badge)
	}
	if p.Message != nil {
		b.add("message", *p.Message)
	}
	if p.Author != nil {
		b.add("author", *p.Author)
	}
	if b.empty() {
		return nil
	}

	args := append(b.args, id)
	if _, err := r.db.ExecContext(ctx, "UPDATE updates SET "+b.clause()+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("update update %d: %w", id, err)
	}
	return nil
}

func (r *UpdateRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteUpdateSQL, id); err != nil {
		return fmt.Errorf("delete update %d: %w", id, err)
	}
	return nil
}
