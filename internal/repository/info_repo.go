package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
)

type InfoCardRepository struct {
	db *sql.DB
}

func NewInfoCardRepository(db *sql.DB) *InfoCardRepository { return &InfoCardRepository{db: db} }

var _ InfoCards = (*InfoCardRepository)(nil)

const (
	insertInfoCardSQL = `INSERT INTO info_cards (category_id, title, display_type, icon, image, link) VALUES (?, ?, ?, ?, ?, ?)`
	selectInfoCardSQL = `SELECT id, category_id, title, display_type, icon, image, link FROM info_cards`

	deleteInfoCardSQL           = `DELETE FROM info_cards WHERE id = ?`
	deleteInfoCardsByCategorySQL = `DELETE FROM info_cards WHERE category_id = ?`
)

func scanInfoCard(row interface{ Scan(...any) error }) (*models.InfoCard, error) {
	var (
		c           models.InfoCard
		icon, image sql.NullString
	)
	if err := row.Scan(&c.ID, &c.CategoryID, &c.Title, &c.DisplayType, &icon, &image, &c.Link); err != nil {
		return nil, err
	}
	c.Icon = icon.String
	c.Image = image.String
	return &c, nil
}

// List returns cards, optionally restricted to one category, ordered by id.
func (r *InfoCardRepository) List(ctx context.Context, categoryID *int) ([]models.InfoCard, error) {
	q := selectInfoCardSQL
	var args []any
	if categoryID != nil {
		q += " WHERE category_id = ?"
		args = append(args, *categoryID)
	}
	q += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select info cards: %w", err)
	}
	defer rows.Close()

	out := make([]models.InfoCard, 0, 32)
	for rows.Next() {
		c, err := scanInfoCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan info card: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns (nil, nil) if not found.
func (r *InfoCardRepository) GetByID(ctx context.Context, id int) (*models.InfoCard, error) {
	c, err := scanInfoCard(r.db.QueryRowContext(ctx, selectInfoCardSQL+" WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select info card %d: %w", id, err)
	}
	return c, nil
}

func (r *InfoCardRepository) Create(ctx context.Context, c models.InfoCard) (int, error) {
	res, err := r.db.ExecContext(ctx, insertInfoCardSQL,
		c.CategoryID, c.Title, c.DisplayType, c.Icon, c.Image, c.Link)
	if err != nil {
		return 0, fmt.Errorf("insert info card %q: %w", c.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for info card %q: %w", c.Title, err)
	}
	return int(lastID), nil
}

func (r *InfoCardRepository) Update(ctx context.Context, id int, p InfoCardPatch) error {
	var b setBuilder
	if p.CategoryID != nil {
		b.add("category_id", *p.CategoryID)
	}
	if p.Title != nil {
		b.add("title", *p.Title)
	}
	if p.DisplayType != nil {
		b.add("display_type", *p.DisplayType)
	}
	if p.Icon != nil {
		b.add("icon", *p.Icon)
	}
	if p.Image != nil {
		b.add("image", *p.Image)
	}
	if p.Link != nil {
		b.add("link", *p.Link)
	}
	if b.empty() {
		return nil
	}

	args := append(b.args, id)
	if _, err := r.db.ExecContext(ctx, "UPDATE info_cards SET "+b.clause()+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("update info card %d: %w", id, err)
	}
	return nil
}

func (r *InfoCardRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteInfoCardSQL, id); err != nil {
		return fmt.Errorf("delete info card %d: %w", id, err)
	}
	return nil
}

// DeleteByCategory removes every card of a category before the category row
// itself goes, keeping referential integrity.
func (r *InfoCardRepository) DeleteByCategory(ctx context.Context, categoryID int) error {
	if _, err := r.db.ExecContext(ctx, deleteInfoCardsByCategorySQL, categoryID); err != nil {
		return fmt.Errorf("delete info cards of category %d: %w", categoryID, err)
	}
	return nil
}
