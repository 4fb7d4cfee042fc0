package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository { return &CategoryRepository{db: db} }

var _ Categories = (*CategoryRepository)(nil)

const (
	insertCategorySQL     = `INSERT INTO categories (name, icon) VALUES (?, ?)`
	selectCategoriesSQL   = `SELECT id, name, icon FROM categories ORDER BY id`
	selectCategoryByIDSQL = `SELECT id, name, icon FROM categories WHERE id = ?`
	deleteCategorySQL     = `DELETE FROM categories WHERE id = ?`
)

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	out := make([]models.Category, 0, 16)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns (nil, nil) if not found.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, selectCategoryByIDSQL, id).Scan(&c.ID, &c.Name, &c.Icon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select category %d: %w", id, err)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c models.Category) (int, error) {
	res, err := r.db.ExecContext(ctx, insertCategorySQL, c.Name, c.Icon)
	if err != nil {
		return 0, fmt.Errorf("insert category %q: %w", c.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for category %q: %w", c.Name, err)
	}
	return int(lastID), nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int, p CategoryPatch) error {
	var b setBuilder
	if p.Name != nil {
		b.add("name", *p.Name)
	}
	if p.Icon != nil {
		b.add("icon", *p.Icon)
	}
	if b.empty() {
		return nil
	}

	args := append(b.args, id)
	if _, err := r.db.ExecContext(ctx, "UPDATE categories SET "+b.clause()+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("update category %d: %w", id, err)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteCategorySQL, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}
