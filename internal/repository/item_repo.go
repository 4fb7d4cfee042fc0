package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository { return &ItemRepository{db: db} }

var _ Items = (*ItemRepository)(nil)

const (
	insertItemSQL = `INSERT INTO learning_items (name, type, link, content, folder_id, marked) VALUES (?, ?, ?, ?, ?, ?)`
	selectItemSQL = `SELECT id, name, type, link, content, folder_id, marked FROM learning_items`

	deleteItemSQL     = `DELETE FROM learning_items WHERE id = ?`
	toggleItemMarkSQL = `UPDATE learning_items SET marked = NOT marked WHERE id = ?`
)

func scanItem(row interface{ Scan(...any) error }) (*models.LearningItem, error) {
	var (
		it            models.LearningItem
		link, content sql.NullString
		folder        sql.NullInt64
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Type, &link, &content, &folder, &it.Marked); err != nil {
		return nil, err
	}
	it.Link = link.String
	it.Content = content.String
	if folder.Valid {
		f := int(folder.Int64)
		it.FolderID = &f
	}
	return &it, nil
}

// List returns every learning item ordered by name.
func (r *ItemRepository) List(ctx context.Context) ([]models.LearningItem, error) {
	return r.query(ctx, selectItemSQL+" ORDER BY name")
}

// ListByFolder returns the items of one folder; nil folderID means the root.
func (r *ItemRepository) ListByFolder(ctx context.Context, folderID *int) ([]models.LearningItem, error) {
	if folderID == nil {
		return r.query(ctx, selectItemSQL+" WHERE folder_id IS NULL ORDER BY name")
	}
	return r.query(ctx, selectItemSQL+" WHERE folder_id = ? ORDER BY name", *folderID)
}

func (r *ItemRepository) query(ctx context.Context, q string, args ...any) ([]models.LearningItem, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select learning items: %w", err)
	}
	defer rows.Close()

	out := make([]models.LearningItem, 0, 32)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan learning item: %w", err)
		}
		out = append(out, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns (nil, nil) if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id int) (*models.LearningItem, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx, selectItemSQL+" WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select learning item %d: %w", id, err)
	}
	return it, nil
}

func (r *ItemRepository) Create(ctx context.Context, it models.LearningItem) (int, error) {
	res, err := r.db.ExecContext(ctx, insertItemSQL,
		it.Name, it.Type, it.Link, it.Content, nullableInt(it.FolderID), it.Marked)
	if err != nil {
		return 0, fmt.Errorf("insert learning item %q: %w", it.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for learning item %q: %w", it.Name, err)
	}
	return int(lastID), nil
}

// Update applies present fields only. FolderIDSet distinguishes "leave folder
// alone" from "move to root" (NULL).
func (r *ItemRepository) Update(ctx context.Context, id int, p ItemPatch) error {
	var b setBuilder
	if p.Name != nil {
		b.add("name", *p.Name)
	}
	if p.Type != nil {
		b.add("type", *p.Type)
	}
	if p.Link != nil {
		b.add("link", *p.Link)
	}
	if p.Content != nil {
		b.add("content", *p.Content)
	}
	if p.FolderIDSet {
		b.add("folder_id", nullableInt(p.FolderID))
	}
	if p.Marked != nil {
		b.add("marked", *p.Marked)
	}
	if b.empty() {
		return nil
	}

	args := append(b.args, id)
	if _, err := r.db.ExecContext(ctx, "UPDATE learning_items SET "+b.clause()+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("update learning item %d: %w", id, err)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteItemSQL, id); err != nil {
		return fmt.Errorf("delete learning item %d: %w", id, err)
	}
	return nil
}

// DeleteByFolders removes the items of the given folders in one statement.
func (r *ItemRepository) DeleteByFolders(ctx context.Context, folderIDs []int) error {
	if len(folderIDs) == 0 {
		return nil
	}
	args := make([]any, len(folderIDs))
	for i, id := range folderIDs {
		args[i] = id
	}
	q := "DELETE FROM learning_items WHERE folder_id IN (" + placeholders(len(folderIDs)) + ")"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("delete learning items of folders %v: %w", folderIDs, err)
	}
	return nil
}

// ToggleMark flips the marked flag and returns the new value.
func (r *ItemRepository) ToggleMark(ctx context.Context, id int) (bool, error) {
	if _, err := r.db.ExecContext(ctx, toggleItemMarkSQL, id); err != nil {
		return false, fmt.Errorf("toggle mark on learning item %d: %w", id, err)
	}
	var marked bool
	err := r.db.QueryRowContext(ctx, `SELECT marked FROM learning_items WHERE id = ?`, id).Scan(&marked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("read mark of learning item %d: %w", id, err)
	}
	return marked, nil
}
