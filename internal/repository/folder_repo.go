package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
)

type FolderRepository struct {
	db *sql.DB
}

func NewFolderRepository(db *sql.DB) *FolderRepository { return &FolderRepository{db: db} }

var _ Folders = (*FolderRepository)(nil)

const (
	insertFolderSQL     = `INSERT INTO folders (name, parent_id) VALUES (?, ?)`
	selectFoldersSQL    = `SELECT id, name, parent_id FROM folders ORDER BY name`
	selectFolderByIDSQL = `SELECT id, name, parent_id FROM folders WHERE id = ?`
)

// placeholders builds "?, ?, ?" for IN clauses over fixed-length id sets.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func scanFolder(row interface{ Scan(...any) error }) (*models.Folder, error) {
	var (
		f      models.Folder
		parent sql.NullInt64
	)
	if err := row.Scan(&f.ID, &f.Name, &parent); err != nil {
		return nil, err
	}
	if parent.Valid {
		p := int(parent.Int64)
		f.ParentID = &p
	}
	return &f, nil
}

// List returns all folders sorted by name (the move dialog consumes this).
func (r *FolderRepository) List(ctx context.Context) ([]models.Folder, error) {
	rows, err := r.db.QueryContext(ctx, selectFoldersSQL)
	if err != nil {
		return nil, fmt.Errorf("select folders: %w", err)
	}
	defer rows.Close()

	out := make([]models.Folder, 0, 32)
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		out = append(out, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns (nil, nil) if not found.
func (r *FolderRepository) GetByID(ctx context.Context, id int) (*models.Folder, error) {
	f, err := scanFolder(r.db.QueryRowContext(ctx, selectFolderByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select folder %d: %w", id, err)
	}
	return f, nil
}

func (r *FolderRepository) Create(ctx context.Context, f models.Folder) (int, error) {
	res, err := r.db.ExecContext(ctx, insertFolderSQL, f.Name, nullableInt(f.ParentID))
	if err != nil {
		return 0, fmt.Errorf("insert folder %q: %w", f.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for folder %q: %w", f.Name, err)
	}
	return int(lastID), nil
}

// Update applies present fields only. ParentIDSet distinguishes "leave parent
// alone" from "move to root" (NULL).
func (r *FolderRepository) Update(ctx context.Context, id int, p FolderPatch) error {
	var b setBuilder
	if p.Name != nil {
		b.add("name", *p.Name)
	}
	if p.ParentIDSet {
		b.add("parent_id", nullableInt(p.ParentID))
	}
	if b.empty() {
		return nil
	}

	args := append(b.args, id)
	if _, err := r.db.ExecContext(ctx, "UPDATE folders SET "+b.clause()+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("update folder %d: %w", id, err)
	}
	return nil
}

// Delete removes the given folder rows in one statement (subtree ids come from
// the service-side walk).
func (r *FolderRepository) Delete(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	q := "DELETE FROM folders WHERE id IN (" + placeholders(len(ids)) + ")"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("delete folders %v: %w", ids, err)
	}
	return nil
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
