package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash, display_name, role) VALUES (?, ?, ?, ?)`
	selectUsersSQL          = `SELECT id, username, password_hash, display_name, role FROM users ORDER BY id`
	selectUserByIDSQL       = `SELECT id, username, password_hash, display_name, role FROM users WHERE id = ?`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, display_name, role FROM users WHERE username = ?`
	deleteUserSQL           = `DELETE FROM users WHERE id = ?`
)

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.Role); err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns all accounts ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %d: %w", id, err)
	}
	return u, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Username, u.PasswordHash, u.DisplayName, u.Role)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return int(lastID), nil
}

// Update applies only the fields present in the patch.
func (r *UserRepository) Update(ctx context.Context, id int, p UserPatch) error {
	var b setBuilder
	if p.Username != nil {
		b.add("username", *p.Username)
	}
	if p.PasswordHash != nil {
		b.add("password_hash", *p.PasswordHash)
	}
	if p.DisplayName != nil {
		b.add("display_name", *p.DisplayName)
	}
	if p.Role != nil {
		b.add("role", *p.Role)
	}
	if b.empty() {
		return nil
	}

	args := append(b.args, id)
	if _, err := r.db.ExecContext(ctx, "UPDATE users SET "+b.clause()+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
