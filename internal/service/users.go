package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
)

// UserService owns account management. Deleting the reserved admin account is
// always refused; passwords are bcrypt-hashed before they touch the store.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, in UserInput) (int, error) {
	if strings.TrimSpace(in.Username) == "" {
		return 0, fmt.Errorf("%w: username is required", ErrValidation)
	}
	role := in.Role
	switch role {
	case "":
		role = models.RoleUser
	case models.RoleAdmin, models.RoleUser:
	default:
		return 0, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	existing, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrDuplicateUsername
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return 0, err
	}
	return s.users.Create(ctx, models.User{
		Username:     in.Username,
		PasswordHash: hash,
		DisplayName:  in.DisplayName,
		Role:         role,
	})
}

// Update applies present fields only; the password is rehashed only when a new
// one was supplied.
func (s *UserService) Update(ctx context.Context, id int, p UserPatch) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if p.Role != nil && *p.Role != models.RoleAdmin && *p.Role != models.RoleUser {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, *p.Role)
	}

	patch := repository.UserPatch{
		DisplayName: p.DisplayName,
		Role:        p.Role,
	}
	if p.Username != nil {
		existing, err := s.users.GetByUsername(ctx, *p.Username)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != id {
			return ErrDuplicateUsername
		}
		patch.Username = p.Username
	}
	if p.Password != nil {
		hash, err := HashPassword(*p.Password)
		if err != nil {
			return err
		}
		patch.PasswordHash = &hash
	}
	return s.users.Update(ctx, id, patch)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if u.Username == models.ReservedAdminUsername {
		return ErrReservedAdmin
	}
	return s.users.Delete(ctx, id)
}
