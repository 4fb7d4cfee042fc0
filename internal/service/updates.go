package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
)

// UpdateService owns the news feed.
type UpdateService struct {
	updates repository.Updates
}

func NewUpdateService(updates repository.Updates) *UpdateService {
	return &UpdateService{updates: updates}
}

func (s *UpdateService) List(ctx context.Context) ([]models.Update, error) {
	return s.updates.List(ctx)
}

func (s *UpdateService) Get(ctx context.Context, id int) (*models.Update, error) {
	u, err := s.updates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: update %d", ErrNotFound, id)
	}
	return u, nil
}

func (s *UpdateService) Create(ctx context.Context, in UpdateInput) (int, error) {
	if strings.TrimSpace(in.Topic) == "" || strings.TrimSpace(in.Message) == "" {
		return 0, fmt.Errorf("%w: topic and message are required", ErrValidation)
	}
	if in.Badge == "" {
		in.Badge = models.BadgeGeneral
	}
	if !models.ValidBadge(in.Badge) {
		return 0, fmt.Errorf("%w: unknown badge %q", ErrValidation, in.Badge)
	}
	return s.updates.Create(ctx, models.Update{
		Topic:   in.Topic,
		Badge:   in.Badge,
		Message: in.Message,
		Author:  in.Author,
	})
}

func (s *UpdateService) Update(ctx context.Context, id int, p repository.UpdatePatch) error {
	if p.Badge != nil && !models.ValidBadge(*p.Badge) {
		return fmt.Errorf("%w: unknown badge %q", ErrValidation, *p.Badge)
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.updates.Update(ctx, id, p)
}

func (s *UpdateService) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.updates.Delete(ctx, id)
}
