package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
)

const defaultCategoryIcon = "fa-folder"

// CategoryService owns categories; deletion cascades to dependent info cards
// before the category row goes.
type CategoryService struct {
	categories repository.Categories
	cards      repository.InfoCards
}

func NewCategoryService(categories repository.Categories, cards repository.InfoCards) *CategoryService {
	return &CategoryService{categories: categories, cards: cards}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int) (*models.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
	}
	return c, nil
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (int, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Icon == "" {
		in.Icon = defaultCategoryIcon
	}
	return s.categories.Create(ctx, models.Category{Name: in.Name, Icon: in.Icon})
}

func (s *CategoryService) Update(ctx context.Context, id int, p repository.CategoryPatch) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.categories.Update(ctx, id, p)
}

// Delete removes the category's cards first so no dangling card survives.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.cards.DeleteByCategory(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}
