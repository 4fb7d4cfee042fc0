package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
)

// InfoService owns the categorized link/info cards, including inlining
// uploaded card art as base64 data URLs.
type InfoService struct {
	cards      repository.InfoCards
	categories repository.Categories
}

func NewInfoService(cards repository.InfoCards, categories repository.Categories) *InfoService {
	return &InfoService{cards: cards, categories: categories}
}

func (s *InfoService) List(ctx context.Context, categoryID *int) ([]models.InfoCard, error) {
	return s.cards.List(ctx, categoryID)
}

func (s *InfoService) Get(ctx context.Context, id int) (*models.InfoCard, error) {
	c, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: info card %d", ErrNotFound, id)
	}
	return c, nil
}

func (s *InfoService) Create(ctx context.Context, in InfoInput) (int, error) {
	if strings.TrimSpace(in.Title) == "" {
		return 0, fmt.Errorf("%w: title is required", ErrValidation)
	}
	cat, err := s.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return 0, err
	}
	if cat == nil {
		return 0, fmt.Errorf("%w: category %d", ErrNotFound, in.CategoryID)
	}

	image, err := resolveImage(in.Image, in.ImageData, in.ImageMime)
	if err != nil {
		return 0, err
	}

	display := in.DisplayType
	switch display {
	case "":
		display = models.DisplayIcon
		if image != "" {
			display = models.DisplayImage
		}
	case models.DisplayIcon, models.DisplayImage:
	default:
		return 0, fmt.Errorf("%w: unknown display type %q", ErrValidation, in.DisplayType)
	}

	icon := in.Icon
	if icon == "" && display == models.DisplayIcon {
		icon = "fa-link"
	}

	return s.cards.Create(ctx, models.InfoCard{
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		DisplayType: display,
		Icon:        icon,
		Image:       image,
		Link:        in.Link,
	})
}

func (s *InfoService) Update(ctx context.Context, id int, p repository.InfoCardPatch, imageData, imageMime string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if p.DisplayType != nil && *p.DisplayType != models.DisplayIcon && *p.DisplayType != models.DisplayImage {
		return fmt.Errorf("%w: unknown display type %q", ErrValidation, *p.DisplayType)
	}
	if p.CategoryID != nil {
		cat, err := s.categories.GetByID(ctx, *p.CategoryID)
		if err != nil {
			return err
		}
		if cat == nil {
			return fmt.Errorf("%w: category %d", ErrNotFound, *p.CategoryID)
		}
	}
	if imageData != "" {
		image, err := resolveImage("", imageData, imageMime)
		if err != nil {
			return err
		}
		p.Image = &image
	}
	return s.cards.Update(ctx, id, p)
}

func (s *InfoService) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.cards.Delete(ctx, id)
}

// resolveImage picks the card art: a raw upload becomes an inline data URL,
// otherwise the provided URL (or existing data URL) passes through.
func resolveImage(image, data, mime string) (string, error) {
	if data == "" {
		return image, nil
	}
	if _, err := base64.StdEncoding.DecodeString(data); err != nil {
		return "", fmt.Errorf("%w: image data is not valid base64", ErrValidation)
	}
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + data, nil
}
