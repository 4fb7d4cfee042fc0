package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
)

func newInfoFixture() (*fakeCardRepo, *fakeCategoryRepo, *InfoService) {
	cards := &fakeCardRepo{createID: 7}
	categories := &fakeCategoryRepo{categories: []models.Category{{ID: 1, Name: "Links", Icon: "fa-link"}}}
	return cards, categories, NewInfoService(cards, categories)
}

func TestInfoService_Create(t *testing.T) {
	pngData := base64.StdEncoding.EncodeToString([]byte("fake png bytes"))

	tests := []struct {
		name      string
		in        InfoInput
		wantErr   error
		wantCard  models.InfoCard
		checkCard bool
	}{
		{
			name: "icon card with defaults",
			in:   InfoInput{CategoryID: 1, Title: "Wiki", Link: "https://wiki"},
			wantCard: models.InfoCard{
				CategoryID: 1, Title: "Wiki", DisplayType: models.DisplayIcon,
				Icon: "fa-link", Link: "https://wiki",
			},
			checkCard: true,
		},
		{
			name: "upload becomes an inline data URL and flips display",
			in:   InfoInput{CategoryID: 1, Title: "Map", ImageData: pngData, ImageMime: "image/png"},
			wantCard: models.InfoCard{
				CategoryID: 1, Title: "Map", DisplayType: models.DisplayImage,
				Image: "data:image/png;base64," + pngData,
			},
			checkCard: true,
		},
		{
			name:    "invalid base64 rejected",
			in:      InfoInput{CategoryID: 1, Title: "Map", ImageData: "not-base64!!"},
			wantErr: ErrValidation,
		},
		{
			name:    "unknown display type rejected",
			in:      InfoInput{CategoryID: 1, Title: "Wiki", DisplayType: "banner"},
			wantErr: ErrValidation,
		},
		{
			name:    "unknown category rejected",
			in:      InfoInput{CategoryID: 9, Title: "Wiki"},
			wantErr: ErrNotFound,
		},
		{
			name:    "empty title rejected",
			in:      InfoInput{CategoryID: 1, Title: " "},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			cards, _, s := newInfoFixture()

			id, err := s.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != 7 || len(cards.created) != 1 {
				t.Fatalf("expected one create, got id=%d created=%+v", id, cards.created)
			}
			if tt.checkCard && cards.created[0] != tt.wantCard {
				t.Fatalf("unexpected card:\nwant %+v\n got %+v", tt.wantCard, cards.created[0])
			}
		})
	}
}

func TestInfoService_Update_UploadOverridesImage(t *testing.T) {
	cards, _, s := newInfoFixture()
	cards.cards = []models.InfoCard{{ID: 3, CategoryID: 1, Title: "Map", DisplayType: models.DisplayImage}}

	data := base64.StdEncoding.EncodeToString([]byte("new art"))
	if err := s.Update(context.Background(), 3, repository.InfoCardPatch{}, data, "image/jpeg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cards.lastPatch.Image == nil || *cards.lastPatch.Image != "data:image/jpeg;base64,"+data {
		t.Fatalf("unexpected image patch: %+v", cards.lastPatch.Image)
	}

	// moving to an unknown category is refused
	err := s.Update(context.Background(), 3, repository.InfoCardPatch{CategoryID: ip(9)}, "", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
