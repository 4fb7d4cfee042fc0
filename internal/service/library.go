package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/navigator"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
)

// LibraryService manages the folder tree and its learning items: unified
// listings, partial updates, move validation, and full-subtree deletes.
type LibraryService struct {
	folders repository.Folders
	items   repository.Items
}

func NewLibraryService(folders repository.Folders, items repository.Items) *LibraryService {
	return &LibraryService{folders: folders, items: items}
}

// ListEntries returns the immediate children of folderID (nil = root):
// sub-folders first, sorted by name, then the folder's items.
func (s *LibraryService) ListEntries(ctx context.Context, folderID *int) ([]models.Entry, error) {
	if folderID != nil {
		if _, err := s.folder(ctx, *folderID); err != nil {
			return nil, err
		}
	}

	all, err := s.folders.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	var out []models.Entry
	for _, f := range navigator.ChildFolders(all, folderID) {
		out = append(out, models.FolderEntry(f))
	}
	for _, it := range items {
		out = append(out, models.ItemEntry(it))
	}
	return out, nil
}

// GetEntry resolves an id in the unified listing. Folders and items have
// independent id sequences, so wantFolder disambiguates; without it the item
// table wins and folders are the fallback.
func (s *LibraryService) GetEntry(ctx context.Context, id int, wantFolder bool) (*models.Entry, error) {
	if !wantFolder {
		it, err := s.items.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if it != nil {
			e := models.ItemEntry(*it)
			return &e, nil
		}
	}
	f, err := s.folders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: entry %d", ErrNotFound, id)
	}
	e := models.FolderEntry(*f)
	return &e, nil
}

// CreateEntry adds a folder (Type "folder") or a learning item.
func (s *LibraryService) CreateEntry(ctx context.Context, in EntryInput) (int, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.FolderID != nil {
		if _, err := s.folder(ctx, *in.FolderID); err != nil {
			return 0, err
		}
	}

	if in.Type == models.EntryTypeFolder {
		return s.folders.Create(ctx, models.Folder{Name: in.Name, ParentID: in.FolderID})
	}

	switch in.Type {
	case "":
		in.Type = models.ItemTypePDF
	case models.ItemTypePDF, models.ItemTypeText:
	default:
		return 0, fmt.Errorf("%w: unknown item type %q", ErrValidation, in.Type)
	}
	return s.items.Create(ctx, models.LearningItem{
		Name:     in.Name,
		Type:     in.Type,
		Link:     in.Link,
		Content:  in.Content,
		FolderID: in.FolderID,
	})
}

// UpdateItem applies a field-presence patch; moving into a folder checks the
// target exists.
func (s *LibraryService) UpdateItem(ctx context.Context, id int, p repository.ItemPatch) error {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if it == nil {
		return fmt.Errorf("%w: learning item %d", ErrNotFound, id)
	}
	if p.Type != nil && *p.Type != models.ItemTypePDF && *p.Type != models.ItemTypeText {
		return fmt.Errorf("%w: unknown item type %q", ErrValidation, *p.Type)
	}
	if p.FolderIDSet && p.FolderID != nil {
		if _, err := s.folder(ctx, *p.FolderID); err != nil {
			return err
		}
	}
	return s.items.Update(ctx, id, p)
}

// UpdateFolder applies a field-presence patch. Reparenting walks upward from
// the requested parent and rejects any move under the folder itself or one of
// its descendants.
func (s *LibraryService) UpdateFolder(ctx context.Context, id int, p repository.FolderPatch) error {
	if _, err := s.folder(ctx, id); err != nil {
		return err
	}

	if p.ParentIDSet && p.ParentID != nil {
		all, err := s.folders.List(ctx)
		if err != nil {
			return err
		}
		idx := navigator.BuildIndex(all)
		if _, ok := idx[*p.ParentID]; !ok {
			return fmt.Errorf("%w: parent folder %d", ErrNotFound, *p.ParentID)
		}
		if navigator.WouldCycle(idx, id, p.ParentID) {
			return fmt.Errorf("%w: folder %d under %d", ErrCycle, id, *p.ParentID)
		}
	}
	return s.folders.Update(ctx, id, p)
}

func (s *LibraryService) DeleteItem(ctx context.Context, id int) error {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if it == nil {
		return fmt.Errorf("%w: learning item %d", ErrNotFound, id)
	}
	return s.items.Delete(ctx, id)
}

// DeleteFolder removes the folder, every descendant folder, and all their
// items. The subtree walk is cycle-bounded, so corrupted parent chains cannot
// hang or over-delete.
func (s *LibraryService) DeleteFolder(ctx context.Context, id int) error {
	if _, err := s.folder(ctx, id); err != nil {
		return err
	}
	all, err := s.folders.List(ctx)
	if err != nil {
		return err
	}
	subtree := navigator.Subtree(all, id)
	if err := s.items.DeleteByFolders(ctx, subtree); err != nil {
		return err
	}
	return s.folders.Delete(ctx, subtree)
}

// ToggleMark flips an item's marked flag and returns the new value.
func (s *LibraryService) ToggleMark(ctx context.Context, id int) (bool, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if it == nil {
		return false, fmt.Errorf("%w: learning item %d", ErrNotFound, id)
	}
	return s.items.ToggleMark(ctx, id)
}

func (s *LibraryService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return s.folders.List(ctx)
}

func (s *LibraryService) ListItems(ctx context.Context) ([]models.LearningItem, error) {
	return s.items.List(ctx)
}

// FolderPath returns the breadcrumb chain from the root to the folder.
func (s *LibraryService) FolderPath(ctx context.Context, id int) ([]models.Folder, error) {
	all, err := s.folders.List(ctx)
	if err != nil {
		return nil, err
	}
	path, err := navigator.Path(navigator.BuildIndex(all), &id)
	if err != nil {
		if errors.Is(err, navigator.ErrUnknownFolder) {
			return nil, fmt.Errorf("%w: folder %d", ErrNotFound, id)
		}
		return nil, err
	}
	return path, nil
}

func (s *LibraryService) folder(ctx context.Context, id int) (*models.Folder, error) {
	f, err := s.folders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: folder %d", ErrNotFound, id)
	}
	return f, nil
}
