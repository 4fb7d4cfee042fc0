package service

import (
	"context"
	"fmt"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
)

// allowedTables is the closed set the legacy generic endpoint may touch. The
// check runs before any statement is chosen; the table name itself never
// reaches a query string.
var allowedTables = map[string]bool{
	"updates":        true,
	"categories":     true,
	"info_cards":     true,
	"learning_items": true,
	"folders":        true,
	"users":          true,
}

// CompatService serves the legacy {action, table, data, id} endpoint by
// dispatching to the typed services, so upsert-by-id payloads get the same
// validation and cascade behavior as the REST routes.
type CompatService struct {
	updates    Updates
	categories Categories
	info       Info
	library    Library
	users      Users
}

func NewCompatService(updates Updates, categories Categories, info Info, library Library, users Users) *CompatService {
	return &CompatService{
		updates:    updates,
		categories: categories,
		info:       info,
		library:    library,
		users:      users,
	}
}

// Save inserts when data carries no id and partially updates otherwise.
// Returns the row id (0 for updates, matching the legacy contract).
func (s *CompatService) Save(ctx context.Context, table string, data map[string]any) (int, error) {
	if !allowedTables[table] {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}

	id, hasID := intField(data, "id")
	switch table {
	case "updates":
		if hasID {
			return 0, s.updates.Update(ctx, id, repository.UpdatePatch{
				Topic:   strField(data, "topic"),
				Badge:   strField(data, "badge"),
				Message: strField(data, "message"),
				Author:  strField(data, "author"),
			})
		}
		return s.updates.Create(ctx, UpdateInput{
			Topic:   deref(strField(data, "topic")),
			Badge:   deref(strField(data, "badge")),
			Message: deref(strField(data, "message")),
			Author:  deref(strField(data, "author")),
		})

	case "categories":
		if hasID {
			return 0, s.categories.Update(ctx, id, repository.CategoryPatch{
				Name: strField(data, "name"),
				Icon: strField(data, "icon"),
			})
		}
		return s.categories.Create(ctx, CategoryInput{
			Name: deref(strField(data, "name")),
			Icon: deref(strField(data, "icon")),
		})

	case "info_cards":
		if hasID {
			catID, _ := intField(data, "category_id", "categoryId")
			p := repository.InfoCardPatch{
				Title:       strField(data, "title"),
				DisplayType: strField(data, "display_type", "displayType"),
				Icon:        strField(data, "icon"),
				Image:       strField(data, "image"),
				Link:        strField(data, "link"),
			}
			if hasField(data, "category_id", "categoryId") {
				p.CategoryID = &catID
			}
			return 0, s.info.Update(ctx, id, p, "", "")
		}
		catID, _ := intField(data, "category_id", "categoryId")
		return s.info.Create(ctx, InfoInput{
			CategoryID:  catID,
			Title:       deref(strField(data, "title")),
			DisplayType: deref(strField(data, "display_type", "displayType")),
			Icon:        deref(strField(data, "icon")),
			Image:       deref(strField(data, "image")),
			Link:        deref(strField(data, "link")),
		})

	case "folders":
		if hasID {
			p := repository.FolderPatch{Name: strField(data, "name")}
			if hasField(data, "parent_id", "parentId") {
				p.ParentIDSet = true
				if v, isInt := intField(data, "parent_id", "parentId"); isInt {
					p.ParentID = &v
				}
			}
			return 0, s.library.UpdateFolder(ctx, id, p)
		}
		in := EntryInput{Name: deref(strField(data, "name")), Type: models.EntryTypeFolder}
		if v, ok := intField(data, "parent_id", "parentId"); ok {
			in.FolderID = &v
		}
		return s.library.CreateEntry(ctx, in)

	case "learning_items":
		// legacy item payloads name the title "topic"
		if hasID {
			p := repository.ItemPatch{
				Name:    strField(data, "name", "topic"),
				Type:    strField(data, "type"),
				Link:    strField(data, "link"),
				Content: strField(data, "content"),
			}
			if hasField(data, "folder_id", "folderId") {
				p.FolderIDSet = true
				if v, isInt := intField(data, "folder_id", "folderId"); isInt {
					p.FolderID = &v
				}
			}
			return 0, s.library.UpdateItem(ctx, id, p)
		}
		in := EntryInput{
			Name:    deref(strField(data, "name", "topic")),
			Type:    deref(strField(data, "type")),
			Link:    deref(strField(data, "link")),
			Content: deref(strField(data, "content")),
		}
		if v, ok := intField(data, "folder_id", "folderId"); ok {
			in.FolderID = &v
		}
		return s.library.CreateEntry(ctx, in)

	case "users":
		if hasID {
			return 0, s.users.Update(ctx, id, UserPatch{
				Username:    strField(data, "username"),
				Password:    strField(data, "password"),
				DisplayName: strField(data, "displayName", "accountName"),
				Role:        strField(data, "role"),
			})
		}
		return s.users.Create(ctx, UserInput{
			Username:    deref(strField(data, "username")),
			Password:    deref(strField(data, "password")),
			DisplayName: deref(strField(data, "displayName", "accountName")),
			Role:        deref(strField(data, "role")),
		})
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTable, table)
}

// Delete dispatches a legacy delete; folder and category deletes cascade the
// same way their REST counterparts do.
func (s *CompatService) Delete(ctx context.Context, table string, id int) error {
	if !allowedTables[table] {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}

	switch table {
	case "updates":
		return s.updates.Delete(ctx, id)
	case "categories":
		return s.categories.Delete(ctx, id)
	case "info_cards":
		return s.info.Delete(ctx, id)
	case "folders":
		return s.library.DeleteFolder(ctx, id)
	case "learning_items":
		return s.library.DeleteItem(ctx, id)
	case "users":
		return s.users.Delete(ctx, id)
	}
	return fmt.Errorf("%w: %q", ErrInvalidTable, table)
}

// strField returns a pointer to the string value of the first key present,
// nil when none is or the value is not a string (presence drives the
// partial-update SET clause). Trailing keys carry the camelCase names the
// legacy client still sends (topic, accountName, displayType).
func strField(m map[string]any, keys ...string) *string {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil
		}
		return &s
	}
	return nil
}

// intField returns the numeric value of the first key present; JSON numbers
// arrive as float64.
func intField(m map[string]any, keys ...string) (int, bool) {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n), true
		case int:
			return n, true
		}
		return 0, false
	}
	return 0, false
}

// hasField reports whether any key is present, a null value included. Used
// for the FK columns where explicit null means "detach".
func hasField(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
