// Package navigator walks the folder tree of the learning library: ancestor
// paths for breadcrumbs, move validation, and an explicit navigation state
// store replacing ad-hoc page-level globals.
//
// The store does not enforce acyclicity at the schema level, so every walk here
// carries a visited set and terminates even on corrupted data.
package navigator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
)

var (
	// ErrCycle is returned when a parent walk revisits a folder.
	ErrCycle = errors.New("folder hierarchy contains a cycle")
	// ErrUnknownFolder is returned when an id is not present in the snapshot.
	ErrUnknownFolder = errors.New("unknown folder")
)

// Index maps folder id to folder row for O(1) parent lookups.
type Index map[int]models.Folder

// BuildIndex converts a folder slice into an Index.
func BuildIndex(folders []models.Folder) Index {
	idx := make(Index, len(folders))
	for _, f := range folders {
		idx[f.ID] = f
	}
	return idx
}

// Path reconstructs the ancestor chain of id in root-to-leaf order: the first
// element has a nil parent, the last element is the requested folder. A nil or
// zero id yields an empty path (root of the library).
func Path(idx Index, id *int) ([]models.Folder, error) {
	if id == nil || *id == 0 {
		return nil, nil
	}

	var path []models.Folder
	visited := make(map[int]bool)
	cur := *id
	for {
		if visited[cur] {
			return nil, fmt.Errorf("%w: folder %d revisited", ErrCycle, cur)
		}
		visited[cur] = true

		f, ok := idx[cur]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownFolder, cur)
		}
		path = append([]models.Folder{f}, path...)
		if f.ParentID == nil {
			return path, nil
		}
		cur = *f.ParentID
	}
}

// WouldCycle reports whether reparenting folderID under newParentID would close
// a cycle, i.e. whether newParentID is folderID itself or one of its
// descendants. The upward walk is bounded by a visited set, so it terminates
// even if the snapshot already contains a cycle (in which case the move is
// rejected as unsafe).
func WouldCycle(idx Index, folderID int, newParentID *int) bool {
	if newParentID == nil {
		return false // moving to root is always safe
	}

	visited := make(map[int]bool)
	cur := *newParentID
	for {
		if cur == folderID {
			return true
		}
		if visited[cur] {
			return true // pre-existing cycle upstream; refuse to extend it
		}
		visited[cur] = true

		f, ok := idx[cur]
		if !ok || f.ParentID == nil {
			return false
		}
		cur = *f.ParentID
	}
}

// Subtree returns folderID plus the ids of all its descendants, collected
// breadth-first with a visited set. Used for full-subtree folder deletion.
func Subtree(folders []models.Folder, folderID int) []int {
	children := make(map[int][]int, len(folders))
	for _, f := range folders {
		if f.ParentID != nil {
			children[*f.ParentID] = append(children[*f.ParentID], f.ID)
		}
	}

	visited := map[int]bool{folderID: true}
	order := []int{folderID}
	for i := 0; i < len(order); i++ {
		for _, child := range children[order[i]] {
			if visited[child] {
				continue
			}
			visited[child] = true
			order = append(order, child)
		}
	}
	return order
}

// ChildFolders lists the immediate sub-folders of parentID (nil = root),
// sorted by name.
func ChildFolders(folders []models.Folder, parentID *int) []models.Folder {
	var out []models.Folder
	for _, f := range folders {
		if sameParent(f.ParentID, parentID) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sameParent(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
