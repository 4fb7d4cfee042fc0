package navigator

import "github.com/paingnyinyikhant1810/noc-members/internal/models"

// Navigator is the explicit navigation state of the file manager: the folder
// snapshot, the currently open folder, and the materialized breadcrumb path.
// All operations are pure in-memory transformations; re-listing children after
// a move is the caller's concern.
type Navigator struct {
	idx     Index
	folders []models.Folder
	items   []models.LearningItem
	current *int
	path    []models.Folder
}

// New builds a navigator positioned at the library root.
func New(folders []models.Folder, items []models.LearningItem) *Navigator {
	return &Navigator{
		idx:     BuildIndex(folders),
		folders: folders,
		items:   items,
	}
}

// Open descends into the folder with the given id and rebuilds the breadcrumb
// path from the root. Opening an unknown folder or a folder on a cyclic chain
// leaves the navigator where it was.
func (n *Navigator) Open(id int) error {
	path, err := Path(n.idx, &id)
	if err != nil {
		return err
	}
	n.current = &id
	n.path = path
	return nil
}

// GoTo truncates the breadcrumb to index i (inclusive) and re-sets the current
// folder to that entry. Idempotent: repeating the same index is a no-op.
func (n *Navigator) GoTo(i int) {
	if i < 0 || i >= len(n.path) {
		return
	}
	n.path = n.path[:i+1]
	id := n.path[i].ID
	n.current = &id
}

// Root resets navigation to the library root.
func (n *Navigator) Root() {
	n.current = nil
	n.path = nil
}

// Current returns the id of the open folder, or nil at the root.
func (n *Navigator) Current() *int { return n.current }

// Breadcrumb returns the materialized root-to-current path.
func (n *Navigator) Breadcrumb() []models.Folder { return n.path }

// Children lists the entries of the current folder: sub-folders sorted by
// name, then the folder's learning items.
func (n *Navigator) Children() []models.Entry {
	var out []models.Entry
	for _, f := range ChildFolders(n.folders, n.current) {
		out = append(out, models.FolderEntry(f))
	}
	for _, it := range n.items {
		if sameParent(it.FolderID, n.current) {
			out = append(out, models.ItemEntry(it))
		}
	}
	return out
}
