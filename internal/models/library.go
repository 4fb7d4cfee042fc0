package models

// Learning item types.
const (
	ItemTypePDF  = "pdf"  // external link, opened in a new tab
	ItemTypeText = "text" // inline text content
)

// EntryTypeFolder marks folder rows in the unified file-manager listing.
const EntryTypeFolder = "folder"

// Folder is a node in the learning library tree. ParentID nil means root.
// Acyclicity is enforced by move validation, never assumed on read.
type Folder struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id"`
}

// LearningItem is a leaf of the library tree: a PDF link or a text note.
type LearningItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"` // pdf | text
	Link     string `json:"link,omitempty"`
	Content  string `json:"content,omitempty"`
	FolderID *int   `json:"folder_id"`
	Marked   bool   `json:"marked"`
}

// Entry is one row of the unified file-manager listing: either a sub-folder
// (Type == "folder") or a learning item of the current folder.
type Entry struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"` // folder | pdf | text
	Link    string `json:"link,omitempty"`
	Content string `json:"content,omitempty"`
	Marked  bool   `json:"marked,omitempty"`
}

// FolderEntry converts a folder row to a listing entry.
func FolderEntry(f Folder) Entry {
	return Entry{ID: f.ID, Name: f.Name, Type: EntryTypeFolder}
}

// ItemEntry converts a learning item row to a listing entry.
func ItemEntry(it LearningItem) Entry {
	return Entry{ID: it.ID, Name: it.Name, Type: it.Type, Link: it.Link, Content: it.Content, Marked: it.Marked}
}
