package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"
)

func newFilesRouter(lib *mockLibrary) *gin.Engine {
	s := &service.Service{Authorization: adminAuth(), Library: lib}
	return newTestRouter(s)
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)
	return w
}

func TestListFiles(t *testing.T) {
	lib := &mockLibrary{entries: []models.Entry{
		{ID: 2, Name: "Ops", Type: models.EntryTypeFolder},
		{ID: 1, Name: "welcome.pdf", Type: models.ItemTypePDF},
	}}
	r := newFilesRouter(lib)

	// root listing
	w := doJSON(r, http.MethodGet, "/api/files", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if lib.lastFolderID != nil {
		t.Fatalf("expected nil folder for root listing, got %v", *lib.lastFolderID)
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	items, _ := m["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %v", m)
	}

	// folder listing forwards the id
	w = doJSON(r, http.MethodGet, "/api/files?folder=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if lib.lastFolderID == nil || *lib.lastFolderID != 2 {
		t.Fatalf("folder id not forwarded: %v", lib.lastFolderID)
	}

	// garbage folder param rejected before the service runs
	w = doJSON(r, http.MethodGet, "/api/files?folder=zero", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateFile(t *testing.T) {
	lib := &mockLibrary{createID: 9}
	r := newFilesRouter(lib)

	w := doJSON(r, http.MethodPost, "/api/files", `{"name":"guide.pdf","type":"pdf","link":"https://cdn/g.pdf","folder_id":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	in := lib.lastEntryInput
	if in.Name != "guide.pdf" || in.Type != models.ItemTypePDF || in.FolderID == nil || *in.FolderID != 3 {
		t.Fatalf("unexpected input: %+v", in)
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["success"] != true || int(m["id"].(float64)) != 9 {
		t.Fatalf("unexpected body: %v", m)
	}

	// folders can arrive with parent_id instead of folder_id
	w = doJSON(r, http.MethodPost, "/api/files", `{"name":"New","type":"folder","parent_id":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	in = lib.lastEntryInput
	if in.Type != models.EntryTypeFolder || in.FolderID == nil || *in.FolderID != 1 {
		t.Fatalf("unexpected folder input: %+v", in)
	}
}

func TestUpdateFile_FieldPresence(t *testing.T) {
	t.Run("rename leaves folder untouched", func(t *testing.T) {
		lib := &mockLibrary{}
		r := newFilesRouter(lib)

		w := doJSON(r, http.MethodPut, "/api/files/4", `{"name":"renamed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		p := lib.lastItemPatch
		if p.Name == nil || *p.Name != "renamed" {
			t.Fatalf("expected name patch, got %+v", p)
		}
		if p.FolderIDSet || p.Link != nil || p.Content != nil {
			t.Fatalf("absent fields leaked into patch: %+v", p)
		}
	})

	t.Run("explicit null folder moves to root", func(t *testing.T) {
		lib := &mockLibrary{}
		r := newFilesRouter(lib)

		w := doJSON(r, http.MethodPut, "/api/files/4", `{"folder_id":null}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		p := lib.lastItemPatch
		if !p.FolderIDSet || p.FolderID != nil {
			t.Fatalf("expected move-to-root patch, got %+v", p)
		}
	})

	t.Run("folder move accepts the move dialog's folder_id key", func(t *testing.T) {
		lib := &mockLibrary{}
		r := newFilesRouter(lib)

		w := doJSON(r, http.MethodPut, "/api/files/4?type=folder", `{"folder_id":7}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		p := lib.lastFolderPatch
		if !p.ParentIDSet || p.ParentID == nil || *p.ParentID != 7 {
			t.Fatalf("expected reparent patch, got %+v", p)
		}
		if lib.folderPatchID != 4 {
			t.Fatalf("wrong folder id: %d", lib.folderPatchID)
		}
	})

	t.Run("cycle from the service surfaces as 400", func(t *testing.T) {
		lib := &mockLibrary{err: service.ErrCycle}
		r := newFilesRouter(lib)

		w := doJSON(r, http.MethodPut, "/api/files/4?type=folder", `{"parent_id":5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for cycle, got %d", w.Code)
		}
	})
}

func TestDeleteFile(t *testing.T) {
	t.Run("item delete", func(t *testing.T) {
		lib := &mockLibrary{}
		r := newFilesRouter(lib)

		w := doJSON(r, http.MethodDelete, "/api/files/5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		if len(lib.deletedItems) != 1 || lib.deletedItems[0] != 5 {
			t.Fatalf("expected item delete, got %v", lib.deletedItems)
		}
		if len(lib.deletedFolders) != 0 {
			t.Fatalf("folder delete must not run: %v", lib.deletedFolders)
		}
	})

	t.Run("explicit folder delete", func(t *testing.T) {
		lib := &mockLibrary{}
		r := newFilesRouter(lib)

		w := doJSON(r, http.MethodDelete, "/api/files/5?type=folder", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		if len(lib.deletedFolders) != 1 || lib.deletedFolders[0] != 5 {
			t.Fatalf("expected folder delete, got %v", lib.deletedFolders)
		}
	})
}

func TestMarkFile(t *testing.T) {
	lib := &mockLibrary{marked: true}
	r := newFilesRouter(lib)

	w := doJSON(r, http.MethodPost, "/api/files/6/mark", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["success"] != true || m["marked"] != true {
		t.Fatalf("unexpected body: %v", m)
	}
	if len(lib.toggled) != 1 || lib.toggled[0] != 6 {
		t.Fatalf("toggle not forwarded: %v", lib.toggled)
	}
}

func TestGetFilePath(t *testing.T) {
	lib := &mockLibrary{path: []models.Folder{
		{ID: 1, Name: "Docs"},
		{ID: 2, Name: "Ops"},
	}}
	r := newFilesRouter(lib)

	w := doJSON(r, http.MethodGet, "/api/files/2/path", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	path, _ := m["path"].([]any)
	if len(path) != 2 {
		t.Fatalf("expected 2 breadcrumb segments, got %v", m)
	}

	lib.err = service.ErrNotFound
	w = doJSON(r, http.MethodGet, "/api/files/99/path", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
