package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"
)

func newLegacyRouter(compat *mockCompat, auth *mockAuth) *gin.Engine {
	s := &service.Service{
		Authorization: auth,
		Updates:       &mockUpdates{list: []models.Update{{ID: 1, Topic: "t"}}},
		Categories:    &mockCategories{list: []models.Category{{ID: 1, Name: "Links"}}},
		Info:          &mockInfo{},
		Library:       &mockLibrary{},
		Users:         &mockUsers{list: []models.User{{ID: 1, Username: "admin"}}},
		Compat:        compat,
	}
	return newTestRouter(s)
}

func TestLegacyDispatch(t *testing.T) {
	t.Run("save insert returns the new id", func(t *testing.T) {
		compat := &mockCompat{saveID: 7}
		r := newLegacyRouter(compat, adminAuth())

		w := doJSON(r, http.MethodPost, "/api", `{"action":"save","table":"updates","data":{"topic":"x","message":"y"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if m["success"] != true || int(m["id"].(float64)) != 7 {
			t.Fatalf("unexpected body: %v", m)
		}
		if compat.lastTable != "updates" || compat.lastData["topic"] != "x" {
			t.Fatalf("payload not forwarded: table=%q data=%v", compat.lastTable, compat.lastData)
		}
	})

	t.Run("save update returns plain success", func(t *testing.T) {
		compat := &mockCompat{saveID: 0}
		r := newLegacyRouter(compat, adminAuth())

		w := doJSON(r, http.MethodPost, "/api", `{"action":"save","table":"updates","data":{"id":1,"topic":"x"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if m["success"] != true {
			t.Fatalf("unexpected body: %v", m)
		}
		if _, hasID := m["id"]; hasID {
			t.Fatalf("update must not return an id: %v", m)
		}
	})

	t.Run("unknown table is a 400", func(t *testing.T) {
		compat := &mockCompat{saveErr: service.ErrInvalidTable}
		r := newLegacyRouter(compat, adminAuth())

		w := doJSON(r, http.MethodPost, "/api", `{"action":"save","table":"sqlite_master","data":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete needs an id", func(t *testing.T) {
		compat := &mockCompat{}
		r := newLegacyRouter(compat, adminAuth())

		w := doJSON(r, http.MethodPost, "/api", `{"action":"delete","table":"updates"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing id, got %d", w.Code)
		}

		w = doJSON(r, http.MethodPost, "/api", `{"action":"delete","table":"updates","id":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		if compat.lastDeleteID != 3 {
			t.Fatalf("delete id not forwarded: %d", compat.lastDeleteID)
		}
	})

	t.Run("unknown action is a 400", func(t *testing.T) {
		r := newLegacyRouter(&mockCompat{}, adminAuth())

		w := doJSON(r, http.MethodPost, "/api", `{"action":"truncate","table":"updates"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGetData_UsersOnlyForAdmins(t *testing.T) {
	t.Run("admin sees users", func(t *testing.T) {
		r := newLegacyRouter(&mockCompat{}, adminAuth())

		w := doJSON(r, http.MethodGet, "/api/getData", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		for _, key := range []string{"updates", "categories", "infoCards", "learningItems", "folders", "users"} {
			if _, ok := m[key]; !ok {
				t.Fatalf("missing %q in snapshot: %v", key, m)
			}
		}
		users, _ := m["users"].([]any)
		if len(users) != 1 {
			t.Fatalf("expected 1 user for admin, got %v", m["users"])
		}
	})

	t.Run("member gets an empty user list", func(t *testing.T) {
		r := newLegacyRouter(&mockCompat{}, memberAuth())

		w := doJSON(r, http.MethodGet, "/api/getData", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		users, _ := m["users"].([]any)
		if len(users) != 0 {
			t.Fatalf("members must not see accounts, got %v", m["users"])
		}
	})
}
