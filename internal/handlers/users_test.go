package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"
)

func newUsersRouter(users *mockUsers) *gin.Engine {
	s := &service.Service{Authorization: adminAuth(), Users: users}
	return newTestRouter(s)
}

func TestCreateUser(t *testing.T) {
	users := &mockUsers{createID: 4}
	r := newUsersRouter(users)

	w := doJSON(r, http.MethodPost, "/api/users", `{"username":"bob","password":"pw","displayName":"Bob","role":"user"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	in := users.lastInput
	if in.Username != "bob" || in.Password != "pw" || in.DisplayName != "Bob" || in.Role != models.RoleUser {
		t.Fatalf("unexpected input: %+v", in)
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if int(m["id"].(float64)) != 4 {
		t.Fatalf("unexpected body: %v", m)
	}
}

func TestCreateUser_DuplicateIs400(t *testing.T) {
	users := &mockUsers{err: service.ErrDuplicateUsername}
	r := newUsersRouter(users)

	w := doJSON(r, http.MethodPost, "/api/users", `{"username":"bob","password":"pw"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate, got %d", w.Code)
	}
}

func TestUpdateUser_OmitsAbsentFields(t *testing.T) {
	users := &mockUsers{}
	r := newUsersRouter(users)

	w := doJSON(r, http.MethodPut, "/api/users/4", `{"displayName":"Bobby"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	p := users.lastPatch
	if p.DisplayName == nil || *p.DisplayName != "Bobby" {
		t.Fatalf("expected display name patch, got %+v", p)
	}
	if p.Username != nil || p.Password != nil || p.Role != nil {
		t.Fatalf("absent fields leaked into patch: %+v", p)
	}
}

func TestDeleteUser_ReservedAdminIs403(t *testing.T) {
	users := &mockUsers{err: service.ErrReservedAdmin}
	r := newUsersRouter(users)

	w := doJSON(r, http.MethodDelete, "/api/users/1", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for reserved admin, got %d", w.Code)
	}
}
