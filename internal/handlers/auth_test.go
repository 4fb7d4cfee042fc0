package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"
)

func TestLoginHandler_JSONCredentials(t *testing.T) {
	auth := &mockAuth{
		loginUser:  &models.User{ID: 1, Username: "alice", DisplayName: "Alice", Role: models.RoleAdmin},
		loginToken: "tok123",
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"username":"alice","password":"pw"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["success"] != true || m["token"] != "tok123" {
		t.Fatalf("unexpected body: %v", m)
	}
	user, _ := m["user"].(map[string]any)
	if user["username"] != "alice" || user["displayName"] != "Alice" {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in login response")
	}
	if auth.lastLoginUsername != "alice" || auth.lastLoginPassword != "pw" {
		t.Fatalf("credentials not forwarded: %q/%q", auth.lastLoginUsername, auth.lastLoginPassword)
	}
}

func TestLoginHandler_BasicHeader(t *testing.T) {
	auth := &mockAuth{
		loginUser:  &models.User{ID: 2, Username: "bob", Role: models.RoleUser},
		loginToken: "tok456",
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("bob:pw2")))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastLoginUsername != "bob" || auth.lastLoginPassword != "pw2" {
		t.Fatalf("Basic credentials not forwarded: %q/%q", auth.lastLoginUsername, auth.lastLoginPassword)
	}
}

func TestLoginHandler_Failure(t *testing.T) {
	auth := &mockAuth{loginErr: service.ErrInvalidCredentials}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	tests := []struct {
		name string
		body string
	}{
		{"wrong credentials", `{"username":"alice","password":"bad"}`},
		{"empty body", ``},
		{"malformed body", `{"username":1}`},
	}
	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			// always the same shape, no hint which part was wrong
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			var m map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &m)
			if m["success"] != false {
				t.Fatalf("unexpected body: %v", m)
			}
		})
	}
}
