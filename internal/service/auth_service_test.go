package service

import (
	"context"
	"errors"
	"testing"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
)

func newTestAuth(t *testing.T, users *fakeUserRepo) *AuthService {
	t.Helper()
	return NewAuthService(users, AuthConfig{SigningKey: "test-signing-key", TokenTTL: 5})
}

func seededUser(t *testing.T, username, password, role string) models.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return models.User{ID: 1, Username: username, PasswordHash: hash, DisplayName: "Test", Role: role}
}

func TestAuthService_LoginAndParseToken(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{seededUser(t, "alice", "s3cret", models.RoleAdmin)}}
	auth := newTestAuth(t, repo)

	u, token, err := auth.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	if u == nil || u.Username != "alice" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if claims.UserID != 1 || claims.Role != models.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{seededUser(t, "alice", "s3cret", models.RoleUser)}}
	auth := newTestAuth(t, repo)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice", "nope"},
		{"unknown user", "mallory", "s3cret"},
	}
	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := auth.Login(context.Background(), tt.username, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{seededUser(t, "alice", "s3cret", models.RoleUser)}}
	auth := newTestAuth(t, repo)

	if _, err := auth.ParseToken("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}

	// a token signed with a different key must be rejected
	other := NewAuthService(repo, AuthConfig{SigningKey: "another-key"})
	_, token, err := other.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	if _, err := auth.ParseToken(token); err == nil {
		t.Fatalf("expected error for mis-signed token")
	}
}

func TestAuthService_VerifyBasic(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{seededUser(t, "alice", "s3cret", models.RoleUser)}}
	auth := newTestAuth(t, repo)

	u, err := auth.VerifyBasic(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 1 {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := auth.VerifyBasic(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
