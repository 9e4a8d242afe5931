package auth

import (
	"errors"
	"testing"
	"time"

	"quizarena/internal/apperr"
	"quizarena/internal/models"
)

func TestIssueAndVerify(t *testing.T) {
	svc, err := NewJWTService("test-secret", 1)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	user := models.User{ID: 7, Username: "marie", Role: models.RoleAdmin}
	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "marie" || claims.Role != models.RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Error("missing jti")
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc, err := NewJWTService("test-secret", 1)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	other, err := NewJWTService("other-secret", 1)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	forged, err := other.Issue(models.User{ID: 1, Username: "x", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"wrong secret", forged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Verify(tc.token); !errors.Is(err, apperr.ErrUnauthenticated) {
				t.Errorf("got %v, want unauthenticated", err)
			}
		})
	}
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	if _, err := NewJWTService("", 1); err == nil {
		t.Error("empty secret accepted")
	}
}

func TestTTLDefault(t *testing.T) {
	svc, err := NewJWTService("s", 0)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if svc.TTL() != 24*time.Hour {
		t.Errorf("ttl = %v, want 24h", svc.TTL())
	}
}
