// Package auth issues and verifies the session tokens carried in the
// session cookie.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"quizarena/internal/apperr"
	"quizarena/internal/models"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "quizarena_session"

// Claims are the token claims for an authenticated user.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies session tokens with a shared HS256
// secret.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttlHours int) (*JWTService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &JWTService{secret: []byte(secret), ttl: time.Duration(ttlHours) * time.Hour}, nil
}

// TTL is the configured token lifetime.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for the user.
func (s *JWTService) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses the token and returns its claims. Any parse, signature
// or expiry failure comes back as Unauthenticated.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("session invalide: %w", apperr.ErrUnauthenticated)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("session invalide: %w", apperr.ErrUnauthenticated)
	}
	return claims, nil
}
