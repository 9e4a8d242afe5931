package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"quizarena/internal/apperr"
	"quizarena/internal/models"
	"quizarena/internal/store"
)

// UserService owns account creation and credential checks. Raw
// passwords only ever exist as function arguments here.
type UserService struct {
	Users      *store.UserStore
	BcryptCost int
}

func NewUserService(users *store.UserStore, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{Users: users, BcryptCost: bcryptCost}
}

type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return models.User{}, apperr.Validationf("nom d'utilisateur, email et mot de passe sont requis")
	}
	if !strings.Contains(input.Email, "@") {
		return models.User{}, apperr.Validationf("email invalide")
	}
	if len(input.Password) < 6 {
		return models.User{}, apperr.Validationf("le mot de passe doit contenir au moins 6 caractères")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.BcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.Users.Create(ctx, models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         models.RoleUser,
	})
}

// Authenticate verifies the email/password pair. Both unknown email and
// wrong password come back as the same Unauthenticated error so the
// response does not leak which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return models.User{}, fmt.Errorf("email ou mot de passe incorrect: %w", apperr.ErrUnauthenticated)
		}
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("email ou mot de passe incorrect: %w", apperr.ErrUnauthenticated)
	}
	return user, nil
}

func (s *UserService) Profile(ctx context.Context, id int) (models.User, error) {
	return s.Users.ByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.Users.All(ctx)
}

// EnsureAdmin creates the built-in admin account if it does not exist
// yet. Called once at startup.
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) (models.User, error) {
	if existing, err := s.Users.ByEmail(ctx, email); err == nil {
		return existing, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash admin password: %w", err)
	}
	return s.Users.Create(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
}
