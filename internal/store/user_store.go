package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"quizarena/internal/apperr"
	"quizarena/internal/models"
)

// UserStore holds user accounts in process memory, keyed by
// auto-incremented id. All state dies with the process.
type UserStore struct {
	mu     sync.RWMutex
	users  map[int]models.User
	nextID int
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int]models.User), nextID: 1}
}

func (s *UserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	for _, existing := range s.users {
		if strings.ToLower(existing.Email) == email {
			return models.User{}, apperr.Validationf("cet email est déjà utilisé")
		}
		if existing.Username == user.Username {
			return models.User{}, apperr.Validationf("ce nom d'utilisateur est déjà pris")
		}
	}

	user.ID = s.nextID
	s.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Badges == nil {
		user.Badges = []string{}
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *UserStore) ByID(ctx context.Context, id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, apperr.NotFoundf("utilisateur %d", id)
	}
	return user, nil
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, user := range s.users {
		if strings.ToLower(user.Email) == email {
			return user, nil
		}
	}
	return models.User{}, apperr.NotFoundf("utilisateur %q", email)
}

func (s *UserStore) ByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, apperr.NotFoundf("utilisateur %q", username)
}

func (s *UserStore) Update(ctx context.Context, id int, update models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, apperr.NotFoundf("utilisateur %d", id)
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Points != nil {
		user.Points = *update.Points
	}
	if update.Streak != nil {
		user.Streak = *update.Streak
	}
	if update.Badges != nil {
		user.Badges = *update.Badges
	}
	s.users[id] = user
	return user, nil
}

// AddPoints increments the points accumulator under the store lock so
// concurrent submissions cannot lose an award.
func (s *UserStore) AddPoints(ctx context.Context, id, delta int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, apperr.NotFoundf("utilisateur %d", id)
	}
	user.Points += delta
	s.users[id] = user
	return user, nil
}

// All returns users ordered by ascending id, i.e. account creation order.
func (s *UserStore) All(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
