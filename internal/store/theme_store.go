package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"quizarena/internal/apperr"
	"quizarena/internal/models"
)

// ThemeStore holds quiz categories. Themes are never removed from the
// map: deletion deactivates, so sessions keep a valid theme reference.
type ThemeStore struct {
	mu     sync.RWMutex
	themes map[int]models.Theme
	nextID int
}

func NewThemeStore() *ThemeStore {
	return &ThemeStore{themes: make(map[int]models.Theme), nextID: 1}
}

func (s *ThemeStore) Create(ctx context.Context, theme models.Theme) (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(theme.Name)
	for _, existing := range s.themes {
		if strings.EqualFold(existing.Name, name) {
			return models.Theme{}, apperr.Validationf("le thème %q existe déjà", name)
		}
	}

	theme.ID = s.nextID
	s.nextID++
	theme.Name = name
	s.themes[theme.ID] = theme
	return theme, nil
}

func (s *ThemeStore) ByID(ctx context.Context, id int) (models.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	theme, ok := s.themes[id]
	if !ok {
		return models.Theme{}, apperr.NotFoundf("thème %d", id)
	}
	return theme, nil
}

// All returns every theme, active or not, ordered by id.
func (s *ThemeStore) All(ctx context.Context) ([]models.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	themes := make([]models.Theme, 0, len(s.themes))
	for _, theme := range s.themes {
		themes = append(themes, theme)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].ID < themes[j].ID })
	return themes, nil
}

// Active returns only themes visible to players, ordered by id.
func (s *ThemeStore) Active(ctx context.Context) ([]models.Theme, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	active := all[:0]
	for _, theme := range all {
		if theme.IsActive {
			active = append(active, theme)
		}
	}
	return active, nil
}

func (s *ThemeStore) Update(ctx context.Context, id int, update models.ThemeUpdate) (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme, ok := s.themes[id]
	if !ok {
		return models.Theme{}, apperr.NotFoundf("thème %d", id)
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		for otherID, other := range s.themes {
			if otherID != id && strings.EqualFold(other.Name, name) {
				return models.Theme{}, apperr.Validationf("le thème %q existe déjà", name)
			}
		}
		theme.Name = name
	}
	if update.Description != nil {
		theme.Description = *update.Description
	}
	if update.Icon != nil {
		theme.Icon = *update.Icon
	}
	if update.Color != nil {
		theme.Color = *update.Color
	}
	if update.IsActive != nil {
		theme.IsActive = *update.IsActive
	}
	s.themes[id] = theme
	return theme, nil
}

// Deactivate soft-deletes a theme.
func (s *ThemeStore) Deactivate(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme, ok := s.themes[id]
	if !ok {
		return apperr.NotFoundf("thème %d", id)
	}
	theme.IsActive = false
	s.themes[id] = theme
	return nil
}
