package store

import (
	"context"
	"sort"
	"sync"

	"quizarena/internal/apperr"
	"quizarena/internal/models"
)

type statsKey struct {
	userID  int
	themeID int
}

// StatsStore holds the per-(user,theme) aggregates. Apply is the only
// mutator and runs the whole read-modify-write under the store lock, so
// parallel submissions for the same pair cannot interleave.
type StatsStore struct {
	mu    sync.RWMutex
	stats map[statsKey]models.UserStats
}

func NewStatsStore() *StatsStore {
	return &StatsStore{stats: make(map[statsKey]models.UserStats)}
}

// Apply fetches (or lazily creates) the pair's row, hands it to update
// together with a flag telling whether the row is new, and stores the
// result. The returned value is the post-update row.
func (s *StatsStore) Apply(ctx context.Context, userID, themeID int, update func(stats *models.UserStats, isNew bool)) (models.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := statsKey{userID: userID, themeID: themeID}
	row, ok := s.stats[key]
	if !ok {
		row = models.UserStats{UserID: userID, ThemeID: themeID}
	}
	update(&row, !ok)
	row.UserID = userID
	row.ThemeID = themeID
	s.stats[key] = row
	return row, nil
}

func (s *StatsStore) Get(ctx context.Context, userID, themeID int) (models.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.stats[statsKey{userID: userID, themeID: themeID}]
	if !ok {
		return models.UserStats{}, apperr.NotFoundf("statistiques utilisateur %d thème %d", userID, themeID)
	}
	return row, nil
}

// ByUser returns all aggregate rows for a user, ordered by theme id.
func (s *StatsStore) ByUser(ctx context.Context, userID int) ([]models.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.UserStats, 0)
	for key, row := range s.stats {
		if key.userID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ThemeID < rows[j].ThemeID })
	return rows, nil
}

// ByTheme returns all aggregate rows for a theme, ordered by user id.
func (s *StatsStore) ByTheme(ctx context.Context, themeID int) ([]models.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.UserStats, 0)
	for key, row := range s.stats {
		if key.themeID == themeID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UserID < rows[j].UserID })
	return rows, nil
}
