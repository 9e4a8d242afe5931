package service

import (
	"context"
	"math"

	"quizarena/internal/models"
	"quizarena/internal/store"
)

// PointsPerCorrectAnswer is the award multiplier applied to a session's
// raw score.
const PointsPerCorrectAnswer = 10

// recentSessionsLimit caps the recent-session list in the stats view.
const recentSessionsLimit = 5

// StatsService folds completed sessions into the per-(user,theme)
// aggregates and awards points. Replaying the same session twice
// double-counts: there is no dedup key on session id.
type StatsService struct {
	Stats    *store.StatsStore
	Sessions *store.SessionStore
	Users    *store.UserStore
}

func NewStatsService(stats *store.StatsStore, sessions *store.SessionStore, users *store.UserStore) *StatsService {
	return &StatsService{Stats: stats, Sessions: sessions, Users: users}
}

// Record folds one completed session into the pair's aggregate row and
// credits score×10 points to the user. The aggregate update runs under
// the stats store lock, so two concurrent submissions for the same pair
// cannot interleave their read-modify-write.
//
// The running average is recomputed from the previous ROUNDED average,
// not from raw history, using round-half-away-from-zero (math.Round).
// This matches the historical behavior and accumulates rounding drift.
func (s *StatsService) Record(ctx context.Context, session models.QuizSession) (models.UserStats, int, error) {
	row, err := s.Stats.Apply(ctx, session.UserID, session.ThemeID, func(stats *models.UserStats, isNew bool) {
		if isNew {
			stats.TotalQuizzes = 1
			stats.BestScore = session.Score
			stats.AverageScore = session.Score
			stats.TotalTimeSpent = session.TimeSpent
			return
		}
		newTotal := stats.TotalQuizzes + 1
		stats.AverageScore = int(math.Round(
			(float64(stats.AverageScore*stats.TotalQuizzes) + float64(session.Score)) / float64(newTotal)))
		if session.Score > stats.BestScore {
			stats.BestScore = session.Score
		}
		stats.TotalQuizzes = newTotal
		stats.TotalTimeSpent += session.TimeSpent
	})
	if err != nil {
		return models.UserStats{}, 0, err
	}

	pointsEarned := session.Score * PointsPerCorrectAnswer
	if pointsEarned > 0 {
		if _, err := s.Users.AddPoints(ctx, session.UserID, pointsEarned); err != nil {
			return models.UserStats{}, 0, err
		}
	}
	return row, pointsEarned, nil
}

// Overview is the payload backing GET /api/users/me/stats.
type Overview struct {
	Stats          []models.UserStats   `json:"stats"`
	TotalQuizzes   int                  `json:"totalQuizzes"`
	RecentSessions []models.QuizSession `json:"recentSessions"`
}

func (s *StatsService) UserOverview(ctx context.Context, userID int) (Overview, error) {
	rows, err := s.Stats.ByUser(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	total := 0
	for _, row := range rows {
		total += row.TotalQuizzes
	}
	recent, err := s.Sessions.RecentByUser(ctx, userID, recentSessionsLimit)
	if err != nil {
		return Overview{}, err
	}
	return Overview{Stats: rows, TotalQuizzes: total, RecentSessions: recent}, nil
}
