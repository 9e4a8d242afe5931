package service

import (
	"context"
	"sort"

	"quizarena/internal/store"
)

// LeaderboardService derives rankings on demand. Nothing is cached or
// persisted: each call walks the store, which is in-memory and bounded.
type LeaderboardService struct {
	Users    *store.UserStore
	Sessions *store.SessionStore
	Stats    *store.StatsStore
}

func NewLeaderboardService(users *store.UserStore, sessions *store.SessionStore, stats *store.StatsStore) *LeaderboardService {
	return &LeaderboardService{Users: users, Sessions: sessions, Stats: stats}
}

// GlobalEntry ranks a user by the sum of their session scores. This is
// a separate metric from the points accumulator on the user record.
type GlobalEntry struct {
	Rank       int    `json:"rank"`
	UserID     int    `json:"userId"`
	Username   string `json:"username"`
	TotalScore int    `json:"totalScore"`
	Quizzes    int    `json:"quizzes"`
}

// Global ranks every user by summed session score, descending. Ties
// keep ascending user id order (the stable sort runs over users in
// account creation order).
func (s *LeaderboardService) Global(ctx context.Context) ([]GlobalEntry, error) {
	users, err := s.Users.All(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.Sessions.All(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[int]int, len(users))
	counts := make(map[int]int, len(users))
	for _, session := range sessions {
		totals[session.UserID] += session.Score
		counts[session.UserID]++
	}

	entries := make([]GlobalEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, GlobalEntry{
			UserID:     user.ID,
			Username:   user.Username,
			TotalScore: totals[user.ID],
			Quizzes:    counts[user.ID],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].TotalScore > entries[j].TotalScore })
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// ThemeEntry ranks a user on one theme by their best session score.
type ThemeEntry struct {
	Rank      int    `json:"rank"`
	UserID    int    `json:"userId"`
	Username  string `json:"username"`
	BestScore int    `json:"bestScore"`
}

// Theme ranks users by bestScore for one theme. Users with no session
// for the theme have no aggregate row and are simply absent, never
// zero-scored.
func (s *LeaderboardService) Theme(ctx context.Context, themeID int) ([]ThemeEntry, error) {
	rows, err := s.Stats.ByTheme(ctx, themeID)
	if err != nil {
		return nil, err
	}

	entries := make([]ThemeEntry, 0, len(rows))
	for _, row := range rows {
		entry := ThemeEntry{UserID: row.UserID, BestScore: row.BestScore}
		if user, err := s.Users.ByID(ctx, row.UserID); err == nil {
			entry.Username = user.Username
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].BestScore > entries[j].BestScore })
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
