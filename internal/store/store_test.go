package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"quizarena/internal/apperr"
	"quizarena/internal/models"
)

func TestUserStoreAssignsSequentialIDs(t *testing.T) {
	users := NewUserStore()
	ctx := context.Background()

	for i, username := range []string{"a", "b", "c"} {
		user, err := users.Create(ctx, models.User{Username: username, Email: username + "@x.fr"})
		if err != nil {
			t.Fatalf("create %q: %v", username, err)
		}
		if user.ID != i+1 {
			t.Errorf("id = %d, want %d", user.ID, i+1)
		}
	}
}

func TestUserStoreRejectsDuplicates(t *testing.T) {
	users := NewUserStore()
	ctx := context.Background()

	if _, err := users.Create(ctx, models.User{Username: "a", Email: "a@x.fr"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := users.Create(ctx, models.User{Username: "b", Email: "A@X.FR"}); !apperr.IsValidation(err) {
		t.Errorf("case-insensitive duplicate email: got %v, want validation error", err)
	}
	if _, err := users.Create(ctx, models.User{Username: "a", Email: "b@x.fr"}); !apperr.IsValidation(err) {
		t.Errorf("duplicate username: got %v, want validation error", err)
	}
}

func TestUserStorePartialUpdate(t *testing.T) {
	users := NewUserStore()
	ctx := context.Background()

	user, err := users.Create(ctx, models.User{Username: "a", Email: "a@x.fr", FirstName: "Anne"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	points := 50
	updated, err := users.Update(ctx, user.ID, models.UserUpdate{Points: &points})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Points != 50 {
		t.Errorf("points = %d, want 50", updated.Points)
	}
	if updated.FirstName != "Anne" {
		t.Errorf("firstName overwritten: %q", updated.FirstName)
	}
}

func TestThemeStoreActiveFiltersInactive(t *testing.T) {
	themes := NewThemeStore()
	ctx := context.Background()

	active, err := themes.Create(ctx, models.Theme{Name: "Visible", IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	hidden, err := themes.Create(ctx, models.Theme{Name: "Caché", IsActive: false})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	visible, err := themes.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != active.ID {
		t.Errorf("active = %+v, want only %d", visible, active.ID)
	}

	// Deactivation hides but keeps the record resolvable.
	if err := themes.Deactivate(ctx, active.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := themes.ByID(ctx, active.ID); err != nil {
		t.Errorf("deactivated theme unresolvable: %v", err)
	}
	if _, err := themes.ByID(ctx, hidden.ID); err != nil {
		t.Errorf("inactive theme unresolvable: %v", err)
	}
}

func TestThemeStoreRejectsDuplicateName(t *testing.T) {
	themes := NewThemeStore()
	ctx := context.Background()

	if _, err := themes.Create(ctx, models.Theme{Name: "Histoire"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := themes.Create(ctx, models.Theme{Name: "histoire"}); !apperr.IsValidation(err) {
		t.Errorf("duplicate name: got %v, want validation error", err)
	}
}

func TestQuestionStoreValidatesOnCreateAndUpdate(t *testing.T) {
	questions := NewQuestionStore()
	ctx := context.Background()

	valid := models.Question{
		ThemeID:       1,
		Text:          "2+2 ?",
		Options:       []string{"3", "4", "5", "6"},
		CorrectAnswer: 1,
		Difficulty:    models.DifficultyEasy,
	}

	cases := []struct {
		name   string
		mutate func(q models.Question) models.Question
	}{
		{"three options", func(q models.Question) models.Question { q.Options = q.Options[:3]; return q }},
		{"correct index out of range", func(q models.Question) models.Question { q.CorrectAnswer = 4; return q }},
		{"negative correct index", func(q models.Question) models.Question { q.CorrectAnswer = -1; return q }},
		{"unknown difficulty", func(q models.Question) models.Question { q.Difficulty = "impossible"; return q }},
		{"empty text", func(q models.Question) models.Question { q.Text = "  "; return q }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := questions.Create(ctx, tc.mutate(valid)); !apperr.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}

	created, err := questions.Create(ctx, valid)
	if err != nil {
		t.Fatalf("create valid: %v", err)
	}
	bad := 9
	if _, err := questions.Update(ctx, created.ID, models.QuestionUpdate{CorrectAnswer: &bad}); !apperr.IsValidation(err) {
		t.Errorf("invalid update: got %v, want validation error", err)
	}
}

func TestSessionStoreKeepsCreationOrder(t *testing.T) {
	sessions := NewSessionStore()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := sessions.Create(ctx, models.QuizSession{UserID: 1, ThemeID: 1, TimeSpent: i}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	all, err := sessions.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	for i, session := range all {
		if session.TimeSpent != i {
			t.Errorf("order broken at %d: timeSpent %d", i, session.TimeSpent)
		}
	}

	recent, err := sessions.RecentByUser(ctx, 1, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0].TimeSpent != 3 || recent[1].TimeSpent != 2 {
		t.Errorf("recent = %+v, want newest first", recent)
	}
}

func TestStatsStoreApplyIsAtomicUnderConcurrency(t *testing.T) {
	stats := NewStatsStore()
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = stats.Apply(ctx, 1, 1, func(row *models.UserStats, isNew bool) {
				row.TotalQuizzes++
			})
		}()
	}
	wg.Wait()

	row, err := stats.Get(ctx, 1, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.TotalQuizzes != workers {
		t.Errorf("totalQuizzes = %d, want %d (lost updates)", row.TotalQuizzes, workers)
	}
}

func TestStatsStoreGetMissingPair(t *testing.T) {
	stats := NewStatsStore()
	if _, err := stats.Get(context.Background(), 1, 1); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("got %v, want not found", err)
	}
}
