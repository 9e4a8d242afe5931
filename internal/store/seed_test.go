package store

import (
	"context"
	"testing"
)

func TestSeedContentIsValid(t *testing.T) {
	db := New()
	ctx := context.Background()

	if err := db.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	themes, err := db.Themes.Active(ctx)
	if err != nil {
		t.Fatalf("themes: %v", err)
	}
	if len(themes) == 0 {
		t.Fatal("no active seed themes")
	}

	for _, theme := range themes {
		questions, err := db.Questions.ByTheme(ctx, theme.ID)
		if err != nil {
			t.Fatalf("questions for %q: %v", theme.Name, err)
		}
		if len(questions) == 0 {
			t.Errorf("theme %q has no questions", theme.Name)
		}
		for _, question := range questions {
			if err := question.Validate(); err != nil {
				t.Errorf("seed question %q invalid: %v", question.Text, err)
			}
		}
	}
}

func TestSeedTwiceFails(t *testing.T) {
	db := New()
	ctx := context.Background()

	if err := db.Seed(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	// Theme names are unique, so reseeding an already-seeded store must
	// refuse instead of duplicating content.
	if err := db.Seed(ctx); err == nil {
		t.Error("second seed succeeded, want duplicate-name error")
	}
}
