package service

import (
	"context"

	"quizarena/internal/apperr"
	"quizarena/internal/models"
	"quizarena/internal/store"
)

// CatalogService owns themes and their question bank. Reads are public
// facing; every mutation sits behind the admin routes.
type CatalogService struct {
	Themes    *store.ThemeStore
	Questions *store.QuestionStore
}

func NewCatalogService(themes *store.ThemeStore, questions *store.QuestionStore) *CatalogService {
	return &CatalogService{Themes: themes, Questions: questions}
}

// ListThemes returns the themes visible to players.
func (s *CatalogService) ListThemes(ctx context.Context) ([]models.Theme, error) {
	return s.Themes.Active(ctx)
}

// ListAllThemes returns every theme, including deactivated ones.
func (s *CatalogService) ListAllThemes(ctx context.Context) ([]models.Theme, error) {
	return s.Themes.All(ctx)
}

func (s *CatalogService) GetTheme(ctx context.Context, id int) (models.Theme, error) {
	return s.Themes.ByID(ctx, id)
}

func (s *CatalogService) CreateTheme(ctx context.Context, theme models.Theme) (models.Theme, error) {
	if err := theme.Validate(); err != nil {
		return models.Theme{}, &apperr.ValidationError{Message: err.Error()}
	}
	return s.Themes.Create(ctx, theme)
}

func (s *CatalogService) UpdateTheme(ctx context.Context, id int, update models.ThemeUpdate) (models.Theme, error) {
	return s.Themes.Update(ctx, id, update)
}

// DeleteTheme soft-deletes: the theme is deactivated so existing
// sessions keep a resolvable theme reference.
func (s *CatalogService) DeleteTheme(ctx context.Context, id int) error {
	return s.Themes.Deactivate(ctx, id)
}

func (s *CatalogService) GetQuestion(ctx context.Context, id int) (models.Question, error) {
	return s.Questions.ByID(ctx, id)
}

func (s *CatalogService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.Questions.All(ctx)
}

func (s *CatalogService) CreateQuestion(ctx context.Context, question models.Question) (models.Question, error) {
	if _, err := s.Themes.ByID(ctx, question.ThemeID); err != nil {
		return models.Question{}, err
	}
	return s.Questions.Create(ctx, question)
}

func (s *CatalogService) UpdateQuestion(ctx context.Context, id int, update models.QuestionUpdate) (models.Question, error) {
	if update.ThemeID != nil {
		if _, err := s.Themes.ByID(ctx, *update.ThemeID); err != nil {
			return models.Question{}, err
		}
	}
	return s.Questions.Update(ctx, id, update)
}

func (s *CatalogService) DeleteQuestion(ctx context.Context, id int) error {
	return s.Questions.Delete(ctx, id)
}
