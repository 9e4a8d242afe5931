package service

import (
	"context"
	"fmt"

	"quizarena/internal/apperr"
	"quizarena/internal/models"
	"quizarena/internal/store"
)

// AttemptService scores submitted attempts. It never leaks correct
// answers before submission and never partially commits: an error while
// scoring aborts before any session record exists.
type AttemptService struct {
	Themes    *store.ThemeStore
	Questions *store.QuestionStore
	Sessions  *store.SessionStore
	Stats     *StatsService
}

func NewAttemptService(themes *store.ThemeStore, questions *store.QuestionStore, sessions *store.SessionStore, stats *StatsService) *AttemptService {
	return &AttemptService{Themes: themes, Questions: questions, Sessions: sessions, Stats: stats}
}

// StartAttempt returns the theme's questions in stable order. For
// non-admin callers the correct answers and explanations are stripped.
// Missing and deactivated themes are both reported as not found.
func (s *AttemptService) StartAttempt(ctx context.Context, themeID int, isAdmin bool) ([]models.Question, error) {
	theme, err := s.Themes.ByID(ctx, themeID)
	if err != nil {
		return nil, err
	}
	if !theme.IsActive && !isAdmin {
		return nil, apperr.NotFoundf("thème %d", themeID)
	}

	questions, err := s.Questions.ByTheme(ctx, themeID)
	if err != nil {
		return nil, err
	}
	if isAdmin {
		return questions, nil
	}
	sanitized := make([]models.Question, len(questions))
	for i, question := range questions {
		sanitized[i] = question.Sanitized()
	}
	return sanitized, nil
}

// Submission is one scored attempt as handed to Submit. Answers maps
// question id to the selected option index and may be sparse:
// unanswered questions count as wrong.
type Submission struct {
	ThemeID   int
	Answers   map[int]int
	TimeSpent int
}

// SubmitResult is everything the client gets back after scoring,
// including the per-question corrections withheld before submission.
type SubmitResult struct {
	Session        models.QuizSession    `json:"session"`
	Score          int                   `json:"score"`
	TotalQuestions int                   `json:"totalQuestions"`
	Results        []models.AnswerResult `json:"results"`
	PointsEarned   int                   `json:"pointsEarned"`
	Stats          models.UserStats      `json:"stats"`
}

// Submit scores the answers against the theme's question set, appends
// an immutable session record, folds the aggregates and awards points.
// Unknown question ids and out-of-range option indices are silently
// counted as incorrect, never rejected. TimeSpent is client-supplied
// and trusted as-is; there is no server-side start time to check it
// against.
func (s *AttemptService) Submit(ctx context.Context, userID int, submission Submission) (SubmitResult, error) {
	if submission.Answers == nil {
		return SubmitResult{}, apperr.Validationf("answers est requis")
	}
	if submission.TimeSpent < 0 {
		return SubmitResult{}, apperr.Validationf("timeSpent doit être positif")
	}
	if _, err := s.Themes.ByID(ctx, submission.ThemeID); err != nil {
		return SubmitResult{}, err
	}

	questions, err := s.Questions.ByTheme(ctx, submission.ThemeID)
	if err != nil {
		return SubmitResult{}, err
	}

	score := 0
	results := make([]models.AnswerResult, 0, len(questions))
	for _, question := range questions {
		selected, answered := submission.Answers[question.ID]
		correct := answered && selected == question.CorrectAnswer
		if correct {
			score++
		}
		results = append(results, models.AnswerResult{
			QuestionID:    question.ID,
			Correct:       correct,
			CorrectAnswer: question.CorrectAnswer,
		})
	}

	session, err := s.Sessions.Create(ctx, models.QuizSession{
		UserID:         userID,
		ThemeID:        submission.ThemeID,
		Score:          score,
		TotalQuestions: len(questions),
		TimeSpent:      submission.TimeSpent,
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("create session: %w", err)
	}

	stats, pointsEarned, err := s.Stats.Record(ctx, session)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("record stats: %w", err)
	}

	return SubmitResult{
		Session:        session,
		Score:          score,
		TotalQuestions: len(questions),
		Results:        results,
		PointsEarned:   pointsEarned,
		Stats:          stats,
	}, nil
}
