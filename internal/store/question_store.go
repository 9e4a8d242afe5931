package store

import (
	"context"
	"sort"
	"sync"

	"quizarena/internal/apperr"
	"quizarena/internal/models"
)

// QuestionStore holds the question bank.
type QuestionStore struct {
	mu        sync.RWMutex
	questions map[int]models.Question
	nextID    int
}

func NewQuestionStore() *QuestionStore {
	return &QuestionStore{questions: make(map[int]models.Question), nextID: 1}
}

func (s *QuestionStore) Create(ctx context.Context, question models.Question) (models.Question, error) {
	if err := question.Validate(); err != nil {
		return models.Question{}, &apperr.ValidationError{Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	question.ID = s.nextID
	s.nextID++
	s.questions[question.ID] = question
	return question, nil
}

func (s *QuestionStore) ByID(ctx context.Context, id int) (models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	question, ok := s.questions[id]
	if !ok {
		return models.Question{}, apperr.NotFoundf("question %d", id)
	}
	return question, nil
}

// ByTheme returns the theme's questions ordered by id.
func (s *QuestionStore) ByTheme(ctx context.Context, themeID int) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questions := make([]models.Question, 0)
	for _, question := range s.questions {
		if question.ThemeID == themeID {
			questions = append(questions, question)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}

func (s *QuestionStore) All(ctx context.Context) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questions := make([]models.Question, 0, len(s.questions))
	for _, question := range s.questions {
		questions = append(questions, question)
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}

func (s *QuestionStore) Update(ctx context.Context, id int, update models.QuestionUpdate) (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	question, ok := s.questions[id]
	if !ok {
		return models.Question{}, apperr.NotFoundf("question %d", id)
	}
	if update.ThemeID != nil {
		question.ThemeID = *update.ThemeID
	}
	if update.Text != nil {
		question.Text = *update.Text
	}
	if update.Options != nil {
		question.Options = *update.Options
	}
	if update.CorrectAnswer != nil {
		question.CorrectAnswer = *update.CorrectAnswer
	}
	if update.Difficulty != nil {
		question.Difficulty = *update.Difficulty
	}
	if update.Explanation != nil {
		question.Explanation = *update.Explanation
	}
	if err := question.Validate(); err != nil {
		return models.Question{}, &apperr.ValidationError{Message: err.Error()}
	}
	s.questions[id] = question
	return question, nil
}

func (s *QuestionStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return apperr.NotFoundf("question %d", id)
	}
	delete(s.questions, id)
	return nil
}
