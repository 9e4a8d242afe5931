package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Question is a multiple-choice question attached to a theme.
// CorrectAnswer indexes into Options.
type Question struct {
	ID            int      `json:"id"`
	ThemeID       int      `json:"themeId"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation,omitempty"`
}

func (q *Question) Validate() error {
	if q.ThemeID <= 0 {
		return errors.New("themeId est requis")
	}
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("l'énoncé de la question est requis")
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("une question doit avoir exactement %d réponses", OptionCount)
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("la réponse %d est vide", i+1)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return errors.New("correctAnswer doit être un indice valide")
	}
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return errors.New("difficulty doit être easy, medium ou hard")
	}
	return nil
}

// Sanitized returns a copy safe to hand to a player before submission:
// the correct answer and its explanation are stripped.
func (q Question) Sanitized() Question {
	q.CorrectAnswer = -1
	q.Explanation = ""
	return q
}

// QuestionUpdate carries a partial question update; nil fields are left
// untouched.
type QuestionUpdate struct {
	ThemeID       *int      `json:"themeId"`
	Text          *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *int      `json:"correctAnswer"`
	Difficulty    *string   `json:"difficulty"`
	Explanation   *string   `json:"explanation"`
}
