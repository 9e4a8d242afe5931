package models

import "time"

// QuizSession is one completed run through a theme's questions.
// Sessions are append-only: once created they are never mutated.
type QuizSession struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	ThemeID        int       `json:"themeId"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	TimeSpent      int       `json:"timeSpent"`
	CompletedAt    time.Time `json:"completedAt"`
}

// AnswerResult is the post-submission verdict for one question. The
// correct answer is only revealed here, after the attempt is scored.
type AnswerResult struct {
	QuestionID    int  `json:"questionId"`
	Correct       bool `json:"correct"`
	CorrectAnswer int  `json:"correctAnswer"`
}
