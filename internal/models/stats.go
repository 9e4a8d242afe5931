package models

// UserStats is the rolling aggregate for one (user, theme) pair,
// maintained incrementally as sessions complete. AverageScore is a
// rounded integer running mean recomputed from the previous rounded
// value, so it can drift from the true mean over long histories.
type UserStats struct {
	UserID         int `json:"userId"`
	ThemeID        int `json:"themeId"`
	TotalQuizzes   int `json:"totalQuizzes"`
	BestScore      int `json:"bestScore"`
	AverageScore   int `json:"averageScore"`
	TotalTimeSpent int `json:"totalTimeSpent"`
}
