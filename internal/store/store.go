// Package store implements the volatile in-process data store. Every
// entity lives in memory behind its own lock and everything is lost on
// restart; seed content is reloaded at startup.
package store

// Store bundles the entity stores. It is constructed once in main and
// injected into services, never reached through package globals.
type Store struct {
	Users     *UserStore
	Themes    *ThemeStore
	Questions *QuestionStore
	Sessions  *SessionStore
	Stats     *StatsStore
}

func New() *Store {
	return &Store{
		Users:     NewUserStore(),
		Themes:    NewThemeStore(),
		Questions: NewQuestionStore(),
		Sessions:  NewSessionStore(),
		Stats:     NewStatsStore(),
	}
}
