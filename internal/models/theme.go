package models

import (
	"errors"
	"strings"
)

// Theme is a quiz category. Inactive themes stay in the store but are
// hidden from public listings and cannot be played.
type Theme struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	IsActive    bool   `json:"isActive"`
}

func (t *Theme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("le nom du thème est requis")
	}
	return nil
}

// ThemeUpdate carries a partial theme update; nil fields are left untouched.
type ThemeUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"isActive"`
}
