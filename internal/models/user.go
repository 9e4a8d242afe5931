package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account record. PasswordHash is the bcrypt hash of the
// password and is never serialized.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `json:"role"`
	Points       int       `json:"points"`
	Streak       int       `json:"streak"`
	Badges       []string  `json:"badges"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserUpdate carries a partial update; nil fields are left untouched.
// Points and Streak replace the stored value, they are not deltas.
type UserUpdate struct {
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Points    *int      `json:"points"`
	Streak    *int      `json:"streak"`
	Badges    *[]string `json:"badges"`
}
