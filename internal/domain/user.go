package domain

import "time"

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "super_admin"
	UserRoleClubHead   UserRole = "club_head"
	UserRoleStudent    UserRole = "student"
)

type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Seeded       bool      `json:"-"`
	CreatedOn    time.Time `json:"createdAt"`
}

// FullName joins the name parts the way listing responses expect.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ValidRole reports whether r is one of the three application roles.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleSuperAdmin, UserRoleClubHead, UserRoleStudent:
		return true
	}
	return false
}
