package domain

import "time"

type Club struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	AllowJoining    bool      `json:"allowJoining"`
	RequireApproval bool      `json:"requireApproval"`
	AdminIDs        []string  `json:"admins"`
	Seeded          bool      `json:"-"`
	CreatedOn       time.Time `json:"createdAt"`
}

// IsAdmin reports whether userID appears in the club's admin list.
func (c *Club) IsAdmin(userID string) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// HeadID returns the club head by convention: the first admin, or "" when
// the admin list is empty.
func (c *Club) HeadID() string {
	if len(c.AdminIDs) == 0 {
		return ""
	}
	return c.AdminIDs[0]
}

// ClubView is a club enriched with fields computed at response time.
// MemberCount is always derived from the live membership set, never stored.
type ClubView struct {
	Club
	MemberCount int      `json:"memberCount"`
	ClubHead    *User    `json:"clubHead,omitempty"`
	MemberIDs   []string `json:"members,omitempty"`
}
