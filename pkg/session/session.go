// Package session resolves who is calling. Page handlers receive a Session value
// explicitly instead of reading a process-wide current user.
package session

import (
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
)

// Member is the signed-in account as pages see it
type Member struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Nickname      string      `json:"nickname"`
	CreatedDate   time.Time   `json:"createdDate"`
	LastLoginDate *time.Time  `json:"lastLoginDate"`
}

// Session is nil-Member and unauthenticated for visitors
type Session struct {
	Member          *Member `json:"member"`
	IsAuthenticated bool    `json:"isAuthenticated"`
}

func Anonymous() Session {
	return Session{}
}

func Authenticated(m *Member) Session {
	return Session{Member: m, IsAuthenticated: m != nil}
}

// MemberFromUser drops the credential fields
func MemberFromUser(u models.User) *Member {
	return &Member{
		ID:            u.ID,
		Email:         u.Email,
		Role:          u.Role,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Nickname:      u.Nickname,
		CreatedDate:   u.CreatedDate,
		LastLoginDate: u.LastLoginDate,
	}
}
