package views

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/session"
)

const defaultRoleLabel = "Manager"

// Profile is derived from the session alone; it loads no collection
type Profile struct {
	DisplayName string     `json:"displayName"`
	Initials    string     `json:"initials"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	MemberSince *time.Time `json:"memberSince"`
	LastLogin   *time.Time `json:"lastLogin"`
}

func BuildProfile(s session.Session) Profile {
	m := s.Member
	if m == nil {
		return Profile{DisplayName: "User", Initials: "U", Role: defaultRoleLabel}
	}

	p := Profile{
		DisplayName: displayName(m),
		Initials:    Initials(m.FirstName, m.LastName, m.Nickname, m.Email),
		Email:       m.Email,
		Role:        roleLabel(string(m.Role)),
		LastLogin:   m.LastLoginDate,
	}
	if !m.CreatedDate.IsZero() {
		since := m.CreatedDate
		p.MemberSince = &since
	}
	return p
}

// Initials uses first and last name, else the nickname, else the email, else "U"
func Initials(firstName, lastName, nickname, email string) string {
	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	switch {
	case firstName != "" && lastName != "":
		return strings.ToUpper(firstRune(firstName) + firstRune(lastName))
	case strings.TrimSpace(nickname) != "":
		return strings.ToUpper(firstRune(strings.TrimSpace(nickname)))
	case strings.TrimSpace(email) != "":
		return strings.ToUpper(firstRune(strings.TrimSpace(email)))
	default:
		return "U"
	}
}

func displayName(m *session.Member) string {
	if nick := strings.TrimSpace(m.Nickname); nick != "" {
		return nick
	}
	if full := strings.TrimSpace(m.FirstName + " " + m.LastName); full != "" {
		return full
	}
	return "User"
}

func roleLabel(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return defaultRoleLabel
	}
	r, size := utf8.DecodeRuneInString(role)
	return string(unicode.ToUpper(r)) + strings.ToLower(role[size:])
}

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}
