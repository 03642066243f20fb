package mapper

import (
	"time"

	"github.com/Mitesh0126/nursery-haven/internal/domains/users/domain"
)

// User is the transport representation of an account. The password hash never
// crosses the HTTP boundary.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	UserType     string    `json:"userType"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// FromDomainUser converts a domain user to the transport representation.
func FromDomainUser(user *domain.User) User {
	if user == nil {
		return User{}
	}
	return User{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		UserType:     string(user.UserType),
		RegisteredAt: user.RegisteredAt,
	}
}

// FromDomainUsers converts a slice of domain users.
func FromDomainUsers(users []*domain.User) []User {
	out := make([]User, 0, len(users))
	for _, user := range users {
		out = append(out, FromDomainUser(user))
	}
	return out
}
