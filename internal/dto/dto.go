package dto

import (
	"time"

	"opsboard/internal/models"
)

// UserDTO represents the session user in API responses.
type UserDTO struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	LastSignInAt *time.Time `json:"last_sign_in_at"`
}

// NameRef is the minimal id+name pair used by dropdown options and joined
// references on task rows.
type NameRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToUserDTO converts a User model to UserDTO.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:           user.ID,
		Email:        user.Email,
		LastSignInAt: user.LastSignInAt,
	}
}

// ClientOptions converts clients to dropdown options.
func ClientOptions(clients []models.Client) []NameRef {
	refs := make([]NameRef, len(clients))
	for i, c := range clients {
		refs[i] = NameRef{ID: c.ID, Name: c.Name}
	}
	return refs
}

// TeamMemberOptions converts team members to dropdown options.
func TeamMemberOptions(members []models.TeamMember) []NameRef {
	refs := make([]NameRef, len(members))
	for i, m := range members {
		refs[i] = NameRef{ID: m.ID, Name: m.Name}
	}
	return refs
}
