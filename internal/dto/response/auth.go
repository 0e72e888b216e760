package response

import (
	"time"

	"movie-review/internal/data/entity"
)

// UserResponse is the public view of a user; it never carries the hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		User:      UserToResponse(user),
		Token:     token,
		ExpiresAt: expiresAt,
	}
}
