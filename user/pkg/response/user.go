package response

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	ID         uuid.UUID `json:"id"`
	IsAdmin    bool      `json:"is_admin"`
	IsVerified bool      `json:"is_verified"`
	IsListed   bool      `json:"is_listed"`
}

type UserPage struct {
	Users   []User `json:"users"`
	Page    int32  `json:"page"`
	PerPage int32  `json:"per_page"`
	Total   int64  `json:"total"`
}
