package request

import "github.com/google/uuid"

type UpdateProfile struct {
	Name  string `                          json:"name"`
	Email string `validate:"omitempty,email" json:"email"`
	Phone string `                          json:"phone"`
}

type FindUsers struct {
	Page    int32 `validate:"gte=1"          json:"page"`
	PerPage int32 `validate:"gte=1,lte=100"  json:"per_page"`
}

type SetUserListed struct {
	UserId   uuid.UUID `validate:"required,uuid" json:"user_id"`
	IsListed bool      `                         json:"is_listed"`
}
