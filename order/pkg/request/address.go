package request

import "github.com/google/uuid"

type CreateAddress struct {
	FullName  string `validate:"required"       json:"full_name"`
	Street    string `validate:"required"       json:"street"`
	Apartment string `                          json:"apartment"`
	Town      string `validate:"required"       json:"town"`
	City      string `validate:"required"       json:"city"`
	State     string `validate:"required"       json:"state"`
	Postcode  string `validate:"required"       json:"postcode"`
	Phone     string `validate:"required"       json:"phone"`
	Email     string `validate:"required,email" json:"email"`
}

type UpdateAddress struct {
	FullName  string    `json:"full_name"`
	Street    string    `json:"street"`
	Apartment string    `json:"apartment"`
	Town      string    `json:"town"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Postcode  string    `json:"postcode"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	ID        uuid.UUID `json:"-"`
}
