package request

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

type Register struct {
	Name     string `validate:"required"        json:"name"`
	Email    string `validate:"required,email"  json:"email"`
	Phone    string `validate:"required"        json:"phone"`
	Password string `validate:"required,min=8"  json:"password"`
}

func (r Register) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", r.Name).Str("email", r.Email).Str("phone", r.Phone).Str("password", "***")
}

func (r Register) MarshalJSON() ([]byte, error) {
	r.Password = "***"
	type R Register
	return json.Marshal(R(r))
}

type VerifyOtp struct {
	Email string `validate:"required,email"       json:"email"`
	Otp   string `validate:"required,len=6"       json:"otp"`
}

type ResendOtp struct {
	Email string `validate:"required,email" json:"email"`
}
