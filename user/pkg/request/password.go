package request

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

type ForgetPassword struct {
	Email string `validate:"required,email" json:"email"`
}

type ResetPassword struct {
	Token    string `validate:"required"       json:"token"`
	Password string `validate:"required,min=8" json:"password"`
}

func (r ResetPassword) MarshalZerologObject(e *zerolog.Event) {
	e.Str("token", "***").Str("password", "***")
}

func (r ResetPassword) MarshalJSON() ([]byte, error) {
	r.Password = "***"
	type R ResetPassword
	return json.Marshal(R(r))
}
