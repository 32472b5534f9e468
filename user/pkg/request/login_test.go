package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginMasksPassword(t *testing.T) {
	expectedMap := map[string]string{"email": "email", "password": "***"}
	expected, _ := json.Marshal(expectedMap)
	loginReq := Login{Email: "email", Password: "password"}

	actual, _ := json.Marshal(loginReq)

	assert.EqualValues(t, expected, actual)
	assert.EqualValues(t, "password", loginReq.Password)
}

func TestRegisterMasksPassword(t *testing.T) {
	registerReq := Register{
		Name:     "name",
		Email:    "email",
		Phone:    "phone",
		Password: "password",
	}

	actual, _ := json.Marshal(registerReq)

	assert.Contains(t, string(actual), `"password":"***"`)
	assert.EqualValues(t, "password", registerReq.Password)
}

func TestResetPasswordMasksPassword(t *testing.T) {
	resetReq := ResetPassword{Token: "token", Password: "password"}

	actual, _ := json.Marshal(resetReq)

	assert.Contains(t, string(actual), `"password":"***"`)
	assert.EqualValues(t, "password", resetReq.Password)
}
