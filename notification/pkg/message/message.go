package message

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OtpEmail struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

type ResetPasswordEmail struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type OrderCreatedEmail struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	TotalPrice decimal.Decimal `json:"total_price"`
	OrderId    uuid.UUID       `json:"order_id"`
}
