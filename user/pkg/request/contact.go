package request

type ContactMessage struct {
	Name    string `validate:"required"       json:"name"`
	Email   string `validate:"required,email" json:"email"`
	Phone   string `                          json:"phone"`
	Subject string `validate:"required"       json:"subject"`
	Message string `validate:"required"       json:"message"`
}
