package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/config"
	"github.com/furnspace/furnspace/internal/log"
	"github.com/furnspace/furnspace/notification/internal/otel"
)

type Mail struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(c context.Context, mail Mail) error
}

type SmtpMailer struct {
	cfg config.Smtp
}

func NewSmtpMailer(cfg config.Smtp) *SmtpMailer {
	return &SmtpMailer{cfg: cfg}
}

func (m *SmtpMailer) Send(c context.Context, mail Mail) error {
	_, span := otel.Tracer.Start(c, "SmtpMailer Send")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SmtpMailer Send").
		Str(log.KeyEmail, mail.To).
		Str(log.KeyProcess, "sending email").
		Logger()

	msg := strings.Join([]string{
		"From: " + m.cfg.Sender,
		"To: " + mail.To,
		"Subject: " + mail.Subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		mail.Body,
	}, "\r\n")

	logger.Info().Msg("sending email")
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	err := smtp.SendMail(addr, auth, m.cfg.Sender, []string{mail.To}, []byte(msg))
	if err != nil {
		err = fmt.Errorf("failed sending email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("sent email")

	return nil
}
