package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/furnspace/furnspace/internal/common/constants"
	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/log"
	"github.com/furnspace/furnspace/notification/internal/mailer"
	"github.com/furnspace/furnspace/notification/internal/otel"
	"github.com/furnspace/furnspace/notification/pkg/message"
)

type NotificationService struct {
	cache *redis.Client
	// contactEmail receives messages submitted through the contact form.
	contactEmail string
	mailer       mailer.Mailer
}

func NewNotificationService(
	cache *redis.Client,
	mailer mailer.Mailer,
	contactEmail string,
) *NotificationService {
	return &NotificationService{cache: cache, mailer: mailer, contactEmail: contactEmail}
}

// Run consumes email messages published by the other services until the
// context is cancelled.
func (s *NotificationService) Run(c context.Context) {
	c, span := otel.Tracer.Start(c, "NotificationService Run")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NotificationService Run").
		Str(log.KeyProcess, "subscribing to email channels").
		Logger()

	logger.Info().Msg("subscribing to email channels")
	sub := s.cache.Subscribe(
		c,
		constants.ChannelEmailOtp,
		constants.ChannelEmailOrderCreated,
		constants.ChannelEmailResetPassword,
		constants.ChannelEmailContact,
	)
	defer sub.Close()
	logger.Info().Msg("subscribed to email channels")

	logger = logger.With().Str(log.KeyProcess, "consuming email messages").Logger()
	logger.Info().Msg("consuming email messages")
	c = logger.WithContext(c)
	messages := sub.Channel()
	for {
		select {
		case <-c.Done():
			logger.Info().Msg("stopped consuming email messages")
			return
		case msg, ok := <-messages:
			if !ok {
				logger.Info().Msg("subscription channel closed")
				return
			}
			if err := s.handleMessage(c, msg); err != nil {
				err = fmt.Errorf("failed handling message with error=%w", err)
				commonErrors.HandleError(err, span)
				logger.Error().Err(err).Str(log.KeyChannel, msg.Channel).Msg(err.Error())
			}
		}
	}
}

func (s *NotificationService) handleMessage(c context.Context, msg *redis.Message) error {
	c, span := otel.Tracer.Start(c, "NotificationService handleMessage")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NotificationService handleMessage").
		Str(log.KeyChannel, msg.Channel).
		Logger()
	c = logger.WithContext(c)

	switch msg.Channel {
	case constants.ChannelEmailOtp:
		return s.sendOtpEmail(c, msg.Payload)
	case constants.ChannelEmailOrderCreated:
		return s.sendOrderCreatedEmail(c, msg.Payload)
	case constants.ChannelEmailResetPassword:
		return s.sendResetPasswordEmail(c, msg.Payload)
	case constants.ChannelEmailContact:
		return s.sendContactEmail(c, msg.Payload)
	}
	return fmt.Errorf("unknown channel=%s", msg.Channel)
}

func (s *NotificationService) sendOtpEmail(c context.Context, payload string) error {
	c, span := otel.Tracer.Start(c, "NotificationService sendOtpEmail")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NotificationService sendOtpEmail").
		Str(log.KeyProcess, "sending otp email").
		Logger()

	email := message.OtpEmail{}
	err := json.Unmarshal([]byte(payload), &email)
	if err != nil {
		err = fmt.Errorf("failed decoding otp email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger = logger.With().Str(log.KeyEmail, email.Email).Logger()

	logger.Info().Msg("sending otp email")
	c = logger.WithContext(c)
	err = s.mailer.Send(c, mailer.Mail{
		To:      email.Email,
		Subject: "Verify your email",
		Body: fmt.Sprintf(
			"Hi %s,\r\n\r\nYour verification code is %s. It expires in 10 minutes.\r\n",
			email.Name,
			email.Otp,
		),
	})
	if err != nil {
		err = fmt.Errorf("failed sending otp email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("sent otp email")

	return nil
}

func (s *NotificationService) sendOrderCreatedEmail(c context.Context, payload string) error {
	c, span := otel.Tracer.Start(c, "NotificationService sendOrderCreatedEmail")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NotificationService sendOrderCreatedEmail").
		Str(log.KeyProcess, "sending order created email").
		Logger()

	email := message.OrderCreatedEmail{}
	err := json.Unmarshal([]byte(payload), &email)
	if err != nil {
		err = fmt.Errorf("failed decoding order created email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger = logger.With().
		Str(log.KeyEmail, email.Email).
		Str(log.KeyOrderID, email.OrderId.String()).
		Logger()

	logger.Info().Msg("sending order created email")
	c = logger.WithContext(c)
	err = s.mailer.Send(c, mailer.Mail{
		To:      email.Email,
		Subject: fmt.Sprintf("Order %s confirmed", email.OrderId),
		Body: fmt.Sprintf(
			"Hi %s,\r\n\r\nThanks for your purchase. Your order %s totaling %s has been placed.\r\n",
			email.Name,
			email.OrderId,
			email.TotalPrice,
		),
	})
	if err != nil {
		err = fmt.Errorf("failed sending order created email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("sent order created email")

	return nil
}

func (s *NotificationService) sendResetPasswordEmail(c context.Context, payload string) error {
	c, span := otel.Tracer.Start(c, "NotificationService sendResetPasswordEmail")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NotificationService sendResetPasswordEmail").
		Str(log.KeyProcess, "sending reset password email").
		Logger()

	email := message.ResetPasswordEmail{}
	err := json.Unmarshal([]byte(payload), &email)
	if err != nil {
		err = fmt.Errorf("failed decoding reset password email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger = logger.With().Str(log.KeyEmail, email.Email).Logger()

	logger.Info().Msg("sending reset password email")
	c = logger.WithContext(c)
	err = s.mailer.Send(c, mailer.Mail{
		To:      email.Email,
		Subject: "Reset your password",
		Body: fmt.Sprintf(
			"Hi %s,\r\n\r\nUse the token below to reset your password. It expires in 15 minutes.\r\n\r\n%s\r\n",
			email.Name,
			email.Token,
		),
	})
	if err != nil {
		err = fmt.Errorf("failed sending reset password email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("sent reset password email")

	return nil
}

func (s *NotificationService) sendContactEmail(c context.Context, payload string) error {
	c, span := otel.Tracer.Start(c, "NotificationService sendContactEmail")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NotificationService sendContactEmail").
		Str(log.KeyProcess, "sending contact email").
		Logger()

	contact := message.ContactMessage{}
	err := json.Unmarshal([]byte(payload), &contact)
	if err != nil {
		err = fmt.Errorf("failed decoding contact message with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger = logger.With().Str(log.KeyEmail, contact.Email).Logger()

	logger.Info().Msg("sending contact email")
	c = logger.WithContext(c)
	err = s.mailer.Send(c, mailer.Mail{
		To:      s.contactEmail,
		Subject: fmt.Sprintf("New contact message: %s", contact.Subject),
		Body: fmt.Sprintf(
			"Name: %s\r\nEmail: %s\r\nPhone: %s\r\n\r\n%s\r\n",
			contact.Name,
			contact.Email,
			contact.Phone,
			contact.Message,
		),
	})
	if err != nil {
		err = fmt.Errorf("failed sending contact email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("sent contact email")

	return nil
}
