package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnspace/furnspace/internal/common/constants"
	"github.com/furnspace/furnspace/notification/internal/mailer"
	"github.com/furnspace/furnspace/notification/pkg/message"
)

type recordingMailer struct {
	mails []mailer.Mail
}

func (m *recordingMailer) Send(_ context.Context, mail mailer.Mail) error {
	m.mails = append(m.mails, mail)
	return nil
}

func TestHandleContactMessage(t *testing.T) {
	c := context.Background()
	recorder := &recordingMailer{}
	notificationService := NewNotificationService(nil, recorder, "owner@furnspace.dev")

	payload, err := json.Marshal(message.ContactMessage{
		Name:    "Customer",
		Email:   "customer@example.com",
		Phone:   "0123456789",
		Subject: "Damaged armchair",
		Message: "The armchair arrived with a broken leg.",
	})
	require.NoError(t, err)

	err = notificationService.handleMessage(c, &redis.Message{
		Channel: constants.ChannelEmailContact,
		Payload: string(payload),
	})
	require.NoError(t, err)

	require.Len(t, recorder.mails, 1)
	mail := recorder.mails[0]
	assert.Equal(t, "owner@furnspace.dev", mail.To)
	assert.Equal(t, "New contact message: Damaged armchair", mail.Subject)
	assert.Contains(t, mail.Body, "customer@example.com")
	assert.Contains(t, mail.Body, "The armchair arrived with a broken leg.")
}

func TestHandleOtpMessage(t *testing.T) {
	c := context.Background()
	recorder := &recordingMailer{}
	notificationService := NewNotificationService(nil, recorder, "owner@furnspace.dev")

	payload, err := json.Marshal(message.OtpEmail{
		Name:  "Customer",
		Email: "customer@example.com",
		Otp:   "123456",
	})
	require.NoError(t, err)

	err = notificationService.handleMessage(c, &redis.Message{
		Channel: constants.ChannelEmailOtp,
		Payload: string(payload),
	})
	require.NoError(t, err)

	require.Len(t, recorder.mails, 1)
	assert.Equal(t, "customer@example.com", recorder.mails[0].To)
	assert.Contains(t, recorder.mails[0].Body, "123456")
}

func TestHandleUnknownChannel(t *testing.T) {
	c := context.Background()
	recorder := &recordingMailer{}
	notificationService := NewNotificationService(nil, recorder, "owner@furnspace.dev")

	err := notificationService.handleMessage(c, &redis.Message{
		Channel: "email:unknown",
		Payload: "{}",
	})
	assert.Error(t, err)
	assert.Empty(t, recorder.mails)
}

func TestHandleContactMessageBadPayload(t *testing.T) {
	c := context.Background()
	recorder := &recordingMailer{}
	notificationService := NewNotificationService(nil, recorder, "owner@furnspace.dev")

	err := notificationService.handleMessage(c, &redis.Message{
		Channel: constants.ChannelEmailContact,
		Payload: "not json",
	})
	assert.Error(t, err)
	assert.Empty(t, recorder.mails)
}
