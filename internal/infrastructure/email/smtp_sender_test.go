package email

import (
	"context"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handshake.backend/internal/config"
)

func TestSMTPSenderSendVerification(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	orig := smtpSendMail
	smtpSendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}
	defer func() { smtpSendMail = orig }()

	sender := NewSMTPSender(config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "hunter2",
		From:     "noreply@handshake.local",
	})

	err := sender.SendVerification(context.Background(), "alice@x.com", "Alice", "042137")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@handshake.local", gotFrom)
	assert.Equal(t, []string{"alice@x.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "To: alice@x.com")
	assert.Contains(t, msg, "Subject: "+verificationSubject)
	assert.Contains(t, msg, "Content-Type: text/html")
	assert.Contains(t, msg, "042137")
}

func TestSMTPSenderCancelledContext(t *testing.T) {
	called := false
	orig := smtpSendMail
	smtpSendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		called = true
		return nil
	}
	defer func() { smtpSendMail = orig }()

	sender := NewSMTPSender(config.SMTPConfig{Host: "h", Port: 25, From: "f@x.com"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.SendVerification(ctx, "alice@x.com", "Alice", "042137")
	assert.Error(t, err)
	assert.False(t, called)
}
