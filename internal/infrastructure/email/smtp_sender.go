package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"handshake.backend/internal/config"
)

// SMTPSender delivers mail through a STARTTLS SMTP relay
type SMTPSender struct {
	cfg config.SMTPConfig
}

var smtpSendMail = smtp.SendMail

// NewSMTPSender creates a sender for the configured relay
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendVerification sends the OTP email
func (s *SMTPSender) SendVerification(ctx context.Context, toEmail, toName, code string) error {
	body, err := RenderVerificationEmail(toName, code)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, verificationSubject, body)
}

// SendOrderNotification sends the order confirmation email
func (s *SMTPSender) SendOrderNotification(ctx context.Context, toEmail, toName, productTitle string, orderID uint, midpointAddress string) error {
	body, err := RenderOrderNotification(toName, productTitle, orderID, midpointAddress)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, "Order Confirmation - "+productTitle, body)
}

func (s *SMTPSender) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	msg.WriteString("From: " + s.cfg.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtpSendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
