package email

import (
	"context"

	"go.uber.org/zap"

	"handshake.backend/pkg/logger"
)

// DevSender logs outgoing mail instead of delivering it. Used when no SMTP
// credentials are configured.
type DevSender struct{}

// NewDevSender creates a dev sender
func NewDevSender() *DevSender {
	return &DevSender{}
}

// SendVerification logs the OTP instead of mailing it
func (s *DevSender) SendVerification(ctx context.Context, toEmail, toName, code string) error {
	logger.Info(ctx, "verification code issued",
		zap.String("email", toEmail),
		zap.String("name", toName),
		zap.String("code", code),
	)
	return nil
}

// SendOrderNotification logs the order confirmation instead of mailing it
func (s *DevSender) SendOrderNotification(ctx context.Context, toEmail, toName, productTitle string, orderID uint, midpointAddress string) error {
	logger.Info(ctx, "order notification issued",
		zap.String("email", toEmail),
		zap.String("name", toName),
		zap.String("product", productTitle),
		zap.Uint("order_id", orderID),
		zap.String("midpoint", midpointAddress),
	)
	return nil
}
