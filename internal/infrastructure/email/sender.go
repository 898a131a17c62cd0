package email

import "context"

// Sender delivers transactional mail. The orchestrating usecases treat
// delivery failure as non-fatal; their own error policy decides what the
// client sees.
type Sender interface {
	SendVerification(ctx context.Context, toEmail, toName, code string) error
	SendOrderNotification(ctx context.Context, toEmail, toName, productTitle string, orderID uint, midpointAddress string) error
}
