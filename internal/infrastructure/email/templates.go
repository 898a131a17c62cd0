package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const verificationSubject = "Verify your Handshake account"

var verificationTmpl = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4F46E5; color: white; padding: 20px; text-align: center; }
        .content { background-color: #f4f4f4; padding: 30px; }
        .code { font-size: 32px; font-weight: bold; color: #4F46E5; text-align: center; letter-spacing: 5px; padding: 20px; background: white; border-radius: 5px; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Handshake Marketplace</h1>
        </div>
        <div class="content">
            <h2>Welcome, {{.Name}}!</h2>
            <p>Thank you for registering with Handshake Marketplace. To complete your registration, please verify your email address using the code below:</p>
            <div class="code">{{.Code}}</div>
            <p>This code will expire in 15 minutes.</p>
            <p>If you didn't create an account with Handshake, please ignore this email.</p>
        </div>
        <div class="footer">
            <p>&copy; 2026 Handshake Marketplace. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
`))

var orderNotificationTmpl = template.Must(template.New("order").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4F46E5; color: white; padding: 20px; text-align: center; }
        .content { background-color: #f4f4f4; padding: 30px; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Handshake Marketplace</h1>
        </div>
        <div class="content">
            <h2>Hi, {{.Name}}!</h2>
            <p>Your order #{{.OrderID}} for <strong>{{.ProductTitle}}</strong> has been placed.</p>
            <p>Suggested meeting point: {{.MidpointAddress}}</p>
        </div>
        <div class="footer">
            <p>&copy; 2026 Handshake Marketplace. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
`))

// RenderVerificationEmail renders the OTP email body
func RenderVerificationEmail(name, code string) (string, error) {
	var buf bytes.Buffer
	err := verificationTmpl.Execute(&buf, struct {
		Name string
		Code string
	}{Name: name, Code: code})
	if err != nil {
		return "", fmt.Errorf("failed to render verification email: %w", err)
	}
	return buf.String(), nil
}

// RenderOrderNotification renders the order confirmation body
func RenderOrderNotification(name, productTitle string, orderID uint, midpointAddress string) (string, error) {
	var buf bytes.Buffer
	err := orderNotificationTmpl.Execute(&buf, struct {
		Name            string
		ProductTitle    string
		OrderID         uint
		MidpointAddress string
	}{Name: name, ProductTitle: productTitle, OrderID: orderID, MidpointAddress: midpointAddress})
	if err != nil {
		return "", fmt.Errorf("failed to render order notification: %w", err)
	}
	return buf.String(), nil
}
