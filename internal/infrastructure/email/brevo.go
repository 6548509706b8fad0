// Package email sends transactional mail through Brevo.
package email

import (
	"context"
	"fmt"

	brevo "github.com/getbrevo/brevo-go/lib"

	"career-assistant/internal/config"
)

const resetSubject = "Reset your Career AI password"

// BrevoSender delivers the password-reset email. The client is built once at
// startup and reused.
type BrevoSender struct {
	client     *brevo.APIClient
	senderName string
	senderAddr string
}

func NewBrevoSender(cfg config.EmailConfig) *BrevoSender {
	apiCfg := brevo.NewConfiguration()
	apiCfg.AddDefaultHeader("api-key", cfg.BrevoAPIKey)

	return &BrevoSender{
		client:     brevo.NewAPIClient(apiCfg),
		senderName: cfg.SenderName,
		senderAddr: cfg.SenderAddress,
	}
}

func (s *BrevoSender) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	_, _, err := s.client.TransactionalEmailsApi.SendTransacEmail(ctx, brevo.SendSmtpEmail{
		Sender: &brevo.SendSmtpEmailSender{
			Name:  s.senderName,
			Email: s.senderAddr,
		},
		To:          []brevo.SendSmtpEmailTo{{Email: to}},
		Subject:     resetSubject,
		HtmlContent: resetEmailHTML(s.senderName, resetURL),
	})
	if err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

func resetEmailHTML(senderName, resetURL string) string {
	return fmt.Sprintf(`
<div style="max-width: 600px; margin: auto; padding: 30px; font-family: 'Segoe UI', sans-serif; background: #f9f9fb; border-radius: 10px; border: 1px solid #e0e0e0;">
  <div style="text-align: center; margin-bottom: 25px;">
    <h1 style="color: #2c3e50; margin-bottom: 5px;">%s</h1>
    <p style="color: #7f8c8d; font-size: 14px;">Your AI-Powered Career Partner</p>
  </div>
  <div style="background: #ffffff; padding: 25px; border-radius: 8px;">
    <p style="font-size: 16px; color: #2c3e50;">Hi there,</p>
    <p style="color: #34495e; font-size: 15px;">
      We received a request to reset your password. Click the button below to create a new one:
    </p>
    <div style="text-align: center; margin: 25px 0;">
      <a href="%s" style="background-color: #4a90e2; color: white; padding: 12px 24px; text-decoration: none; font-weight: bold; border-radius: 6px; display: inline-block;">
        Reset Password
      </a>
    </div>
    <p style="font-size: 14px; color: #7f8c8d;">
      If you didn't request this, please ignore this email. The link is valid for 1 hour.
    </p>
  </div>
</div>`, senderName, resetURL)
}
