package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

var ErrResendNotConfigured = errors.New("RESEND_API_KEY not set")

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey   string
	from     string
	endpoint string
	http     *http.Client
}

// NewResendClient reads RESEND_API_KEY and RESEND_FROM_EMAIL.
func NewResendClient() (*ResendClient, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, ErrResendNotConfigured
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@agriseed.in"
	}

	return &ResendClient{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEndpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// SendContactNotification emails the sales inbox about a new enquiry
func (r *ResendClient) SendContactNotification(ctx context.Context, to string, msg models.ContactMessage) error {
	if to == "" {
		return errors.New("notification recipient is empty")
	}

	subject := "New enquiry from " + msg.Name
	if msg.Subject != "" {
		subject += ": " + msg.Subject
	}

	payload := map[string]any{
		"from":     r.from,
		"to":       to,
		"reply_to": msg.Email,
		"subject":  subject,
		"html":     buildContactNotificationHTML(msg),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		config.Log.Errorw("[resend] api returned error", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	config.Log.Infow("[resend] contact notification sent", "contact_id", msg.ID, "to", to)
	return nil
}

// NotifyContactAsync sends the notification in the background.
// A missing API key is logged and skipped.
func NotifyContactAsync(msg models.ContactMessage) {
	to := config.Site.NotifyEmail
	client, err := NewResendClient()
	if err != nil {
		config.Log.Infow("[contact.notify] skipped", "reason", err.Error(), "contact_id", msg.ID)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := client.SendContactNotification(ctx, to, msg); err != nil {
			config.Log.Errorw("[contact.notify] ❌ failed", "contact_id", msg.ID, "error", err)
		}
	}()
}

func buildContactNotificationHTML(msg models.ContactMessage) string {
	row := func(label, value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf(`<tr><td style="padding: 6px 16px 6px 0; color: #79776d; font-size: 13px;">%s</td><td style="padding: 6px 0; color: #262622; font-size: 15px;">%s</td></tr>`,
			label, html.EscapeString(value))
	}

	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin: 0; padding: 40px 20px; font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background-color: #ffffff; color: #262622;">
    <div style="max-width: 600px; margin: 0 auto;">
      <div style="font-size: 22px; font-weight: 700; margin-bottom: 32px;">%s</div>
      <p style="font-size: 28px; font-weight: 700; margin: 0 0 24px 0;">New website enquiry</p>
      <table style="border-collapse: collapse; margin-bottom: 32px;">%s%s%s%s%s</table>
      <div style="background: #f5f5f0; padding: 20px; font-size: 15px; line-height: 1.7; white-space: pre-wrap;">%s</div>
      <p style="font-size: 12px; color: #79776d; margin-top: 32px;">Reply to this email to answer %s directly.</p>
    </div>
  </body>
</html>`,
		html.EscapeString(config.Site.CompanyName),
		row("Name", msg.Name),
		row("Email", msg.Email),
		row("Phone", msg.Phone),
		row("Subject", msg.Subject),
		row("Interested in", msg.ProductInterest),
		html.EscapeString(msg.Message),
		html.EscapeString(msg.Name),
	)
}
