package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

// Client sends transactional email through the Resend API.
type Client struct {
	apiKey  string
	from    string
	baseURL string
	http    *http.Client
}

// NewClient creates a Resend client. from is the sender in
// "Name <addr@domain>" form.
func NewClient(apiKey, from string) *Client {
	return &Client{
		apiKey:  apiKey,
		from:    from,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetBaseURL overrides the Resend endpoint. Used in tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// Send submits one email. A single attempt, no retries: callers treat
// failure as best-effort and only log it.
func (c *Client) Send(ctx context.Context, to, subject, text, html string) error {
	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("error from Resend API: %d - %s", resp.StatusCode, string(body))
	}
	return nil
}

// SendWelcome sends the post-submission welcome email.
func (c *Client) SendWelcome(ctx context.Context, email, name string) error {
	subject := "Welcome to Togetai - Thank you for your submission!"
	text := fmt.Sprintf("Hi %s!\n\nThank you for your submission! We've received your information and our team will review it shortly.\n\nWe're excited about the possibility of working together and will get back to you soon with next steps.\n\nBest regards,\nThe Togetai Team\n\nVisit our website: https://togetai.com", name)
	html := welcomeHTML(name)
	return c.Send(ctx, email, subject, text, html)
}

func welcomeHTML(name string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #00D4AA; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    a { color: #00D4AA; text-decoration: none; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Welcome to Togetai!</h1>
    </div>
    <div class="content">
      <h2>Hi %s!</h2>
      <p>Thank you for your submission! We've received your information and our team will review it shortly.</p>
      <p>We're excited about the possibility of working together and will get back to you soon with next steps.</p>
      <div class="footer">
        <p>Best regards,<br><strong>The Togetai Team</strong></p>
        <p><a href="https://togetai.com">Visit our website</a></p>
      </div>
    </div>
  </div>
</body>
</html>`, name)
}
