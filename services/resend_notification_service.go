package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
)

// ResendClient sends the order/request notifications through the Resend API.
// The payload is a type tag plus key/value lines; the response body of a
// success is never interpreted, and any non-success is a recoverable error
// for the caller, not a fatal one.
type ResendClient struct {
	apiKey string
	from   string
	to     string
}

// NewResendClient returns nil when RESEND_API_KEY is not configured, in
// which case notifications are simply skipped.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, notifications disabled")
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@homespired.shop"
	}
	to := os.Getenv("NOTIFY_EMAIL")
	if to == "" {
		to = "orders@homespired.shop"
	}

	return &ResendClient{apiKey: apiKey, from: from, to: to}
}

// NotificationLine is one key/value row in a notification.
type NotificationLine struct {
	Label string
	Value string
}

// SendNotification emails a structured notification to the studio inbox.
func (r *ResendClient) SendNotification(kind string, lines []NotificationLine) error {
	var rows strings.Builder
	for _, line := range lines {
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 6px 12px; font-size: 14px; font-weight: 600; color: #262622;">%s</td>
        <td style="padding: 6px 12px; font-size: 14px; color: #79776d;">%s</td>
      </tr>`, line.Label, line.Value))
	}

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; background-color: #fafaf7;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #ffffff; padding: 24px;">
    <tr><td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 12px;">
      <h2 style="margin: 0; font-size: 20px; color: #262622;">HOMESPIRED — %s</h2>
    </td></tr>
    %s
  </table>
</body>
</html>`, kind, rows.String())

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      r.to,
		"subject": fmt.Sprintf("Homespired: %s", kind),
		"html":    html,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] notification rejected: status=%d body=%s", resp.StatusCode, string(body))
		return fmt.Errorf("notification rejected with status %d", resp.StatusCode)
	}
	return nil
}
