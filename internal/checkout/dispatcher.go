package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// WhatsAppDispatcher hands orders off as a WhatsApp deep link. When a
// webhook URL is configured the order summary is also posted there so the
// sales team sees the order even if the client never opens the link;
// delivery past that point is not confirmed.
type WhatsAppDispatcher struct {
	Phone      string // international format, digits only
	WebhookURL string // optional
	Client     *http.Client
}

func NewWhatsAppDispatcher(phone, webhookURL string) *WhatsAppDispatcher {
	return &WhatsAppDispatcher{
		Phone:      phone,
		WebhookURL: webhookURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *WhatsAppDispatcher) Dispatch(ctx context.Context, order Order) (string, error) {
	link := fmt.Sprintf("https://wa.me/%s?text=%s", d.Phone, url.QueryEscape(order.Summary()))

	if d.WebhookURL == "" {
		return link, nil
	}

	payload, err := json.Marshal(map[string]string{
		"order":   order.Number,
		"phone":   d.Phone,
		"message": order.Summary(),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("order webhook returned %s", resp.Status)
	}
	return link, nil
}
