package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// WebhookNotifier delivers booking notifications to an external automation
// webhook, which forwards them to the salon owner as a WhatsApp message
type WebhookNotifier struct {
	URL    string
	APIKey string
	Client *http.Client
}

// NewWebhookNotifier constructs a WebhookNotifier
func NewWebhookNotifier(url string, apiKey string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:    url,
		APIKey: apiKey,
		Client: &http.Client{Timeout: time.Second * 10},
	}
}

// BookingCreated posts a BookingNotification as JSON
func (n *WebhookNotifier) BookingCreated(ctx context.Context, notification *BookingNotification) error {
	binary, err := json.Marshal(notification)
	if err != nil {
		return errors.Wrap(err, "problem marshalling booking notification")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(binary))
	if err != nil {
		return errors.Wrap(err, "problem building webhook request")
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-make-apikey", n.APIKey)

	response, err := n.Client.Do(request)
	if err != nil {
		return errors.Wrap(err, "problem delivering booking notification")
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", response.StatusCode)
	}

	return nil
}
