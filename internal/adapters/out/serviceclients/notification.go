package serviceclients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/ports"
)

// NotificationClient sends customer emails through the notification service.
type NotificationClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewNotificationClient creates a client for the notification service.
func NewNotificationClient(baseURL string, timeout time.Duration) *NotificationClient {
	return &NotificationClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

type emailRequest struct {
	EventType     string `json:"event_type"`
	Recipient     string `json:"recipient"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlation_id"`
}

// SendEmail submits one email for delivery. Without a recipient there is
// nothing to send and the call is a no-op.
func (c *NotificationClient) SendEmail(
	ctx context.Context,
	notification ports.EmailNotification,
	correlationID kernel.CorrelationID,
) error {
	if notification.Recipient == "" {
		return nil
	}

	body, err := json.Marshal(emailRequest{
		EventType:     notification.EventType,
		Recipient:     notification.Recipient,
		Subject:       notification.Subject,
		Message:       notification.Message,
		CorrelationID: correlationID.String(),
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/notifications/email", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(correlationHeader, correlationID.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notification service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification service returned %d", resp.StatusCode)
	}
	return nil
}
