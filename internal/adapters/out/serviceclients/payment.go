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

// PaymentClient charges customers through the payment service.
//
// Charge requests are idempotent on the payment side: the client sends a
// deterministic Idempotency-Key derived from the order identifier, so a
// repeated attempt for the same order replays the recorded outcome instead
// of charging twice.
type PaymentClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPaymentClient creates a client for the payment service.
func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

type chargeRequest struct {
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
	ForceFail bool    `json:"force_fail"`
}

type chargeResponse struct {
	Status string `json:"status"`
}

// Charge attempts to collect the order total. A nil return means the charge
// settled; every other outcome, declined or unreachable alike, is an error.
func (c *PaymentClient) Charge(
	ctx context.Context,
	charge ports.ChargeRequest,
	correlationID kernel.CorrelationID,
) error {
	payload := chargeRequest{
		OrderID:   charge.OrderID.String(),
		Amount:    charge.Amount,
		Method:    charge.Method,
		Reference: charge.Reference,
		ForceFail: false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/payments/charge", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(correlationHeader, correlationID.String())
	req.Header.Set("Idempotency-Key", fmt.Sprintf("order-%s-payment", charge.OrderID.String()))
	if charge.CustomerEmail != "" {
		req.Header.Set("X-Customer-Email", charge.CustomerEmail)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("payment service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("payment service returned %d", resp.StatusCode)
	}

	var outcome chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return fmt.Errorf("payment service response is malformed: %w", err)
	}
	if outcome.Status != "SUCCESS" {
		return fmt.Errorf("payment was not successful: status is %s", outcome.Status)
	}
	return nil
}
