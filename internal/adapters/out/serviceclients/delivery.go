package serviceclients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"orderservice/internal/core/domain/model/kernel"
)

// DeliveryClient requests courier assignments from the delivery service.
type DeliveryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDeliveryClient creates a client for the delivery service.
func NewDeliveryClient(baseURL string, timeout time.Duration) *DeliveryClient {
	return &DeliveryClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

type assignCourierRequest struct {
	OrderID string `json:"order_id"`
}

// AssignCourier asks the delivery service to put a courier on the order.
// Only a 201 counts as an assignment.
func (c *DeliveryClient) AssignCourier(
	ctx context.Context,
	orderID kernel.UUID,
	correlationID kernel.CorrelationID,
) error {
	body, err := json.Marshal(assignCourierRequest{OrderID: orderID.String()})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/deliveries/assign", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(correlationHeader, correlationID.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delivery service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("delivery service returned %d", resp.StatusCode)
	}
	return nil
}
