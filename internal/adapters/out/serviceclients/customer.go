package serviceclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/ports"
)

// CustomerClient reads customer records from the customer service.
type CustomerClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCustomerClient creates a client for the customer service.
func NewCustomerClient(baseURL string, timeout time.Duration) *CustomerClient {
	return &CustomerClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

type customerResponse struct {
	Email     string `json:"email"`
	Addresses []struct {
		AddressID int64 `json:"address_id"`
	} `json:"addresses"`
}

// GetCustomer fetches one customer record. Any non-200 result or transport
// failure surfaces as an error.
func (c *CustomerClient) GetCustomer(
	ctx context.Context,
	customerID int64,
	correlationID kernel.CorrelationID,
) (ports.Customer, error) {
	url := fmt.Sprintf("%s/v1/customers/%d", c.baseURL, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.Customer{}, err
	}
	req.Header.Set(correlationHeader, correlationID.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Customer{}, fmt.Errorf("customer service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Customer{}, fmt.Errorf("customer service returned %d", resp.StatusCode)
	}

	var body customerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Customer{}, fmt.Errorf("customer service response is malformed: %w", err)
	}

	customer := ports.Customer{
		Email:      body.Email,
		AddressIDs: make([]int64, 0, len(body.Addresses)),
	}
	for _, address := range body.Addresses {
		customer.AddressIDs = append(customer.AddressIDs, address.AddressID)
	}
	return customer, nil
}
