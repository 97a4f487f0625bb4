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

// RestaurantClient talks to the restaurant service's internal item
// validation endpoint, which prices selections authoritatively.
type RestaurantClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRestaurantClient creates a client for the restaurant service.
func NewRestaurantClient(baseURL string, timeout time.Duration) *RestaurantClient {
	return &RestaurantClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

type validateItemsRequest struct {
	RestaurantID int64                 `json:"restaurant_id"`
	Items        []validateItemRequest `json:"items"`
}

type validateItemRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

type validateItemsResponse struct {
	Valid  bool    `json:"valid"`
	Reason string  `json:"reason"`
	Total  float64 `json:"total"`
	Items  []struct {
		ItemID    int64   `json:"item_id"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
	} `json:"items"`
}

// ValidateItems submits the selection for pricing. A transport failure or
// non-200 result surfaces as an error; an invalid selection comes back as
// ItemValidation{Valid: false} with the collaborator's reason.
func (c *RestaurantClient) ValidateItems(
	ctx context.Context,
	restaurantID int64,
	items []ports.ItemRequest,
	correlationID kernel.CorrelationID,
) (ports.ItemValidation, error) {
	payload := validateItemsRequest{
		RestaurantID: restaurantID,
		Items:        make([]validateItemRequest, 0, len(items)),
	}
	for _, item := range items {
		payload.Items = append(payload.Items, validateItemRequest{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ports.ItemValidation{}, err
	}

	url := fmt.Sprintf("%s/internal/v1/validate-items", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ports.ItemValidation{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(correlationHeader, correlationID.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.ItemValidation{}, fmt.Errorf("restaurant service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.ItemValidation{}, fmt.Errorf("restaurant service returned %d", resp.StatusCode)
	}

	var verdict validateItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return ports.ItemValidation{}, fmt.Errorf("restaurant service response is malformed: %w", err)
	}

	validation := ports.ItemValidation{
		Valid:  verdict.Valid,
		Reason: verdict.Reason,
		Total:  verdict.Total,
		Items:  make([]ports.PricedItem, 0, len(verdict.Items)),
	}
	for _, item := range verdict.Items {
		validation.Items = append(validation.Items, ports.PricedItem{
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return validation, nil
}
