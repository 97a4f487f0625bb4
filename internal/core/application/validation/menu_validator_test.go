package validation_test

import (
	"context"
	"errors"
	"testing"

	"orderservice/internal/core/application/validation"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRestaurantClient struct{ mock.Mock }

func (m *MockRestaurantClient) ValidateItems(
	ctx context.Context,
	restaurantID int64,
	items []ports.ItemRequest,
	correlationID kernel.CorrelationID,
) (ports.ItemValidation, error) {
	args := m.Called(ctx, restaurantID, items, correlationID)
	return args.Get(0).(ports.ItemValidation), args.Error(1)
}

func TestNewMenuValidator_NilClient(t *testing.T) {
	_, err := validation.NewMenuValidator(nil)
	require.Error(t, err)
}

func TestMenuValidator_Validate_ReturnsAuthoritativePricing(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	items := []ports.ItemRequest{{ItemID: 10, Quantity: 2}}

	client := new(MockRestaurantClient)
	client.On("ValidateItems", ctx, int64(5), items, correlationID).
		Return(ports.ItemValidation{
			Valid: true,
			Total: 10.0,
			Items: []ports.PricedItem{{ItemID: 10, Quantity: 2, UnitPrice: 5.0}},
		}, nil).Once()

	validator, err := validation.NewMenuValidator(client)
	require.NoError(t, err)

	verdict, err := validator.Validate(ctx, 5, items, correlationID)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, verdict.Total, 0.0001)
	require.Len(t, verdict.Items, 1)
	assert.InDelta(t, 5.0, verdict.Items[0].UnitPrice, 0.0001)
	client.AssertExpectations(t)
}

func TestMenuValidator_Validate_EmptyOrderSkipsRemoteCall(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()

	client := new(MockRestaurantClient)

	validator, err := validation.NewMenuValidator(client)
	require.NoError(t, err)

	_, err = validator.Validate(ctx, 5, nil, correlationID)
	require.ErrorIs(t, err, validation.ErrEmptyOrder)
	client.AssertNotCalled(t, "ValidateItems")
}

func TestMenuValidator_Validate_TransportFailureIsDependencyFault(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	items := []ports.ItemRequest{{ItemID: 10, Quantity: 2}}

	client := new(MockRestaurantClient)
	client.On("ValidateItems", ctx, int64(5), items, correlationID).
		Return(ports.ItemValidation{}, errors.New("restaurant service returned 500")).Once()

	validator, err := validation.NewMenuValidator(client)
	require.NoError(t, err)

	_, err = validator.Validate(ctx, 5, items, correlationID)
	require.ErrorIs(t, err, validation.ErrMenuValidationFailed)
	require.NotErrorIs(t, err, validation.ErrInvalidMenuSelection)
}

func TestMenuValidator_Validate_RejectedSelectionCarriesReason(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	items := []ports.ItemRequest{{ItemID: 10, Quantity: 2}}

	client := new(MockRestaurantClient)
	client.On("ValidateItems", ctx, int64(5), items, correlationID).
		Return(ports.ItemValidation{Valid: false, Reason: "item 10 is unavailable"}, nil).Once()

	validator, err := validation.NewMenuValidator(client)
	require.NoError(t, err)

	_, err = validator.Validate(ctx, 5, items, correlationID)
	require.ErrorIs(t, err, validation.ErrInvalidMenuSelection)

	var selectionErr *validation.InvalidMenuSelectionError
	require.ErrorAs(t, err, &selectionErr)
	assert.Equal(t, "item 10 is unavailable", selectionErr.Reason)
}
