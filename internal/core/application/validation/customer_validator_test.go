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

type MockCustomerClient struct{ mock.Mock }

func (m *MockCustomerClient) GetCustomer(
	ctx context.Context,
	customerID int64,
	correlationID kernel.CorrelationID,
) (ports.Customer, error) {
	args := m.Called(ctx, customerID, correlationID)
	return args.Get(0).(ports.Customer), args.Error(1)
}

func TestNewCustomerValidator_NilClient(t *testing.T) {
	_, err := validation.NewCustomerValidator(nil)
	require.Error(t, err)
}

func TestCustomerValidator_Validate_ReturnsEmail(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()

	client := new(MockCustomerClient)
	client.On("GetCustomer", ctx, int64(1), correlationID).
		Return(ports.Customer{Email: "jane@example.com", AddressIDs: []int64{7}}, nil).Once()

	validator, err := validation.NewCustomerValidator(client)
	require.NoError(t, err)

	email, err := validator.Validate(ctx, 1, nil, correlationID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)
	client.AssertExpectations(t)
}

func TestCustomerValidator_Validate_LookupFailure(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()

	client := new(MockCustomerClient)
	client.On("GetCustomer", ctx, int64(1), correlationID).
		Return(ports.Customer{}, errors.New("customer service returned 404")).Once()

	validator, err := validation.NewCustomerValidator(client)
	require.NoError(t, err)

	_, err = validator.Validate(ctx, 1, nil, correlationID)
	require.ErrorIs(t, err, validation.ErrInvalidCustomer)
}

func TestCustomerValidator_Validate_KnownAddress(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	addressID := int64(9)

	client := new(MockCustomerClient)
	client.On("GetCustomer", ctx, int64(1), correlationID).
		Return(ports.Customer{Email: "jane@example.com", AddressIDs: []int64{7, 9}}, nil).Once()

	validator, err := validation.NewCustomerValidator(client)
	require.NoError(t, err)

	email, err := validator.Validate(ctx, 1, &addressID, correlationID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)
}

func TestCustomerValidator_Validate_UnknownAddress(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	addressID := int64(100)

	client := new(MockCustomerClient)
	client.On("GetCustomer", ctx, int64(1), correlationID).
		Return(ports.Customer{Email: "jane@example.com", AddressIDs: []int64{7, 9}}, nil).Once()

	validator, err := validation.NewCustomerValidator(client)
	require.NoError(t, err)

	_, err = validator.Validate(ctx, 1, &addressID, correlationID)
	require.ErrorIs(t, err, validation.ErrInvalidAddressForCustomer)
}

func TestCustomerValidator_Validate_EmptyAddressSetRejectsAddress(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	addressID := int64(7)

	client := new(MockCustomerClient)
	client.On("GetCustomer", ctx, int64(1), correlationID).
		Return(ports.Customer{Email: "jane@example.com"}, nil).Once()

	validator, err := validation.NewCustomerValidator(client)
	require.NoError(t, err)

	_, err = validator.Validate(ctx, 1, &addressID, correlationID)
	require.ErrorIs(t, err, validation.ErrInvalidAddressForCustomer)
}
