package validation

import (
	"context"
	"errors"
	"fmt"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"
)

var (
	// ErrInvalidCustomer means the customer could not be found or the
	// lookup itself failed.
	ErrInvalidCustomer = errors.New("invalid customer")

	// ErrInvalidAddressForCustomer means the supplied address does not
	// belong to the customer.
	ErrInvalidAddressForCustomer = errors.New("address does not belong to customer")
)

// CustomerValidator confirms a customer exists and, when an address is
// supplied, that the address belongs to that customer. On success it hands
// back the customer's contact email, which may be empty.
type CustomerValidator struct {
	customerClient ports.CustomerClient
}

func NewCustomerValidator(customerClient ports.CustomerClient) (*CustomerValidator, error) {
	if customerClient == nil {
		return nil, errs.NewValueIsRequiredError("customerClient")
	}
	return &CustomerValidator{customerClient: customerClient}, nil
}

// Validate fetches the customer record and checks the optional address
// against the customer's known address set. The lookup is the only side
// effect.
func (v *CustomerValidator) Validate(
	ctx context.Context,
	customerID int64,
	addressID *int64,
	correlationID kernel.CorrelationID,
) (string, error) {
	customer, err := v.customerClient.GetCustomer(ctx, customerID, correlationID)
	if err != nil {
		return "", fmt.Errorf("%w: customer %d: %w", ErrInvalidCustomer, customerID, err)
	}

	if addressID != nil {
		known := false
		for _, id := range customer.AddressIDs {
			if id == *addressID {
				known = true
				break
			}
		}
		if !known {
			return "", fmt.Errorf("%w: address %d, customer %d",
				ErrInvalidAddressForCustomer, *addressID, customerID)
		}
	}

	return customer.Email, nil
}
