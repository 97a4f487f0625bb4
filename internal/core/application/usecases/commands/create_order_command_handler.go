package commands

import (
	"context"
	"fmt"
	"log/slog"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
)

// CustomerValidator confirms the customer and optional address and resolves
// a contact email.
type CustomerValidator interface {
	Validate(
		ctx context.Context,
		customerID int64,
		addressID *int64,
		correlationID kernel.CorrelationID,
	) (string, error)
}

// MenuValidator prices the requested selection against the restaurant's menu.
type MenuValidator interface {
	Validate(
		ctx context.Context,
		restaurantID int64,
		items []ports.ItemRequest,
		correlationID kernel.CorrelationID,
	) (ports.ItemValidation, error)
}

// CreateOrderCommandHandler orchestrates order placement: validation, the
// initial transactional insert, the charge, and the best-effort tail of
// courier assignment and customer notification.
//
// Every state change is committed before the next remote call, so a crash
// mid-flow leaves the order in a legible status instead of losing it. The
// price of that discipline is the absence of compensation: a failed charge
// leaves a failed order behind, and a failed courier assignment leaves the
// order confirmed without escalation.
type CreateOrderCommandHandler struct {
	uowFactory         OrderUoWFactory
	customerValidator  CustomerValidator
	menuValidator      MenuValidator
	paymentClient      ports.PaymentClient
	deliveryClient     ports.DeliveryClient
	notificationClient ports.NotificationClient
	logger             *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	customerValidator CustomerValidator,
	menuValidator MenuValidator,
	paymentClient ports.PaymentClient,
	deliveryClient ports.DeliveryClient,
	notificationClient ports.NotificationClient,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return CreateOrderCommandHandler{
		uowFactory:         uowFactory,
		customerValidator:  customerValidator,
		menuValidator:      menuValidator,
		paymentClient:      paymentClient,
		deliveryClient:     deliveryClient,
		notificationClient: notificationClient,
		logger:             logger,
	}
}

// Handle runs the order placement flow and returns the fully loaded order on
// success. Validation failures surface before any row exists; a payment
// failure surfaces as PaymentFailedError after the failed order has been
// persisted.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	correlationID := cmd.CorrelationID()

	email := cmd.CustomerEmail()
	if email == "" {
		resolved, err := h.customerValidator.Validate(ctx, cmd.CustomerID(), cmd.AddressID(), correlationID)
		if err != nil {
			return nil, err
		}
		email = resolved
	}

	verdict, err := h.menuValidator.Validate(ctx, cmd.RestaurantID(), cmd.Items(), correlationID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(verdict.Items))
	for _, priced := range verdict.Items {
		item, err := order.NewItem(priced.ItemID, priced.Quantity, priced.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.CustomerID(), cmd.RestaurantID(), cmd.AddressID(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order created pending payment",
		"order_id", newOrder.ID().String(),
		"correlation_id", correlationID.String(),
	)

	if chargeErr := h.chargeOrder(ctx, newOrder, cmd.PaymentMethod(), email, correlationID); chargeErr != nil {
		if err = newOrder.FailPayment(); err != nil {
			return nil, err
		}
		if err = uow.OrderRepository().Update(ctx, newOrder); err != nil {
			return nil, err
		}

		h.logger.WarnContext(ctx, "order payment failed",
			"order_id", newOrder.ID().String(),
			"correlation_id", correlationID.String(),
			"error", chargeErr,
		)
		return nil, NewPaymentFailedError(newOrder.ID(), chargeErr)
	}

	if err = newOrder.ConfirmPayment(); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, newOrder); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order payment success, confirming",
		"order_id", newOrder.ID().String(),
		"correlation_id", correlationID.String(),
	)

	if err = h.dispatchDelivery(ctx, uow, newOrder, correlationID); err != nil {
		return nil, err
	}

	h.notifyCustomer(ctx, newOrder, email, correlationID)

	return newOrder, nil
}

func (h *CreateOrderCommandHandler) chargeOrder(
	ctx context.Context,
	newOrder *order.Order,
	paymentMethod string,
	email string,
	correlationID kernel.CorrelationID,
) error {
	return h.paymentClient.Charge(ctx, ports.ChargeRequest{
		OrderID:       newOrder.ID(),
		Amount:        newOrder.Total(),
		Method:        paymentMethod,
		Reference:     "ORDER-" + newOrder.ID().String(),
		CustomerEmail: email,
	}, correlationID)
}

// dispatchDelivery asks for a courier and, when one is assigned, moves the
// order out for delivery. An assignment failure is logged and swallowed: the
// order stays confirmed and placement still succeeds.
func (h *CreateOrderCommandHandler) dispatchDelivery(
	ctx context.Context,
	uow OrderUoW,
	newOrder *order.Order,
	correlationID kernel.CorrelationID,
) error {
	if assignErr := h.deliveryClient.AssignCourier(ctx, newOrder.ID(), correlationID); assignErr != nil {
		h.logger.WarnContext(ctx, "courier assignment failed, order stays confirmed",
			"order_id", newOrder.ID().String(),
			"correlation_id", correlationID.String(),
			"error", assignErr,
		)
		return nil
	}

	if err := newOrder.StartDelivery(); err != nil {
		return err
	}
	if err := uow.OrderRepository().Update(ctx, newOrder); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order assigned for delivery",
		"order_id", newOrder.ID().String(),
		"correlation_id", correlationID.String(),
	)
	return nil
}

// notifyCustomer fires the placement email. Failures are logged and never
// affect the outcome.
func (h *CreateOrderCommandHandler) notifyCustomer(
	ctx context.Context,
	newOrder *order.Order,
	email string,
	correlationID kernel.CorrelationID,
) {
	if email == "" {
		return
	}

	notification := ports.EmailNotification{
		EventType: "ORDER_CREATED",
		Recipient: email,
		Subject:   fmt.Sprintf("Order #%s placed successfully", newOrder.ID().String()),
		Message: fmt.Sprintf("Your order total is %v. Status: %s",
			newOrder.Total(), newOrder.Status().String()),
	}

	if notifyErr := h.notificationClient.SendEmail(ctx, notification, correlationID); notifyErr != nil {
		h.logger.WarnContext(ctx, "failed to send order notification",
			"order_id", newOrder.ID().String(),
			"correlation_id", correlationID.String(),
			"error", notifyErr,
		)
	}
}
