package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCustomerValidator struct{ mock.Mock }

func (m *MockCustomerValidator) Validate(
	ctx context.Context,
	customerID int64,
	addressID *int64,
	correlationID kernel.CorrelationID,
) (string, error) {
	args := m.Called(ctx, customerID, addressID, correlationID)
	return args.String(0), args.Error(1)
}

type MockMenuValidator struct{ mock.Mock }

func (m *MockMenuValidator) Validate(
	ctx context.Context,
	restaurantID int64,
	items []ports.ItemRequest,
	correlationID kernel.CorrelationID,
) (ports.ItemValidation, error) {
	args := m.Called(ctx, restaurantID, items, correlationID)
	return args.Get(0).(ports.ItemValidation), args.Error(1)
}

type MockPaymentClient struct{ mock.Mock }

func (m *MockPaymentClient) Charge(
	ctx context.Context,
	req ports.ChargeRequest,
	correlationID kernel.CorrelationID,
) error {
	args := m.Called(ctx, req, correlationID)
	return args.Error(0)
}

type MockDeliveryClient struct{ mock.Mock }

func (m *MockDeliveryClient) AssignCourier(
	ctx context.Context,
	orderID kernel.UUID,
	correlationID kernel.CorrelationID,
) error {
	args := m.Called(ctx, orderID, correlationID)
	return args.Error(0)
}

type MockNotificationClient struct{ mock.Mock }

func (m *MockNotificationClient) SendEmail(
	ctx context.Context,
	notification ports.EmailNotification,
	correlationID kernel.CorrelationID,
) error {
	args := m.Called(ctx, notification, correlationID)
	return args.Error(0)
}

type handlerFixture struct {
	repo               *MockOrderRepository
	uow                *MockOrderUoW
	factory            *MockOrderUoWFactory
	customerValidator  *MockCustomerValidator
	menuValidator      *MockMenuValidator
	paymentClient      *MockPaymentClient
	deliveryClient     *MockDeliveryClient
	notificationClient *MockNotificationClient
	handler            commands.CreateOrderCommandHandler
}

func newHandlerFixture() *handlerFixture {
	f := &handlerFixture{
		repo:               new(MockOrderRepository),
		uow:                new(MockOrderUoW),
		factory:            new(MockOrderUoWFactory),
		customerValidator:  new(MockCustomerValidator),
		menuValidator:      new(MockMenuValidator),
		paymentClient:      new(MockPaymentClient),
		deliveryClient:     new(MockDeliveryClient),
		notificationClient: new(MockNotificationClient),
	}
	f.handler = commands.NewCreateOrderCommandHandler(
		f.factory,
		f.customerValidator,
		f.menuValidator,
		f.paymentClient,
		f.deliveryClient,
		f.notificationClient,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func (f *handlerFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.repo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
	f.customerValidator.AssertExpectations(t)
	f.menuValidator.AssertExpectations(t)
	f.paymentClient.AssertExpectations(t)
	f.deliveryClient.AssertExpectations(t)
	f.notificationClient.AssertExpectations(t)
}

func validCommand(t *testing.T, correlationID kernel.CorrelationID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		1, 5, nil,
		[]ports.ItemRequest{{ItemID: 10, Quantity: 2}, {ItemID: 11, Quantity: 1}},
		"CARD", "", correlationID)
	require.NoError(t, err)
	return cmd
}

func pricedVerdict() ports.ItemValidation {
	return ports.ItemValidation{
		Valid: true,
		Total: 13.0,
		Items: []ports.PricedItem{
			{ItemID: 10, Quantity: 2, UnitPrice: 5.0},
			{ItemID: 11, Quantity: 1, UnitPrice: 3.0},
		},
	}
}

func TestCreateOrderCommandHandler_Handle_FullSuccess(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	cmd := validCommand(t, correlationID)
	f := newHandlerFixture()

	f.customerValidator.On("Validate", ctx, int64(1), (*int64)(nil), correlationID).
		Return("jane@example.com", nil).Once()
	f.menuValidator.On("Validate", ctx, int64(5), cmd.Items(), correlationID).
		Return(pricedVerdict(), nil).Once()

	f.factory.On("Create").Return(f.uow).Once()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.paymentClient.On("Charge", ctx, mock.MatchedBy(func(req ports.ChargeRequest) bool {
			return req.Amount == 13.0 &&
				req.Method == "CARD" &&
				req.CustomerEmail == "jane@example.com" &&
				req.Reference == "ORDER-"+req.OrderID.String()
		}), correlationID).Return(nil).Once(),
		f.deliveryClient.On("AssignCourier", ctx, mock.Anything, correlationID).Return(nil).Once(),
		f.notificationClient.On("SendEmail", ctx, mock.MatchedBy(func(n ports.EmailNotification) bool {
			return n.EventType == "ORDER_CREATED" && n.Recipient == "jane@example.com"
		}), correlationID).Return(nil).Once(),
	)
	f.uow.On("OrderRepository").Return(f.repo).Times(3)
	f.repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Times(2)
	f.uow.On("Rollback", ctx).Return(nil).Once()

	placed, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.OutForDelivery, placed.Status())
	assert.Equal(t, order.PaymentSuccess, placed.PaymentStatus())
	assert.InDelta(t, 13.0, placed.Total(), 0.0001)
	assert.Len(t, placed.Items(), 2)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	f := newHandlerFixture()
	_, err := f.handler.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_SuppliedEmailSkipsCustomerLookup(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	cmd, err := commands.NewCreateOrderCommand(
		1, 5, nil, []ports.ItemRequest{{ItemID: 10, Quantity: 2}},
		"CARD", "direct@example.com", correlationID)
	require.NoError(t, err)

	f := newHandlerFixture()
	f.menuValidator.On("Validate", ctx, int64(5), cmd.Items(), correlationID).
		Return(ports.ItemValidation{
			Valid: true,
			Total: 10.0,
			Items: []ports.PricedItem{{ItemID: 10, Quantity: 2, UnitPrice: 5.0}},
		}, nil).Once()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Times(3)
	f.repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.paymentClient.On("Charge", ctx, mock.MatchedBy(func(req ports.ChargeRequest) bool {
		return req.CustomerEmail == "direct@example.com"
	}), correlationID).Return(nil).Once()
	f.repo.On("Update", ctx, mock.Anything).Return(nil).Times(2)
	f.deliveryClient.On("AssignCourier", ctx, mock.Anything, correlationID).Return(nil).Once()
	f.notificationClient.On("SendEmail", ctx, mock.Anything, correlationID).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	f.customerValidator.AssertNotCalled(t, "Validate")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CustomerFailure_NoOrderCreated(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	cmd := validCommand(t, correlationID)

	f := newHandlerFixture()
	customerErr := errors.New("invalid customer")
	f.customerValidator.On("Validate", ctx, int64(1), (*int64)(nil), correlationID).
		Return("", customerErr).Once()

	_, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, customerErr)
	f.factory.AssertNotCalled(t, "Create")
	f.menuValidator.AssertNotCalled(t, "Validate")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MenuFailure_NoOrderCreated(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	cmd := validCommand(t, correlationID)

	f := newHandlerFixture()
	f.customerValidator.On("Validate", ctx, int64(1), (*int64)(nil), correlationID).
		Return("jane@example.com", nil).Once()
	menuErr := errors.New("menu validation failed")
	f.menuValidator.On("Validate", ctx, int64(5), cmd.Items(), correlationID).
		Return(ports.ItemValidation{}, menuErr).Once()

	_, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, menuErr)
	f.factory.AssertNotCalled(t, "Create")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PaymentFailure_MarksOrderFailed(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	cmd := validCommand(t, correlationID)

	f := newHandlerFixture()
	f.customerValidator.On("Validate", ctx, int64(1), (*int64)(nil), correlationID).
		Return("jane@example.com", nil).Once()
	f.menuValidator.On("Validate", ctx, int64(5), cmd.Items(), correlationID).
		Return(pricedVerdict(), nil).Once()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Times(2)
	f.repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	f.paymentClient.On("Charge", ctx, mock.Anything, correlationID).
		Return(errors.New("payment service returned 502")).Once()

	var persisted *order.Order
	f.repo.On("Update", ctx, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*order.Order)
	}).Return(nil).Once()

	_, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPaymentFailed)

	var paymentErr *commands.PaymentFailedError
	require.ErrorAs(t, err, &paymentErr)
	require.NotNil(t, persisted)
	assert.True(t, paymentErr.OrderID.IsEqual(persisted.ID()))
	assert.Equal(t, order.PaymentFailed, persisted.Status())
	assert.Equal(t, order.PaymentFailure, persisted.PaymentStatus())

	f.deliveryClient.AssertNotCalled(t, "AssignCourier")
	f.notificationClient.AssertNotCalled(t, "SendEmail")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DeliveryFailure_OrderStaysConfirmed(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	cmd := validCommand(t, correlationID)

	f := newHandlerFixture()
	f.customerValidator.On("Validate", ctx, int64(1), (*int64)(nil), correlationID).
		Return("jane@example.com", nil).Once()
	f.menuValidator.On("Validate", ctx, int64(5), cmd.Items(), correlationID).
		Return(pricedVerdict(), nil).Once()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Times(2)
	f.repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.paymentClient.On("Charge", ctx, mock.Anything, correlationID).Return(nil).Once()
	f.repo.On("Update", ctx, mock.Anything).Return(nil).Once()
	f.deliveryClient.On("AssignCourier", ctx, mock.Anything, correlationID).
		Return(errors.New("delivery service returned 409")).Once()
	f.notificationClient.On("SendEmail", ctx, mock.Anything, correlationID).Return(nil).Once()

	placed, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, placed.Status())
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotificationFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	cmd := validCommand(t, correlationID)

	f := newHandlerFixture()
	f.customerValidator.On("Validate", ctx, int64(1), (*int64)(nil), correlationID).
		Return("jane@example.com", nil).Once()
	f.menuValidator.On("Validate", ctx, int64(5), cmd.Items(), correlationID).
		Return(pricedVerdict(), nil).Once()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Times(3)
	f.repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.paymentClient.On("Charge", ctx, mock.Anything, correlationID).Return(nil).Once()
	f.repo.On("Update", ctx, mock.Anything).Return(nil).Times(2)
	f.deliveryClient.On("AssignCourier", ctx, mock.Anything, correlationID).Return(nil).Once()
	f.notificationClient.On("SendEmail", ctx, mock.Anything, correlationID).
		Return(errors.New("notification service returned 503")).Once()

	placed, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, placed.Status())
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoEmailMeansNoNotification(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	cmd := validCommand(t, correlationID)

	f := newHandlerFixture()
	f.customerValidator.On("Validate", ctx, int64(1), (*int64)(nil), correlationID).
		Return("", nil).Once()
	f.menuValidator.On("Validate", ctx, int64(5), cmd.Items(), correlationID).
		Return(pricedVerdict(), nil).Once()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Times(3)
	f.repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.paymentClient.On("Charge", ctx, mock.MatchedBy(func(req ports.ChargeRequest) bool {
		return req.CustomerEmail == ""
	}), correlationID).Return(nil).Once()
	f.repo.On("Update", ctx, mock.Anything).Return(nil).Times(2)
	f.deliveryClient.On("AssignCourier", ctx, mock.Anything, correlationID).Return(nil).Once()

	_, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	f.notificationClient.AssertNotCalled(t, "SendEmail")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError_RollsBack(t *testing.T) {
	ctx := t.Context()
	correlationID := kernel.NewCorrelationID()
	cmd := validCommand(t, correlationID)

	f := newHandlerFixture()
	f.customerValidator.On("Validate", ctx, int64(1), (*int64)(nil), correlationID).
		Return("jane@example.com", nil).Once()
	f.menuValidator.On("Validate", ctx, int64(5), cmd.Items(), correlationID).
		Return(pricedVerdict(), nil).Once()

	f.factory.On("Create").Return(f.uow).Once()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.repo).Once(),
		f.repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, cmd)
	require.Error(t, err)
	f.paymentClient.AssertNotCalled(t, "Charge")
	f.assertExpectations(t)
}
