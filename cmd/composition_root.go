package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"orderservice/internal/adapters/out/postgres"
	"orderservice/internal/adapters/out/serviceclients"
	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/application/validation"
	"orderservice/internal/jobs"

	"gorm.io/gorm"
)

const defaultStalledOrderMaxAge = time.Hour

// CompositionRoot wires adapters, validators and handlers together. It is
// the only place that knows concrete types; everything it hands out is
// already assembled.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	customerValidator *validation.CustomerValidator
	menuValidator     *validation.MenuValidator

	paymentClient      *serviceclients.PaymentClient
	deliveryClient     *serviceclients.DeliveryClient
	notificationClient *serviceclients.NotificationClient

	stalledOrderMaxAge time.Duration
}

// NewCompositionRoot builds the object graph from configuration. Fails when
// a duration knob does not parse.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	timeout, err := parseDuration(config.OutboundTimeout, serviceclients.DefaultTimeout)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid OUTBOUND_TIMEOUT: %w", err)
	}

	maxAge, err := parseDuration(config.StalledOrderMaxAge, defaultStalledOrderMaxAge)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid STALLED_ORDER_MAX_AGE: %w", err)
	}

	customerValidator, err := validation.NewCustomerValidator(
		serviceclients.NewCustomerClient(config.CustomerServiceURL, timeout))
	if err != nil {
		return CompositionRoot{}, err
	}

	menuValidator, err := validation.NewMenuValidator(
		serviceclients.NewRestaurantClient(config.RestaurantServiceURL, timeout))
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:             gormDB,
		uowFactory:         *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:             logger,
		customerValidator:  customerValidator,
		menuValidator:      menuValidator,
		paymentClient:      serviceclients.NewPaymentClient(config.PaymentServiceURL, timeout),
		deliveryClient:     serviceclients.NewDeliveryClient(config.DeliveryServiceURL, timeout),
		notificationClient: serviceclients.NewNotificationClient(config.NotificationServiceURL, timeout),
		stalledOrderMaxAge: maxAge,
	}, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	return time.ParseDuration(value)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		c.customerValidator,
		c.menuValidator,
		c.paymentClient,
		c.deliveryClient,
		c.notificationClient,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalledOrdersQueryHandler() queries.GetStalledOrdersQueryHandler {
	return queries.NewGetStalledOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStalledOrdersQueryHandler(), c.stalledOrderMaxAge, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
