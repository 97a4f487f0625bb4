package cmd

// Config carries everything the service reads from its environment: the
// HTTP port, the database connection, the base URLs of the five collaborator
// services, and tuning knobs for outbound calls and the stalled order job.
// Durations are kept as strings and parsed when the composition root is
// built.
type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	CustomerServiceURL     string
	RestaurantServiceURL   string
	PaymentServiceURL      string
	DeliveryServiceURL     string
	NotificationServiceURL string
	OutboundTimeout        string
	StalledOrderMaxAge     string
}
