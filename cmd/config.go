package cmd

import "time"

// Config carries everything the service needs at startup: HTTP binding,
// database connection, and the customer validation gateway tunables.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// CustomerServiceURL is the base URL of the customer management service.
	CustomerServiceURL string

	// Gateway resilience tunables. Zero values fall back to the gateway's
	// built-in defaults.
	CustomerServiceTimeout              time.Duration
	CustomerServiceMaxRetries           uint64
	CustomerServiceRetryInitialInterval time.Duration
	CustomerServiceRetryMaxInterval     time.Duration
	CustomerServiceBreakerFailureRatio  float64
	CustomerServiceBreakerMinRequests   uint32
	CustomerServiceBreakerInterval      time.Duration
	CustomerServiceBreakerOpenTimeout   time.Duration
}
