package customers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

const breakerName = "customer-service"

// Config tunes the gateway's resilience policy. Zero values fall back to
// the defaults below.
type Config struct {
	// BaseURL is the customer service root, e.g. "http://customers:8081".
	BaseURL string

	// RequestTimeout bounds one network round trip.
	RequestTimeout time.Duration

	// MaxRetries is the number of additional attempts after the first call.
	MaxRetries uint64

	// RetryInitialInterval is the first backoff delay; subsequent delays
	// grow exponentially up to RetryMaxInterval.
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration

	// BreakerFailureRatio opens the breaker once this failure ratio is
	// reached within a rolling window, provided at least BreakerMinRequests
	// calls were observed.
	BreakerFailureRatio float64
	BreakerMinRequests  uint32

	// BreakerInterval is the rolling window over which outcomes are counted.
	BreakerInterval time.Duration

	// BreakerOpenTimeout is how long the breaker stays open before allowing
	// a half-open trial call.
	BreakerOpenTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 3 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.RetryInitialInterval == 0 {
		c.RetryInitialInterval = 100 * time.Millisecond
	}
	if c.RetryMaxInterval == 0 {
		c.RetryMaxInterval = 2 * time.Second
	}
	if c.BreakerFailureRatio == 0 {
		c.BreakerFailureRatio = 0.5
	}
	if c.BreakerMinRequests == 0 {
		c.BreakerMinRequests = 5
	}
	if c.BreakerInterval == 0 {
		c.BreakerInterval = 60 * time.Second
	}
	if c.BreakerOpenTimeout == 0 {
		c.BreakerOpenTimeout = 30 * time.Second
	}
	return c
}

// ResilientCustomerGateway implements ports.CustomerValidationGateway with a
// circuit breaker wrapped around a bounded exponential retry.
//
// The breaker is the outermost layer: while it is open, calls fail fast with
// ports.ErrCustomerServiceUnavailable without touching the network and
// without consuming any retry budget. Retries apply only to transient
// failures of the underlying call, which is a pure read and safe to repeat.
//
// An authoritative "customer does not exist" answer is a successful call:
// it returns (false, nil), never trips the breaker, and is never retried.
// Unavailability is never downgraded to a not-found verdict.
type ResilientCustomerGateway struct {
	client  existsClient
	breaker *gobreaker.CircuitBreaker
	cfg     Config
	logger  *slog.Logger
}

// NewResilientCustomerGateway creates the gateway for the customer service
// at cfg.BaseURL.
func NewResilientCustomerGateway(cfg Config, logger *slog.Logger) *ResilientCustomerGateway {
	cfg = cfg.withDefaults()

	return newResilientCustomerGateway(
		newHTTPExistsClient(cfg.BaseURL, cfg.RequestTimeout),
		cfg,
		logger,
	)
}

func newResilientCustomerGateway(client existsClient, cfg Config, logger *slog.Logger) *ResilientCustomerGateway {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     breakerName,
		Interval: cfg.BreakerInterval,
		Timeout:  cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.BreakerMinRequests && failureRatio >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &ResilientCustomerGateway{
		client:  client,
		breaker: breaker,
		cfg:     cfg,
		logger:  logger,
	}
}

// CustomerExists reports whether the customer is known to the remote
// authority. Returns ports.ErrCustomerServiceUnavailable when the breaker is
// open or the retry budget is exhausted.
func (g *ResilientCustomerGateway) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.existsWithRetry(ctx, customerID)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			g.logger.Warn("customer validation short-circuited",
				slog.String("customer_id", customerID),
			)
			return false, fmt.Errorf("customer validation short-circuited: %w", ports.ErrCustomerServiceUnavailable)
		}

		g.logger.Error("customer validation failed",
			slog.String("customer_id", customerID),
			slog.Any("error", err),
		)
		return false, fmt.Errorf("%w: %w", ports.ErrCustomerServiceUnavailable, err)
	}

	exists, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: unexpected gateway result type", ports.ErrCustomerServiceUnavailable)
	}

	return exists, nil
}

func (g *ResilientCustomerGateway) existsWithRetry(ctx context.Context, customerID string) (bool, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(g.newBackOff(), g.cfg.MaxRetries),
		ctx,
	)

	attempt := 0
	return backoff.RetryWithData(func() (bool, error) {
		attempt++
		exists, err := g.client.exists(ctx, customerID)
		if err != nil {
			g.logger.Debug("customer validation attempt failed",
				slog.String("customer_id", customerID),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
			return false, err
		}
		return exists, nil
	}, policy)
}

func (g *ResilientCustomerGateway) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.cfg.RetryInitialInterval
	b.MaxInterval = g.cfg.RetryMaxInterval
	return b
}
