// agent/client.go
package agent

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/ledger"
	logger "github.com/jackoske/AllGoGrand/logging"
	"github.com/jackoske/AllGoGrand/model"
)

// state labels for the request/acquire cycle.
type state string

const (
	stateIdle       state = "idle"
	stateRequesting state = "requesting"
	stateAcquiring  state = "acquiring"
	stateGranted    state = "granted"
	stateExhausted  state = "exhausted"
)

// Config tunes the retry loop.
type Config struct {
	MaxAttempts int
	// RetryDelay separates consecutive acquisition attempts.
	RetryDelay time.Duration
	// SettleDelay separates a confirmed acquisition from the retried
	// request, giving the verifier time to observe the new ledger state.
	SettleDelay time.Duration
	// RequestDelay separates cities in a demo sweep.
	RequestDelay time.Duration
}

// DefaultConfig mirrors the reference timings.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		RetryDelay:   5 * time.Second,
		SettleDelay:  2 * time.Second,
		RequestDelay: 3 * time.Second,
	}
}

// Client is the autonomous agent: it requests weather data and, when denied
// for lack of a credential, purchases one and retries. One Client drives one
// outstanding request/acquire cycle at a time; run one Client per account.
type Client struct {
	account  *ledger.Account
	broker   BrokerClient
	acquirer *Acquirer
	clock    Clock
	config   Config
	stats    *Stats
}

func NewClient(account *ledger.Account, broker BrokerClient, acquirer *Acquirer, config Config, clock Clock) *Client {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if clock == nil {
		clock = NewClock()
	}
	return &Client{
		account:  account,
		broker:   broker,
		acquirer: acquirer,
		clock:    clock,
		config:   config,
		stats:    NewStats(),
	}
}

// Address returns the agent's wallet address.
func (c *Client) Address() string {
	return c.account.Address
}

// Stats returns a snapshot of the agent's counters.
func (c *Client) Stats() Snapshot {
	return c.stats.Snapshot()
}

// RunRequest drives one request through the acquire-and-retry state
// machine. maxAttempts bounds acquisition attempts, not raw requests: the
// initial unauthorized request spends nothing, only entering the acquiring
// state does. A nil error with a denied decision is a terminal denial; the
// error is non-nil only for transport failures and exhausted retries.
func (c *Client) RunRequest(ctx context.Context, city string, maxAttempts int) (*model.AccessDecision, error) {
	if maxAttempts <= 0 {
		maxAttempts = c.config.MaxAttempts
	}

	c.transition(stateIdle, stateRequesting, city)
	decision, err := c.request(ctx, city)
	if err != nil {
		return nil, err
	}
	if decision.Granted {
		c.transition(stateRequesting, stateGranted, city)
		return decision, nil
	}
	if !decision.Denied(model.ReasonUnauthorized) {
		// Buying a credential cannot fix these; stop immediately.
		logger.Warn("Terminal denial, no acquisition attempted",
			zap.String("city", city),
			zap.String("reason", string(decision.Reason)))
		return decision, nil
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		c.transition(stateRequesting, stateAcquiring, city)
		logger.Info("Purchase attempt",
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", maxAttempts))

		acquired, acquireErr := c.acquirer.Acquire(ctx, c.account)
		c.stats.recordAcquisition(acquireErr == nil)

		if acquireErr != nil {
			logger.Warn("Token purchase failed",
				zap.Int("attempt", attempt),
				zap.String("outcome", string(acquired.Outcome)),
				zap.Error(acquireErr))
		} else {
			// The acquirer only moved value; authorization is decided by
			// the broker's re-verification on the retried request.
			if err := c.clock.Sleep(ctx, c.config.SettleDelay); err != nil {
				return nil, err
			}
			c.transition(stateAcquiring, stateRequesting, city)
			decision, err = c.request(ctx, city)
			if err != nil {
				return nil, err
			}
			if decision.Granted {
				c.transition(stateRequesting, stateGranted, city)
				return decision, nil
			}
			if !decision.Denied(model.ReasonUnauthorized) {
				return decision, nil
			}
			logger.Warn("Request denied despite confirmed purchase",
				zap.String("city", city))
		}

		if attempt < maxAttempts {
			if err := c.clock.Sleep(ctx, c.config.RetryDelay); err != nil {
				return nil, err
			}
		}
	}

	c.transition(stateAcquiring, stateExhausted, city)
	return decision, fmt.Errorf("%w: %d acquisition attempts, last reason %s",
		apperrors.ErrRetriesExhausted, maxAttempts, decision.Reason)
}

// RunDemo sweeps a list of cities sequentially and logs a stats summary.
func (c *Client) RunDemo(ctx context.Context, cities []string) {
	if len(cities) == 0 {
		cities = []string{"Berlin", "New York", "Tokyo", "London", "Sydney"}
	}

	for i, city := range cities {
		logger.Info("Autonomous weather request",
			zap.Int("request", i+1),
			zap.Int("total", len(cities)),
			zap.String("city", city))

		decision, err := c.RunRequest(ctx, city, c.config.MaxAttempts)
		switch {
		case err != nil:
			logger.Error("Request failed", zap.String("city", city), zap.Error(err))
		case decision.Granted:
			logger.Info("Weather retrieved",
				zap.String("city", decision.Data.City),
				zap.Float64("temperature", decision.Data.Temperature),
				zap.String("conditions", decision.Data.Description))
		default:
			logger.Warn("Request denied",
				zap.String("city", city),
				zap.String("reason", string(decision.Reason)))
		}

		if i < len(cities)-1 {
			if err := c.clock.Sleep(ctx, c.config.RequestDelay); err != nil {
				return
			}
		}
	}

	snapshot := c.stats.Snapshot()
	logger.Info("Agent statistics",
		zap.String("address", c.account.Address),
		zap.Int("requests", snapshot.RequestsIssued),
		zap.Int("successful", snapshot.SuccessfulRequests),
		zap.Int("tokensPurchased", snapshot.TokensPurchased),
		zap.Float64("successRate", snapshot.SuccessRate()))
}

func (c *Client) request(ctx context.Context, city string) (*model.AccessDecision, error) {
	decision, err := c.broker.GetWeather(ctx, city, c.account.Address)
	c.stats.recordRequest(err == nil && decision != nil && decision.Granted)
	if err != nil {
		return nil, err
	}
	return decision, nil
}

func (c *Client) transition(from, to state, city string) {
	logger.Debug("Agent state transition",
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("city", city))
}
