// README: Retrying call executor; timeout race, one-shot classification, exponential backoff.
package ai

import (
	"context"
	"errors"
	"log"
	"time"
)

// Retry defaults matching the generation service's rate-limit behaviour.
const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = 2 * time.Second
)

// RetryConfig bounds the retry loop. Zero values fall back to the defaults.
type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
}

// Executor runs generation calls with a hard per-attempt timeout and
// retries quota/overload failures with exponential backoff. It holds no
// per-call state, so one Executor is shared by concurrent requests.
type Executor struct {
	cfg   RetryConfig
	sleep func(time.Duration)
}

// NewExecutor builds an Executor from cfg, filling in defaults.
func NewExecutor(cfg RetryConfig) *Executor {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = DefaultInitialDelay
	}
	return &Executor{cfg: cfg, sleep: time.Sleep}
}

// Do executes call with the given per-attempt timeout. Transient failures
// (quota, overload) are retried up to MaxRetries times with delays
// doubling from InitialDelay; the delay is only applied between attempts.
// Every other failure surfaces immediately as an *APIError. At most
// MaxRetries+1 attempts are made.
func (e *Executor) Do(ctx context.Context, timeout time.Duration, call func(context.Context) (*RawResponse, error)) (*RawResponse, error) {
	delay := e.cfg.InitialDelay
	for attempt := 0; ; attempt++ {
		resp, err := e.attempt(ctx, timeout, call)
		if err == nil {
			return resp, nil
		}

		apiErr := classify(err)
		if !apiErr.Retryable() || attempt >= e.cfg.MaxRetries {
			return nil, apiErr
		}

		log.Printf("generation attempt failed (%s), retrying in %s (%d attempts left)",
			apiErr.Code, delay, e.cfg.MaxRetries-attempt)
		e.sleep(delay)
		delay *= 2
	}
}

func (e *Executor) attempt(ctx context.Context, timeout time.Duration, call func(context.Context) (*RawResponse, error)) (*RawResponse, error) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := call(cctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || cctx.Err() == context.DeadlineExceeded {
			return nil, newAPIError(CodeTimeout, 408,
				"Request timed out. The API is taking too long to respond. Please try again.", err)
		}
		return nil, err
	}
	if resp == nil {
		return nil, newAPIError(CodeInvalidResponse, 500, "Invalid response format from API", nil)
	}
	return resp, nil
}
