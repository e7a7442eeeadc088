package backend

import (
	"context"
	"time"

	"github.com/doeshing/shellmate-go/internal/domain"
	"github.com/doeshing/shellmate-go/internal/ports"
)

// RetryConfig bounds the retry loop. The backoff schedule is deterministic:
// base, 2*base, 4*base, ... with no jitter, so total scheduled delay before
// attempt k is base*(2^(k-1) - 1).
type RetryConfig struct {
	MaxAttempts int
	BackoffBase time.Duration
}

// DefaultRetryConfig returns the standard 5-attempt schedule (2s, 4s, 8s,
// 16s, 32s).
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: domain.DefaultRetryAttempts,
		BackoffBase: domain.DefaultBackoffBase,
	}
}

// RetryResolver wraps an Invoker with the bounded backoff policy. Transport
// failures and throttle-classified application errors are retried; everything
// else returns immediately. The invoker itself never retries.
type RetryResolver struct {
	Inner  ports.Invoker
	Config RetryConfig
	Logger ports.Logger

	// Sleep is swapped out in tests; nil means a context-aware real sleep.
	Sleep func(context.Context, time.Duration) error
}

// Resolve implements ports.Resolver. It returns the first success or, once
// attempts are exhausted, the last response as terminal.
func (r *RetryResolver) Resolve(ctx context.Context, query domain.Query) domain.BackendResponse {
	attempts := r.Config.MaxAttempts
	if attempts <= 0 {
		attempts = domain.DefaultRetryAttempts
	}
	base := r.Config.BackoffBase
	if base <= 0 {
		base = domain.DefaultBackoffBase
	}

	log := r.log()

	var last domain.BackendResponse
	for attempt := 1; attempt <= attempts; attempt++ {
		last = r.Inner.Invoke(ctx, query)
		if last.Kind == domain.ResponseSuccess {
			if attempt > 1 {
				log.Info("backend call succeeded after retry", map[string]interface{}{
					"attempt": attempt,
				})
			}
			return last
		}
		if !last.Transient() {
			return last
		}
		if attempt == attempts {
			break
		}

		delay := base << (attempt - 1)
		log.Warn("backend attempt failed, backing off", map[string]interface{}{
			"attempt": attempt,
			"of":      attempts,
			"kind":    string(last.Kind),
			"delay":   delay.String(),
		})
		if err := r.sleep(ctx, delay); err != nil {
			return domain.BackendResponse{
				Kind:    domain.ResponseTransportFailure,
				Message: "cancelled during backoff",
				Err:     err,
			}
		}
	}

	log.Error("backend attempts exhausted", nil, map[string]interface{}{
		"attempts": attempts,
		"kind":     string(last.Kind),
	})
	return last
}

// log returns the configured logger, falling back to a discard logger so a
// zero-value resolver remains safe to use.
func (r *RetryResolver) log() ports.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

func (r *RetryResolver) sleep(ctx context.Context, d time.Duration) error {
	if r.Sleep != nil {
		return r.Sleep(ctx, d)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ ports.Resolver = (*RetryResolver)(nil)
