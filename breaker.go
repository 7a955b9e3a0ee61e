package polyglot

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig configures the circuit breaker.
type BreakerConfig struct {
	MaxFailures uint32        // Consecutive failures before the circuit opens (default: 5)
	Interval    time.Duration // Cyclic period for clearing counts while closed
	Timeout     time.Duration // Open-state duration before a half-open probe (default: 30s)
}

// CircuitProvider wraps a Provider with a circuit breaker. While the circuit
// is open, calls fail fast with a non-retryable ServiceError instead of
// hitting a service that is already struggling.
type CircuitProvider struct {
	provider  Provider
	translate *gobreaker.CircuitBreaker
	detect    *gobreaker.CircuitBreaker
}

// NewCircuitProvider creates a new circuit-breaking provider.
func NewCircuitProvider(provider Provider, cfg BreakerConfig) *CircuitProvider {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Interval: cfg.Interval,
		Timeout:  timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}

	translateSettings := settings
	translateSettings.Name = "translate"
	detectSettings := settings
	detectSettings.Name = "detect"

	return &CircuitProvider{
		provider:  provider,
		translate: gobreaker.NewCircuitBreaker(translateSettings),
		detect:    gobreaker.NewCircuitBreaker(detectSettings),
	}
}

// Translate implements Provider through the circuit breaker.
func (p *CircuitProvider) Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	result, err := p.translate.Execute(func() (interface{}, error) {
		return p.provider.Translate(ctx, req)
	})
	if err != nil {
		return nil, wrapBreakerError(err)
	}
	return result.(*TranslateResult), nil
}

// Detect implements Provider through the circuit breaker.
func (p *CircuitProvider) Detect(ctx context.Context, text string) (*Detection, error) {
	detection, err := p.detect.Execute(func() (interface{}, error) {
		return p.provider.Detect(ctx, text)
	})
	if err != nil {
		return nil, wrapBreakerError(err)
	}
	return detection.(*Detection), nil
}

// State returns the translate circuit's current state.
func (p *CircuitProvider) State() gobreaker.State {
	return p.translate.State()
}

func wrapBreakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &ServiceError{
			Message:   "translation service unavailable",
			Cause:     err,
			Retryable: false,
		}
	}
	return err
}

// Verify CircuitProvider implements Provider
var _ Provider = (*CircuitProvider)(nil)
