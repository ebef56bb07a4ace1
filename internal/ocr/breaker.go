package ocr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerRecognizer fails fast with ErrUnavailable after the wrapped
// engine keeps failing, and probes it again after a cool-down.
type BreakerRecognizer struct {
	next Recognizer
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerRecognizer wraps next in a circuit breaker named name.
// The breaker opens once at least 5 requests in a 30s window failed 60% of
// the time, and lets 3 probes through after 10s.
func NewBreakerRecognizer(name string, next Recognizer) *BreakerRecognizer {
	return &BreakerRecognizer{
		next: next,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 3,
			Interval:    30 * time.Second,
			Timeout:     10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 5 && failureRatio >= 0.6
			},
			// A caller giving up says nothing about the engine.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
			},
		}),
	}
}

// Recognize runs the wrapped engine unless the breaker is open.
func (b *BreakerRecognizer) Recognize(ctx context.Context, image []byte) (Result, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Recognize(ctx, image)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err != nil {
		return Result{}, err
	}
	return out.(Result), nil
}

// State reports the breaker state, for logging.
func (b *BreakerRecognizer) State() string {
	return b.cb.State().String()
}
