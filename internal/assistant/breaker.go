package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"github.com/wagneradl/mission-control/internal/domain"
)

// ErrCircuitOpen is returned while the responder is suspended after
// repeated upstream failures.
var ErrCircuitOpen = errors.New("assistant circuit breaker is open")

// Responder is the subset of the chat assistant the breaker wraps.
type Responder interface {
	Reply(ctx context.Context, history []domain.ChatMessage) (string, error)
}

// BreakerResponder wraps a Responder with a circuit breaker so a failing
// upstream cannot slow every chat message down. Three consecutive failures
// open the circuit for thirty seconds.
type BreakerResponder struct {
	inner   Responder
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerResponder creates a new circuit-breaking responder
func NewBreakerResponder(inner Responder) *BreakerResponder {
	settings := gobreaker.Settings{
		Name:        "AssistantCircuitBreaker",
		MaxRequests: 2,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &BreakerResponder{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Reply forwards to the wrapped responder through the breaker.
func (r *BreakerResponder) Reply(ctx context.Context, history []domain.ChatMessage) (string, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		return r.inner.Reply(ctx, history)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			return "", ErrCircuitOpen
		}
		return "", err
	}
	return result.(string), nil
}
