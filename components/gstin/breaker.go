package gstin

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/goliatone/go-formgen-gst/pkg/gst"
)

// ErrDirectoryUnavailable is returned while the breaker rejects lookups.
var ErrDirectoryUnavailable = errors.New("gstin: directory unavailable")

// BreakerDirectory guards a remote Directory with a circuit breaker. While
// the breaker is open lookups fail fast with a 503 StatusError wrapping
// ErrDirectoryUnavailable.
type BreakerDirectory struct {
	dir Directory
	cb  *gobreaker.CircuitBreaker
}

// NewBreakerDirectory wraps dir. A blank settings.Name defaults to
// "gstin-directory". When settings.IsSuccessful is nil, cancelled or expired
// caller contexts do not count as directory failures.
func NewBreakerDirectory(dir Directory, settings gobreaker.Settings) *BreakerDirectory {
	if settings.Name == "" {
		settings.Name = "gstin-directory"
	}
	if settings.IsSuccessful == nil {
		settings.IsSuccessful = func(err error) bool {
			return err == nil || isContextError(err)
		}
	}
	return &BreakerDirectory{dir: dir, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *BreakerDirectory) GSTINs(ctx context.Context, party string, partyType gst.PartyType) ([]string, error) {
	if b == nil || b.dir == nil {
		return nil, StatusError{Code: http.StatusServiceUnavailable, Err: ErrDirectoryUnavailable}
	}
	out, err := b.cb.Execute(func() (interface{}, error) {
		values, err := b.dir.GSTINs(ctx, party, partyType)
		if err != nil {
			return nil, err
		}
		return values, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, StatusError{
			Code: http.StatusServiceUnavailable,
			Err:  fmt.Errorf("%w: %s: %v", ErrDirectoryUnavailable, b.cb.Name(), err),
		}
	}
	if err != nil {
		return nil, err
	}
	values, _ := out.([]string)
	return values, nil
}

// State reports the breaker state.
func (b *BreakerDirectory) State() gobreaker.State {
	return b.cb.State()
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
