// Package geo defines the device position port used by the capture flow.
package geo

import (
	"context"
	"errors"
	"time"
)

// Fix is a one-shot device position.
type Fix struct {
	Latitude  float64
	Longitude float64
}

// Failure causes a Locator may surface. Anything else counts as unknown.
var (
	ErrPermissionDenied    = errors.New("geolocation permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("geolocation request timed out")
)

// Locator acquires a single position fix. Implementations do not retry; a
// cancelled context means the caller went away and any late fix is dropped.
type Locator interface {
	CurrentPosition(ctx context.Context) (Fix, error)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(ctx context.Context) (Fix, error)

func (f LocatorFunc) CurrentPosition(ctx context.Context) (Fix, error) {
	return f(ctx)
}

// Fixed returns a Locator that always yields the given fix.
func Fixed(fix Fix) Locator {
	return LocatorFunc(func(context.Context) (Fix, error) {
		return fix, nil
	})
}

// Unavailable returns a Locator that always fails with the given cause.
func Unavailable(err error) Locator {
	return LocatorFunc(func(context.Context) (Fix, error) {
		return Fix{}, err
	})
}

// WithTimeout bounds the wait for a fix. A missed deadline surfaces as
// ErrTimeout; a fix arriving after the deadline is discarded.
func WithTimeout(l Locator, d time.Duration) Locator {
	return LocatorFunc(func(ctx context.Context) (Fix, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		type result struct {
			fix Fix
			err error
		}
		ch := make(chan result, 1)
		go func() {
			fix, err := l.CurrentPosition(ctx)
			ch <- result{fix: fix, err: err}
		}()

		select {
		case res := <-ch:
			if errors.Is(res.err, context.DeadlineExceeded) {
				return Fix{}, ErrTimeout
			}
			return res.fix, res.err
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return Fix{}, ErrTimeout
			}
			return Fix{}, ctx.Err()
		}
	})
}

// FailureMessage maps a locator failure to the message shown to the user.
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "Geolocation access denied. Please check browser settings."
	case errors.Is(err, ErrPositionUnavailable):
		return "Location information is unavailable. Please check your network."
	case errors.Is(err, ErrTimeout):
		return "Geolocation request timed out. Please try again."
	default:
		return "Unknown error. Please try again."
	}
}
