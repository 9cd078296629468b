package geo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFixedLocator(t *testing.T) {
	l := Fixed(Fix{Latitude: 42.36, Longitude: -71.06})
	fix, err := l.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if fix.Latitude != 42.36 || fix.Longitude != -71.06 {
		t.Fatalf("unexpected fix %+v", fix)
	}
}

func TestUnavailableLocator(t *testing.T) {
	l := Unavailable(ErrPermissionDenied)
	if _, err := l.CurrentPosition(context.Background()); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestWithTimeoutSlowLocator(t *testing.T) {
	slow := LocatorFunc(func(ctx context.Context) (Fix, error) {
		select {
		case <-time.After(5 * time.Second):
			return Fix{Latitude: 1}, nil
		case <-ctx.Done():
			return Fix{}, ctx.Err()
		}
	})
	l := WithTimeout(slow, 20*time.Millisecond)
	if _, err := l.CurrentPosition(context.Background()); !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestWithTimeoutFastLocator(t *testing.T) {
	l := WithTimeout(Fixed(Fix{Latitude: 1}), time.Second)
	fix, err := l.CurrentPosition(context.Background())
	if err != nil || fix.Latitude != 1 {
		t.Fatalf("got %+v, %v", fix, err)
	}
}

func TestFailureMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrPermissionDenied, "Geolocation access denied. Please check browser settings."},
		{ErrPositionUnavailable, "Location information is unavailable. Please check your network."},
		{ErrTimeout, "Geolocation request timed out. Please try again."},
		{errors.New("boom"), "Unknown error. Please try again."},
	}
	for _, tc := range cases {
		if got := FailureMessage(tc.err); got != tc.want {
			t.Fatalf("FailureMessage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
