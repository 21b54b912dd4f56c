package gstin

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/sony/gobreaker"

	"github.com/goliatone/go-formgen-gst/pkg/gst"
)

func TestBreakerDirectory_PassesThrough(t *testing.T) {
	dir := NewBreakerDirectory(testDirectory(t), gobreaker.Settings{})

	got, err := dir.GSTINs(context.Background(), "Acme Traders", gst.PartySupplier)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0] != "24AAACC1206D1ZM" {
		t.Fatalf("unexpected values %#v", got)
	}
}

func TestBreakerDirectory_OpensAfterFailures(t *testing.T) {
	backendErr := errors.New("backend down")
	calls := 0
	backend := DirectoryFunc(func(context.Context, string, gst.PartyType) ([]string, error) {
		calls++
		return nil, backendErr
	})
	dir := NewBreakerDirectory(backend, gobreaker.Settings{
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := dir.GSTINs(context.Background(), "Acme", gst.PartyCompany); !errors.Is(err, backendErr) {
			t.Fatalf("call %d: expected backend error, got %v", i, err)
		}
	}
	if dir.State() != gobreaker.StateOpen {
		t.Fatalf("expected open breaker, got %s", dir.State())
	}

	_, err := dir.GSTINs(context.Background(), "Acme", gst.PartyCompany)
	if !errors.Is(err, ErrDirectoryUnavailable) {
		t.Fatalf("expected ErrDirectoryUnavailable, got %v", err)
	}
	var httpErr HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode() != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 status error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected backend to be skipped while open, got %d calls", calls)
	}
}

func TestBreakerDirectory_CallerCancellationDoesNotTrip(t *testing.T) {
	dir := NewBreakerDirectory(testDirectory(t), gobreaker.Settings{})

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 10; i++ {
		if _, err := dir.GSTINs(cancelled, "Acme Traders", gst.PartySupplier); !errors.Is(err, context.Canceled) {
			t.Fatalf("call %d: expected context.Canceled, got %v", i, err)
		}
	}
	if dir.State() != gobreaker.StateClosed {
		t.Fatalf("expected closed breaker after caller cancellations, got %s", dir.State())
	}

	got, err := dir.GSTINs(context.Background(), "Acme Traders", gst.PartySupplier)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected lookup to succeed, got %#v, %v", got, err)
	}
}

func TestBreakerDirectory_CustomIsSuccessfulKept(t *testing.T) {
	dir := NewBreakerDirectory(testDirectory(t), gobreaker.Settings{
		IsSuccessful: func(err error) bool { return err == nil },
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	})

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, _ = dir.GSTINs(cancelled, "Acme Traders", gst.PartySupplier)
	if dir.State() != gobreaker.StateOpen {
		t.Fatalf("expected caller-supplied IsSuccessful to count cancellation, got %s", dir.State())
	}
}
