package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/doeshing/shellmate-go/internal/domain"
	"github.com/doeshing/shellmate-go/internal/pkg/logger"
)

// scriptedInvoker replays a fixed sequence of responses.
type scriptedInvoker struct {
	responses []domain.BackendResponse
	calls     int
}

func (s *scriptedInvoker) Invoke(context.Context, domain.Query) domain.BackendResponse {
	idx := s.calls
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	s.calls++
	return s.responses[idx]
}

func newResolver(inv *scriptedInvoker, slept *[]time.Duration) *RetryResolver {
	return &RetryResolver{
		Inner:  inv,
		Config: DefaultRetryConfig(),
		Logger: logger.NewNop(),
		Sleep: func(_ context.Context, d time.Duration) error {
			*slept = append(*slept, d)
			return nil
		},
	}
}

func success(cmd string) domain.BackendResponse {
	return domain.BackendResponse{Kind: domain.ResponseSuccess, Command: cmd}
}

func throttled() domain.BackendResponse {
	return domain.BackendResponse{Kind: domain.ResponseApplicationError, Message: "throttled"}
}

func transport() domain.BackendResponse {
	return domain.BackendResponse{Kind: domain.ResponseTransportFailure, Err: errors.New("dial tcp: refused")}
}

func TestResolveReturnsFirstSuccessWithoutBackoff(t *testing.T) {
	inv := &scriptedInvoker{responses: []domain.BackendResponse{success("ls -la")}}
	var slept []time.Duration

	resp := newResolver(inv, &slept).Resolve(context.Background(), domain.Query{Text: "list files"})
	if resp.Kind != domain.ResponseSuccess || resp.Command != "ls -la" {
		t.Fatalf("resp = %+v", resp)
	}
	if inv.calls != 1 {
		t.Fatalf("calls = %d, want 1", inv.calls)
	}
	if len(slept) != 0 {
		t.Fatalf("slept = %v, want none", slept)
	}
}

func TestResolveRetriesThrottlingWithSchedule(t *testing.T) {
	inv := &scriptedInvoker{responses: []domain.BackendResponse{
		throttled(), throttled(), throttled(), success("df -h"),
	}}
	var slept []time.Duration

	resp := newResolver(inv, &slept).Resolve(context.Background(), domain.Query{Text: "disk usage"})
	if resp.Kind != domain.ResponseSuccess || resp.Command != "df -h" {
		t.Fatalf("resp = %+v", resp)
	}
	want := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}
	if len(slept) != len(want) {
		t.Fatalf("slept = %v, want %v", slept, want)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Fatalf("slept[%d] = %v, want %v", i, slept[i], want[i])
		}
	}
}

func TestResolveNeverExceedsMaxAttempts(t *testing.T) {
	inv := &scriptedInvoker{responses: []domain.BackendResponse{
		transport(), transport(), transport(), transport(), transport(), transport(),
	}}
	var slept []time.Duration

	resp := newResolver(inv, &slept).Resolve(context.Background(), domain.Query{Text: "q"})
	if resp.Kind != domain.ResponseTransportFailure {
		t.Fatalf("Kind = %v, want transport failure as terminal", resp.Kind)
	}
	if inv.calls != domain.DefaultRetryAttempts {
		t.Fatalf("calls = %d, want %d", inv.calls, domain.DefaultRetryAttempts)
	}

	// Scheduled backoff before attempt k is 2*(2^(k-1)-1) seconds, so four
	// waits precede the fifth attempt: 2+4+8+16 = 30s.
	var total time.Duration
	for k, d := range slept {
		total += d
		if want := 2 * time.Second << k; d != want {
			t.Fatalf("slept[%d] = %v, want %v", k, d, want)
		}
	}
	if len(slept) != 4 || total != 30*time.Second {
		t.Fatalf("slept %d waits totalling %v, want 4 waits totalling 30s", len(slept), total)
	}
}

func TestResolveFailsFastOnValidationError(t *testing.T) {
	inv := &scriptedInvoker{responses: []domain.BackendResponse{
		{Kind: domain.ResponseApplicationError, Message: "invalid request"},
	}}
	var slept []time.Duration

	resp := newResolver(inv, &slept).Resolve(context.Background(), domain.Query{Text: "q"})
	if resp.Kind != domain.ResponseApplicationError {
		t.Fatalf("Kind = %v", resp.Kind)
	}
	if inv.calls != 1 {
		t.Fatalf("calls = %d, want single attempt", inv.calls)
	}
	if len(slept) != 0 {
		t.Fatalf("slept = %v, want no backoff", slept)
	}
}

func TestResolveFailsFastOnDecodeFailure(t *testing.T) {
	inv := &scriptedInvoker{responses: []domain.BackendResponse{
		{Kind: domain.ResponseDecodeFailure, Message: "no command field in response"},
	}}
	var slept []time.Duration

	resp := newResolver(inv, &slept).Resolve(context.Background(), domain.Query{Text: "q"})
	if resp.Kind != domain.ResponseDecodeFailure {
		t.Fatalf("Kind = %v", resp.Kind)
	}
	if inv.calls != 1 || len(slept) != 0 {
		t.Fatalf("calls = %d slept = %v, want one attempt and no backoff", inv.calls, slept)
	}
}

func TestResolveWithNilLoggerDoesNotPanic(t *testing.T) {
	// Exercises every logging site: a retried failure, a success after
	// retry, and full exhaustion.
	inv := &scriptedInvoker{responses: []domain.BackendResponse{throttled(), success("uptime")}}
	resolver := &RetryResolver{
		Inner:  inv,
		Config: DefaultRetryConfig(),
		Sleep:  func(context.Context, time.Duration) error { return nil },
	}

	resp := resolver.Resolve(context.Background(), domain.Query{Text: "q"})
	if resp.Kind != domain.ResponseSuccess || resp.Command != "uptime" {
		t.Fatalf("resp = %+v", resp)
	}

	exhausted := &scriptedInvoker{responses: []domain.BackendResponse{transport()}}
	resolver.Inner = exhausted
	resp = resolver.Resolve(context.Background(), domain.Query{Text: "q"})
	if resp.Kind != domain.ResponseTransportFailure {
		t.Fatalf("Kind = %v, want transport failure as terminal", resp.Kind)
	}
	if exhausted.calls != domain.DefaultRetryAttempts {
		t.Fatalf("calls = %d, want %d", exhausted.calls, domain.DefaultRetryAttempts)
	}
}

func TestResolveAbortsWhenCancelledDuringBackoff(t *testing.T) {
	inv := &scriptedInvoker{responses: []domain.BackendResponse{transport(), transport()}}
	resolver := &RetryResolver{
		Inner:  inv,
		Config: DefaultRetryConfig(),
		Logger: logger.NewNop(),
		Sleep: func(context.Context, time.Duration) error {
			return context.Canceled
		},
	}

	resp := resolver.Resolve(context.Background(), domain.Query{Text: "q"})
	if resp.Kind != domain.ResponseTransportFailure || !errors.Is(resp.Err, context.Canceled) {
		t.Fatalf("resp = %+v, want cancellation surfaced", resp)
	}
	if inv.calls != 1 {
		t.Fatalf("calls = %d, want 1", inv.calls)
	}
}
