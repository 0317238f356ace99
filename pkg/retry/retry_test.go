package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "swarmtrack/pkg/errors"
)

func TestPolicyDecide(t *testing.T) {
	policy := NewPolicy(60*time.Second, 5*time.Second)

	tests := []struct {
		name      string
		err       error
		wantRetry bool
		wantDelay time.Duration
	}{
		{
			name:      "rate limit waits 60s",
			err:       &errs.Error{Type: errs.ErrorTypeRateLimit, Message: "rate limit exceeded", Code: 429},
			wantRetry: true,
			wantDelay: 60 * time.Second,
		},
		{
			name:      "network error waits 5s",
			err:       &errs.Error{Type: errs.ErrorTypeNetwork, Message: "connection refused"},
			wantRetry: true,
			wantDelay: 5 * time.Second,
		},
		{
			name:      "auth error aborts",
			err:       &errs.Error{Type: errs.ErrorTypeAuth, Message: "authentication required", Code: 401},
			wantRetry: false,
		},
		{
			name:      "API-level error aborts",
			err:       &errs.Error{Type: errs.ErrorTypeAPI, Message: "api error", Code: 400},
			wantRetry: false,
		},
		{
			name:      "server error aborts",
			err:       &errs.Error{Type: errs.ErrorTypeServer, Message: "server error", Code: 500},
			wantRetry: false,
		},
		{
			name:      "untyped error aborts",
			err:       errors.New("something else"),
			wantRetry: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := policy.Decide(test.err)
			if d.Retry != test.wantRetry {
				t.Errorf("Retry = %v, want %v", d.Retry, test.wantRetry)
			}
			if test.wantRetry && d.Delay != test.wantDelay {
				t.Errorf("Delay = %v, want %v", d.Delay, test.wantDelay)
			}
		})
	}
}

func TestWaitZeroDelay(t *testing.T) {
	if err := Wait(context.Background(), 0); err != nil {
		t.Errorf("expected nil for zero delay, got %v", err)
	}
}

func TestWaitCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Wait(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
