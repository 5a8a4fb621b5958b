package scanner

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestThrottlerUnlimited(t *testing.T) {
	th := NewThrottler(0, false, nil)
	if th.Limit() != rate.Inf {
		t.Fatalf("expected unlimited, got %v", th.Limit())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for range 100 {
		if err := th.Wait(ctx); err != nil {
			t.Fatalf("Wait: %v", err)
		}
	}
}

func TestThrottlerAdaptiveBackoffAndRecovery(t *testing.T) {
	var log bytes.Buffer
	th := NewThrottler(4, true, &log)

	th.RecordStatus(429)
	if got := th.Limit(); got != 2 {
		t.Fatalf("after first 429: limit = %v, want 2", got)
	}
	th.RecordStatus(503)
	if got := th.Limit(); got != 1 {
		t.Fatalf("after 503: limit = %v, want 1", got)
	}
	if !strings.Contains(log.String(), "backing off") {
		t.Errorf("expected back-off log, got %q", log.String())
	}

	th.RecordStatus(200)
	if got := th.Limit(); got != 2 {
		t.Fatalf("after first healthy response: limit = %v, want 2", got)
	}
	th.RecordStatus(200)
	th.RecordStatus(200)
	if got := th.Limit(); got != 4 {
		t.Fatalf("limit should recover to the base rate, got %v", got)
	}
}

func TestThrottlerBacksOffFromUnlimited(t *testing.T) {
	th := NewThrottler(0, true, nil)
	th.RecordStatus(429)
	if got := th.Limit(); got != backoffStart {
		t.Fatalf("limit = %v, want %v", got, backoffStart)
	}
	for range 5 {
		th.RecordStatus(200)
	}
	if got := th.Limit(); got != rate.Inf {
		t.Fatalf("limit should return to unlimited, got %v", got)
	}
}

func TestThrottlerErrorsTriggerBackoff(t *testing.T) {
	th := NewThrottler(10, true, nil)

	th.Record(Outcome{Kind: KindTimeout})
	th.Record(Outcome{Kind: KindRequestError})
	if got := th.Limit(); got != 10 {
		t.Fatalf("two errors should not back off, limit = %v", got)
	}
	th.Record(Outcome{Kind: KindTimeout})
	if got := th.Limit(); got != 5 {
		t.Fatalf("third error should halve the limit, got %v", got)
	}
}

func TestThrottlerFloor(t *testing.T) {
	th := NewThrottler(1, true, nil)
	for range 20 {
		th.RecordStatus(429)
	}
	if got := th.Limit(); got != minLimit {
		t.Fatalf("limit = %v, want floor %v", got, minLimit)
	}
}

func TestThrottlerNonAdaptiveIgnoresSignals(t *testing.T) {
	th := NewThrottler(5, false, nil)
	for range 5 {
		th.RecordStatus(429)
		th.RecordError()
	}
	if got := th.Limit(); got != 5 {
		t.Fatalf("non-adaptive throttler changed its limit to %v", got)
	}
}
