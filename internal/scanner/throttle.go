package scanner

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/time/rate"
)

const (
	// backoffStart is the first limit applied when an unlimited scan gets
	// throttled (one request every 500ms).
	backoffStart = rate.Limit(2)
	// minLimit is the slowest pace the throttler backs off to (one request
	// every 30s).
	minLimit = rate.Limit(1.0 / 30)
)

// Throttler paces requests. When adaptive, it halves the allowed rate on
// 429/503 responses or repeated errors and gradually recovers toward the
// base rate once responses are healthy.
type Throttler struct {
	mu          sync.Mutex
	limiter     *rate.Limiter
	base        rate.Limit
	consecutive int // consecutive throttle signals
	adaptive    bool
	log         io.Writer // nil = quiet
}

// NewThrottler creates a throttler allowing rps requests per second.
// rps <= 0 means unlimited.
func NewThrottler(rps float64, adaptive bool, log io.Writer) *Throttler {
	base := rate.Inf
	if rps > 0 {
		base = rate.Limit(rps)
	}
	return &Throttler{
		limiter:  rate.NewLimiter(base, 1),
		base:     base,
		adaptive: adaptive,
		log:      log,
	}
}

// Wait blocks until the next request is allowed or ctx is done.
func (t *Throttler) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// Limit returns the currently allowed requests per second.
func (t *Throttler) Limit() rate.Limit {
	return t.limiter.Limit()
}

// Record feeds one outcome into the adaptive back-off.
func (t *Throttler) Record(o Outcome) {
	switch o.Kind {
	case KindTimeout, KindRequestError:
		t.RecordError()
	default:
		t.RecordStatus(o.StatusCode)
	}
}

// RecordStatus updates the throttler based on a response status code.
func (t *Throttler) RecordStatus(statusCode int) {
	if !t.adaptive {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if statusCode == 429 || statusCode == 503 {
		t.consecutive++
		t.slowDown(fmt.Sprintf("Rate limited (HTTP %d)", statusCode))
		return
	}

	t.consecutive = 0
	t.recover()
}

// RecordError flags a timeout or transport error as a possible rate limit
// signal. Three in a row trigger a back-off.
func (t *Throttler) RecordError() {
	if !t.adaptive {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.consecutive++
	if t.consecutive >= 3 {
		t.slowDown("Multiple errors")
	}
}

// slowDown halves the current limit. Callers hold t.mu.
func (t *Throttler) slowDown(reason string) {
	current := t.limiter.Limit()
	next := current / 2
	if current == rate.Inf {
		next = backoffStart
	}
	if next < minLimit {
		next = minLimit
	}
	if next == current {
		return
	}
	t.limiter.SetLimit(next)
	t.logf("\n[!] %s, backing off to %.2f req/s\n", reason, float64(next))
}

// recover doubles the current limit, capped at the base rate. Callers
// hold t.mu.
func (t *Throttler) recover() {
	current := t.limiter.Limit()
	if current == t.base {
		return
	}
	next := current * 2
	if t.base != rate.Inf && next > t.base {
		next = t.base
	}
	if t.base == rate.Inf && next > backoffStart*8 {
		next = rate.Inf
	}
	t.limiter.SetLimit(next)
	if next != rate.Inf {
		t.logf("\n[+] Recovering, rate now %.2f req/s\n", float64(next))
	}
}

func (t *Throttler) logf(format string, a ...any) {
	if t.log != nil {
		_, _ = fmt.Fprintf(t.log, format, a...)
	}
}
