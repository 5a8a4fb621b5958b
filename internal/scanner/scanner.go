// Package scanner checks the HTTP status of a list of URLs, one request at
// a time, and classifies every result as a 200-style response, a followed
// redirect, a timeout or a request error.
package scanner

import (
	"context"
	"fmt"
	"time"
)

// ProgressReporter receives progress after every checked URL.
type ProgressReporter interface {
	ReportProgress(current, total int)
	Finish()
}

// Config holds the optional collaborators of a Scanner.
type Config struct {
	Progress  ProgressReporter // nil = no progress output
	Throttler *Throttler       // nil = unpaced
	Pauser    *Pauser          // nil = no pause support
	OnOutcome func(o Outcome)  // called right after each check
}

// Scanner runs the sequential check loop.
type Scanner struct {
	req *Requester
	cfg Config
}

// New creates a Scanner that issues requests through req.
func New(req *Requester, cfg Config) *Scanner {
	return &Scanner{req: req, cfg: cfg}
}

// Scan checks every URL in order and returns one outcome per URL in the
// same order. Per-URL failures are recorded in the report; the returned
// error is non-nil only when ctx ends the scan early, in which case the
// report holds the URLs checked so far.
func (s *Scanner) Scan(ctx context.Context, urls []string) (*Report, error) {
	report := &Report{
		Outcomes: make([]Outcome, 0, len(urls)),
		Started:  time.Now(),
	}
	total := len(urls)

	defer func() {
		report.Duration = time.Since(report.Started)
		if s.cfg.Pauser != nil {
			report.Duration -= s.cfg.Pauser.PausedDuration()
		}
		if s.cfg.Progress != nil {
			s.cfg.Progress.Finish()
		}
	}()

	for i, raw := range urls {
		if s.cfg.Pauser != nil {
			s.cfg.Pauser.Wait()
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if s.cfg.Throttler != nil {
			if err := s.cfg.Throttler.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return report, ctx.Err()
				}
				return report, fmt.Errorf("waiting for rate limiter: %w", err)
			}
		}

		outcome := s.req.Check(ctx, raw)
		if err := ctx.Err(); err != nil {
			// The request was cut short by cancellation, not by the server.
			return report, err
		}
		if s.cfg.Throttler != nil {
			s.cfg.Throttler.Record(outcome)
		}

		report.Outcomes = append(report.Outcomes, outcome)
		report.Summary.Add(outcome)

		if s.cfg.OnOutcome != nil {
			s.cfg.OnOutcome(outcome)
		}
		if s.cfg.Progress != nil {
			s.cfg.Progress.ReportProgress(i+1, total)
		}
	}

	return report, nil
}
