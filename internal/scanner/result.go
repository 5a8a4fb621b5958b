package scanner

import (
	"strconv"
	"time"
)

// Kind classifies the outcome of a single URL check.
type Kind int

const (
	KindOK           Kind = iota // response received without redirect history
	KindRedirect                 // one or more redirects were followed
	KindTimeout                  // the request exceeded the per-request timeout
	KindRequestError             // any other transport-level failure
)

// RedirectStatus is reported for every outcome that followed a redirect,
// whatever the final status code was.
const RedirectStatus = 302

// Outcome holds the result of probing one URL.
type Outcome struct {
	Kind       Kind
	URL        string // the input line, unmodified
	StatusCode int    // set for KindOK and KindRedirect
	Chain      string // " > target" per redirect hop, KindRedirect only
	Detail     string // transport error text, KindRequestError only
}

// Label returns the status column: the numeric code, "Timeout" or
// "Request Error".
func (o Outcome) Label() string {
	switch o.Kind {
	case KindTimeout:
		return "Timeout"
	case KindRequestError:
		return "Request Error"
	default:
		return strconv.Itoa(o.StatusCode)
	}
}

// Message returns the text stored next to the label in reports and
// result files.
func (o Outcome) Message() string {
	switch o.Kind {
	case KindRedirect:
		return o.URL + " " + o.Chain
	case KindRequestError:
		return o.URL + " - " + o.Detail
	default:
		return o.URL
	}
}

// VerboseLine is printed immediately after each check in verbose mode.
func (o Outcome) VerboseLine() string {
	if o.Kind == KindRedirect {
		return o.Label() + " - " + o.URL + " " + o.Chain
	}
	return o.Label() + " - " + o.URL
}

// ReportLine is the uncolored line for the end-of-scan report.
func (o Outcome) ReportLine() string {
	return o.Label() + " - " + o.Message()
}

// Highlight reports whether the outcome is neither a 200 nor a 302, which
// the console report renders distinctly.
func (o Outcome) Highlight() bool {
	switch o.Kind {
	case KindRedirect:
		return false
	case KindOK:
		return o.StatusCode != 200 && o.StatusCode != RedirectStatus
	default:
		return true
	}
}

// Summary holds aggregate counts for a scan.
type Summary struct {
	Total    int
	Total200 int
	Total302 int
}

// Add folds one outcome into the summary.
func (s *Summary) Add(o Outcome) {
	s.Total++
	switch {
	case o.Kind == KindRedirect:
		s.Total302++
	case o.Kind == KindOK && o.StatusCode == 200:
		s.Total200++
	}
}

// Summarize folds an ordered outcome sequence into a Summary.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		s.Add(o)
	}
	return s
}

// Report is the complete result of one scan.
type Report struct {
	Outcomes []Outcome
	Summary  Summary
	Started  time.Time
	Duration time.Duration
}
