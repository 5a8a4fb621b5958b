package output

import (
	"fmt"
	"io"
)

// LineProgress prints "Processing n of total" after every URL, rewriting
// the same terminal line when ansi is set.
type LineProgress struct {
	w    io.Writer
	ansi bool
}

// NewLineProgress creates a progress reporter writing to w.
func NewLineProgress(w io.Writer, ansi bool) *LineProgress {
	return &LineProgress{w: w, ansi: ansi}
}

func (p *LineProgress) ReportProgress(current, total int) {
	if p.ansi {
		fmt.Fprintf(p.w, "\r\033[KProcessing %d of %d", current, total)
		return
	}
	fmt.Fprintf(p.w, "Processing %d of %d\n", current, total)
}

func (p *LineProgress) Finish() {
	if p.ansi {
		fmt.Fprint(p.w, "\r\033[K")
	}
	fmt.Fprint(p.w, "Processing Completed\n\n")
}

// NopProgress discards progress. Verbose scans use it because each outcome
// is printed as soon as it is known.
type NopProgress struct{}

func (NopProgress) ReportProgress(int, int) {}
func (NopProgress) Finish()                 {}
