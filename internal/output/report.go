package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/maxvaer/recontools/internal/scanner"
)

// RenderReport returns the end-of-scan console lines in input order.
// Outcomes that are neither a plain 200 nor a redirect get a red label
// when colorize is set.
func RenderReport(outcomes []scanner.Outcome, colorize bool) []string {
	highlight := color.New(color.FgRed)
	if colorize {
		highlight.EnableColor()
	} else {
		highlight.DisableColor()
	}

	lines := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Highlight() {
			lines = append(lines, highlight.Sprint(o.Label())+" - "+o.Message())
			continue
		}
		lines = append(lines, o.ReportLine())
	}
	return lines
}

// PrintSummary writes the three-line summary block.
func PrintSummary(w io.Writer, s scanner.Summary) {
	fmt.Fprintf(w, "%d URLs have been analyzed.\n", s.Total)
	fmt.Fprintf(w, "%d URLs have a HTTP Status of 200\n", s.Total200)
	fmt.Fprintf(w, "%d URLS have a HTTP status of 302\n", s.Total302)
}
