// Package runner wires the options of a status check to the scanner, the
// progress line, the console report and the results file.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/maxvaer/recontools/internal/config"
	"github.com/maxvaer/recontools/internal/output"
	"github.com/maxvaer/recontools/internal/scanner"
	"github.com/maxvaer/recontools/internal/urllist"
)

// resultsPrefix names the results file: HttpStatusCheck_<timestamp>.<ext>.
const resultsPrefix = "HttpStatusCheck"

var (
	good = color.New(color.FgGreen)
	bad  = color.New(color.FgRed)
)

// Run checks every URL listed in opts.URLsFile. Results and the summary go
// to stdout; status lines and progress go to stderr. When ctx is cancelled
// mid-scan the partial report is still printed and returned together with
// the error.
func Run(ctx context.Context, opts *config.StatusOptions, stdout, stderr io.Writer) (*scanner.Report, error) {
	// 1. Load URLs. A missing file stops here, before any request.
	urls, err := urllist.Load(opts.URLsFile)
	if err != nil {
		return nil, fmt.Errorf("loading URLs from %s: %w", opts.URLsFile, err)
	}
	fmt.Fprintf(stderr, "%s Loaded %d URLs from %s\n", good.Sprint("[+]"), len(urls), opts.URLsFile)

	// 2. Create HTTP requester.
	req, err := scanner.NewRequester(opts)
	if err != nil {
		return nil, fmt.Errorf("creating requester: %w", err)
	}
	if proxies := req.Proxies(); proxies != nil {
		for scheme, u := range proxies {
			fmt.Fprintf(stderr, "%s Routing %s:// requests through %s\n", good.Sprint("[+]"), scheme, u)
		}
	}

	// 3. Pacing and pause support.
	throttler := scanner.NewThrottler(opts.Rate, opts.AdaptiveThrottle, stderr)
	pauser, restore := startStdinToggle(stderr)
	defer restore()

	done := make(chan struct{})
	defer close(done)
	if pauser != nil {
		fmt.Fprintf(stderr, "[*] Press Enter or Space to pause\n")
		// A paused scan must still notice Ctrl+C.
		go func() {
			select {
			case <-ctx.Done():
				pauser.Resume()
			case <-done:
			}
		}()
	}

	cfg := scanner.Config{
		Throttler: throttler,
		Pauser:    pauser,
	}
	if opts.Verbose {
		cfg.Progress = output.NopProgress{}
		cfg.OnOutcome = func(o scanner.Outcome) {
			fmt.Fprintln(stdout, o.VerboseLine())
		}
	} else {
		cfg.Progress = output.NewLineProgress(stderr, isTerminal(stderr))
	}

	// 4. Scan.
	fmt.Fprintf(stderr, "\n%s Performing HTTP Request...\n\n", good.Sprint("[+]"))
	report, scanErr := scanner.New(req, cfg).Scan(ctx, urls)
	if scanErr != nil {
		fmt.Fprintf(stderr, "\n%s Scan interrupted after %d of %d URLs\n", bad.Sprint("[!]"), len(report.Outcomes), len(urls))
	}

	// 5. Console report.
	if !opts.Verbose {
		colorize := !opts.NoColor && !color.NoColor
		for _, line := range output.RenderReport(report.Outcomes, colorize) {
			fmt.Fprintln(stdout, line)
		}
	}

	// 6. Results file.
	if opts.WriteFile {
		path, err := writeResults(opts, report)
		if err != nil {
			return report, err
		}
		fmt.Fprintf(stderr, "\n%s Your file has been saved as %s\n", good.Sprint("[+]"), path)
	}

	// 7. Summary.
	fmt.Fprintln(stdout)
	output.PrintSummary(stdout, report.Summary)
	fmt.Fprintf(stderr, "\n[*] Finished in %s\n", report.Duration.Round(time.Millisecond))

	if scanErr != nil {
		return report, fmt.Errorf("scan interrupted: %w", scanErr)
	}
	return report, nil
}

func writeResults(opts *config.StatusOptions, report *scanner.Report) (string, error) {
	name := output.FileName(resultsPrefix, output.Ext(opts.OutputFormat), time.Now())
	path := filepath.Join(opts.OutputDir, name)

	out, err := output.New(opts.OutputFormat, path)
	if err != nil {
		return "", fmt.Errorf("creating output writer: %w", err)
	}
	defer out.Close()

	if err := out.WriteHeader(); err != nil {
		return "", err
	}
	for i := range report.Outcomes {
		if err := out.WriteResult(&report.Outcomes[i]); err != nil {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := out.WriteFooter(report.Summary); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
