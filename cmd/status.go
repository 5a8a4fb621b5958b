package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxvaer/recontools/internal/banner"
	"github.com/maxvaer/recontools/internal/config"
	"github.com/maxvaer/recontools/internal/runner"
	"github.com/maxvaer/recontools/pkg/version"
)

var (
	statusOpts     config.StatusOptions
	timeoutSeconds int
)

var statusCmd = &cobra.Command{
	Use:   "status --file <path> [flags]",
	Short: "Check the HTTP status of a list of URLs",
	Long: `status requests every URL listed in a file, one at a time, and reports
its HTTP status code, the redirect chain when redirects are followed, and
timeouts or request errors. TLS certificates are NOT verified unless
--verify-certs is given.`,
	Example: `  recontools status --file urls.txt
  recontools status --file urls.txt -r -o
  recontools status --file urls.txt --proxy http://127.0.0.1:8080 --timeout 10
  recontools status --file urls.txt -v --format json -o`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cmd.ValidateRequiredFlags(); err != nil {
			return err
		}
		if timeoutSeconds <= 0 {
			return fmt.Errorf("--timeout must be a positive number of seconds")
		}
		statusOpts.Timeout = time.Duration(timeoutSeconds) * time.Second
		if statusOpts.OutputFormat != "csv" && statusOpts.OutputFormat != "json" {
			return fmt.Errorf("--format must be one of: csv, json")
		}
		if statusOpts.Rate < 0 {
			return fmt.Errorf("--rate must not be negative")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		applyNoColor(statusOpts.NoColor)
		if !statusOpts.NoBanner {
			banner.Print(os.Stderr, "HTTP Status Check", version.Version)
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		_, err := runner.Run(ctx, &statusOpts, os.Stdout, os.Stderr)
		return err
	},
}

func init() {
	f := statusCmd.Flags()

	// Input
	f.StringVar(&statusOpts.URLsFile, "file", "", "File with one URL per line")
	_ = statusCmd.MarkFlagRequired("file")

	// HTTP
	f.StringVar(&statusOpts.Proxy, "proxy", "", "Proxy URL, used for targets with the same scheme (e.g. http://127.0.0.1:8080)")
	f.IntVar(&timeoutSeconds, "timeout", 5, "Per-request timeout in seconds")
	f.BoolVarP(&statusOpts.FollowRedirects, "follow-redirects", "r", false, "Follow redirects and show the redirect chain")
	f.BoolVar(&statusOpts.VerifyCertificates, "verify-certs", false, "Verify TLS certificates (skipped by default)")

	// Rate limit
	f.Float64Var(&statusOpts.Rate, "rate", 0, "Maximum requests per second (0 = unlimited)")
	f.BoolVar(&statusOpts.AdaptiveThrottle, "adaptive-throttle", false, "Auto back-off on 429/503 and repeated errors")

	// Output
	f.BoolVarP(&statusOpts.WriteFile, "output", "o", false, "Save results to HttpStatusCheck_<timestamp> in the working directory")
	f.StringVar(&statusOpts.OutputFormat, "format", "csv", "Results file format: csv, json")
	f.BoolVarP(&statusOpts.Verbose, "verbose", "v", false, "Print each result as soon as it is known")
	f.BoolVar(&statusOpts.NoColor, "no-color", false, "Disable colored output")
	f.BoolVar(&statusOpts.NoBanner, "no-banner", false, "Do not print the banner")

	helpGroups["status"] = []flagGroup{
		{"INPUT", []string{"file"}},
		{"HTTP", []string{"proxy", "timeout", "follow-redirects", "verify-certs"}},
		{"RATE-LIMIT", []string{"rate", "adaptive-throttle"}},
		{"OUTPUT", []string{"output", "format", "verbose", "no-color", "no-banner"}},
	}

	rootCmd.AddCommand(statusCmd)
}
