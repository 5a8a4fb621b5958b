// Package output renders scan results: the live progress line, the console
// report, the summary block and the optional results file.
package output

import (
	"fmt"
	"time"

	"github.com/maxvaer/recontools/internal/scanner"
)

// Writer is implemented by each results-file format.
type Writer interface {
	WriteHeader() error
	WriteResult(result *scanner.Outcome) error
	WriteFooter(summary scanner.Summary) error
	Close() error
}

// New creates the Writer for format ("csv" or "json"). An empty path
// writes to stdout.
func New(format, path string) (Writer, error) {
	switch format {
	case "json":
		return NewJSONWriter(path)
	case "csv", "":
		return NewCSVWriter(path)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Ext returns the file extension used for format.
func Ext(format string) string {
	if format == "json" {
		return "json"
	}
	return "csv"
}

// FileName returns a timestamped name such as
// HttpStatusCheck_20240131235959.csv.
func FileName(prefix, ext string, t time.Time) string {
	return prefix + "_" + t.Format("20060102150405") + "." + ext
}
