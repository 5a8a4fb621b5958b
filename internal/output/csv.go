package output

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/maxvaer/recontools/internal/scanner"
)

// CSVWriter writes one "label,message" row per outcome. There is no header
// row.
type CSVWriter struct {
	w      *csv.Writer
	closer io.Closer
}

// NewCSVWriter creates a CSV output writer.
func NewCSVWriter(outputFile string) (*CSVWriter, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		w = f
		closer = f
	}
	return &CSVWriter{w: csv.NewWriter(w), closer: closer}, nil
}

func (c *CSVWriter) WriteHeader() error { return nil }

func (c *CSVWriter) WriteResult(result *scanner.Outcome) error {
	return c.w.Write([]string{result.Label(), result.Message()})
}

func (c *CSVWriter) WriteFooter(_ scanner.Summary) error {
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVWriter) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
