package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/maxvaer/recontools/internal/scanner"
)

type jsonEntry struct {
	Status  string `json:"status"`
	URL     string `json:"url"`
	Message string `json:"message"`
	Chain   string `json:"chain,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONWriter writes results as a JSON array once the scan is done.
type JSONWriter struct {
	w       io.Writer
	closer  io.Closer
	entries []jsonEntry
}

// NewJSONWriter creates a JSON output writer.
func NewJSONWriter(outputFile string) (*JSONWriter, error) {
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
	return &JSONWriter{w: w, closer: closer, entries: []jsonEntry{}}, nil
}

func (j *JSONWriter) WriteHeader() error { return nil }

func (j *JSONWriter) WriteResult(result *scanner.Outcome) error {
	j.entries = append(j.entries, jsonEntry{
		Status:  result.Label(),
		URL:     result.URL,
		Message: result.Message(),
		Chain:   result.Chain,
		Error:   result.Detail,
	})
	return nil
}

func (j *JSONWriter) WriteFooter(_ scanner.Summary) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(j.entries)
}

func (j *JSONWriter) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}
