// Package urllist reads the newline-delimited URL input of a status scan.
package urllist

import (
	"bufio"
	"fmt"
	"os"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// Load returns every line of the file at path in order, without line
// terminators. Blank lines are kept: each one is still checked and reported.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening URLs file: %w", err)
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		urls = append(urls, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading URLs file: %w", err)
	}
	return urls, nil
}
