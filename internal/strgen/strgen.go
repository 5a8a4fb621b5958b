// Package strgen generates random strings from letters and digits,
// optionally with ASCII punctuation.
package strgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// MinLength is the shortest string that can be requested.
const MinLength = 3

// Alphabet returns the characters strings are drawn from.
func Alphabet(special bool) string {
	if special {
		return letters + digits + punctuation
	}
	return letters + digits
}

// Validate checks count and length.
func Validate(count, length int) error {
	var errs []error
	if count < 1 {
		errs = append(errs, errors.New("(--count) please specify the number of strings to generate, must be greater than 0"))
	}
	if length < MinLength {
		errs = append(errs, errors.New("(--length) please specify the number of chars in the string, must be greater than 2"))
	}
	return errors.Join(errs...)
}

// Generate returns count strings of length characters each.
func Generate(count, length int, special bool) ([]string, error) {
	if err := Validate(count, length); err != nil {
		return nil, err
	}

	alphabet := Alphabet(special)
	size := big.NewInt(int64(len(alphabet)))

	out := make([]string, 0, count)
	buf := make([]byte, length)
	for range count {
		for i := range buf {
			n, err := rand.Int(rand.Reader, size)
			if err != nil {
				return nil, fmt.Errorf("reading random source: %w", err)
			}
			buf[i] = alphabet[n.Int64()]
		}
		out = append(out, string(buf))
	}
	return out, nil
}

// Save writes each string followed by a blank line to
// StringGenerator_<timestamp>.txt inside dir and returns the file path.
func Save(dir string, strs []string, now time.Time) (string, error) {
	path := filepath.Join(dir, "StringGenerator_"+now.Format("20060102150405")+".txt")

	var b strings.Builder
	for _, s := range strs {
		b.WriteString(s)
		b.WriteString("\n\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("saving strings: %w", err)
	}
	return path, nil
}
