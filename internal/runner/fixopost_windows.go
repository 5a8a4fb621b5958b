//go:build windows

package runner

// fixOutputProcessing is a no-op: console output on Windows is not affected
// by raw input mode.
func fixOutputProcessing(int) {}
