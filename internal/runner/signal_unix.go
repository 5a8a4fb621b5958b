//go:build !windows

package runner

import (
	"os"
	"syscall"
)

// sendInterrupt delivers SIGINT to this process so signal.NotifyContext
// cancels the scan.
func sendInterrupt() {
	_ = syscall.Kill(os.Getpid(), syscall.SIGINT)
}
