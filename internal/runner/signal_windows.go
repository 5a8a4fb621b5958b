//go:build windows

package runner

import "syscall"

var (
	kernel32                     = syscall.NewLazyDLL("kernel32.dll")
	procGenerateConsoleCtrlEvent = kernel32.NewProc("GenerateConsoleCtrlEvent")
)

// sendInterrupt raises CTRL_C_EVENT for the console process group so the
// scan context is cancelled.
func sendInterrupt() {
	_, _, _ = procGenerateConsoleCtrlEvent.Call(0, 0)
}
