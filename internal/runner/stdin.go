package runner

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/maxvaer/recontools/internal/scanner"
)

// startStdinToggle starts a goroutine that reads single keypresses from
// stdin and toggles the pauser on Enter or Space. It returns a cleanup
// function that restores the terminal state. If stdin is not a terminal,
// it returns a nil pauser and a no-op cleanup.
func startStdinToggle(log io.Writer) (pauser *scanner.Pauser, cleanup func()) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, func() {}
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(log, "[!] Could not enable raw terminal: %v\n", err)
		return nil, func() {}
	}

	// Only input needs to be raw; keep \n -> \r\n translation for the
	// progress and report lines.
	fixOutputProcessing(fd)

	pauser = scanner.NewPauser()

	// The reader goroutine stays blocked in os.Stdin.Read after cleanup and
	// lives until the process exits; keys pressed after the scan still
	// reach it, now in cooked mode.
	cleanup = func() {
		_ = term.Restore(fd, oldState)
	}

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}

			switch buf[0] {
			case 0x03:
				// Ctrl+C: raw mode swallowed the signal, raise it again.
				_ = term.Restore(fd, oldState)
				sendInterrupt()
				return
			case '\r', '\n', ' ':
				if pauser.Toggle() {
					fmt.Fprintf(log, "\r\033[K[*] Scan PAUSED, press Enter or Space to resume\n")
				} else {
					fmt.Fprintf(log, "\r\033[K[*] Scan RESUMED\n")
				}
			}
		}
	}()

	return pauser, cleanup
}
