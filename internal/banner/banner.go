// Package banner prints the ASCII-art logo shown when a tool starts.
package banner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

const rule = "════════════════════════════════════════════════"

// Render returns the logo for title followed by the version and the
// start time.
func Render(title, ver string, now time.Time) string {
	if ver != "dev" && ver != "" && !strings.HasPrefix(ver, "v") {
		ver = "v" + ver
	}

	var b strings.Builder
	b.WriteString(figure.NewFigure(title, "standard", true).String())
	b.WriteString("\n")

	cyan := color.New(color.FgCyan)
	b.WriteString(cyan.Sprint(rule) + "\n")
	fmt.Fprintf(&b, "    recontools %s | %s\n", ver, now.Format("Mon Jan _2 15:04:05 2006"))
	b.WriteString(cyan.Sprint(rule) + "\n\n")
	return b.String()
}

// Print writes the banner for title to w.
func Print(w io.Writer, title, ver string) {
	fmt.Fprint(w, Render(title, ver, time.Now()))
}
