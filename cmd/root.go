package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/maxvaer/recontools/pkg/version"
)

type flagGroup struct {
	title string
	flags []string
}

var rootCmd = &cobra.Command{
	Use:     "recontools <command> [flags]",
	Short:   "Small recon utilities: HTTP status checks, file lists, random strings",
	Version: version.Version,
	Long: `recontools bundles three small reconnaissance helpers:

  status   check the HTTP status of every URL in a file
  files    list files with given extensions as web paths
  strgen   generate random strings`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		w := os.Stderr
		fmt.Fprint(w, helpBanner(rootCmd.Version))
		fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.UseLine())
		if cmd.Example != "" {
			fmt.Fprintf(w, "\nExamples:\n%s\n", cmd.Example)
		}
		if cmd.HasAvailableSubCommands() {
			fmt.Fprintf(w, "\nCommands:\n")
			for _, sub := range cmd.Commands() {
				if sub.IsAvailableCommand() {
					fmt.Fprintf(w, "   %-10s%s\n", sub.Name(), sub.Short)
				}
			}
		}
		groups, ok := helpGroups[cmd.Name()]
		if !ok {
			fmt.Fprintln(w)
			return
		}
		fmt.Fprintf(w, "\nFlags:\n")
		for _, g := range groups {
			fmt.Fprintf(w, "\n%s:\n", g.title)
			for _, name := range g.flags {
				if f := cmd.Flags().Lookup(name); f != nil {
					fmt.Fprintln(w, formatFlag(f))
				}
			}
		}
		fmt.Fprintln(w)
	})
}

// helpGroups lists the flag sections shown by each subcommand's help.
var helpGroups = map[string][]flagGroup{}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		os.Exit(1)
	}
}

func formatFlag(f *pflag.Flag) string {
	var left string
	if f.Shorthand != "" {
		left = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	} else {
		left = fmt.Sprintf("    --%s", f.Name)
	}

	typ := f.Value.Type()
	if typ != "bool" {
		left += " " + typ
	}

	// Pad to fixed column width for aligned descriptions.
	const col = 32
	for len(left) < col {
		left += " "
	}

	right := f.Usage
	def := f.DefValue
	if def != "" && def != "false" && def != "0" && def != "[]" {
		right += fmt.Sprintf(" (default %s)", def)
	}

	return "   " + left + right
}

func helpBanner(ver string) string {
	if ver != "dev" && ver != "" && !strings.HasPrefix(ver, "v") {
		ver = "v" + ver
	}
	return fmt.Sprintf("\n  recontools %s\n\n", ver)
}

// applyNoColor disables color output process-wide.
func applyNoColor(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}
