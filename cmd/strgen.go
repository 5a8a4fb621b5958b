package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/maxvaer/recontools/internal/banner"
	"github.com/maxvaer/recontools/internal/config"
	"github.com/maxvaer/recontools/internal/strgen"
	"github.com/maxvaer/recontools/pkg/version"
)

var strOpts config.StringOptions

var strgenCmd = &cobra.Command{
	Use:   "strgen --length <n> [flags]",
	Short: "Generate random strings",
	Long: `strgen prints random strings drawn from ASCII letters and digits, plus
punctuation with -s. Strings come from a cryptographically secure source.`,
	Example: `  recontools strgen --length 16
  recontools strgen --length 24 --count 5 -s
  recontools strgen --length 32 --count 100 -o`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cmd.ValidateRequiredFlags(); err != nil {
			return err
		}
		return strgen.Validate(strOpts.Count, strOpts.Length)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		applyNoColor(strOpts.NoColor)
		if !strOpts.NoBanner {
			banner.Print(os.Stderr, "String Generator", version.Version)
		}

		strs, err := strgen.Generate(strOpts.Count, strOpts.Length, strOpts.SpecialChar)
		if err != nil {
			return err
		}

		if strOpts.WriteFile {
			path, err := strgen.Save(strOpts.OutputDir, strs, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "\n%s Your file has been saved as %s\n\n", color.New(color.FgGreen).Sprint("[+]"), path)
			return nil
		}
		for _, s := range strs {
			fmt.Printf("%s\n\n", s)
		}
		return nil
	},
}

func init() {
	f := strgenCmd.Flags()

	f.IntVar(&strOpts.Length, "length", 0, "Number of characters per string (at least 3)")
	_ = strgenCmd.MarkFlagRequired("length")
	f.IntVar(&strOpts.Count, "count", 1, "Number of strings to generate")
	f.BoolVarP(&strOpts.SpecialChar, "special", "s", false, "Include punctuation characters")
	f.BoolVarP(&strOpts.WriteFile, "output", "o", false, "Save the strings to StringGenerator_<timestamp>.txt in the working directory")
	f.BoolVar(&strOpts.NoColor, "no-color", false, "Disable colored output")
	f.BoolVar(&strOpts.NoBanner, "no-banner", false, "Do not print the banner")

	helpGroups["strgen"] = []flagGroup{
		{"GENERATE", []string{"length", "count", "special"}},
		{"OUTPUT", []string{"output", "no-color", "no-banner"}},
	}

	rootCmd.AddCommand(strgenCmd)
}
