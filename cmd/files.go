package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/maxvaer/recontools/internal/banner"
	"github.com/maxvaer/recontools/internal/config"
	"github.com/maxvaer/recontools/internal/filelist"
	"github.com/maxvaer/recontools/pkg/version"
)

var filesOpts config.FileListOptions

var filesCmd = &cobra.Command{
	Use:   "files --search-in <dir> --file-types <exts> [flags]",
	Short: "List files with given extensions as web, full or short paths",
	Long: `files walks a directory tree and lists every file whose name ends with
one of the given extensions. If the search is performed in /Users/Bob/site:

  W = http://www.example.com/tmp/file1.aspx  (pass the URL with --prepend)
  F = /Users/Bob/site/tmp/file1.aspx
  S = /tmp/file1.aspx`,
	Example: `  recontools files --search-in /var/www --file-types aspx,html
  recontools files --search-in ./site --file-types php --prepend https://example.com
  recontools files --search-in ./site --file-types js --format F --save-to /tmp -n`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cmd.ValidateRequiredFlags(); err != nil {
			return err
		}
		filesOpts.Format = strings.ToUpper(filesOpts.Format)
		return filelist.Validate(&filesOpts)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		applyNoColor(filesOpts.NoColor)
		if !filesOpts.NoBanner {
			banner.Print(os.Stderr, "File List Creator", version.Version)
		}

		good := color.New(color.FgGreen).Sprint("[+]")
		fmt.Fprintf(os.Stderr, "%s Searching for files in %s\n\n", good, filesOpts.SearchIn)

		results, err := filelist.Search(filesOpts.SearchIn, filesOpts.FileTypes, filesOpts.Prepend, filesOpts.Format)
		if err != nil {
			return err
		}
		if !filesOpts.NoPrint && len(results) > 0 {
			for _, r := range results {
				fmt.Println(r)
			}
			fmt.Println()
		}
		fmt.Fprintf(os.Stderr, "%s Search complete with %d files found.\n", good, len(results))

		if filesOpts.SaveTo != "" && len(results) > 0 {
			path, err := filelist.Save(filesOpts.SaveTo, results, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "\n%s Your file has been saved as %s\n", good, path)
		}
		return nil
	},
}

func init() {
	f := filesCmd.Flags()

	f.StringVar(&filesOpts.SearchIn, "search-in", "", "The path to search for files in")
	f.StringSliceVar(&filesOpts.FileTypes, "file-types", nil, "Comma-separated file extensions to search for (e.g. aspx,html)")
	_ = filesCmd.MarkFlagRequired("search-in")
	_ = filesCmd.MarkFlagRequired("file-types")

	f.StringVar(&filesOpts.Prepend, "prepend", "", "Prepend every result with this string")
	f.StringVar(&filesOpts.Format, "format", filelist.FormatWeb, "Result format: W = web, F = full path, S = shortened path")
	f.StringVar(&filesOpts.SaveTo, "save-to", "", "Directory to save the results to")
	f.BoolVarP(&filesOpts.NoPrint, "no-print", "n", false, "Do not print results to screen (requires --save-to)")
	f.BoolVar(&filesOpts.NoColor, "no-color", false, "Disable colored output")
	f.BoolVar(&filesOpts.NoBanner, "no-banner", false, "Do not print the banner")

	helpGroups["files"] = []flagGroup{
		{"SEARCH", []string{"search-in", "file-types"}},
		{"OUTPUT", []string{"prepend", "format", "save-to", "no-print", "no-color", "no-banner"}},
	}

	rootCmd.AddCommand(filesCmd)
}
