// Package filelist searches a directory tree for files with given
// extensions and formats each match as a web path, a full path or a path
// relative to the search root.
package filelist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/maxvaer/recontools/internal/config"
)

// Output formats.
const (
	FormatWeb   = "W"
	FormatFull  = "F"
	FormatShort = "S"
)

// Validate checks the options before any search is done. All problems are
// reported together.
func Validate(opts *config.FileListOptions) error {
	var errs []error
	if _, err := os.Stat(opts.SearchIn); err != nil {
		errs = append(errs, fmt.Errorf("the --search-in path %s does not exist", opts.SearchIn))
	}
	if opts.NoPrint && opts.SaveTo == "" {
		errs = append(errs, errors.New("since --no-print is set the --save-to argument must be specified"))
	}
	if opts.SaveTo != "" {
		if _, err := os.Stat(opts.SaveTo); err != nil {
			errs = append(errs, fmt.Errorf("the --save-to path %s does not exist", opts.SaveTo))
		}
	}
	return errors.Join(errs...)
}

// Search walks root once per extension and returns every matching file,
// formatted per format. Results are grouped by extension in the order the
// extensions were given. Unreadable directories below root are skipped.
func Search(root string, exts []string, prepend, format string) ([]string, error) {
	root = filepath.Clean(root)

	var results []string
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ext) {
				return nil
			}
			results = append(results, Format(path, root, prepend, format))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("searching %s: %w", root, err)
		}
	}
	return results, nil
}

// Format renders one match found under the cleaned root. Unknown formats
// fall back to FormatWeb.
func Format(path, root, prepend, format string) string {
	switch format {
	case FormatFull:
		return prepend + path
	case FormatShort:
		return prepend + trimRoot(path, root)
	default:
		return strings.ReplaceAll(prepend+trimRoot(path, root), `\`, "/")
	}
}

// trimRoot strips root from path and keeps the leading separator.
func trimRoot(path, root string) string {
	sep := string(filepath.Separator)
	switch {
	case root == ".":
		return sep + path
	case strings.HasSuffix(root, sep):
		return strings.TrimPrefix(path, strings.TrimSuffix(root, sep))
	default:
		return strings.TrimPrefix(path, root)
	}
}

// Save writes results, one per line, to FilesList_<timestamp>.txt inside
// dir and returns the file path.
func Save(dir string, results []string, now time.Time) (string, error) {
	path := filepath.Join(dir, "FilesList_"+now.Format("20060102150405")+".txt")

	var b strings.Builder
	for _, r := range results {
		b.WriteString(r)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("saving file list: %w", err)
	}
	return path, nil
}
