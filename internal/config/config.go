package config

import "time"

// StatusOptions holds all configuration for an HTTP status check.
type StatusOptions struct {
	// Input
	URLsFile string

	// HTTP
	Proxy              string
	Timeout            time.Duration
	FollowRedirects    bool
	VerifyCertificates bool // false skips TLS verification

	// Pacing
	Rate             float64 // requests per second, 0 = unlimited
	AdaptiveThrottle bool

	// Output
	WriteFile    bool   // -o: write HttpStatusCheck_<ts>.<ext> in the working directory
	OutputFormat string // "csv", "json"
	OutputDir    string // empty = working directory
	Verbose      bool
	NoColor      bool
	NoBanner     bool
}

// FileListOptions holds configuration for the file extension search.
type FileListOptions struct {
	SearchIn  string
	FileTypes []string
	Prepend   string
	Format    string // "W" web, "F" full path, "S" shortened path
	SaveTo    string
	NoPrint   bool
	NoColor   bool
	NoBanner  bool
}

// StringOptions holds configuration for the random string generator.
type StringOptions struct {
	Count       int
	Length      int
	SpecialChar bool
	WriteFile   bool
	OutputDir   string
	NoColor     bool
	NoBanner    bool
}
