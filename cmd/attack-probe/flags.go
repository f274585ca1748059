// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/mailbox-attack-go/internal/config"
)

var (
	// Input options
	fileListFile = flag.String("f", "", "File containing list of FEN files to process (one per line)")

	// Square query
	querySquare = flag.String("sq", "", "Report whether this square (e.g. e4) is attacked")
	queryBy     = flag.String("by", "white", "Attacking colour for -sq: white or black")

	// Output options
	svgDir    = flag.String("svg", "", "Write one attack-map SVG per position to this directory")
	stats     = flag.Bool("stats", false, "Print attack table statistics")
	showBoard = flag.Bool("board", false, "Print the board under each report line")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0=nothing, 1=summary, 2=per-position commentary")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("j", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Error handling
	errorsLimit = flag.Int("errors-limit", 0, "Stop after this many failed positions (0 = never)")
)

// setFlags reports which flags were given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies command-line flags to the configuration. Flags named in
// set override values already loaded from the environment; the rest leave
// the configuration alone.
func applyFlags(cfg *config.Config, set map[string]bool) error {
	if set["v"] {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = 0
	}
	if set["j"] {
		cfg.Workers = *workers
	}
	if set["errors-limit"] {
		cfg.MaxErrors = *errorsLimit
	}
	if set["svg"] {
		cfg.Output.SVGDir = *svgDir
	}
	cfg.Output.Stats = *stats
	cfg.Output.ShowBoard = *showBoard

	return applyQueryFlags(cfg)
}

// applyQueryFlags configures the single-square query.
func applyQueryFlags(cfg *config.Config) error {
	if *querySquare == "" {
		return nil
	}
	return cfg.Query.Set(*querySquare, *queryBy)
}
