// attack-probe reads FEN positions and reports check status, attack maps and
// single-square attack queries computed with the mailbox attack tables.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/mailbox-attack-go/internal/attack"
	"github.com/lgbarn/mailbox-attack-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("attack-probe version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := config.ParseEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg, setFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names, err := inputNames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	file, err := openLogFile(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if file != nil {
		cfg.LogFile = file
	}

	exitCode := 0
	if run(cfg, names, os.Stdin) > 0 {
		exitCode = 1
	}
	// os.Exit skips deferred calls.
	if file != nil {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file %s: %v\n", *logFile, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// run probes every position named by names (stdin when empty) and returns
// the number of positions that could not be probed.
func run(cfg *config.Config, names []string, stdin io.Reader) int {
	tables := attack.Shared()
	items := collectPositions(names, stdin, cfg.LogFile)
	cfg.Logf(2, "probing %d position(s)\n", len(items))

	sum := probeAll(cfg, tables, items)

	if cfg.Output.Stats {
		writeTableStats(cfg.OutputFile, tables)
	}
	reportStatistics(cfg, sum)
	return sum.Errors
}

// openLogFile creates the -l log file. It returns nil when path is empty;
// the caller closes a non-nil file.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", path, err)
	}
	return file, nil
}

// inputNames returns the positional arguments plus any files listed by -f.
func inputNames() ([]string, error) {
	names := flag.Args()
	if *fileListFile == "" {
		return names, nil
	}
	listed, err := loadFileList(*fileListFile)
	if err != nil {
		return nil, fmt.Errorf("loading file list %s: %w", *fileListFile, err)
	}
	return append(names, listed...), nil
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, sum summary) {
	cfg.Logf(1, "%d position(s) probed, %d in check, %d error(s).\n", sum.Positions, sum.InCheck, sum.Errors)
	if cfg.Query.Enabled {
		cfg.Logf(1, "%s attacked by %s in %d position(s).\n", cfg.Query.Square, cfg.Query.By, sum.Attacked)
	}
	if cfg.Output.SVGDir != "" {
		cfg.Logf(1, "%d diagram(s) written to %s.\n", sum.SVGs, cfg.Output.SVGDir)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: attack-probe [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Reports check status and attacked squares for FEN positions, one per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  ATTACK_PROBE_WORKERS    default for -j\n")
	fmt.Fprintf(os.Stderr, "  ATTACK_PROBE_VERBOSITY  default for -v\n")
	fmt.Fprintf(os.Stderr, "  ATTACK_PROBE_SVG_DIR    default for -svg\n")
	fmt.Fprintf(os.Stderr, "  ATTACK_PROBE_MAX_ERRORS default for -errors-limit\n")
}
