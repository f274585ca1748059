package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/mailbox-attack-go/internal/worker"
)

// readPositions reads one FEN per line from r. Blank lines and lines
// starting with '#' are skipped. Items are numbered from first, so indexes
// stay unique across several inputs.
func readPositions(r io.Reader, name string, first int) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			FEN:   line,
			File:  name,
			Line:  lineNo,
			Index: first + len(items),
		})
	}
	if err := scanner.Err(); err != nil {
		return items, fmt.Errorf("reading %s: %w", name, err)
	}
	return items, nil
}

// loadFileList reads input file names, one per line, from path. Blank lines
// and '#' comments are skipped.
func loadFileList(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

// collectPositions reads every named file, or stdin when names is empty.
// Files that cannot be opened are reported to logw and skipped.
func collectPositions(names []string, stdin io.Reader, logw io.Writer) []worker.WorkItem {
	if len(names) == 0 {
		items, err := readPositions(stdin, "stdin", 0)
		if err != nil {
			fmt.Fprintf(logw, "Error: %v\n", err)
		}
		return items
	}

	var all []worker.WorkItem
	for _, name := range names {
		file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(logw, "Error opening file %s: %v\n", name, err)
			continue
		}
		items, err := readPositions(file, name, len(all))
		if err != nil {
			fmt.Fprintf(logw, "Error: %v\n", err)
		}
		all = append(all, items...)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
	}
	return all
}
