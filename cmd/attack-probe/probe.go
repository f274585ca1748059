package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/lgbarn/mailbox-attack-go/internal/attack"
	"github.com/lgbarn/mailbox-attack-go/internal/chess"
	"github.com/lgbarn/mailbox-attack-go/internal/config"
	"github.com/lgbarn/mailbox-attack-go/internal/render"
	"github.com/lgbarn/mailbox-attack-go/internal/worker"
)

// summary counts what a run produced.
type summary struct {
	Positions int
	Errors    int
	InCheck   int
	Attacked  int
	SVGs      int
}

// probeAll probes items with a worker pool and writes one report line per
// position to cfg.OutputFile in input order. Per-position errors go to
// cfg.LogFile; once cfg.MaxErrors of them have been seen the pool is
// stopped and later positions are neither probed nor reported.
func probeAll(cfg *config.Config, tables *attack.Tables, items []worker.WorkItem) summary {
	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}

	pool := worker.NewPoolWithOptions(
		worker.NewProbeFunc(tables, cfg.Query),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(bufferSize),
	)
	pool.Start()
	cfg.Logf(2, "probing with %d worker(s)\n", pool.NumWorkers())

	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	// Results are consumed by this goroutine only.
	var sum summary
	worker.InOrder(pool.Results(), func(r worker.ProcessResult) {
		if pool.IsStopped() {
			return
		}
		handleResult(cfg, r, &sum)
		if cfg.MaxErrors > 0 && sum.Errors >= cfg.MaxErrors {
			cfg.Logf(1, "stopping after %d error(s)\n", sum.Errors)
			pool.Stop()
		}
	})
	return sum
}

// handleResult reports one probe result and updates sum.
func handleResult(cfg *config.Config, r worker.ProcessResult, sum *summary) {
	sum.Positions++
	if r.Error != nil {
		sum.Errors++
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", r.Error)
		return
	}

	report := r.Report
	if report.InCheck[chess.White] || report.InCheck[chess.Black] {
		sum.InCheck++
	}
	if r.Attacked {
		sum.Attacked++
	}

	fmt.Fprintln(cfg.OutputFile, formatReport(r, cfg.Query))
	if cfg.Output.ShowBoard {
		fmt.Fprint(cfg.OutputFile, report.Board.String())
	}
	cfg.Logf(2, "line %d: %s to move, white king %s, black king %s\n",
		r.Line, report.Board.ToMove,
		report.Board.KingSquare(chess.White), report.Board.KingSquare(chess.Black))

	if cfg.Output.SVGDir == "" {
		return
	}
	opts := render.DefaultOptions()
	if cfg.Query.Enabled {
		opts.Mark = cfg.Query.Square
	}
	path, err := render.WriteFile(cfg.Output.SVGDir, r.Index, report, opts)
	if err != nil {
		sum.Errors++
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return
	}
	sum.SVGs++
	cfg.Logf(2, "wrote %s\n", path)
}

// formatReport renders the report line for one position.
func formatReport(r worker.ProcessResult, query config.QueryConfig) string {
	counts := render.AttackCounts(r.Report.Attacks)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d: %s | white-in-check=%t black-in-check=%t white-attacks=%d black-attacks=%d",
		r.Index+1, r.Report.FEN,
		r.Report.InCheck[chess.White], r.Report.InCheck[chess.Black],
		counts[chess.White], counts[chess.Black])
	if query.Enabled {
		fmt.Fprintf(&sb, " attacked=%t", r.Attacked)
	}
	return sb.String()
}

// writeTableStats prints the table statistics requested with -stats.
func writeTableStats(w io.Writer, tables *attack.Tables) {
	fmt.Fprintf(w, "king-relative targets:")
	for class := attack.Class(0); class < attack.ClassNb; class++ {
		entries := 0
		for d := -chess.DeltaOffset; d <= chess.DeltaOffset; d++ {
			entries += tables.KingTargetCount(class, chess.Delta(d))
		}
		fmt.Fprintf(w, " %s=%d", class, entries)
	}
	fmt.Fprintf(w, "\nking-relative overflows: %d\n", tables.KingDeltaOverflows())
}
