// Package worker provides a worker pool for probing many positions in
// parallel against one shared set of attack tables.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/mailbox-attack-go/internal/attack"
	"github.com/lgbarn/mailbox-attack-go/internal/config"
	"github.com/lgbarn/mailbox-attack-go/internal/engine"
	"github.com/lgbarn/mailbox-attack-go/internal/errors"
)

// WorkItem represents a position to be probed.
type WorkItem struct {
	FEN   string
	File  string // Source file name, for error context
	Line  int    // 1-based source line
	Index int    // Original index for tracking
}

// ProcessResult represents the result of probing a position.
type ProcessResult struct {
	Index    int
	Line     int
	Report   engine.Report
	Attacked bool // Answer to the configured square query, if any
	Error    error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// NewProbeFunc returns a ProcessFunc that probes each item's FEN with tables
// and answers query when it is enabled. Errors are wrapped in a
// PositionError carrying the item's file, line and FEN.
func NewProbeFunc(tables *attack.Tables, query config.QueryConfig) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Line: item.Line}
		report, err := engine.Probe(tables, item.FEN)
		if err != nil {
			result.Error = &errors.PositionError{Err: err, File: item.File, Line: item.Line, FEN: item.FEN}
			return result
		}
		result.Report = report
		if query.Enabled {
			result.Attacked = tables.IsAttacked(report.Board, query.Square, query.By)
		}
		return result
	}
}

// Pool manages a pool of workers for parallel probing.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool that runs processFunc on every submitted
// item. Without options it has 1 worker and a buffer of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip every item not yet started. Queued items are
// still drained so Submit and Close never block on a stopped pool.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// InOrder reads results until the channel closes and calls emit for each in
// ascending Index order, starting from 0. Results arriving early are held
// until their predecessors have been emitted. Any results left behind a gap
// are emitted in index order once the channel closes.
func InOrder(results <-chan ProcessResult, emit func(ProcessResult)) {
	pending := make(map[int]ProcessResult)
	next := 0
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			emit(ready)
			next++
		}
	}
	rest := make([]int, 0, len(pending))
	for i := range pending {
		rest = append(rest, i)
	}
	sort.Ints(rest)
	for _, i := range rest {
		emit(pending[i])
	}
}
