// processor.go - Record reading, processing and output
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lgbarn/fenkit-go/internal/config"
	"github.com/lgbarn/fenkit-go/internal/errors"
	"github.com/lgbarn/fenkit-go/internal/hashing"
	"github.com/lgbarn/fenkit-go/internal/interop"
	"github.com/lgbarn/fenkit-go/internal/matching"
	"github.com/lgbarn/fenkit-go/internal/output"
	"github.com/lgbarn/fenkit-go/internal/position"
	"github.com/lgbarn/fenkit-go/internal/worker"
)

// maxRecordLength bounds a single input line.
const maxRecordLength = 1 << 20

// commentPrefix marks input lines that are not records.
const commentPrefix = "#"

// Input is a named source of FEN records.
type Input struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// fileInput opens name lazily, when its turn comes.
func fileInput(name string) Input {
	return Input{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		},
	}
}

// readerInput wraps an already open reader.
func readerInput(name string, r io.Reader) Input {
	return Input{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
	}
}

// Stats counts what happened to the records of a run.
type Stats struct {
	Records    int // records read
	Written    int // positions written to the main output
	Duplicates int // positions suppressed as duplicates
	Filtered   int // positions dropped by the position filters
	Failed     int // records rejected, plus inputs that could not be opened
}

// Processor turns FEN records into written positions.
// NOT thread-safe: Run must not be called concurrently.
type Processor struct {
	cfg       *config.Config
	logger    *slog.Logger
	detector  *hashing.ThreadSafeDuplicateDetector
	filter    matching.PositionFilter
	writer    output.PositionWriter
	dupWriter output.PositionWriter
	stats     Stats
}

// NewProcessor wires the writers, filters and duplicate detector that cfg
// asks for.
func NewProcessor(cfg *config.Config, logger *slog.Logger) (*Processor, error) {
	filter, err := buildFilter(cfg.Filter)
	if err != nil {
		return nil, err
	}
	w, err := output.NewWriter(cfg.OutputFile, cfg.Output)
	if err != nil {
		return nil, err
	}
	p := &Processor{
		cfg:    cfg,
		logger: logger,
		writer: w,
		filter: filter,
	}
	if cfg.Duplicate.Suppress || cfg.Duplicate.DuplicateFile != nil {
		p.detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.MaxCapacity)
	}
	if cfg.Duplicate.DuplicateFile != nil {
		p.dupWriter = output.NewFENWriter(cfg.Duplicate.DuplicateFile)
	}
	return p, nil
}

// submitOutcome is what the reading goroutine reports back.
type submitOutcome struct {
	unreadable int
	err        error
}

// Run processes every record of inputs in parallel and writes the results
// in input order. The returned error reports a failed read, a failed
// write or cancellation; rejected records are only counted.
func (p *Processor) Run(ctx context.Context, inputs []Input) (Stats, error) {
	p.stats = Stats{}
	pool := worker.NewPoolWithOptions(p.processRecord,
		worker.WithWorkers(p.cfg.WorkerCount()),
		worker.WithBufferSize(100))
	pool.Start(ctx)
	p.logger.Info("processing", "inputs", len(inputs), "workers", pool.NumWorkers())

	done := make(chan submitOutcome, 1)
	go func() {
		defer pool.Close()
		unreadable, err := p.submitAll(ctx, pool, inputs)
		done <- submitOutcome{unreadable: unreadable, err: err}
	}()

	var writeErr error
	worker.Collect(pool.Results(), func(result worker.ProcessResult) {
		if writeErr != nil {
			return
		}
		if writeErr = p.handleResult(result); writeErr != nil {
			pool.Stop()
		}
	})
	if err := p.writer.Close(); err != nil && writeErr == nil {
		writeErr = err
	}

	outcome := <-done
	p.stats.Failed += outcome.unreadable
	if outcome.err != nil {
		return p.stats, outcome.err
	}
	if writeErr != nil {
		return p.stats, fmt.Errorf("writing output: %w", writeErr)
	}
	return p.stats, nil
}

// submitAll feeds every record to the pool, numbering them in input order.
func (p *Processor) submitAll(ctx context.Context, pool *worker.Pool, inputs []Input) (int, error) {
	index := 0
	unreadable := 0
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return unreadable, err
		}
		r, err := in.Open()
		if err != nil {
			p.logger.Error("cannot open input", "source", in.Name, "error", err)
			unreadable++
			continue
		}
		err = readRecords(r, in.Name, func(item worker.WorkItem) bool {
			if ctx.Err() != nil || pool.IsStopped() {
				return false
			}
			item.Index = index
			index++
			pool.Submit(item)
			return true
		})
		r.Close() //nolint:errcheck,gosec // G104: read-only input
		if err != nil {
			return unreadable, err
		}
	}
	return unreadable, ctx.Err()
}

// readRecords scans r line by line and hands every record to emit until
// emit returns false. Blank lines and comment lines are skipped. A read
// failure comes back as a *errors.ParseError locating the line.
func readRecords(r io.Reader, name string, emit func(worker.WorkItem) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordLength)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		record := strings.TrimSpace(scanner.Text())
		if record == "" || strings.HasPrefix(record, commentPrefix) {
			continue
		}
		if !emit(worker.WorkItem{Record: record, Source: name, LineNum: lineNum}) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return &errors.ParseError{File: name, Line: lineNum + 1, Err: err}
	}
	return nil
}

// processRecord runs on a worker: decode, apply moves, cross-check, filter
// and hash. Nothing here depends on other records.
func (p *Processor) processRecord(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Item: item}

	pos, err := position.FromFEN(item.Record)
	if err != nil {
		result.Err = err
		return result
	}
	if err := pos.ApplyMoves(p.cfg.Moves); err != nil {
		result.Err = err
		return result
	}
	if p.cfg.CrossCheck {
		if err := interop.Verify(pos); err != nil {
			result.Err = err
			return result
		}
	}
	if p.filter != nil && p.filter.Match(pos) == p.cfg.Filter.Negate {
		result.Position = pos
		return result
	}
	if p.detector != nil {
		sig, err := hashing.NewSignature(pos)
		if err != nil {
			result.Err = err
			return result
		}
		result.Payload = sig
	}

	result.Position = pos
	result.ShouldOutput = true
	return result
}

// handleResult runs on the collecting goroutine, in input order, so the
// first occurrence of a position is the one kept.
func (p *Processor) handleResult(result worker.ProcessResult) error {
	p.stats.Records++
	item := result.Item

	if result.Err == nil && !result.ShouldOutput {
		p.stats.Filtered++
		p.logger.Debug("filtered position", "source", item.Source, "line", item.LineNum, "fen", result.Position.FEN())
		return nil
	}
	if result.Err != nil {
		p.stats.Failed++
		msg := "rejected record"
		if errors.Is(result.Err, errors.ErrCrossCheck) {
			msg = "cross-check mismatch"
		}
		p.logger.Warn(msg, "source", item.Source, "line", item.LineNum, "record", item.Record, "error", result.Err)
		return nil
	}

	if sig, ok := result.Payload.(hashing.Signature); ok && p.detector.CheckAndAddSignature(sig) {
		p.stats.Duplicates++
		p.logger.Debug("duplicate position", "source", item.Source, "line", item.LineNum, "fen", result.Position.FEN())
		if p.dupWriter != nil {
			return p.dupWriter.WritePosition(result.Position)
		}
		return nil
	}

	p.logger.Debug("position", "source", item.Source, "line", item.LineNum, "fen", result.Position.FEN())
	p.stats.Written++
	return p.writer.WritePosition(result.Position)
}

// reportStatistics logs the final counts.
func reportStatistics(logger *slog.Logger, stats Stats) {
	logger.Info("finished",
		"records", stats.Records,
		"written", stats.Written,
		"duplicates", stats.Duplicates,
		"filtered", stats.Filtered,
		"failed", stats.Failed)
}
