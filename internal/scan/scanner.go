package scan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dnguyen/tascan/internal/analysis"
	"github.com/dnguyen/tascan/internal/collector"
	"github.com/dnguyen/tascan/internal/config"
	"github.com/dnguyen/tascan/internal/core"
	"github.com/dnguyen/tascan/internal/metrics"
)

// Scanner runs the full indicator analysis over a watchlist with a
// bounded worker pool. Symbols are independent: one failure is recorded
// in its report and the rest of the run continues.
type Scanner struct {
	collector   collector.Collector
	logger      *zap.Logger
	metrics     *metrics.Registry
	workers     int
	offsets     []int
	historyDays int
}

// New creates a Scanner. A nil logger is replaced with a nop logger; a
// nil metrics registry disables recording.
func New(col collector.Collector, logger *zap.Logger, reg *metrics.Registry, cfg config.ScanConfig) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		collector:   col,
		logger:      logger,
		metrics:     reg,
		workers:     workers,
		offsets:     cfg.Offsets,
		historyDays: cfg.HistoryDays,
	}
}

// Run scans every watchlist item anchored at the given date and returns
// the reports in watchlist order. The run stops early only when ctx is
// cancelled.
func (s *Scanner) Run(ctx context.Context, watchlist []config.WatchItem, anchor time.Time) (*RunReport, error) {
	runID := uuid.NewString()
	started := time.Now()

	s.logger.Info("scan starting",
		zap.String("run_id", runID),
		zap.Int("symbols", len(watchlist)),
		zap.Int("workers", s.workers),
		zap.Time("anchor", anchor),
	)
	if s.metrics != nil {
		s.metrics.SetWatchlistSize(len(watchlist))
	}

	reports := make([]Report, len(watchlist))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				reports[i] = s.scanSymbol(ctx, watchlist[i], anchor)
			}
		}()
	}

dispatch:
	for i := range watchlist {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	run := &RunReport{
		RunID:     runID,
		Anchor:    anchor,
		StartedAt: started,
		Duration:  time.Since(started),
		Reports:   reports,
		Sectors:   Sectors(reports),
	}

	if s.metrics != nil {
		s.metrics.RecordScan(run.Duration.Seconds())
	}
	s.logger.Info("scan finished",
		zap.String("run_id", runID),
		zap.Duration("duration", run.Duration),
		zap.Int("failures", run.Failures()),
	)
	return run, nil
}

func (s *Scanner) scanSymbol(ctx context.Context, item config.WatchItem, anchor time.Time) Report {
	started := time.Now()
	report := Report{
		Symbol: item.Symbol,
		Name:   item.Name,
		Sector: item.Sector,
	}

	fail := func(err error) Report {
		report.Err = err
		report.Error = err.Error()
		s.logger.Warn("symbol scan failed",
			zap.String("symbol", item.Symbol),
			zap.Error(err),
		)
		if s.metrics != nil {
			s.metrics.RecordSymbol("error", time.Since(started).Seconds())
		}
		return report
	}

	start := anchor.AddDate(0, 0, -s.historyDays)
	series, err := s.collector.FetchDailySeries(ctx, item.Symbol, start, anchor.AddDate(0, 0, 1))
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordFetchError(s.collector.Name())
		}
		return fail(err)
	}

	frame, err := analysis.ComputeFrame(series)
	if err != nil {
		return fail(err)
	}

	panel, err := frame.Panel(anchor, s.offsets)
	if err != nil {
		return fail(err)
	}
	if len(panel.Entries) == 0 {
		return fail(core.WrapError(core.ErrInsufficientHistory,
			fmt.Errorf("%d bars cannot place any of the requested offsets", len(series))))
	}
	report.Panel = panel

	idx, ok := series.IndexOn(anchor)
	if !ok {
		return fail(core.ErrNoData)
	}
	report.Price = series[idx].Close
	if idx > 0 && series[idx-1].Close != 0 {
		report.PriceChangePct = (series[idx].Close - series[idx-1].Close) / series[idx-1].Close * 100
	}

	curr, err := frame.At(idx)
	if err != nil {
		return fail(err)
	}
	var prev *analysis.Snapshot
	if idx > 0 {
		if prev, err = frame.At(idx - 1); err != nil {
			return fail(err)
		}
	}

	report.Signals = analysis.Classify(curr, prev)
	strength := analysis.Strength(curr)
	report.Strength = &strength

	if s.metrics != nil {
		for _, class := range report.Signals {
			s.metrics.RecordSignal(string(class))
		}
		s.metrics.RecordSymbol("ok", time.Since(started).Seconds())
	}
	return report
}
