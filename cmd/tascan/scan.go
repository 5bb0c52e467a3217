package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dnguyen/tascan/internal/collector"
	"github.com/dnguyen/tascan/internal/collector/yahoo"
	"github.com/dnguyen/tascan/internal/config"
	"github.com/dnguyen/tascan/internal/logger"
	"github.com/dnguyen/tascan/internal/metrics"
	"github.com/dnguyen/tascan/internal/scan"
	"github.com/dnguyen/tascan/internal/storage/archive"
)

var (
	anchorFlag  string
	symbolsFlag []string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the watchlist and archive the rating report",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&anchorFlag, "anchor", "", "anchor date (YYYY-MM-DD, default today)")
	scanCmd.Flags().StringSliceVar(&symbolsFlag, "symbol", nil, "scan only these symbols instead of the watchlist")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
		log.Warn("no config file specified, using defaults")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	anchor := time.Now().UTC().Truncate(24 * time.Hour)
	if anchorFlag != "" {
		anchor, err = time.Parse("2006-01-02", anchorFlag)
		if err != nil {
			return fmt.Errorf("parsing anchor date: %w", err)
		}
	}

	watchlist := cfg.Watchlist
	if len(symbolsFlag) > 0 {
		watchlist = make([]config.WatchItem, len(symbolsFlag))
		for i, s := range symbolsFlag {
			watchlist[i] = config.WatchItem{Symbol: s}
		}
	}
	if len(watchlist) == 0 {
		return fmt.Errorf("nothing to scan: empty watchlist and no --symbol given")
	}

	var col collector.Collector
	switch cfg.Collector.Provider {
	case "yahoo":
		col = yahoo.New()
	default:
		return fmt.Errorf("unknown collector provider: %s", cfg.Collector.Provider)
	}

	store, err := newArchive(cfg.Archive)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}

	reg := metrics.NewRegistry()
	scanner := scan.New(col, log, reg, cfg.Scan)

	run, err := scanner.Run(cmd.Context(), watchlist, anchor)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	path := archive.ReportPath(run.Anchor, run.RunID)
	if err := archive.WriteJSON(cmd.Context(), store, path, run); err != nil {
		return fmt.Errorf("archiving report: %w", err)
	}

	log.Info("report archived",
		zap.String("path", path),
		zap.Int("symbols", len(run.Reports)),
		zap.Int("failures", run.Failures()),
	)
	return nil
}

func newArchive(cfg config.ArchiveConfig) (archive.Storage, error) {
	switch cfg.Type {
	case "s3":
		return archive.NewS3(archive.S3Config{
			Bucket:    cfg.S3.Bucket,
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Prefix:    cfg.S3.Prefix,
		})
	default:
		return archive.NewLocalFS(cfg.Path)
	}
}
