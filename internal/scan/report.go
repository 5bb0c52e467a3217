package scan

import (
	"time"

	"github.com/dnguyen/tascan/internal/analysis"
	"github.com/dnguyen/tascan/internal/core"
)

// Report holds the analysis result for one watchlist symbol. A failed
// symbol carries its error and empty analysis fields; it never aborts
// the surrounding run.
type Report struct {
	Symbol         string                                  `json:"symbol"`
	Name           string                                  `json:"name,omitempty"`
	Sector         string                                  `json:"sector,omitempty"`
	Price          float64                                 `json:"price"`
	PriceChangePct float64                                 `json:"price_change_pct"`
	Panel          *core.RatingPanel                       `json:"panel,omitempty"`
	Signals        map[analysis.Indicator]core.SignalClass `json:"signals,omitempty"`
	Strength       *analysis.TrendStrength                 `json:"strength,omitempty"`
	Error          string                                  `json:"error,omitempty"`

	Err error `json:"-"`
}

// Failed reports whether the symbol's scan ended in an error.
func (r *Report) Failed() bool {
	return r.Err != nil
}

// AnchorEntry returns the panel entry at offset 0, or nil.
func (r *Report) AnchorEntry() *core.PanelEntry {
	return r.EntryAt(0)
}

// EntryAt returns the panel entry at the given offset, or nil.
func (r *Report) EntryAt(offset int) *core.PanelEntry {
	if r.Panel == nil {
		return nil
	}
	if e, ok := r.Panel.Entry(offset); ok {
		return &e
	}
	return nil
}

// RunReport is the archived output of one full watchlist scan.
type RunReport struct {
	RunID     string          `json:"run_id"`
	Anchor    time.Time       `json:"anchor"`
	StartedAt time.Time       `json:"started_at"`
	Duration  time.Duration   `json:"duration"`
	Reports   []Report        `json:"reports"`
	Sectors   []SectorSummary `json:"sectors,omitempty"`
}

// Failures counts the symbols that ended in an error.
func (r *RunReport) Failures() int {
	n := 0
	for i := range r.Reports {
		if r.Reports[i].Error != "" {
			n++
		}
	}
	return n
}
