package collector

import (
	"context"
	"time"

	"github.com/dnguyen/tascan/internal/core"
)

// Collector fetches daily OHLCV history for a symbol. Implementations
// must return bars sorted by date ascending with no duplicate dates, so
// the result satisfies core.Series.Validate.
type Collector interface {
	Name() string

	FetchDailySeries(ctx context.Context, symbol string, start, end time.Time) (core.Series, error)
}
