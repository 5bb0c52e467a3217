package analysis

import (
	"fmt"
	"time"

	"github.com/dnguyen/tascan/internal/core"
)

// ComputePanel re-runs calculate -> classify -> aggregate anchored at the
// bar on or before `anchor` and at each non-positive offset in trading
// days. Every entry derives from index arithmetic on ONE frame built over
// the shared series snapshot, so the panel for anchor day N at offset -1
// is bar-for-bar identical to the panel for day N-1 at offset 0.
//
// Offsets that reach past the start of the series are omitted rather than
// reported as errors; an anchor before the first bar is ErrNoData.
func ComputePanel(series core.Series, anchor time.Time, offsets []int) (*core.RatingPanel, error) {
	frame, err := ComputeFrame(series)
	if err != nil {
		return nil, err
	}
	return frame.Panel(anchor, offsets)
}

// Panel builds a rating panel from an already-computed frame.
func (f *Frame) Panel(anchor time.Time, offsets []int) (*core.RatingPanel, error) {
	anchorIdx, ok := f.series.IndexOn(anchor)
	if !ok {
		return nil, core.WrapError(core.ErrNoData,
			fmt.Errorf("no bar on or before %s", anchor.Format("2006-01-02")))
	}

	panel := &core.RatingPanel{Anchor: anchor}
	for _, offset := range offsets {
		if offset > 0 {
			return nil, core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("offset %d looks into the future", offset))
		}
		idx := anchorIdx + offset
		if idx < 0 {
			continue
		}
		entry, err := entryAt(f, idx, offset)
		if err != nil {
			return nil, err
		}
		panel.Entries = append(panel.Entries, entry)
	}
	return panel, nil
}

// entryAt builds one panel entry from the frame at a resolved bar index.
func entryAt(frame *Frame, idx, offset int) (core.PanelEntry, error) {
	curr, err := frame.At(idx)
	if err != nil {
		return core.PanelEntry{}, err
	}
	var prev *Snapshot
	if idx > 0 {
		if prev, err = frame.At(idx - 1); err != nil {
			return core.PanelEntry{}, err
		}
	}

	signals := Classify(curr, prev)
	osc, ma := Aggregate(curr.Date, signals)
	rating1, rating2 := Scores(osc, ma)

	return core.PanelEntry{
		Offset:         offset,
		Date:           curr.Date,
		Oscillators:    osc,
		MovingAverages: ma,
		Rating1:        rating1,
		Rating2:        rating2,
	}, nil
}
