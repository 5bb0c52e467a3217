package scan

import "sort"

const topSymbols = 3

// SectorSummary aggregates the anchor-day ratings of one sector.
type SectorSummary struct {
	Sector     string   `json:"sector"`
	Symbols    int      `json:"symbols"`
	AvgRating1 float64  `json:"avg_rating1"`
	AvgChange  float64  `json:"avg_change"`  // mean rating1 delta vs the previous entry
	TopSymbols []string `json:"top_symbols"` // up to three, by rating1 descending
}

// Sectors groups successful reports by sector and summarises each group.
// Reports without a sector or without an anchor entry are skipped.
// Results are ordered by AvgRating1 descending, sector name as tiebreak.
func Sectors(reports []Report) []SectorSummary {
	type member struct {
		symbol  string
		rating1 int
	}
	groups := map[string][]member{}
	changes := map[string][]int{}

	for i := range reports {
		r := &reports[i]
		if r.Sector == "" || r.Failed() {
			continue
		}
		entry := r.AnchorEntry()
		if entry == nil {
			continue
		}
		groups[r.Sector] = append(groups[r.Sector], member{r.Symbol, entry.Rating1})
		if prev := r.EntryAt(-1); prev != nil {
			changes[r.Sector] = append(changes[r.Sector], entry.Rating1-prev.Rating1)
		}
	}

	summaries := make([]SectorSummary, 0, len(groups))
	for sector, members := range groups {
		sum := 0
		for _, m := range members {
			sum += m.rating1
		}

		sort.SliceStable(members, func(i, j int) bool {
			return members[i].rating1 > members[j].rating1
		})
		top := make([]string, 0, topSymbols)
		for i := 0; i < len(members) && i < topSymbols; i++ {
			top = append(top, members[i].symbol)
		}

		s := SectorSummary{
			Sector:     sector,
			Symbols:    len(members),
			AvgRating1: float64(sum) / float64(len(members)),
			TopSymbols: top,
		}
		if deltas := changes[sector]; len(deltas) > 0 {
			total := 0
			for _, d := range deltas {
				total += d
			}
			s.AvgChange = float64(total) / float64(len(deltas))
		}
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].AvgRating1 != summaries[j].AvgRating1 {
			return summaries[i].AvgRating1 > summaries[j].AvgRating1
		}
		return summaries[i].Sector < summaries[j].Sector
	})
	return summaries
}
