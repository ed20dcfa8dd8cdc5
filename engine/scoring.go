package engine

import (
	"math"
	"slices"
	"sort"

	"go.uber.org/zap"
)

// ============================================================================
// SCORING: Rank points per category, totals, leaderboard
// ============================================================================
// Entry point: Score(selection, categories, opts...)
//
// Pipeline:
//   1. Read every (record, category) value through the view; any missing or
//      non-finite value fails the whole run before points are awarded
//   2. Per category: competition rank ("max" tie-break) → points
//   3. Sum points into totals
//   4. Stable sort by total, descending → Ranking
//
// The selection is never written to. n is the selection length.
// ============================================================================

// Scoring is the outcome of one scoring run.
type Scoring struct {
	Categories []Category    `json:"categories"`
	Ranking    []RankedEntry `json:"ranking"`
	Points     PointTable    `json:"points"`
}

// RankedEntry is one leaderboard line.
type RankedEntry struct {
	Position int    `json:"position"` // 1-based place on the leaderboard
	Index    int    `json:"index"`    // row index in the scored selection
	Name     string `json:"name"`
	Total    int    `json:"total"`
}

// Best returns the leaderboard leader. ok is false for an empty selection.
func (s *Scoring) Best() (RankedEntry, bool) {
	if s == nil || len(s.Ranking) == 0 {
		return RankedEntry{}, false
	}
	return s.Ranking[0], true
}

// Score ranks every record of selection in every category and aggregates the
// points. Equal totals keep their selection order.
//
// An empty selection yields an empty Scoring and no error. An empty category
// list yields zero totals in selection order.
func Score(selection RecordView, categories []Category, opts ...Option) (*Scoring, error) {
	return score(selection, categories, applyOptions(opts))
}

func score(selection RecordView, categories []Category, cfg *config) (*Scoring, error) {
	cats := slices.Clone(categories)
	if cats == nil {
		cats = []Category{}
	}
	result := &Scoring{
		Categories: cats,
		Ranking:    []RankedEntry{},
		Points:     PointTable{Categories: cats, Rows: []PointRow{}},
	}

	n := selection.Len()
	if n == 0 {
		cfg.Logger.Debug("empty selection, nothing to score")
		return result, nil
	}

	if err := validateCategories(cats); err != nil {
		return nil, err
	}

	names := make([]string, n)
	for i := range names {
		names[i] = selection.Dimension(i, cfg.NameDimension)
	}

	values, err := readValues(selection, cats, names)
	if err != nil {
		return nil, err
	}

	rows := make([]PointRow, n)
	for i := range rows {
		rows[i] = PointRow{Index: i, Name: names[i], Points: make([]int, len(cats))}
	}
	totals := make([]int, n)

	for c, cat := range cats {
		for i, rank := range competitionRanks(values[c], cat) {
			pts := rankPoints(n, rank)
			rows[i].Points[c] = pts
			totals[i] += pts
		}
	}

	ranking := make([]RankedEntry, n)
	for i := range ranking {
		ranking[i] = RankedEntry{Index: i, Name: names[i], Total: totals[i]}
	}
	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Total > ranking[b].Total
	})
	for p := range ranking {
		ranking[p].Position = p + 1
	}

	result.Ranking = ranking
	result.Points.Rows = rows

	cfg.Logger.Debug("scored selection",
		zap.Int("records", n),
		zap.Int("categories", len(cats)),
		zap.String("best", ranking[0].Name),
		zap.Int("bestTotal", ranking[0].Total),
	)
	return result, nil
}

// validateCategories rejects empty and repeated keys.
func validateCategories(cats []Category) error {
	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		if c.Key == "" {
			return newInvalidCategoryError(c.Key, "empty category key")
		}
		if seen[c.Key] {
			return newInvalidCategoryError(c.Key, "category listed more than once")
		}
		seen[c.Key] = true
	}
	return nil
}

// readValues copies each category column into a scratch slice.
func readValues(view RecordView, cats []Category, names []string) ([][]float64, error) {
	n := view.Len()
	values := make([][]float64, len(cats))
	for c, cat := range cats {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			v, ok := view.LookupMeasure(i, cat.Key)
			if !ok {
				return nil, newUnknownCategoryError(cat.Key, i, names[i])
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, NewInvalidValueError(cat.Key, i, names[i], nil)
			}
			col[i] = v
		}
		values[c] = col
	}
	return values, nil
}
