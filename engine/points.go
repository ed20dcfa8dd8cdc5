package engine

// ============================================================================
// POINT TABLE: per-category points, wide and tidy
// ============================================================================
// Wide: one row per record, one column per category.
// Tidy: one cell per (record, category), the shape multi-series radar plots
// consume. Tidy keeps every cell: len = records × categories.
// ============================================================================

// PointTable holds the points each record earned in each category.
// Rows are in selection order.
type PointTable struct {
	Categories []Category `json:"categories"`
	Rows       []PointRow `json:"rows"`
}

// PointRow is one record's points, parallel to PointTable.Categories.
type PointRow struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Points []int  `json:"points"`
}

// PointCell is one tidy (record, category, points) triple.
type PointCell struct {
	Name     string `json:"name"`
	Category string `json:"category"` // category label
	Key      string `json:"key"`      // category key
	Points   int    `json:"points"`
}

// Total sums a row's points.
func (r PointRow) Total() int {
	total := 0
	for _, p := range r.Points {
		total += p
	}
	return total
}

// Column returns the points of every row for the category key, in row order.
// ok is false when the key is not part of the table.
func (t PointTable) Column(key string) ([]int, bool) {
	idx := t.categoryIndex(key)
	if idx < 0 {
		return nil, false
	}
	col := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		col[i] = r.Points[idx]
	}
	return col, true
}

// Row returns row i. ok is false when i is out of range.
func (t PointTable) Row(i int) (PointRow, bool) {
	if i < 0 || i >= len(t.Rows) {
		return PointRow{}, false
	}
	return t.Rows[i], true
}

// Cell returns the points of row i in the category key.
func (t PointTable) Cell(i int, key string) (int, bool) {
	idx := t.categoryIndex(key)
	if idx < 0 || i < 0 || i >= len(t.Rows) {
		return 0, false
	}
	return t.Rows[i].Points[idx], true
}

// Tidy melts the table: category by category, rows in selection order within
// each category.
func (t PointTable) Tidy() []PointCell {
	cells := make([]PointCell, 0, len(t.Rows)*len(t.Categories))
	for c, cat := range t.Categories {
		for _, r := range t.Rows {
			cells = append(cells, PointCell{
				Name:     r.Name,
				Category: cat.Label,
				Key:      cat.Key,
				Points:   r.Points[c],
			})
		}
	}
	return cells
}

// MaxPoints is the largest cell value, 0 for an empty table.
func (t PointTable) MaxPoints() int {
	top := 0
	for _, r := range t.Rows {
		for _, p := range r.Points {
			if p > top {
				top = p
			}
		}
	}
	return top
}

func (t PointTable) categoryIndex(key string) int {
	for i, c := range t.Categories {
		if c.Key == key {
			return i
		}
	}
	return -1
}
