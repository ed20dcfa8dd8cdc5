package engine

import (
	"fmt"
	"strconv"
)

// ============================================================================
// TABLE BUILDER: Produces TableData for selections, rankings and groups
// ============================================================================

// BuildListTable renders one row per record with the given dimension and
// measure columns. Nil column lists fall back to the view's registered keys.
func BuildListTable(view RecordView, title string, dims, measures []string) *TableData {
	if dims == nil {
		dims = view.DimensionKeys()
	}
	if measures == nil {
		measures = view.MeasureKeys()
	}

	columns := make([]Column, 0, len(dims)+len(measures))
	for _, key := range dims {
		columns = append(columns, Column{Key: key, Label: LabelForDimension(key), Type: "text", Align: "left"})
	}
	for _, key := range measures {
		columns = append(columns, Column{Key: key, Label: LabelFor(key), Type: "number", Align: "right"})
	}

	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		row := make([]string, 0, len(columns))
		for _, key := range dims {
			row = append(row, view.Dimension(i, key))
		}
		for _, key := range measures {
			row = append(row, FormatNumber(RoundTo2(view.Measure(i, key))))
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:  fmt.Sprintf("%s records", FormatInt(view.Len())),
			Values: map[string]string{},
		},
	}
}

// BuildRankedTable renders the leaderboard.
func BuildRankedTable(s *Scoring) *TableData {
	table := &TableData{
		Title: "Ranking",
		Columns: []Column{
			{Key: "position", Label: "#", Type: "number", Align: "right"},
			{Key: "name", Label: "Product Name", Type: "text", Align: "left"},
			{Key: "points", Label: "Points", Type: "points", Align: "right"},
		},
		Rows: [][]string{},
	}
	if s == nil {
		return table
	}
	for _, e := range s.Ranking {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(e.Position),
			e.Name,
			strconv.Itoa(e.Total),
		})
	}
	if len(s.Ranking) > 0 {
		table.Summary = &Summary{
			Label:  "Maximum possible",
			Values: map[string]string{"points": strconv.Itoa(len(s.Ranking) * len(s.Categories))},
		}
	}
	return table
}

// BuildPointsTable renders the wide point table: one column per category.
func BuildPointsTable(t PointTable) *TableData {
	columns := make([]Column, 0, len(t.Categories)+1)
	columns = append(columns, Column{Key: "name", Label: "Product Name", Type: "text", Align: "left"})
	for _, c := range t.Categories {
		columns = append(columns, Column{Key: c.Key, Label: c.Label, Type: "points", Align: "right"})
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make([]string, 0, len(columns))
		row = append(row, r.Name)
		for _, p := range r.Points {
			row = append(row, strconv.Itoa(p))
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   "Points per Category",
		Columns: columns,
		Rows:    rows,
	}
}

// BuildGroupTable renders aggregated groups with a total line.
func BuildGroupTable(spec GroupSpec, groups []Group) *TableData {
	if len(groups) == 0 {
		return &TableData{
			Title:   spec.Title,
			Columns: []Column{},
			Rows:    [][]string{},
		}
	}

	groupLabel := "Group"
	if spec.GroupBy != "" {
		groupLabel = LabelForDimension(spec.GroupBy)
	}

	columns := []Column{
		{Key: "group", Label: groupLabel, Type: "text", Align: "left"},
		{Key: "value", Label: LabelForAggregation(spec.Aggregation), Type: "number", Align: "right"},
		{Key: "count", Label: "Count", Type: "number", Align: "center"},
	}

	rows := make([][]string, 0, len(groups))
	var totalCount int
	for _, g := range groups {
		rows = append(rows, []string{
			g.Label,
			fmt.Sprintf("%.2f", g.Value),
			strconv.Itoa(g.Count),
		})
		totalCount += g.Count
	}

	return &TableData{
		Title:   spec.Title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: "Total",
			Values: map[string]string{
				"count": strconv.Itoa(totalCount),
			},
		},
	}
}
