package engine

// ============================================================================
// CHART BUILDER: Produces ChartConfig for comparisons and distributions
// ============================================================================
// Charts are plain data. A frontend decides how a "bar" or "radar" is drawn.
// ============================================================================

// Default color palette for multi-series charts.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

const leaderboardColor = "pink"

// radialPadding keeps the outermost radar points off the axis edge.
const radialPadding = 0.5

// BuildCategoryChart charts the raw values of one category, one bar per
// record in view order.
func BuildCategoryChart(view RecordView, nameDimension string, cat Category) ChartConfig {
	points := make([]ChartPoint, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		points = append(points, ChartPoint{
			Label: view.Dimension(i, nameDimension),
			Value: RoundTo2(view.Measure(i, cat.Key)),
		})
	}
	return ChartConfig{
		ChartType: "bar",
		Title:     cat.Label,
		XAxis:     cat.Label,
		YAxis:     LabelForDimension(nameDimension),
		Series: []ChartSeries{{
			Name:  cat.Label,
			Data:  points,
			Color: cat.Color,
		}},
		Colors:   []string{cat.Color},
		ShowGrid: true,
	}
}

// BuildLeaderboardChart charts total points, highest first.
func BuildLeaderboardChart(s *Scoring) *ChartConfig {
	if s == nil || len(s.Ranking) == 0 {
		return nil
	}
	points := make([]ChartPoint, 0, len(s.Ranking))
	for _, e := range s.Ranking {
		points = append(points, ChartPoint{Label: e.Name, Value: float64(e.Total)})
	}
	return &ChartConfig{
		ChartType: "bar",
		Title:     "Best Mobile Phone",
		XAxis:     "Points",
		YAxis:     "Product Name",
		Series: []ChartSeries{{
			Name:  "Points",
			Data:  points,
			Color: leaderboardColor,
		}},
		Colors:   []string{leaderboardColor},
		ShowGrid: true,
	}
}

// BuildStrengthsChart turns a point table into a filled radar chart: one
// series per record, one spoke per category.
func BuildStrengthsChart(t PointTable) *ChartConfig {
	if len(t.Rows) == 0 || len(t.Categories) == 0 {
		return nil
	}
	series := make([]ChartSeries, 0, len(t.Rows))
	for i, r := range t.Rows {
		data := make([]ChartPoint, 0, len(t.Categories))
		for c, cat := range t.Categories {
			data = append(data, ChartPoint{Label: cat.Label, Value: float64(r.Points[c])})
		}
		series = append(series, ChartSeries{
			Name:  r.Name,
			Data:  data,
			Color: defaultColors[i%len(defaultColors)],
		})
	}
	return &ChartConfig{
		ChartType:  "radar",
		Title:      "Strengths",
		Series:     series,
		Colors:     assignColors(len(series)),
		ShowLegend: true,
		RadialMax:  float64(t.MaxPoints()) + radialPadding,
		Fill:       true,
	}
}

// BuildDistributionChart charts how often each value occurs.
func BuildDistributionChart(counts []ValueCount, label string) *ChartConfig {
	if len(counts) == 0 {
		return nil
	}
	points := make([]ChartPoint, 0, len(counts))
	for _, vc := range counts {
		points = append(points, ChartPoint{Label: FormatNumber(vc.Value), Value: float64(vc.Count)})
	}
	return &ChartConfig{
		ChartType: "bar",
		Title:     label,
		XAxis:     label,
		YAxis:     "Count",
		Series:    []ChartSeries{{Name: "Count", Data: points}},
		Colors:    assignColors(1),
		ShowGrid:  true,
	}
}

// BuildGroupChart produces a single-series chart from aggregated groups.
func BuildGroupChart(spec GroupSpec, groups []Group) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}

	seriesName := spec.Title
	if seriesName == "" {
		seriesName = LabelForAggregation(spec.Aggregation)
	}

	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, ChartPoint{
			Label: g.Label,
			Value: RoundTo2(g.Value),
		})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      spec.Title,
		XAxis:      LabelForDimension(spec.GroupBy),
		YAxis:      LabelForAggregation(spec.Aggregation),
		Series:     []ChartSeries{{Name: seriesName, Data: points}},
		Colors:     assignColors(1),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
