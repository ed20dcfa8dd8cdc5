package engine

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ============================================================================
// EXECUTOR: Comparison, brand analysis and group summaries
// ============================================================================
// Entry points:
//   Compare(view, names, categories, opts...) : select → score → build
//   AnalyzeBrand(view, brand, measure, opts...): filter → describe → build
//   Summarize(view, spec, opts...)             : group → aggregate → build
//
// All computation is local and synchronous. Inputs are read through
// RecordView and never modified.
// ============================================================================

// Compare selects the named records from view and scores them on categories.
// No matching name is not an error: the result is a text reply.
func Compare(view RecordView, names []string, categories []Category, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)
	selection := SelectByName(view, cfg.NameDimension, names)

	cfg.Logger.Info("comparing mobile phones",
		zap.Int("requested", len(names)),
		zap.Int("selected", selection.Len()),
		zap.Int("categories", len(categories)),
	)
	return compareSelection(selection, categories, cfg)
}

// CompareSelection scores an already selected view.
func CompareSelection(selection RecordView, categories []Category, opts ...Option) (*Result, error) {
	return compareSelection(selection, categories, applyOptions(opts))
}

func compareSelection(selection RecordView, categories []Category, cfg *config) (*Result, error) {
	if selection.Len() == 0 {
		return &Result{
			Success: true,
			Type:    "text",
			Reply:   "No mobile phones selected.",
		}, nil
	}

	s, err := score(selection, categories, cfg)
	if err != nil {
		return nil, fmt.Errorf("score selection: %w", err)
	}

	charts := make([]ChartConfig, 0, len(s.Categories))
	for _, c := range s.Categories {
		charts = append(charts, BuildCategoryChart(selection, cfg.NameDimension, c))
	}
	measures := lo.Map(s.Categories, func(c Category, _ int) string { return c.Key })
	best, _ := s.Best()

	return &Result{
		Success:        true,
		Type:           "comparison",
		Title:          "Compare the mobile phones",
		Reply:          BuildHeadline(s),
		Best:           best.Name,
		Leaderboard:    BuildLeaderboardChart(s),
		CategoryCharts: charts,
		Strengths:      BuildStrengthsChart(s.Points),
		RankedTable:    BuildRankedTable(s),
		PointsTable:    BuildPointsTable(s.Points),
		SelectionTable: BuildListTable(selection, "Selected mobile phones", []string{cfg.NameDimension}, measures),
		Tidy:           s.Points.Tidy(),
		Scoring:        s,
		DisplayUnit:    cfg.DisplayUnit,
	}, nil
}

// AnalyzeBrand describes how a measure is distributed across one brand's
// devices. Brand matching is a case-insensitive substring match; values of 0
// (unknown) are left out.
func AnalyzeBrand(view RecordView, brand string, measure string, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)
	if !lo.Contains(view.MeasureKeys(), measure) {
		return nil, newUnknownCategoryError(measure, -1, "")
	}

	branded := Search(view, cfg.BrandDimension, brand)
	known := PositiveOnly(branded, measure)
	label := LabelFor(measure)

	cfg.Logger.Info("analyzing brand",
		zap.String("brand", brand),
		zap.String("measure", measure),
		zap.Int("devices", branded.Len()),
		zap.Strings("matchedBrands", UniqueValues(branded, cfg.BrandDimension)),
		zap.Int("withValue", known.Len()),
	)

	unit := ""
	if measure == MeasurePrice {
		unit = cfg.DisplayUnit
	}
	data, reply := BuildDescriptionText(brand, label, Describe(known, measure), unit)

	if known.Len() == 0 {
		return &Result{Success: true, Type: "text", Reply: reply, Data: data}, nil
	}

	return &Result{
		Success:     true,
		Type:        "distribution",
		Title:       fmt.Sprintf("%s: %s", brand, label),
		Reply:       reply,
		ChartConfig: BuildDistributionChart(ValueCounts(known, measure), label),
		Data:        data,
		DisplayUnit: unit,
	}, nil
}

// Summarize groups the view and aggregates one measure per group.
func Summarize(view RecordView, spec GroupSpec, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)
	if spec.Aggregation != "count" && !lo.Contains(view.MeasureKeys(), spec.Measure) {
		return nil, newUnknownCategoryError(spec.Measure, -1, "")
	}
	if spec.Title == "" {
		spec.Title = summaryTitle(spec)
	}

	groups := GroupAndAggregate(view, spec)
	cfg.Logger.Debug("summarized view",
		zap.String("groupBy", spec.GroupBy),
		zap.String("aggregation", spec.Aggregation),
		zap.Int("groups", len(groups)),
	)

	if len(groups) == 0 {
		return &Result{Success: true, Type: "text", Reply: "No data available to analyze."}, nil
	}
	return &Result{
		Success:     true,
		Type:        "table",
		Title:       spec.Title,
		Reply:       fmt.Sprintf("%s groups from %s records.", FormatInt(len(groups)), FormatInt(view.Len())),
		ChartConfig: BuildGroupChart(spec, groups),
		TableData:   BuildGroupTable(spec, groups),
	}, nil
}

func summaryTitle(spec GroupSpec) string {
	by := "All"
	if spec.GroupBy != "" {
		by = LabelForDimension(spec.GroupBy)
	}
	if spec.Aggregation == "count" {
		return fmt.Sprintf("Devices by %s", by)
	}
	return fmt.Sprintf("%s %s by %s", LabelForAggregation(spec.Aggregation), LabelFor(spec.Measure), by)
}
