package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ahaeu/mobilementor/engine"
	"github.com/ahaeu/mobilementor/schema"
)

// ============================================================================
// COMPARE
// ============================================================================

func newCompareCmd(a *app) *cobra.Command {
	var names, categories []string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank the selected phones and pick the best one",
		Example: `  mobilementor compare --names "Galaxy S21" --names "iPhone 12"
  mobilementor compare -n "Redmi Note 10 (6GB RAM, 64GB)" -n "Nokia 105" --categories price_chf,battery_mah`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := a.cfg.Scoring.Categories
			if cmd.Flags().Changed("categories") {
				keys = categories
			}
			cats := engine.DefaultCategories()
			if len(keys) > 0 {
				var err error
				if cats, err = engine.LookupCategories(keys); err != nil {
					return err
				}
			}

			view, err := a.loadView()
			if err != nil {
				return err
			}
			result, err := engine.Compare(view, names, cats, a.engineOptions()...)
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().StringArrayVarP(&names, "names", "n", nil, "product name to compare, repeat for each phone (names may contain commas)")
	cmd.Flags().StringSliceVar(&categories, "categories", nil, "ranking categories (default: scoring.categories or all)")
	_ = cmd.MarkFlagRequired("names")
	return cmd
}

// ============================================================================
// SEARCH
// ============================================================================

func newSearchCmd(a *app) *cobra.Command {
	var columns []string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "List phones whose name contains the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.loadView()
			if err != nil {
				return err
			}
			dims, measures, err := splitColumns(view, columns)
			if err != nil {
				return err
			}

			query := args[0]
			hits := engine.Search(view, engine.DimProductName, query)
			a.logger.Info("searched catalog", zap.String("query", query), zap.Int("hits", hits.Len()))

			result := &engine.Result{
				Success:     true,
				Type:        "table",
				Title:       fmt.Sprintf("Search: %s", query),
				Reply:       fmt.Sprintf("%s phones match %q.", engine.FormatInt(hits.Len()), query),
				TableData:   engine.BuildListTable(hits, "Search results", dims, measures),
				DisplayUnit: a.cfg.Dataset.Currency,
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "columns to show (default: all)")
	return cmd
}

// splitColumns sorts the requested column keys into dimensions and measures.
// Nil means every column.
func splitColumns(view engine.RecordView, columns []string) (dims, measures []string, err error) {
	if len(columns) == 0 {
		return nil, nil, nil
	}
	dims, measures = []string{}, []string{}
	for _, col := range columns {
		switch {
		case lo.Contains(view.DimensionKeys(), col):
			dims = append(dims, col)
		case lo.Contains(view.MeasureKeys(), col):
			measures = append(measures, col)
		default:
			known := append(append([]string{}, view.DimensionKeys()...), view.MeasureKeys()...)
			return nil, nil, fmt.Errorf("unknown column %q (known: %s)", col, strings.Join(known, ", "))
		}
	}
	return dims, measures, nil
}

// ============================================================================
// BRAND
// ============================================================================

func newBrandCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "brand <brand>",
		Short: "Describe one category across a brand's phones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.loadView()
			if err != nil {
				return err
			}
			result, err := engine.AnalyzeBrand(view, args[0], category, a.engineOptions()...)
			if err != nil {
				return fmt.Errorf("analyze brand: %w", err)
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().StringVar(&category, "category", schema.Mobiles().GetDefaultMeasure(), "category to describe")
	return cmd
}

// ============================================================================
// BRANDS
// ============================================================================

func newBrandsCmd(a *app) *cobra.Command {
	spec := engine.GroupSpec{GroupBy: engine.DimBrand}
	var only []string

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "Aggregate a category per brand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if meta, ok := schema.Mobiles().Measure(spec.Measure); ok && !lo.Contains(meta.Aggregations, spec.Aggregation) {
				return fmt.Errorf("unknown aggregation %q (want one of %s)", spec.Aggregation, strings.Join(meta.Aggregations, ", "))
			}
			view, err := a.loadView()
			if err != nil {
				return err
			}
			view = engine.ApplyFilters(view, engine.Filters{
				Dimensions: map[string][]string{engine.DimBrand: only},
			})
			result, err := engine.Summarize(view, spec, a.engineOptions()...)
			if err != nil {
				return fmt.Errorf("summarize brands: %w", err)
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().StringVar(&spec.Measure, "measure", schema.Mobiles().GetDefaultMeasure(), "category to aggregate")
	cmd.Flags().StringVar(&spec.Aggregation, "aggregation", "count", "count, sum, avg, min or max")
	cmd.Flags().StringVar(&spec.SortBy, "sort", "value_desc", "value_desc, value_asc, label_asc or label_desc")
	cmd.Flags().IntVar(&spec.Limit, "limit", 0, "keep only the first N brands (0 = all)")
	cmd.Flags().StringSliceVar(&only, "brand", nil, "restrict to these brands (exact, case-insensitive)")
	return cmd
}

// ============================================================================
// COLUMNS
// ============================================================================

func newColumnsCmd(a *app) *cobra.Command {
	opts := schema.DefaultInspectOptions()

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Inspect the raw columns of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readDataset()
			if err != nil {
				return err
			}
			inspection, err := schema.InspectCSV(data, opts)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", a.cfg.Dataset.Path, err)
			}
			return a.render(cmd, inspectionResult(inspection))
		},
	}
	cmd.Flags().IntVar(&opts.SampleSize, "sample", opts.SampleSize, "rows to scan (0 = all)")
	cmd.Flags().IntVar(&opts.MaxSamples, "samples", opts.MaxSamples, "example values per column")
	return cmd
}

// inspectionResult turns a column inspection into a table result so it goes
// through the same writers as everything else.
func inspectionResult(in *schema.Inspection) *engine.Result {
	table := &engine.TableData{
		Title: "Columns",
		Columns: []engine.Column{
			{Key: "header", Label: "Header", Type: "text", Align: "left"},
			{Key: "key", Label: "Key", Type: "text", Align: "left"},
			{Key: "type", Label: "Type", Type: "text", Align: "left"},
			{Key: "role", Label: "Role", Type: "text", Align: "left"},
			{Key: "feeds", Label: "Feeds", Type: "text", Align: "left"},
			{Key: "nulls", Label: "Nulls", Type: "number", Align: "right"},
			{Key: "unique", Label: "Unique", Type: "number", Align: "right"},
			{Key: "samples", Label: "Samples", Type: "text", Align: "left"},
		},
		Rows: make([][]string, 0, len(in.Columns)),
	}
	mobiles := schema.Mobiles()
	for _, col := range in.Columns {
		table.Rows = append(table.Rows, []string{
			col.Header,
			col.Key,
			col.Type,
			col.Role,
			strings.Join(mobiles.FieldsFrom(col.Header), ", "),
			engine.FormatInt(col.NullCount),
			engine.FormatInt(col.UniqueCount),
			strings.Join(col.Samples, " | "),
		})
	}
	return &engine.Result{
		Success:   true,
		Type:      "table",
		Title:     "Dataset columns",
		Reply:     fmt.Sprintf("%s columns, %s rows scanned.", engine.FormatInt(len(in.Columns)), engine.FormatInt(in.Rows)),
		TableData: table,
	}
}
