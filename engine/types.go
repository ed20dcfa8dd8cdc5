package engine

// ============================================================================
// MOBILEMENTOR ENGINE TYPES: Phone comparison and rank-point scoring
// ============================================================================
// The engine reads records through RecordView (dimension/measure access) and
// returns render-ready structures: charts, tables, text.
//
// Nothing here draws anything. Frontends (CLI, web, notebooks) consume the
// JSON-tagged output.
// ============================================================================

// ============================================================================
// RECORD: Generic data row
// ============================================================================

// Record is a single data row with string dimensions and numeric measures.
//
// Example: Record{Dimensions["product_name"]="Galaxy S20+", Measures["price_chf"]=879.99}
type Record struct {
	Dimensions map[string]string  `json:"dimensions"`
	Measures   map[string]float64 `json:"measures"`
}

// ============================================================================
// RESULT: Render-ready output
// ============================================================================

// Result is the engine's render-ready output for one comparison or analysis.
type Result struct {
	Success bool   `json:"success"`
	Type    string `json:"type"` // "comparison", "distribution", "text"
	Reply   string `json:"reply"`
	Title   string `json:"title"`

	// Comparison outputs (Type="comparison")
	Best           string        `json:"best,omitempty"`
	Leaderboard    *ChartConfig  `json:"leaderboard,omitempty"`
	CategoryCharts []ChartConfig `json:"categoryCharts,omitempty"`
	Strengths      *ChartConfig  `json:"strengths,omitempty"`
	RankedTable    *TableData    `json:"rankedTable,omitempty"`
	PointsTable    *TableData    `json:"pointsTable,omitempty"`
	SelectionTable *TableData    `json:"selectionTable,omitempty"`
	Tidy           []PointCell   `json:"tidy,omitempty"` // long form of PointsTable, category-major
	Scoring        *Scoring      `json:"scoring,omitempty"`

	// Distribution outputs (Type="distribution")
	ChartConfig *ChartConfig `json:"chartConfig,omitempty"`
	TableData   *TableData   `json:"tableData,omitempty"`
	Data        *TextData    `json:"data,omitempty"`

	DisplayUnit string `json:"displayUnit,omitempty"`
}

// ============================================================================
// GROUP: Intermediate computation result
// ============================================================================

// Group represents a grouped/aggregated result.
// Builders convert these into ChartConfig or TableData.
type Group struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Value float64    `json:"value"`
	Count int        `json:"count"`
	View  RecordView `json:"-"` // Sub-view for records in this group (zero-copy)
}

// GroupSpec describes a group → aggregate → sort → limit run.
type GroupSpec struct {
	GroupBy     string `json:"groupBy"`
	Measure     string `json:"measure"`
	Aggregation string `json:"aggregation"` // "sum", "count", "avg", "max", "min"
	SortBy      string `json:"sortBy"`      // "value_desc", "value_asc", "label_asc", "label_desc"
	Limit       int    `json:"limit"`       // 0 = all
	Title       string `json:"title"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "bar", "radar"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`

	// Radar only: upper bound of the radial axis and whether traces are filled.
	RadialMax float64 `json:"radialMax,omitempty"`
	Fill      bool    `json:"fill,omitempty"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "points"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals or aggregations for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// ============================================================================
// TEXT TYPES
// ============================================================================

// TextData is structured data for a one-line answer.
type TextData struct {
	Value    string       `json:"value"`
	RawValue float64      `json:"rawValue"`
	Unit     string       `json:"unit"`
	Count    int          `json:"count"`
	Describe *Description `json:"describe,omitempty"`
}

// Description holds the summary statistics of a measure over a view.
type Description struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
}
