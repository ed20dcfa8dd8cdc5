package schema

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ============================================================================
// COLUMN INSPECTION: Heuristic profile of a raw CSV export
// ============================================================================
// Reports what every raw column looks like before normalization: type,
// null and unique counts, sample values and the role the column would play.
//
// Per column:
//   1. Collect non-null values → detect type (numeric, bool, string)
//   2. Type + cardinality → suggested role (dimension, measure, skip)
// ============================================================================

// InspectOptions controls inspection behavior.
type InspectOptions struct {
	SampleSize int // Max rows to inspect (0 = all, capped)
	MaxSamples int // Sample values reported per column
}

// DefaultInspectOptions returns sensible defaults.
func DefaultInspectOptions() InspectOptions {
	return InspectOptions{
		SampleSize: 1000,
		MaxSamples: 5,
	}
}

// Column types and roles reported by InspectCSV.
const (
	TypeString  = "string"
	TypeNumeric = "numeric"
	TypeBool    = "bool"

	RoleDimension = "dimension"
	RoleMeasure   = "measure"
	RoleSkipped   = "skipped"
)

// Inspection is the profile of one CSV export.
type Inspection struct {
	Rows    int          `json:"rows"` // data rows inspected
	Columns []ColumnInfo `json:"columns"`
}

// ColumnInfo describes one raw column.
type ColumnInfo struct {
	Header      string   `json:"header"`
	Key         string   `json:"key"`
	DisplayName string   `json:"displayName"`
	Type        string   `json:"type"`
	Role        string   `json:"role"`
	SkipReason  string   `json:"skipReason,omitempty"`
	NullCount   int      `json:"nullCount"`
	UniqueCount int      `json:"uniqueCount"`
	Samples     []string `json:"samples"`
}

// InspectCSV profiles every column of data.
func InspectCSV(data []byte, opts ...InspectOptions) (*Inspection, error) {
	opt := DefaultInspectOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.MaxSamples <= 0 {
		opt.MaxSamples = DefaultInspectOptions().MaxSamples
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	// 1. Read headers
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("CSV has no columns")
	}

	// 2. Read sample rows
	var rows [][]string
	limit := opt.SampleSize
	if limit <= 0 {
		limit = 100000 // safety cap
	}
	for i := 0; i < limit; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}

	// 3. Analyze each column
	columns := make([]ColumnInfo, len(headers))
	for i, header := range headers {
		columns[i] = analyzeColumn(strings.TrimPrefix(header, "\ufeff"), i, rows, opt.MaxSamples)
	}

	return &Inspection{Rows: len(rows), Columns: columns}, nil
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

func analyzeColumn(header string, index int, rows [][]string, maxSamples int) ColumnInfo {
	col := ColumnInfo{
		Header:      header,
		Key:         toSnakeCase(header),
		DisplayName: toDisplayName(header),
		Type:        TypeString,
		Samples:     []string{},
	}

	values := make([]string, 0, len(rows))
	uniqueSet := make(map[string]bool)
	for _, row := range rows {
		if index >= len(row) || isNull(row[index]) {
			col.NullCount++
			continue
		}
		val := strings.TrimSpace(row[index])
		values = append(values, val)
		uniqueSet[val] = true
	}
	col.UniqueCount = len(uniqueSet)

	if len(values) == 0 {
		col.Role = RoleSkipped
		col.SkipReason = "All values are empty/null"
		return col
	}

	col.Samples = collectSamples(uniqueSet, maxSamples)
	col.Type = detectType(values)
	col.classifyRole(len(rows))
	return col
}

// classifyRole determines dimension vs measure vs skip.
func (col *ColumnInfo) classifyRole(totalRows int) {
	switch col.Type {
	case TypeNumeric:
		if col.UniqueCount == totalRows && totalRows > 10 && !col.hasMeasureHeader() {
			col.Role = RoleSkipped
			col.SkipReason = "Unique per row, likely an ID column"
			return
		}
		col.Role = RoleMeasure

	case TypeBool:
		col.Role = RoleDimension

	default:
		if col.UniqueCount > totalRows/2 && col.UniqueCount > 50 {
			col.Role = RoleSkipped
			col.SkipReason = fmt.Sprintf("High cardinality (%d unique values), not useful for grouping", col.UniqueCount)
			return
		}
		col.Role = RoleDimension
	}
}

// hasMeasureHeader recognizes unit-bearing headers such as "(mAh)".
func (col *ColumnInfo) hasMeasureHeader() bool {
	return strings.Contains(col.Header, "(") || strings.HasSuffix(col.Header, "Stars")
}

// ============================================================================
// TYPE DETECTION
// ============================================================================

// detectType requires 80%+ of non-null values to match for numeric/bool.
func detectType(values []string) string {
	if len(values) == 0 {
		return TypeString
	}

	numCount := 0
	boolCount := 0
	for _, v := range values {
		if isNumeric(v) {
			numCount++
		}
		if isBool(v) {
			boolCount++
		}
	}

	threshold := int(float64(len(values)) * 0.8)
	if boolCount >= threshold && boolCount > 0 && numCount < len(values) {
		return TypeBool
	}
	if numCount >= threshold && numCount > 0 {
		return TypeNumeric
	}
	return TypeString
}

func isNull(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "null", "NULL", "N/A", "n/a", "nan", "NaN":
		return true
	}
	return false
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "") // handle "1,234.56"
	s = strings.TrimPrefix(s, "â‚¹")
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "-")
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "false" || s == "yes" || s == "no"
}

// ============================================================================
// STRING UTILITIES
// ============================================================================

// toSnakeCase converts "Column Name" or "columnName" → "column_name".
// Brackets are dropped: "Battery capacity (mAh)" → "battery_capacity_mah".
func toSnakeCase(s string) string {
	camel := !strings.Contains(s, " ")
	var result strings.Builder
	for i, r := range s {
		if camel && unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
	}

	s = strings.ToLower(result.String())
	s = strings.NewReplacer(" ", "_", "-", "_", "(", "", ")", "").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// toDisplayName cleans a header for human display.
// "story_points" → "Story Points", "Rear camera" → "Rear camera"
func toDisplayName(s string) string {
	if strings.Contains(s, " ") {
		return strings.TrimSpace(s)
	}

	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		}
	}
	return strings.Join(words, " ")
}

// collectSamples picks up to maxSamples values in sorted order.
func collectSamples(uniqueSet map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}
	sort.Strings(samples)

	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}
