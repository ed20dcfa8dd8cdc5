package schema

import (
	"fmt"
	"strings"

	"github.com/ahaeu/mobilementor/engine"
	"github.com/samber/lo"
)

// ============================================================================
// SCHEMA: Describes the shape of the phone table for the engine and CLI
// ============================================================================
// Two layers:
//   Raw     : the columns of the mobiles.csv export (headers below)
//   Mobiles : the normalized table the engine ranks (dimension/measure keys)
// ============================================================================

// Raw column headers of the phone export.
const (
	ColProductName = "Product Name"
	ColBrand       = "Brand"
	ColPrice       = "Price in India"
	ColStars1      = "1 Stars"
	ColStars2      = "2 Stars"
	ColStars3      = "3 Stars"
	ColStars4      = "4 Stars"
	ColStars5      = "5 Stars"
	ColRearCamera  = "Rear camera"
	ColResolution  = "Resolution"
	ColBattery     = "Battery capacity (mAh)"
	ColPictureURL  = "Picture URL"
)

// StarColumns lists the star-count columns, one-star first.
var StarColumns = []string{ColStars1, ColStars2, ColStars3, ColStars4, ColStars5}

// RequiredColumns must be present for normalization to run.
var RequiredColumns = []string{
	ColProductName, ColBrand, ColPrice,
	ColStars1, ColStars2, ColStars3, ColStars4, ColStars5,
	ColRearCamera, ColResolution, ColBattery,
}

// Config describes the complete shape of a dataset.
type Config struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`

	Dimensions []DimensionMeta `json:"dimensions"`
	Measures   []MeasureMeta   `json:"measures"`
}

// DimensionMeta describes a string field used for selection and grouping.
type DimensionMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"` // raw column it is read from
	Groupable   bool   `json:"groupable"`
	Filterable  bool   `json:"filterable"`
}

// MeasureMeta describes a numeric field. Ranked measures carry a polarity.
type MeasureMeta struct {
	Key                string          `json:"key"`
	DisplayName        string          `json:"displayName"`
	Description        string          `json:"description,omitempty"`
	Unit               string          `json:"unit,omitempty"` // "currency", "stars", "megapixel", "pixels", "mAh"
	IsCurrency         bool            `json:"isCurrency,omitempty"`
	Source             []string        `json:"source,omitempty"`
	Polarity           engine.Polarity `json:"polarity"`
	Aggregations       []string        `json:"aggregations,omitempty"`
	DefaultAggregation string          `json:"defaultAggregation,omitempty"`
}

// DefaultDimension creates a DimensionMeta with sensible defaults.
func DefaultDimension(key, displayName, source string) DimensionMeta {
	return DimensionMeta{
		Key:         key,
		DisplayName: displayName,
		Source:      source,
		Groupable:   true,
		Filterable:  true,
	}
}

// DefaultMeasure creates a MeasureMeta from a catalog category.
func DefaultMeasure(c engine.Category, unit string, source ...string) MeasureMeta {
	return MeasureMeta{
		Key:                c.Key,
		DisplayName:        c.Label,
		Unit:               unit,
		IsCurrency:         unit == "currency",
		Source:             source,
		Polarity:           c.Polarity,
		Aggregations:       []string{"avg", "min", "max", "sum", "count"},
		DefaultAggregation: "avg",
	}
}

// Mobiles returns the schema of the normalized phone table.
func Mobiles() Config {
	units := map[string]string{
		engine.MeasurePrice:      "currency",
		engine.MeasureRating:     "stars",
		engine.MeasureMainCamera: "megapixel",
		engine.MeasurePixels:     "pixels",
		engine.MeasureBattery:    "mAh",
	}
	sources := map[string][]string{
		engine.MeasurePrice:      {ColPrice},
		engine.MeasureRating:     StarColumns,
		engine.MeasureMainCamera: {ColRearCamera},
		engine.MeasurePixels:     {ColResolution},
		engine.MeasureBattery:    {ColBattery},
	}

	measures := lo.Map(engine.DefaultCategories(), func(c engine.Category, _ int) MeasureMeta {
		return DefaultMeasure(c, units[c.Key], sources[c.Key]...)
	})

	name := DefaultDimension(engine.DimProductName, "Product Name", ColProductName)
	name.Groupable = false
	picture := DefaultDimension(engine.DimPictureURL, "Picture URL", ColPictureURL)
	picture.Groupable = false
	picture.Filterable = false

	return Config{
		Name:        "Mobile Phones",
		Version:     "1.0",
		Description: "Phone specifications normalized for rank-point comparison",
		Dimensions: []DimensionMeta{
			name,
			DefaultDimension(engine.DimBrand, "Brand", ColBrand),
			picture,
		},
		Measures: measures,
	}
}

// GetDefaultMeasure returns the first measure's key, or price as fallback.
func (c Config) GetDefaultMeasure() string {
	if len(c.Measures) > 0 {
		return c.Measures[0].Key
	}
	return engine.MeasurePrice
}

// DimensionKeys returns all dimension keys.
func (c Config) DimensionKeys() []string {
	keys := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// MeasureKeys returns all measure keys.
func (c Config) MeasureKeys() []string {
	keys := make([]string, len(c.Measures))
	for i, m := range c.Measures {
		keys[i] = m.Key
	}
	return keys
}

// Measure looks up measure metadata by key.
func (c Config) Measure(key string) (MeasureMeta, bool) {
	return lo.Find(c.Measures, func(m MeasureMeta) bool { return m.Key == key })
}

// FieldsFrom lists the normalized keys read from the raw column header.
func (c Config) FieldsFrom(header string) []string {
	var keys []string
	for _, d := range c.Dimensions {
		if d.Source == header {
			keys = append(keys, d.Key)
		}
	}
	for _, m := range c.Measures {
		if lo.Contains(m.Source, header) {
			keys = append(keys, m.Key)
		}
	}
	return keys
}

// RequireColumns maps every required header to its column index. Headers are
// matched after trimming whitespace and a leading byte-order mark.
func RequireColumns(headers []string, required []string) (map[string]int, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	missing := lo.Filter(required, func(col string, _ int) bool {
		_, ok := index[col]
		return !ok
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}
