package engine

import "fmt"

// Dimension and measure keys of the normalized phone table.
const (
	DimProductName = "product_name"
	DimBrand       = "brand"
	DimPictureURL  = "picture_url"

	MeasurePrice      = "price_chf"
	MeasureRating     = "overall_rating"
	MeasureMainCamera = "main_camera_mp"
	MeasurePixels     = "pixel_count"
	MeasureBattery    = "battery_mah"
)

// Polarity says which direction of a raw value is better.
type Polarity int

const (
	HigherIsBetter Polarity = iota
	LowerIsBetter
)

func (p Polarity) String() string {
	if p == LowerIsBetter {
		return "lower-is-better"
	}
	return "higher-is-better"
}

// MarshalText lets Polarity render as its name in JSON.
func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Category is a named numeric dimension a selection is ranked on.
type Category struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Polarity Polarity `json:"polarity"`
	Color    string   `json:"color,omitempty"`
}

// Better reports whether a beats b under the category's polarity.
func (c Category) Better(a, b float64) bool {
	if c.Polarity == LowerIsBetter {
		return a < b
	}
	return a > b
}

var catalog = []Category{
	{Key: MeasurePrice, Label: "Price in CHF", Polarity: LowerIsBetter, Color: "red"},
	{Key: MeasureRating, Label: "Overall Rating", Polarity: HigherIsBetter, Color: "yellow"},
	{Key: MeasureMainCamera, Label: "Main Camera (megapixel)", Polarity: HigherIsBetter, Color: "blue"},
	{Key: MeasurePixels, Label: "Amount of Pixels", Polarity: HigherIsBetter, Color: "grey"},
	{Key: MeasureBattery, Label: "Battery capacity (mAh)", Polarity: HigherIsBetter, Color: "green"},
}

// DefaultCategories returns the five phone categories in display order.
// The returned slice is a fresh copy.
func DefaultCategories() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// LookupCategory resolves a category by key. Polarity comes from the catalog
// and cannot be chosen by the caller.
func LookupCategory(key string) (Category, error) {
	for _, c := range catalog {
		if c.Key == key {
			return c, nil
		}
	}
	return Category{}, &Error{
		Kind:     KindUnknownCategory,
		Category: key,
		Record:   -1,
		cause:    fmt.Errorf("%w: %q is not a known category", ErrUnknownCategory, key),
	}
}

// LookupCategories resolves keys in order. An empty list yields the defaults.
func LookupCategories(keys []string) ([]Category, error) {
	if len(keys) == 0 {
		return DefaultCategories(), nil
	}
	out := make([]Category, 0, len(keys))
	for _, k := range keys {
		c, err := LookupCategory(k)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// LabelFor returns the catalog label for a measure key, or a capitalized key.
func LabelFor(key string) string {
	for _, c := range catalog {
		if c.Key == key {
			return c.Label
		}
	}
	return LabelForDimension(key)
}
