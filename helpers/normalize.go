package helpers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ahaeu/mobilementor/engine"
	"github.com/ahaeu/mobilementor/schema"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ============================================================================
// PHONE NORMALIZER: Parses the raw phone export into []Phone
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, embed, HTTP).
// This helper turns the raw bytes into typed, immutable Phone values:
//
//   Price in India         → PriceCHF     (rupee marker + commas stripped, × rate)
//   1 Stars … 5 Stars      → Rating       (star-weighted mean, 0 without votes)
//   Rear camera            → MainCameraMP (first "-" segment, leading number)
//   Resolution             → PixelCount   (width × height)
//   Battery capacity (mAh) → BatteryMAh
//
// Unknown values become 0. A value that is present but not a number where
// one is required fails the whole parse.
// ============================================================================

// DefaultINRToCHF is the rupee to franc rate used when none is configured.
const DefaultINRToCHF = 0.011

// Phone is one normalized row of the phone table.
type Phone struct {
	Name         string  `json:"productName"`
	Brand        string  `json:"brand"`
	PictureURL   string  `json:"pictureUrl,omitempty"`
	PriceCHF     float64 `json:"priceChf"`
	Rating       float64 `json:"overallRating"`
	MainCameraMP float64 `json:"mainCameraMp"`
	PixelCount   float64 `json:"pixelCount"`
	BatteryMAh   float64 `json:"batteryMah"`
}

// NormalizeOptions controls parsing.
type NormalizeOptions struct {
	INRToCHF float64     // conversion rate, DefaultINRToCHF when 0
	Logger   *zap.Logger // receives skipped-row diagnostics, no-op when nil
}

// DefaultNormalizeOptions returns sensible defaults.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{INRToCHF: DefaultINRToCHF}
}

// ParsePhonesCSV parses the phone export. Rows without a product name are
// dropped; malformed CSV rows are skipped and logged.
func ParsePhonesCSV(data []byte, opts NormalizeOptions) ([]Phone, error) {
	if opts.INRToCHF == 0 {
		opts.INRToCHF = DefaultINRToCHF
	}
	if opts.INRToCHF < 0 {
		return nil, fmt.Errorf("conversion rate must be positive, got %v", opts.INRToCHF)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	// Read header
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	cols, err := schema.RequireColumns(headers, schema.RequiredColumns)
	if err != nil {
		return nil, err
	}

	// Read rows
	var phones []Phone
	var dropped, malformed int
	for row := 0; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			malformed++
			logger.Warn("skipping malformed CSV row", zap.Int("row", row), zap.Error(err))
			continue
		}

		rec := rawRow{fields: fields, cols: cols}
		name := rec.get(schema.ColProductName)
		if isMissing(name) {
			dropped++
			continue
		}

		p, err := normalizeRow(rec, row, name, opts.INRToCHF)
		if err != nil {
			return nil, err
		}
		phones = append(phones, p)
	}

	logger.Debug("normalized phone table",
		zap.Int("phones", len(phones)),
		zap.Int("droppedWithoutName", dropped),
		zap.Int("malformed", malformed),
	)
	return phones, nil
}

func normalizeRow(rec rawRow, row int, name string, rate float64) (Phone, error) {
	price, err := ParsePrice(rec.get(schema.ColPrice))
	if err != nil {
		return Phone{}, engine.NewInvalidValueError(schema.ColPrice, row, name, err)
	}

	var stars [5]float64
	for k, col := range schema.StarColumns {
		v, err := parseNumber(rec.get(col))
		if err != nil {
			return Phone{}, engine.NewInvalidValueError(col, row, name, err)
		}
		stars[k] = v
	}

	battery, err := parseNumber(rec.get(schema.ColBattery))
	if err != nil {
		return Phone{}, engine.NewInvalidValueError(schema.ColBattery, row, name, err)
	}

	return Phone{
		Name:         name,
		Brand:        rec.get(schema.ColBrand),
		PictureURL:   rec.get(schema.ColPictureURL),
		PriceCHF:     price * rate,
		Rating:       StarRating(stars),
		MainCameraMP: ParseMainCamera(rec.get(schema.ColRearCamera)),
		PixelCount:   ParsePixelCount(rec.get(schema.ColResolution)),
		BatteryMAh:   battery,
	}, nil
}

// ============================================================================
// FIELD PARSERS
// ============================================================================

var (
	rupeeMarkers  = strings.NewReplacer("â‚¹", "", "₹", "", ",", "")
	pixelNoise    = strings.NewReplacer(",", "", "(", "", "pi", "")
	leadingNumber = regexp.MustCompile(`^\d+(\.\d+)?`)
)

// ParsePrice strips the rupee marker and thousands separators. Missing → 0.
func ParsePrice(raw string) (float64, error) {
	return parseNumber(rupeeMarkers.Replace(raw))
}

// StarRating is the vote-weighted mean of star counts, one-star first.
// No votes → 0.
func StarRating(stars [5]float64) float64 {
	votes := lo.Sum(stars[:])
	if votes == 0 {
		return 0
	}
	weighted := 0.0
	for k, count := range stars {
		weighted += float64(k+1) * count
	}
	return weighted / votes
}

// ParseMainCamera reads the main sensor resolution from a "48-8-2-2" style
// list. Yes/No/nan or anything without a leading number → 0.
func ParseMainCamera(raw string) float64 {
	first := strings.TrimSpace(strings.SplitN(raw, "-", 2)[0])
	switch strings.ToLower(first) {
	case "", "yes", "no", "nan":
		return 0
	}
	return leadingValue(first)
}

// ParsePixelCount multiplies width and height of a "1080 x 2400 pixels"
// resolution. Anything unreadable → 0.
func ParsePixelCount(raw string) float64 {
	parts := strings.Split(pixelNoise.Replace(raw), "x")
	if len(parts) < 2 {
		return 0
	}
	return leadingValue(strings.TrimSpace(parts[0])) * leadingValue(strings.TrimSpace(parts[1]))
}

// parseNumber reads a plain number. Missing → 0; present but unreadable → error.
func parseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if isMissing(s) {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return v, nil
}

func leadingValue(s string) float64 {
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(m, 64)
	return v
}

func isMissing(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "nan", "NaN":
		return true
	}
	return false
}

// rawRow reads fields by header name.
type rawRow struct {
	fields []string
	cols   map[string]int
}

func (r rawRow) get(col string) string {
	idx, ok := r.cols[col]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[idx])
}
