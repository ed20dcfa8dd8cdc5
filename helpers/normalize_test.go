package helpers

import (
	"testing"

	"github.com/ahaeu/mobilementor/engine"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// ============================================================================
// NORMALIZER TESTS
// ============================================================================

const header = "Product Name,Brand,Price in India,1 Stars,2 Stars,3 Stars,4 Stars,5 Stars,Rear camera,Resolution,Battery capacity (mAh),Picture URL\n"

var mobilesCSV = []byte(header +
	`Galaxy M31,Samsung,"â‚¹ 15,000",0,0,0,1,1,64-8-5-5,"1080 x 2340 pixels",6000,https://img.example/m31.jpg
Redmi Note 10,Xiaomi,"₹ 14,999",1,1,1,1,1,48.0-8.0-2.0-2.0,"1,080 x 2,400 pixels (FHD+)",5000,
,Unknown,"â‚¹ 999",1,1,1,1,1,12,720 x 1600,3000,
Nokia 105,Nokia,"â‚¹ 1,300",,,,,,No,nan,800,
Feature Phone,Lava,1000,0,0,0,0,0,Yes,,nan,
`)

func TestParsePhonesCSV(t *testing.T) {
	phones, err := ParsePhonesCSV(mobilesCSV, NormalizeOptions{Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)

	want := []Phone{
		{Name: "Galaxy M31", Brand: "Samsung", PictureURL: "https://img.example/m31.jpg", PriceCHF: 165, Rating: 4.5, MainCameraMP: 64, PixelCount: 1080 * 2340, BatteryMAh: 6000},
		{Name: "Redmi Note 10", Brand: "Xiaomi", PriceCHF: 164.989, Rating: 3, MainCameraMP: 48, PixelCount: 1080 * 2400, BatteryMAh: 5000},
		{Name: "Nokia 105", Brand: "Nokia", PriceCHF: 14.3, Rating: 0, MainCameraMP: 0, PixelCount: 0, BatteryMAh: 800},
		{Name: "Feature Phone", Brand: "Lava", PriceCHF: 11, Rating: 0, MainCameraMP: 0, PixelCount: 0, BatteryMAh: 0},
	}
	if diff := cmp.Diff(want, phones, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("phones mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePhonesCSVRate(t *testing.T) {
	phones, err := ParsePhonesCSV(mobilesCSV, NormalizeOptions{INRToCHF: 0.01})
	require.NoError(t, err)
	assert.InDelta(t, 150.0, phones[0].PriceCHF, 1e-9)

	_, err = ParsePhonesCSV(mobilesCSV, NormalizeOptions{INRToCHF: -1})
	assert.Error(t, err)
}

func TestParsePhonesCSVInvalidValue(t *testing.T) {
	data := []byte(header + "Galaxy M31,Samsung,\"â‚¹ 15,000\",1,1,1,1,1,64,1080 x 2340,lots,\n")

	_, err := ParsePhonesCSV(data, DefaultNormalizeOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInvalidCategoryValue)

	kind, ok := engine.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, engine.KindInvalidInput, kind)
	assert.Contains(t, err.Error(), "Battery capacity (mAh)")
	assert.Contains(t, err.Error(), `"Galaxy M31"`)

	data = []byte(header + "Galaxy M31,Samsung,call us,1,1,1,1,1,64,1080 x 2340,5000,\n")
	_, err = ParsePhonesCSV(data, DefaultNormalizeOptions())
	assert.ErrorIs(t, err, engine.ErrInvalidCategoryValue)
}

func TestParsePhonesCSVMissingColumns(t *testing.T) {
	_, err := ParsePhonesCSV([]byte("Product Name,Brand\nA,B\n"), DefaultNormalizeOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Price in India")

	_, err = ParsePhonesCSV(nil, DefaultNormalizeOptions())
	assert.Error(t, err)
}

func TestFieldParsers(t *testing.T) {
	t.Run("main camera", func(t *testing.T) {
		cases := map[string]float64{
			"48-8-2-2":     48,
			"12.2":         12.2,
			"108MP - 12MP": 108,
			"Yes":          0,
			"No":           0,
			"nan":          0,
			"":             0,
			"Dual":         0,
		}
		for in, want := range cases {
			assert.Equal(t, want, ParseMainCamera(in), in)
		}
	})

	t.Run("pixel count", func(t *testing.T) {
		cases := map[string]float64{
			"1080 x 2400 pixels":        2592000,
			"1,440 x 3,200 pixels (QHD": 4608000,
			"720x1600":                  1152000,
			"HD+":                       0,
			"":                          0,
		}
		for in, want := range cases {
			assert.Equal(t, want, ParsePixelCount(in), in)
		}
	})

	t.Run("price", func(t *testing.T) {
		v, err := ParsePrice("â‚¹ 1,23,456")
		require.NoError(t, err)
		assert.Equal(t, 123456.0, v)

		v, err = ParsePrice("")
		require.NoError(t, err)
		assert.Zero(t, v)

		_, err = ParsePrice("₹ inf")
		assert.Error(t, err)
	})

	t.Run("star rating", func(t *testing.T) {
		assert.Equal(t, 5.0, StarRating([5]float64{0, 0, 0, 0, 10}))
		assert.Equal(t, 3.0, StarRating([5]float64{1, 1, 1, 1, 1}))
		assert.Zero(t, StarRating([5]float64{}))
	})
}

func TestPhoneView(t *testing.T) {
	phones, err := ParsePhonesCSV(mobilesCSV, DefaultNormalizeOptions())
	require.NoError(t, err)

	view := PhoneView(phones)
	assert.Equal(t, 4, view.Len())
	assert.Equal(t, "Xiaomi", view.Dimension(1, engine.DimBrand))
	assert.Equal(t, 6000.0, view.Measure(0, engine.MeasureBattery))
	assert.ElementsMatch(t, []string{
		engine.MeasurePrice, engine.MeasureRating, engine.MeasureMainCamera,
		engine.MeasurePixels, engine.MeasureBattery,
	}, view.MeasureKeys())

	s, err := engine.Score(view, engine.DefaultCategories())
	require.NoError(t, err)
	best, ok := s.Best()
	require.True(t, ok)
	assert.Equal(t, "Galaxy M31", best.Name)

	assert.Equal(t, []string{"Samsung", "Xiaomi", "Nokia", "Lava"}, Brands(phones))

	direct, err := ParsePhonesView(mobilesCSV, DefaultNormalizeOptions())
	require.NoError(t, err)
	assert.Equal(t, view.Len(), direct.Len())

	_, err = ParsePhonesView([]byte("Product Name\nA\n"), DefaultNormalizeOptions())
	assert.Error(t, err)
}
