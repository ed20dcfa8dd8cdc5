package schema

import (
	"testing"

	"github.com/ahaeu/mobilementor/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMobilesSchema(t *testing.T) {
	cfg := Mobiles()

	assert.Equal(t, []string{engine.DimProductName, engine.DimBrand, engine.DimPictureURL}, cfg.DimensionKeys())
	assert.Equal(t, []string{
		engine.MeasurePrice, engine.MeasureRating, engine.MeasureMainCamera,
		engine.MeasurePixels, engine.MeasureBattery,
	}, cfg.MeasureKeys())
	assert.Equal(t, engine.MeasurePrice, cfg.GetDefaultMeasure())

	price, ok := cfg.Measure(engine.MeasurePrice)
	require.True(t, ok)
	assert.True(t, price.IsCurrency)
	assert.Equal(t, engine.LowerIsBetter, price.Polarity)
	assert.Equal(t, []string{ColPrice}, price.Source)

	rating, ok := cfg.Measure(engine.MeasureRating)
	require.True(t, ok)
	assert.Equal(t, StarColumns, rating.Source)
	assert.Equal(t, engine.HigherIsBetter, rating.Polarity)

	_, ok = cfg.Measure("weight_g")
	assert.False(t, ok)
}

func TestFieldsFrom(t *testing.T) {
	cfg := Mobiles()
	assert.Equal(t, []string{engine.DimBrand}, cfg.FieldsFrom(ColBrand))
	assert.Equal(t, []string{engine.MeasureRating}, cfg.FieldsFrom(ColStars4))
	assert.Equal(t, []string{engine.MeasurePixels}, cfg.FieldsFrom(ColResolution))
	assert.Empty(t, cfg.FieldsFrom("Weight"))
}

func TestRequireColumns(t *testing.T) {
	headers := []string{"\ufeffProduct Name", " Brand ", "Price in India"}

	index, err := RequireColumns(headers, []string{ColProductName, ColBrand, ColPrice})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{ColProductName: 0, ColBrand: 1, ColPrice: 2}, index)

	_, err = RequireColumns(headers, RequiredColumns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 Stars")
	assert.Contains(t, err.Error(), "Battery capacity (mAh)")
	assert.NotContains(t, err.Error(), "Brand,")
}
