package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointTableTidy(t *testing.T) {
	s, err := Score(abcView(), priceAndRating())
	require.NoError(t, err)

	cells := s.Points.Tidy()
	require.Len(t, cells, 3*2)

	want := []PointCell{
		{Name: "A", Category: "Price in CHF", Key: MeasurePrice, Points: 1},
		{Name: "B", Category: "Price in CHF", Key: MeasurePrice, Points: 1},
		{Name: "C", Category: "Price in CHF", Key: MeasurePrice, Points: 3},
		{Name: "A", Category: "Overall Rating", Key: MeasureRating, Points: 2},
		{Name: "B", Category: "Overall Rating", Key: MeasureRating, Points: 3},
		{Name: "C", Category: "Overall Rating", Key: MeasureRating, Points: 1},
	}
	if diff := cmp.Diff(want, cells); diff != "" {
		t.Errorf("tidy mismatch (-want +got):\n%s", diff)
	}
}

func TestPointTableTidyKeepsEveryCell(t *testing.T) {
	view := phoneAdapter.Bind(catalogPhones)
	s, err := Score(view, DefaultCategories())
	require.NoError(t, err)

	cells := s.Points.Tidy()
	assert.Len(t, cells, view.Len()*len(DefaultCategories()))

	seen := make(map[[2]string]int)
	for _, c := range cells {
		seen[[2]string{c.Name, c.Key}]++
	}
	for k, count := range seen {
		assert.Equal(t, 1, count, "cell %v", k)
	}
}

func TestPointTableLookups(t *testing.T) {
	s, err := Score(abcView(), priceAndRating())
	require.NoError(t, err)

	assert.Equal(t, 3, s.Points.MaxPoints())

	p, ok := s.Points.Cell(2, MeasurePrice)
	assert.True(t, ok)
	assert.Equal(t, 3, p)

	_, ok = s.Points.Cell(3, MeasurePrice)
	assert.False(t, ok)
	_, ok = s.Points.Cell(0, MeasureBattery)
	assert.False(t, ok)
	_, ok = s.Points.Column(MeasureBattery)
	assert.False(t, ok)

	row, ok := s.Points.Row(1)
	require.True(t, ok)
	assert.Equal(t, PointRow{Index: 1, Name: "B", Points: []int{1, 3}}, row)
	_, ok = s.Points.Row(-1)
	assert.False(t, ok)

	assert.Equal(t, 0, PointTable{}.MaxPoints())
}
