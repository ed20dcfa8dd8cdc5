package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLeaderboardChart(t *testing.T) {
	s, err := Score(abcView(), priceAndRating())
	require.NoError(t, err)

	chart := BuildLeaderboardChart(s)
	require.NotNil(t, chart)
	assert.Equal(t, "Best Mobile Phone", chart.Title)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, []ChartPoint{{Label: "B", Value: 4}, {Label: "C", Value: 4}, {Label: "A", Value: 3}}, chart.Series[0].Data)

	empty, err := Score(phoneAdapter.Bind(nil), priceAndRating())
	require.NoError(t, err)
	assert.Nil(t, BuildLeaderboardChart(empty))
}

func TestBuildStrengthsChart(t *testing.T) {
	s, err := Score(abcView(), priceAndRating())
	require.NoError(t, err)

	chart := BuildStrengthsChart(s.Points)
	require.NotNil(t, chart)
	assert.Equal(t, "radar", chart.ChartType)
	assert.True(t, chart.Fill)
	assert.Equal(t, 3.5, chart.RadialMax)
	require.Len(t, chart.Series, 3)
	assert.Equal(t, "A", chart.Series[0].Name)
	assert.Equal(t, []ChartPoint{{Label: "Price in CHF", Value: 1}, {Label: "Overall Rating", Value: 2}}, chart.Series[0].Data)

	assert.Nil(t, BuildStrengthsChart(PointTable{}))
}

func TestBuildCategoryChart(t *testing.T) {
	cat, err := LookupCategory(MeasureRating)
	require.NoError(t, err)

	chart := BuildCategoryChart(abcView(), DimProductName, cat)
	assert.Equal(t, "Overall Rating", chart.Title)
	assert.Equal(t, "yellow", chart.Series[0].Color)
	assert.Equal(t, []ChartPoint{{Label: "A", Value: 4}, {Label: "B", Value: 5}, {Label: "C", Value: 3}}, chart.Series[0].Data)
}

func TestBuildRankedAndPointsTables(t *testing.T) {
	s, err := Score(abcView(), priceAndRating())
	require.NoError(t, err)

	ranked := BuildRankedTable(s)
	assert.Equal(t, [][]string{{"1", "B", "4"}, {"2", "C", "4"}, {"3", "A", "3"}}, ranked.Rows)
	require.NotNil(t, ranked.Summary)
	assert.Equal(t, "6", ranked.Summary.Values["points"])

	points := BuildPointsTable(s.Points)
	require.Len(t, points.Columns, 3)
	assert.Equal(t, "Overall Rating", points.Columns[2].Label)
	assert.Equal(t, []string{"C", "3", "1"}, points.Rows[2])
}

func TestBuildListTable(t *testing.T) {
	table := BuildListTable(abcView(), "Selected", []string{DimProductName}, []string{MeasurePrice})
	assert.Equal(t, []string{"Product Name", "Price in CHF"}, []string{table.Columns[0].Label, table.Columns[1].Label})
	assert.Equal(t, [][]string{{"A", "100"}, {"B", "100"}, {"C", "50"}}, table.Rows)
	assert.Equal(t, "3 records", table.Summary.Label)
}

func TestBuildDescriptionText(t *testing.T) {
	data, reply := BuildDescriptionText("Samsung", "Battery capacity (mAh)", Description{Count: 3, Min: 4000, Max: 6000, Mean: 5000}, "")
	assert.Equal(t, "The devices from the brand 'Samsung' have a range between 4000 (min) and 6000 (max) in the category 'Battery capacity (mAh)' with the average value of 5000.", reply)
	assert.Equal(t, 5000.0, data.RawValue)
	assert.Equal(t, 3, data.Count)

	data, reply = BuildDescriptionText("Acme", "Overall Rating", Description{}, "")
	assert.Equal(t, "No data", data.Value)
	assert.Contains(t, reply, "No devices from the brand 'Acme'")
}
