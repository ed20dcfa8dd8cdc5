package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompetitionRanks(t *testing.T) {
	higher := Category{Key: "x", Polarity: HigherIsBetter}
	lower := Category{Key: "x", Polarity: LowerIsBetter}

	tests := []struct {
		name   string
		values []float64
		cat    Category
		want   []int
	}{
		{"distinct higher", []float64{1, 3, 2}, higher, []int{3, 1, 2}},
		{"distinct lower", []float64{1, 3, 2}, lower, []int{1, 3, 2}},
		{"tie takes last position", []float64{9, 9, 4}, higher, []int{2, 2, 3}},
		{"tie at the bottom", []float64{5, 1, 1}, higher, []int{1, 3, 3}},
		{"all equal", []float64{7, 7, 7, 7}, lower, []int{4, 4, 4, 4}},
		{"single", []float64{42}, higher, []int{1}},
		{"empty", []float64{}, higher, []int{}},
		{"two tie groups", []float64{2, 1, 2, 1, 3}, higher, []int{3, 5, 3, 5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, competitionRanks(tt.values, tt.cat))
		})
	}
}

// A tie group must not be ranked at its first ("min") or mean ("average")
// position.
func TestCompetitionRanksIsNotMinOrAverage(t *testing.T) {
	values := []float64{10, 10, 10, 1}
	ranks := competitionRanks(values, Category{Polarity: HigherIsBetter})

	minMethod := []int{1, 1, 1, 4}
	avgMethod := []int{2, 2, 2, 4}
	assert.NotEqual(t, minMethod, ranks)
	assert.NotEqual(t, avgMethod, ranks)
	assert.Equal(t, []int{3, 3, 3, 4}, ranks)

	points := make([]int, len(ranks))
	for i, r := range ranks {
		points[i] = rankPoints(len(values), r)
	}
	assert.Equal(t, []int{2, 2, 2, 1}, points)
}

func TestCompetitionRanksLeavesInputAlone(t *testing.T) {
	values := []float64{3, 1, 2}
	competitionRanks(values, Category{Polarity: LowerIsBetter})
	assert.Equal(t, []float64{3, 1, 2}, values)
}
