package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// ============================================================================
// SCORING TESTS
// ============================================================================

func TestScoreWorkedExample(t *testing.T) {
	s, err := Score(abcView(), priceAndRating(), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	price, ok := s.Points.Column(MeasurePrice)
	require.True(t, ok)
	assert.Equal(t, []int{1, 1, 3}, price, "A and B tie for ranks 2 and 3 and both take rank 3")

	rating, ok := s.Points.Column(MeasureRating)
	require.True(t, ok)
	assert.Equal(t, []int{2, 3, 1}, rating)

	want := []RankedEntry{
		{Position: 1, Index: 1, Name: "B", Total: 4},
		{Position: 2, Index: 2, Name: "C", Total: 4},
		{Position: 3, Index: 0, Name: "A", Total: 3},
	}
	if diff := cmp.Diff(want, s.Ranking); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}

	best, ok := s.Best()
	require.True(t, ok)
	assert.Equal(t, "B", best.Name)
}

func TestScorePointBounds(t *testing.T) {
	view := phoneAdapter.Bind(catalogPhones)
	cats := DefaultCategories()
	s, err := Score(view, cats)
	require.NoError(t, err)

	n := view.Len()
	require.Len(t, s.Points.Rows, n)
	for _, row := range s.Points.Rows {
		require.Len(t, row.Points, len(cats))
		for c, p := range row.Points {
			assert.GreaterOrEqual(t, p, 1, "%s/%s", row.Name, cats[c].Key)
			assert.LessOrEqual(t, p, n, "%s/%s", row.Name, cats[c].Key)
		}
	}

	sum := 0
	for _, e := range s.Ranking {
		assert.GreaterOrEqual(t, e.Total, len(cats))
		assert.LessOrEqual(t, e.Total, n*len(cats))
		assert.Equal(t, s.Points.Rows[e.Index].Total(), e.Total)
		sum += e.Total
	}
	assert.Positive(t, sum)

	for i := 1; i < len(s.Ranking); i++ {
		assert.GreaterOrEqual(t, s.Ranking[i-1].Total, s.Ranking[i].Total)
		assert.Equal(t, i+1, s.Ranking[i].Position)
	}
}

func TestScoreSingleRecord(t *testing.T) {
	view := phoneAdapter.Bind(catalogPhones[:1])
	s, err := Score(view, DefaultCategories())
	require.NoError(t, err)

	require.Len(t, s.Ranking, 1)
	assert.Equal(t, 5, s.Ranking[0].Total)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, s.Points.Rows[0].Points)
}

func TestScoreEmptySelection(t *testing.T) {
	s, err := Score(phoneAdapter.Bind(nil), DefaultCategories())
	require.NoError(t, err)
	assert.Empty(t, s.Ranking)
	assert.Empty(t, s.Points.Rows)
	assert.Empty(t, s.Points.Tidy())

	_, ok := s.Best()
	assert.False(t, ok)
}

func TestScoreNoCategories(t *testing.T) {
	view := phoneAdapter.Bind(catalogPhones[:3])
	s, err := Score(view, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(s.Ranking))
	for _, e := range s.Ranking {
		assert.Zero(t, e.Total)
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Galaxy S21", "Galaxy A12", "Redmi Note 10"}, names)
}

func TestScoreErrors(t *testing.T) {
	t.Run("missing category on a record", func(t *testing.T) {
		view := NewSliceView([]Record{
			{Dimensions: map[string]string{DimProductName: "A"}, Measures: map[string]float64{MeasurePrice: 1, MeasureRating: 2}},
			{Dimensions: map[string]string{DimProductName: "B"}, Measures: map[string]float64{MeasurePrice: 1}},
		})
		_, err := Score(view, priceAndRating())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownCategory)

		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, KindUnknownCategory, e.Kind)
		assert.Equal(t, MeasureRating, e.Category)
		assert.Equal(t, 1, e.Record)
		assert.Equal(t, "B", e.Name)
	})

	t.Run("category absent from the view", func(t *testing.T) {
		cats := append(priceAndRating(), Category{Key: "weight_g", Label: "Weight"})
		_, err := Score(abcView(), cats)
		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, KindUnknownCategory, kind)
	})

	t.Run("non-finite value", func(t *testing.T) {
		for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			phones := []phone{catalogPhones[0], catalogPhones[1]}
			phones[1].Price = bad
			_, err := Score(phoneAdapter.Bind(phones), DefaultCategories())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCategoryValue)
			kind, _ := KindOf(err)
			assert.Equal(t, KindInvalidInput, kind)
		}
	})

	t.Run("repeated category key", func(t *testing.T) {
		cats := append(priceAndRating(), priceAndRating()[0])
		_, err := Score(abcView(), cats)
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("empty category key", func(t *testing.T) {
		_, err := Score(abcView(), []Category{{Label: "Nothing"}})
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}

func TestScoreIsDeterministic(t *testing.T) {
	view := phoneAdapter.Bind(catalogPhones)
	first, err := Score(view, DefaultCategories())
	require.NoError(t, err)
	second, err := Score(view, DefaultCategories())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated run differs (-first +second):\n%s", diff)
	}
}

// Improving a record's raw value in one category never lowers its points there.
func TestScoreMonotonic(t *testing.T) {
	base := []phone{catalogPhones[0], catalogPhones[1], catalogPhones[2]}
	before, err := Score(phoneAdapter.Bind(base), DefaultCategories())
	require.NoError(t, err)

	improved := append([]phone(nil), base...)
	improved[0].Price = 1
	improved[0].Battery = 10000
	after, err := Score(phoneAdapter.Bind(improved), DefaultCategories())
	require.NoError(t, err)

	for _, key := range []string{MeasurePrice, MeasureBattery} {
		was, _ := before.Points.Cell(0, key)
		now, _ := after.Points.Cell(0, key)
		assert.GreaterOrEqual(t, now, was, key)
		assert.Equal(t, 3, now, key)
	}
}

// Raising a lower-is-better value for one record, including into and out of
// ties, never raises its points and never lowers anyone else's.
func TestScoreMonotonicInPrice(t *testing.T) {
	others := map[string]float64{"B": 100, "C": 50, "D": 200}
	cats, err := LookupCategories([]string{MeasurePrice})
	require.NoError(t, err)

	pointsAt := func(price float64) []int {
		view := NewSliceView([]Record{
			{Dimensions: map[string]string{DimProductName: "A"}, Measures: map[string]float64{MeasurePrice: price}},
			{Dimensions: map[string]string{DimProductName: "B"}, Measures: map[string]float64{MeasurePrice: others["B"]}},
			{Dimensions: map[string]string{DimProductName: "C"}, Measures: map[string]float64{MeasurePrice: others["C"]}},
			{Dimensions: map[string]string{DimProductName: "D"}, Measures: map[string]float64{MeasurePrice: others["D"]}},
		})
		s, err := Score(view, cats)
		require.NoError(t, err)
		col, ok := s.Points.Column(MeasurePrice)
		require.True(t, ok)
		return col
	}

	steps := []struct {
		name  string
		price float64
		want  []int
	}{
		{"cheapest", 10, []int{4, 2, 3, 1}},
		{"tied with C", 50, []int{3, 2, 3, 1}},
		{"between C and B", 75, []int{3, 2, 4, 1}},
		{"tied with B", 100, []int{2, 2, 4, 1}},
		{"between B and D", 150, []int{2, 3, 4, 1}},
		{"tied with D", 200, []int{1, 3, 4, 1}},
		{"most expensive", 250, []int{1, 3, 4, 2}},
	}

	var prev []int
	for _, step := range steps {
		got := pointsAt(step.price)
		assert.Equal(t, step.want, got, step.name)
		if prev != nil {
			assert.LessOrEqual(t, got[0], prev[0], "%s: raised record gained points", step.name)
			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i], prev[i], "%s: record %d lost points", step.name, i)
			}
		}
		prev = got
	}
}

func TestScoreDoesNotMutateInputs(t *testing.T) {
	phones := append([]phone(nil), catalogPhones...)
	cats := DefaultCategories()
	_, err := Score(phoneAdapter.Bind(phones), cats)
	require.NoError(t, err)

	assert.Equal(t, catalogPhones, phones)
	assert.Equal(t, DefaultCategories(), cats)
}

func TestScoreNameDimensionOption(t *testing.T) {
	view := NewSliceView([]Record{
		{Dimensions: map[string]string{"model": "X"}, Measures: map[string]float64{MeasurePrice: 2}},
		{Dimensions: map[string]string{"model": "Y"}, Measures: map[string]float64{MeasurePrice: 1}},
	})
	cats, err := LookupCategories([]string{MeasurePrice})
	require.NoError(t, err)

	s, err := Score(view, cats, WithNameDimension("model"))
	require.NoError(t, err)
	best, _ := s.Best()
	assert.Equal(t, "Y", best.Name)
}
