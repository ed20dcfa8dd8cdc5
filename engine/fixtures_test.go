package engine

// ============================================================================
// TEST FIXTURES
// ============================================================================

type phone struct {
	Name    string
	Brand   string
	Price   float64
	Rating  float64
	Camera  float64
	Pixels  float64
	Battery float64
}

var phoneAdapter = NewDomainAdapter[phone]().
	Dimension(DimProductName, func(p phone) string { return p.Name }).
	Dimension(DimBrand, func(p phone) string { return p.Brand }).
	Measure(MeasurePrice, func(p phone) float64 { return p.Price }).
	Measure(MeasureRating, func(p phone) float64 { return p.Rating }).
	Measure(MeasureMainCamera, func(p phone) float64 { return p.Camera }).
	Measure(MeasurePixels, func(p phone) float64 { return p.Pixels }).
	Measure(MeasureBattery, func(p phone) float64 { return p.Battery })

var catalogPhones = []phone{
	{"Galaxy S21", "Samsung", 770, 4.4, 64, 2400 * 1080, 4000},
	{"Galaxy A12", "Samsung", 110, 4.2, 48, 1600 * 720, 5000},
	{"Redmi Note 10", "Xiaomi", 165, 4.3, 48, 2400 * 1080, 5000},
	{"iPhone 12", "Apple", 880, 4.6, 12, 2532 * 1170, 2815},
	{"Nokia 105", "Nokia", 14, 3.9, 0, 0, 800},
	{"Galaxy M31", "Samsung", 165, 4.3, 64, 2340 * 1080, 6000},
}

// abcView is the two-category worked example: B and C tie on total, A and B
// tie on price.
func abcView() RecordView {
	return NewSliceView([]Record{
		{Dimensions: map[string]string{DimProductName: "A"}, Measures: map[string]float64{MeasurePrice: 100, MeasureRating: 4}},
		{Dimensions: map[string]string{DimProductName: "B"}, Measures: map[string]float64{MeasurePrice: 100, MeasureRating: 5}},
		{Dimensions: map[string]string{DimProductName: "C"}, Measures: map[string]float64{MeasurePrice: 50, MeasureRating: 3}},
	})
}

func priceAndRating() []Category {
	cats, err := LookupCategories([]string{MeasurePrice, MeasureRating})
	if err != nil {
		panic(err)
	}
	return cats
}
