package helpers

import (
	"github.com/ahaeu/mobilementor/engine"
	"github.com/samber/lo"
)

// phoneAdapter exposes Phone fields under the engine's dimension and measure
// keys. Declared once, bound per call.
var phoneAdapter = engine.NewDomainAdapter[Phone]().
	Dimension(engine.DimProductName, func(p Phone) string { return p.Name }).
	Dimension(engine.DimBrand, func(p Phone) string { return p.Brand }).
	Dimension(engine.DimPictureURL, func(p Phone) string { return p.PictureURL }).
	Measure(engine.MeasurePrice, func(p Phone) float64 { return p.PriceCHF }).
	Measure(engine.MeasureRating, func(p Phone) float64 { return p.Rating }).
	Measure(engine.MeasureMainCamera, func(p Phone) float64 { return p.MainCameraMP }).
	Measure(engine.MeasurePixels, func(p Phone) float64 { return p.PixelCount }).
	Measure(engine.MeasureBattery, func(p Phone) float64 { return p.BatteryMAh })

// PhoneView binds phones to a RecordView without copying them.
func PhoneView(phones []Phone) engine.RecordView {
	return phoneAdapter.Bind(phones)
}

// ParsePhonesView parses the export straight into a RecordView.
func ParsePhonesView(data []byte, opts NormalizeOptions) (engine.RecordView, error) {
	phones, err := ParsePhonesCSV(data, opts)
	if err != nil {
		return nil, err
	}
	return PhoneView(phones), nil
}

// Brands lists distinct brands in first-seen order.
func Brands(phones []Phone) []string {
	return lo.Without(lo.Uniq(lo.Map(phones, func(p Phone, _ int) string { return p.Brand })), "")
}
