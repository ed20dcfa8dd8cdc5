package engine

import "fmt"

// ============================================================================
// TEXT BUILDER: One-line answers: headline and brand description
// ============================================================================

// BuildHeadline names the comparison winner.
func BuildHeadline(s *Scoring) string {
	best, ok := s.Best()
	if !ok {
		return "No mobile phones selected."
	}
	return fmt.Sprintf("The best mobile phone in your comparison is: %s", best.Name)
}

// BuildDescriptionText summarises a measure for one brand.
func BuildDescriptionText(brand, label string, d Description, unit string) (*TextData, string) {
	if d.Count == 0 {
		return &TextData{Value: "No data", Unit: unit},
			fmt.Sprintf("No devices from the brand '%s' have a value above 0 in the category '%s'.", brand, label)
	}

	mean := RoundTo2(d.Mean)
	value := FormatNumber(mean)
	if unit != "" {
		value = FormatCurrency(mean, unit)
	}
	data := &TextData{
		Value:    value,
		RawValue: mean,
		Unit:     unit,
		Count:    d.Count,
		Describe: &d,
	}
	reply := fmt.Sprintf("The devices from the brand '%s' have a range between %s (min) and %s (max) in the category '%s' with the average value of %s.",
		brand, FormatNumber(RoundTo2(d.Min)), FormatNumber(RoundTo2(d.Max)), label, FormatNumber(mean))
	return data, reply
}
