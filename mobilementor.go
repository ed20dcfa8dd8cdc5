// Package mobilementor compares mobile phones by rank points.
//
// Usage:
//
//	import (
//	    "github.com/ahaeu/mobilementor/engine"
//	    "github.com/ahaeu/mobilementor/helpers"
//	)
//
//	view, err := helpers.ParsePhonesView(csvBytes, helpers.DefaultNormalizeOptions())
//	result, err := engine.Compare(view, []string{"Galaxy S21", "iPhone 12"},
//	    engine.DefaultCategories(),
//	    engine.WithDisplayUnit("CHF"),
//	)
//
// Each selected phone is ranked in every category (ties share the best
// rank), earns n - rank + 1 points per category, and the phone with the
// highest total wins. The engine returns render-ready output (charts,
// tables, text) and never touches the network.
//
// Raw CSV normalization lives in helpers, dataset metadata and column
// inspection in schema, and the command-line frontend in cmd/mobilementor.
package mobilementor
