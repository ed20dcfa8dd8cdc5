package engine

import (
	"strings"

	"github.com/samber/lo"
)

// ============================================================================
// FILTERS: Selection, search and dimension filtering via RecordView
// ============================================================================
// Every filter is a single pass that returns a SubView (index list into the
// parent): zero data copy, parent order preserved.
// ============================================================================

// Filters define which records to include.
// Keys are dimension names. Values are allowed values.
// OR within a dimension, AND across dimensions. Empty = all.
type Filters struct {
	Dimensions map[string][]string `json:"dimensions"`
}

// HasFilter returns true if a specific dimension filter is set.
func (f Filters) HasFilter(dimension string) bool {
	if f.Dimensions == nil {
		return false
	}
	vals, ok := f.Dimensions[dimension]
	return ok && len(vals) > 0
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	for _, vals := range f.Dimensions {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ApplyFilters returns a view of records matching all dimension filters.
// Matching is case-insensitive. Empty filter = no restriction (returns original view).
func ApplyFilters(view RecordView, filters Filters) RecordView {
	if filters.IsEmpty() {
		return view
	}

	// Pre-build lowercase lookup sets for each dimension filter
	sets := make(map[string]map[string]bool)
	for dim, allowed := range filters.Dimensions {
		if len(allowed) > 0 {
			sets[dim] = toLowerSet(allowed)
		}
	}

	return filterView(view, func(i int) bool {
		for dim, set := range sets {
			if !set[strings.ToLower(view.Dimension(i, dim))] {
				return false
			}
		}
		return true
	})
}

// SelectByName keeps the records whose name dimension exactly equals one of
// names. Table order is kept, not the order of names; repeated names in the
// table are all selected.
func SelectByName(view RecordView, nameDimension string, names []string) RecordView {
	wanted := lo.Associate(names, func(n string) (string, bool) { return n, true })
	return filterView(view, func(i int) bool {
		return wanted[view.Dimension(i, nameDimension)]
	})
}

// Search keeps the records whose dimension contains query, ignoring case.
// An empty query keeps everything.
func Search(view RecordView, dimension string, query string) RecordView {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return view
	}
	return filterView(view, func(i int) bool {
		return strings.Contains(strings.ToLower(view.Dimension(i, dimension)), q)
	})
}

// filterView is the single-pass core shared by every filter.
func filterView(view RecordView, keep func(i int) bool) RecordView {
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if keep(i) {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
