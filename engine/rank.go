package engine

import "sort"

// ============================================================================
// COMPETITION RANKING: "max" tie-break
// ============================================================================
// Values are ordered best first under the category polarity. Rank 1 is the
// best value. A tie group takes the LAST position it would occupy:
//
//	values (higher better): 9, 9, 4   →   ranks: 2, 2, 3
//
// Points invert the rank so the best record earns n points:
//
//	points = n − rank + 1
// ============================================================================

// competitionRanks returns the 1-based rank of every value, "max" method.
// values is not modified.
func competitionRanks(values []float64, c Category) []int {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return c.Better(values[order[a]], values[order[b]])
	})

	ranks := make([]int, n)
	for start := 0; start < n; {
		end := start
		for end+1 < n && values[order[end+1]] == values[order[start]] {
			end++
		}
		for k := start; k <= end; k++ {
			ranks[order[k]] = end + 1
		}
		start = end + 1
	}
	return ranks
}

// rankPoints converts a rank among n records to points.
func rankPoints(n, rank int) int {
	return n - rank + 1
}
