package domain

import "math"

// CompletionPercentage returns round(100*completed/total) rounding half away
// from zero. An empty collection is 0%.
func CompletionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}

	percent := int(math.Round(100 * float64(completed) / float64(total)))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}

	return percent
}
