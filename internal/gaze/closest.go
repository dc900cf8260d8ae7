package gaze

// FindClosest scans items in order and returns the one with the smallest
// non-negative distance strictly below limit, with its index. Each hit
// lowers the limit, so among equal distances the earliest item wins.
func FindClosest[T any](items []T, limit float32, dist func(T) float32) (T, int, bool) {
	var best T
	bestIdx := -1
	for i, item := range items {
		d := dist(item)
		if d >= 0 && d < limit {
			best, bestIdx, limit = item, i, d
		}
	}
	return best, bestIdx, bestIdx >= 0
}
