package samplesort

// GetBucketCounts computes, for a sorted block a and a sorted pivot
// sequence pivots (with len(pivots) == numBuckets-1), the number of
// elements of a falling into each bucket. Bucket 0 holds values x with
// x < pivots[0], and bucket j holds values with pivots[j-1] <= x <
// pivots[j], so a value equal to a pivot counts into the bucket after it
// (pivots[len(pivots)] = +inf). Where pivots[j-1] and pivots[j] are equal,
// bucket j holds exactly the values equal to them and the following bucket
// starts above that value. It is a two-finger merge walk, ported line for
// line from the reference implementation's get_bucket_counts, including its
// handling of runs of equal pivots.
//
// Both a and pivots must already be sorted by less. If a or pivots is
// empty, all counts are zero — this matches the reference implementation,
// which returns immediately in that case; in this module that branch is
// unreachable for top-level calls, since geometry never produces an empty
// pivot set above QuicksortThreshold.
func GetBucketCounts[T any](a, pivots []T, less func(x, y T) bool) []int {
	numBuckets := len(pivots) + 1
	counts := make([]int, numBuckets)
	if len(a) == 0 || len(pivots) == 0 {
		return counts
	}

	itA, itB, itC := 0, 0, 0
	for {
		for less(a[itA], pivots[itB]) {
			counts[itC]++
			itA++
			if itA == len(a) {
				return counts
			}
		}
		itB++
		itC++
		if itB == len(pivots) {
			break
		}
		if !less(pivots[itB-1], pivots[itB]) {
			for !less(pivots[itB], a[itA]) {
				counts[itC]++
				itA++
				if itA == len(a) {
					return counts
				}
			}
			itB++
			itC++
			if itB == len(pivots) {
				break
			}
		}
	}
	counts[itC] = len(a) - itA
	return counts
}
