package sort

import "unsafe"

// insertionSortCutoff is the size below which BucketSortSlice falls back
// directly to insertion sort rather than sampling pivots for another
// partitioning round.
const insertionSortCutoff = 32

// stableBucketFanout is the number of buckets BucketSortSlice partitions
// into at each level, analogous to the sample sort's own bucket count but
// fixed and small, since this dispatcher runs on sequential base-sort
// inputs (sample-sort blocks and small buckets), not on whole large inputs.
const stableBucketFanout = 16

// QuicksortSlice sorts a slice in place using a sequential pseudo-median-
// of-nine quicksort, adapted from this package's interface-based Sort to
// operate directly on a []T plus a less function. It is unstable and is
// meant to be used as a sequential leaf sort, not as a standalone parallel
// sort (use Sort for that).
func QuicksortSlice[T any](a []T, less func(x, y T) bool) {
	quicksortSeq(a, less)
}

func medianOfThreeSlice[T any](a []T, less func(x, y T) bool, l, m, r int) int {
	switch {
	case less(a[l], a[m]):
		if less(a[m], a[r]) {
			return m
		} else if less(a[l], a[r]) {
			return r
		}
	case less(a[r], a[m]):
		return m
	case less(a[r], a[l]):
		return r
	}
	return l
}

func pseudoMedianOfNineSlice[T any](a []T, less func(x, y T) bool) int {
	size := len(a)
	offset := size / 8
	return medianOfThreeSlice(a, less,
		medianOfThreeSlice(a, less, 0, offset, offset*2),
		medianOfThreeSlice(a, less, offset*3, offset*4, offset*5),
		medianOfThreeSlice(a, less, offset*6, offset*7, size-1),
	)
}

func quicksortSeq[T any](a []T, less func(x, y T) bool) {
	size := len(a)
	if size < 2 {
		return
	}
	if size < qsortGrainSize {
		insertionSort(a, less)
		return
	}
	m := pseudoMedianOfNineSlice(a, less)
	if m > 0 {
		a[0], a[m] = a[m], a[0]
	}
	i, j := 0, size
outer:
	for {
		for {
			j--
			if !less(a[0], a[j]) {
				break
			}
		}
		for {
			if i == j {
				break outer
			}
			i++
			if !less(a[i], a[0]) {
				break
			}
		}
		if i == j {
			break outer
		}
		a[i], a[j] = a[j], a[i]
	}
	a[j], a[0] = a[0], a[j]
	i = j + 1
	quicksortSeq(a[:j], less)
	quicksortSeq(a[i:], less)
}

// insertionSort is a stable sequential insertion sort, used as the leaf
// case for both QuicksortSlice and BucketSortSlice.
func insertionSort[T any](a []T, less func(x, y T) bool) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && less(a[j], a[j-1]); j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// BucketSortSlice is a stable sequential sort: it samples a handful of
// pivots, stably partitions the slice into a small, fixed number of
// buckets by those pivots, and recurses into each bucket, falling back to
// insertion sort at small sizes or when the sample failed to split the
// input (e.g. because every element compares equal). It is the stable half
// of the sequential base-sort dispatcher, used whenever the caller needs
// order preserved among equal keys.
func BucketSortSlice[T any](a []T, less func(x, y T) bool) {
	n := len(a)
	if n <= insertionSortCutoff {
		insertionSort(a, less)
		return
	}

	numBuckets := stableBucketFanout
	if numBuckets > n {
		numBuckets = n
	}
	pivots := samplePivotsSorted(a, less, numBuckets-1)

	bucketOf := make([]int, n)
	counts := make([]int, numBuckets)
	for i, v := range a {
		b := bucketIndex(v, pivots, less)
		bucketOf[i] = b
		counts[b]++
	}

	if counts[0] == n {
		// The sample failed to split the input (e.g. all elements are
		// equal, or pivots collapsed); no further progress is possible via
		// bucketing.
		insertionSort(a, less)
		return
	}

	offsets := make([]int, numBuckets+1)
	sum := 0
	for b := 0; b < numBuckets; b++ {
		offsets[b] = sum
		sum += counts[b]
	}
	offsets[numBuckets] = sum

	cursor := append([]int(nil), offsets[:numBuckets]...)
	tmp := make([]T, n)
	for i, v := range a {
		b := bucketOf[i]
		tmp[cursor[b]] = v
		cursor[b]++
	}
	copy(a, tmp)

	for b := 0; b < numBuckets; b++ {
		BucketSortSlice(a[offsets[b]:offsets[b+1]], less)
	}
}

// samplePivotsSorted picks k evenly-spaced sample elements from a and
// returns them sorted, to be used as partition boundaries.
func samplePivotsSorted[T any](a []T, less func(x, y T) bool, k int) []T {
	if k <= 0 {
		return nil
	}
	n := len(a)
	samples := make([]T, k)
	stride := n / (k + 1)
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < k; i++ {
		idx := (i + 1) * stride
		if idx >= n {
			idx = n - 1
		}
		samples[i] = a[idx]
	}
	insertionSort(samples, less)
	return samples
}

// bucketIndex returns the index b such that pivots[b-1] < v <= pivots[b]
// (with pivots[-1] = -inf and pivots[len(pivots)] = +inf, so values above
// the last pivot return len(pivots)). A value equal to a pivot lands in that
// pivot's bucket here, unlike samplesort.GetBucketCounts, which counts it
// into the next bucket.
func bucketIndex[T any](v T, pivots []T, less func(x, y T) bool) int {
	lo, hi := 0, len(pivots)
	for lo < hi {
		mid := (lo + hi) / 2
		if !less(pivots[mid], v) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// BaseSortSlice dispatches to a sequential sort suitable for use below the
// sample sort's recursion threshold: QuicksortSlice when stability is not
// required and T is large or pointer-like (where bucketing's extra
// indirection costs more than it saves), BucketSortSlice otherwise.
//
// isPointerLike should report whether T is a bit-identical, trivially
// relocatable handle; callers in this module pass relocate.IsPointerLike[T].
func BaseSortSlice[T any](a []T, less func(x, y T) bool, stable bool, isPointerLike bool) {
	var zero T
	if !stable && (unsafe.Sizeof(zero) > 8 || isPointerLike) {
		QuicksortSlice(a, less)
	} else {
		BucketSortSlice(a, less)
	}
}
