/*
Package transpose implements the bucket transpose: given a matrix of
numBlocks x numBuckets counts, it relocates block-by-block laid-out input
into bucket-by-bucket laid-out output, returning the prefix-sum bucket
offsets. Ported from the reference sample sort's internal/transpose.h.
*/
package transpose

import (
	"github.com/ailiop/parlaylib/parallel"
	"github.com/ailiop/parlaylib/relocate"
)

// transposeThreshold mirrors TRANS_THRESHHOLD: below this many (row, col)
// cells, the recursive counts transpose degrades to a flat double loop.
const transposeThreshold = 500

// cacheObliviousN mirrors the n/numBuckets/numBlocks cutoffs in
// transpose_buckets that select the cache-oblivious recursive path over the
// simpler flat one for genuinely large inputs.
const cacheObliviousN = 1 << 22

// transposeInts recursively transposes the rCount x cCount submatrix of A
// (row-major, row length rLength) into B (row-major, row length cLength),
// splitting whichever dimension is larger, exactly as the reference
// implementation's `transpose` template does for the counts matrix.
func transposeInts(a, b []int, rStart, rCount, rLength, cStart, cCount, cLength int) {
	if cCount*rCount < transposeThreshold {
		for i := rStart; i < rStart+rCount; i++ {
			for j := cStart; j < cStart+cCount; j++ {
				b[j*cLength+i] = a[i*rLength+j]
			}
		}
		return
	}
	if cCount > rCount {
		l1 := cCount / 2
		l2 := cCount - l1
		_ = parallel.Do(
			func() error { transposeInts(a, b, rStart, rCount, rLength, cStart, l1, cLength); return nil },
			func() error { transposeInts(a, b, rStart, rCount, rLength, cStart+l1, l2, cLength); return nil },
		)
	} else {
		l1 := cCount / 2
		l2 := rCount - l1
		_ = parallel.Do(
			func() error { transposeInts(a, b, rStart, l1, rLength, cStart, cCount, cLength); return nil },
			func() error { transposeInts(a, b, rStart+l1, l2, rLength, cStart, cCount, cLength); return nil },
		)
	}
}

// flatDestOffsets computes, for each (bucket, block) pair in bucket-major
// order, the prefix-summed starting offset of that pair's segment in the
// output, using the simple non-cache-oblivious approach from
// transpose_buckets ("for smaller input do non-cache oblivious version").
func flatDestOffsets(counts []int, numBlocks, numBuckets int) []int {
	m := numBlocks * numBuckets
	offsets := make([]int, m)
	for i := 0; i < m; i++ {
		block := i % numBlocks
		bucket := i / numBlocks
		offsets[i] = counts[block*numBuckets+bucket]
	}
	prefixSumInPlace(offsets)
	return offsets
}

// cacheObliviousDestOffsets computes the same bucket-major prefix-summed
// offsets as flatDestOffsets, but does so via the recursive counts
// transpose, mirroring the large-input branch of transpose_buckets.
func cacheObliviousDestOffsets(counts []int, numBlocks, numBuckets int) []int {
	m := numBlocks * numBuckets
	offsets := make([]int, m)
	transposeInts(counts, offsets, 0, numBlocks, numBuckets, 0, numBuckets, numBlocks)
	prefixSumInPlace(offsets)
	return offsets
}

func prefixSumInPlace(a []int) int {
	sum := 0
	for i, c := range a {
		a[i] = sum
		sum += c
	}
	return sum
}

// Buckets relocates from (laid out block-by-block, blocks sorted internally)
// into to (laid out bucket-by-bucket), using counts[i*numBuckets+j] as the
// number of block-i elements belonging to bucket j. counts must have length
// numBlocks*numBuckets (the reference implementation also carries a
// trailing sentinel cell, which this port has no need for). It returns the
// bucket offsets, a slice of length numBuckets+1 such that to[offsets[j]:
// offsets[j+1]] is exactly bucket j.
//
// Every destination cell is written exactly once; every source cell is left
// holding T's zero value once relocate decides it is not trivially
// relocatable, per package relocate's semantics.
func Buckets[T any](from, to []T, counts []int, n, blockSize, numBlocks, numBuckets int) []int {
	var destOffsets []int
	if n < cacheObliviousN || numBuckets <= 512 || numBlocks <= 512 {
		destOffsets = flatDestOffsets(counts, numBlocks, numBuckets)
	} else {
		destOffsets = cacheObliviousDestOffsets(counts, numBlocks, numBuckets)
	}

	_ = parallel.Range(0, numBlocks, 0, func(lo, hi int) error {
		for block := lo; block < hi; block++ {
			sOffset := block * blockSize
			for bucket := 0; bucket < numBuckets; bucket++ {
				length := counts[block*numBuckets+bucket]
				if length > 0 {
					dOffset := destOffsets[bucket*numBlocks+block]
					relocate.Slice(to[dOffset:dOffset+length], from[sOffset:sOffset+length])
				}
				sOffset += length
			}
		}
		return nil
	})

	bucketOffsets := make([]int, numBuckets+1)
	for bucket := 0; bucket < numBuckets; bucket++ {
		bucketOffsets[bucket] = destOffsets[bucket*numBlocks]
	}
	bucketOffsets[numBuckets] = n
	return bucketOffsets
}
