/*
Package samplesort implements the cache-oblivious, low-depth parallel
sample sort: a copying (optionally stable) variant and a fully in-place
(unstable) variant that makes no secondary copy of the input array's keys
beyond its pivot values. Ported from the reference implementation's internal/sample_sort.h.
*/
package samplesort

import (
	"github.com/ailiop/parlaylib/internal"
	"github.com/ailiop/parlaylib/parallel"
	"github.com/ailiop/parlaylib/relocate"
	"github.com/ailiop/parlaylib/sort"
	"github.com/ailiop/parlaylib/transpose"
	"github.com/ailiop/parlaylib/uninit"
)

// Sort returns a newly allocated, sorted copy of input. less must be a
// total strict-weak-order and must not panic. If stable is true, elements
// the comparator reports as equal keep their input relative order.
//
// Below QuicksortThreshold, this delegates directly to
// sort.BaseSortSlice. Above it, input is divided into numBlocks blocks,
// each block-sorted and tallied against a sampled pivot set, transposed
// into bucket-major order, and each bucket is sorted by a recursive call to
// Sort (which itself falls back to the sequential base sort once the
// bucket shrinks below QuicksortThreshold).
func Sort[T any](input []T, less func(a, b T) bool, stable bool) []T {
	n := len(input)
	output := make([]T, n)
	if n == 0 {
		return output
	}
	if n < QuicksortThreshold {
		copy(output, input)
		sort.BaseSortSlice(output, less, stable, relocate.IsPointerLike[T]())
		return output
	}

	geo := computeGeometry[T](n)
	numBlocks, blockSize, numBuckets := geo.numBlocks, geo.blockSize, geo.numBuckets

	sampleSetSize := numBuckets * OverSample
	samples := make([]T, sampleSetSize)
	for i := range samples {
		samples[i] = input[internal.Hash64(uint64(i))%uint64(n)]
	}
	sort.QuicksortSlice(samples, less)

	pivots := make([]T, numBuckets-1)
	for i := range pivots {
		pivots[i] = samples[OverSample*i]
	}

	tmp := uninit.NewBuffer[T](n)
	counts := make([]int, numBlocks*numBuckets)

	_ = parallel.Range(0, numBlocks, 0, func(lo, hi int) error {
		for block := lo; block < hi; block++ {
			start, end := blockBounds(block, blockSize, n)
			dst := tmp.Cut(start, end)
			copy(dst, input[start:end])
			sort.BaseSortSlice(dst, less, stable, relocate.IsPointerLike[T]())
			tmp.MarkWritten(start, end)
			bc := GetBucketCounts(dst, pivots, less)
			copy(counts[block*numBuckets:(block+1)*numBuckets], bc)
		}
		return nil
	})

	bucketOffsets := transpose.Buckets(tmp.Slice(), output, counts, n, blockSize, numBlocks, numBuckets)

	_ = parallel.Range(0, numBuckets, 0, func(lo, hi int) error {
		for bucket := lo; bucket < hi; bucket++ {
			// Buckets bounded by equal pivots hold only equal keys (under
			// less); their content is already correctly placed by the
			// transpose, so sorting them again would be wasted work.
			if bucket != 0 && bucket != numBuckets-1 && !less(pivots[bucket-1], pivots[bucket]) {
				continue
			}
			start, end := bucketOffsets[bucket], bucketOffsets[bucket+1]
			if end-start < 2 {
				continue
			}
			copy(output[start:end], Sort(output[start:end], less, stable))
		}
		return nil
	})

	return output
}

// SortInplace sorts data in place. less must be a total strict-weak-order
// and must not panic. SortInplace is never stable: in-place sampling
// reorders equal keys, and the sequential base sort it uses for blocks and
// buckets runs unstably.
//
// Apart from the numBuckets-1 pivot values it copies out of the sorted
// sample, it makes no copy of data's keys other than the single planned
// relocation through the Tmp buffer used by the bucket transpose.
func SortInplace[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n < 2 {
		return
	}
	if n < QuicksortThreshold {
		sort.BaseSortSlice(data, less, false, relocate.IsPointerLike[T]())
		return
	}

	geo := computeGeometry[T](n)
	numBlocks, blockSize, numBuckets := geo.numBlocks, geo.blockSize, geo.numBuckets

	sampleSetSize := blockSize
	if sampleSetSize < numBuckets-1 {
		panic("samplesort: block_size must be >= num_buckets-1 for pivot striding")
	}
	stride := sampleSetSize / (numBuckets - 1)
	if stride < 1 {
		panic("samplesort: stride must be >= 1")
	}

	// In-place sampling: a partial Knuth shuffle that swaps a uniform
	// sample into the first sampleSetSize cells, using no extra storage.
	for i := 0; i < sampleSetSize; i++ {
		j := i + int(internal.Hash64(uint64(i))%uint64(n-i))
		data[i], data[j] = data[j], data[i]
	}

	sampleSet := data[:sampleSetSize]
	sort.QuicksortSlice(sampleSet, less)

	pivots := make([]T, numBuckets-1)
	for i := range pivots {
		pivots[i] = sampleSet[stride*i]
	}

	tmp := uninit.NewBuffer[T](n)
	counts := make([]int, numBlocks*numBuckets)

	// Non-first blocks: relocate-sort directly into Tmp. After this pass
	// the corresponding cells of data are left holding T's zero value.
	_ = parallel.Range(1, numBlocks, 0, func(lo, hi int) error {
		for block := lo; block < hi; block++ {
			start, end := blockBounds(block, blockSize, n)
			dst := tmp.Cut(start, end)
			relocate.Slice(dst, data[start:end])
			sort.BaseSortSlice(dst, less, false, relocate.IsPointerLike[T]())
			tmp.MarkWritten(start, end)
			bc := GetBucketCounts(dst, pivots, less)
			copy(counts[block*numBuckets:(block+1)*numBuckets], bc)
		}
		return nil
	})

	// The first block is already sorted (it is the sample set); relocate
	// it into Tmp as-is, without sorting it again.
	firstDst := tmp.Cut(0, sampleSetSize)
	relocate.Slice(firstDst, data[:sampleSetSize])
	tmp.MarkWritten(0, sampleSetSize)
	bc := GetBucketCounts(firstDst, pivots, less)
	copy(counts[0:numBuckets], bc)

	// Transpose Tmp back into data, which now plays the role of output.
	bucketOffsets := transpose.Buckets(tmp.Slice(), data, counts, n, blockSize, numBlocks, numBuckets)

	_ = parallel.Range(0, numBuckets, 0, func(lo, hi int) error {
		for bucket := lo; bucket < hi; bucket++ {
			// Buckets bounded by equal pivots hold only equal keys (under
			// less), so they are already sorted; skipping them also keeps
			// an all-equal input from recursing on itself forever.
			if bucket != 0 && bucket != numBuckets-1 && !less(pivots[bucket-1], pivots[bucket]) {
				continue
			}
			start, end := bucketOffsets[bucket], bucketOffsets[bucket+1]
			if end-start < 2 {
				continue
			}
			SortInplace(data[start:end], less)
		}
		return nil
	})
}

func blockBounds(block, blockSize, n int) (start, end int) {
	start = block * blockSize
	end = start + blockSize
	if end > n {
		end = n
	}
	if start > n {
		start = n
	}
	return
}
