package transpose

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// bruteForceCounts computes, for a sorted set of pivots, how many of the
// given values fall into each bucket, using a linear scan independent of
// any merge-walk optimization, as a reference oracle for transpose tests.
func bruteForceCounts(values []int, pivots []int) []int {
	counts := make([]int, len(pivots)+1)
	for _, v := range values {
		bucket := 0
		for bucket < len(pivots) && v > pivots[bucket] {
			bucket++
		}
		counts[bucket]++
	}
	return counts
}

func buildBlockMajor(t *testing.T, n, numBlocks, blockSize int, pivots []int) ([]int, []int) {
	rng := rand.New(rand.NewSource(1))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(1000)
	}
	numBuckets := len(pivots) + 1
	counts := make([]int, numBlocks*numBuckets)
	for b := 0; b < numBlocks; b++ {
		start := b * blockSize
		end := start + blockSize
		if end > n {
			end = n
		}
		block := data[start:end]
		sort.Ints(block)
		bc := bruteForceCounts(block, pivots)
		copy(counts[b*numBuckets:(b+1)*numBuckets], bc)
	}
	return data, counts
}

func TestBucketsRoundTrip(t *testing.T) {
	n := 2000
	blockSize := 200
	numBlocks := (n + blockSize - 1) / blockSize
	pivots := []int{100, 300, 600, 800}
	data, counts := buildBlockMajor(t, n, numBlocks, blockSize, pivots)
	numBuckets := len(pivots) + 1

	original := append([]int(nil), data...)
	to := make([]int, n)
	offsets := Buckets(data, to, counts, n, blockSize, numBlocks, numBuckets)

	if offsets[numBuckets] != n {
		t.Fatalf("final bucket offset = %d, want %d", offsets[numBuckets], n)
	}
	for i := 1; i <= numBuckets; i++ {
		if offsets[i] < offsets[i-1] {
			t.Fatalf("bucket offsets not monotonic: %v", offsets)
		}
	}

	wantMultiset := append([]int(nil), original...)
	gotMultiset := append([]int(nil), to...)
	sort.Ints(wantMultiset)
	sort.Ints(gotMultiset)
	if diff := cmp.Diff(wantMultiset, gotMultiset); diff != "" {
		t.Fatalf("transpose did not preserve the multiset (-want +got):\n%s", diff)
	}

	for bucket := 0; bucket < numBuckets; bucket++ {
		segment := to[offsets[bucket]:offsets[bucket+1]]
		for _, v := range segment {
			lo := -1 << 62
			if bucket > 0 {
				lo = pivots[bucket-1]
			}
			hi := 1 << 62
			if bucket < len(pivots) {
				hi = pivots[bucket]
			}
			if !(v > lo && v <= hi) {
				t.Fatalf("value %d misplaced in bucket %d (bounds (%d,%d])", v, bucket, lo, hi)
			}
		}
	}
}

func TestBucketsZeroesSource(t *testing.T) {
	n := 1000
	blockSize := 100
	numBlocks := n / blockSize
	pivots := []int{500}
	data, counts := buildBlockMajor(t, n, numBlocks, blockSize, pivots)
	// int is trivially relocatable, so relocate leaves int sources as they
	// are; pointer handles are not, so their source cells must be zeroed.
	from := make([]*int, n)
	for i := range data {
		from[i] = &data[i]
	}
	to := make([]*int, n)
	Buckets(from, to, counts, n, blockSize, numBlocks, 2)
	for i, p := range from {
		if p != nil {
			t.Fatalf("source cell %d not zeroed after transpose: %d", i, *p)
		}
	}
}

func TestBucketsCacheObliviousPathAgreesWithFlat(t *testing.T) {
	numBlocks := 1024
	numBuckets := 1024
	counts := make([]int, numBlocks*numBuckets)
	rng := rand.New(rand.NewSource(7))
	total := 0
	for i := range counts {
		counts[i] = rng.Intn(3)
		total += counts[i]
	}
	flat := append([]int(nil), counts...)
	cob := append([]int(nil), counts...)

	flatOffsets := flatDestOffsets(flat, numBlocks, numBuckets)
	cobOffsets := cacheObliviousDestOffsets(cob, numBlocks, numBuckets)

	if diff := cmp.Diff(flatOffsets, cobOffsets); diff != "" {
		t.Fatalf("cache-oblivious and flat dest-offset computations disagree (-flat +cob):\n%s", diff)
	}
}
