package samplesort

import (
	"math"
	"unsafe"

	"github.com/ailiop/parlaylib/internal"
	"github.com/ailiop/parlaylib/relocate"
)

// QuicksortThreshold is the input size below which Sort and SortInplace
// delegate directly to the sequential base sort instead of recursing.
const QuicksortThreshold = 16384

// OverSample is the oversampling factor used by the copying variant when
// drawing pivot candidates.
const OverSample = 8

// geometry holds the block/bucket layout for a sample sort activation over
// n elements of type T. bucketQuotient and blockQuotient default to 4, drop
// to 3 when sizeof(T) exceeds a machine word, and drop further to 2/3 when T
// is pointer-like, since pointer-sized keys are cheap to move and tolerate
// smaller blocks and more buckets.
type geometry struct {
	numBlocks  int
	blockSize  int
	numBuckets int
}

func computeGeometry[T any](n int) geometry {
	bucketQuotient, blockQuotient := 4, 4
	var zero T
	switch {
	case relocate.IsPointerLike[T]():
		bucketQuotient, blockQuotient = 2, 3
	case unsafe.Sizeof(zero) > 8:
		bucketQuotient, blockQuotient = 3, 3
	}

	s := int(math.Sqrt(float64(n)))
	numBlocks := 1 << internal.Log2Up(uint64(s/blockQuotient+1))
	blockSize := (n-1)/numBlocks + 1
	numBuckets := s/bucketQuotient + 1

	return geometry{numBlocks: numBlocks, blockSize: blockSize, numBuckets: numBuckets}
}
