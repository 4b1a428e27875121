package sequential_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ailiop/parlaylib/parallel"
	"github.com/ailiop/parlaylib/samplesort"
	"github.com/ailiop/parlaylib/sequential"
	"github.com/ailiop/parlaylib/sort"
)

// fill writes gen(i) into a[i] for each i in the batch, sequentially within
// the batch; used by both the parallel.Range and sequential.Range call sites
// below so the two fill the same slice via different schedulers.
func fill(a []int, gen func(i int) int) func(low, high int) error {
	return func(low, high int) error {
		for i := low; i < high; i++ {
			a[i] = gen(i)
		}
		return nil
	}
}

func TestRangeAgreesWithParallel(t *testing.T) {
	const n = 5000
	gen := func(i int) int { return (i*2654435761 + 7) % 9973 }

	seqOut := make([]int, n)
	if err := sequential.Range(0, n, 0, fill(seqOut, gen)); err != nil {
		t.Fatalf("sequential.Range: %v", err)
	}

	parOut := make([]int, n)
	if err := parallel.Range(0, n, 0, fill(parOut, gen)); err != nil {
		t.Fatalf("parallel.Range: %v", err)
	}

	if diff := cmp.Diff(seqOut, parOut); diff != "" {
		t.Fatalf("sequential.Range and parallel.Range disagree (-sequential +parallel):\n%s", diff)
	}
}

func TestRangeReduceAgreesWithParallel(t *testing.T) {
	const n = 20000
	reduce := func(low, high int) (interface{}, error) {
		sum := 0
		for i := low; i < high; i++ {
			sum += i * i
		}
		return sum, nil
	}
	pair := func(x, y interface{}) (interface{}, error) {
		return x.(int) + y.(int), nil
	}

	seqResult, err := sequential.RangeReduce(0, n, 0, reduce, pair)
	if err != nil {
		t.Fatalf("sequential.RangeReduce: %v", err)
	}
	parResult, err := parallel.RangeReduce(0, n, 0, reduce, pair)
	if err != nil {
		t.Fatalf("parallel.RangeReduce: %v", err)
	}
	if seqResult != parResult {
		t.Fatalf("sequential.RangeReduce = %v, parallel.RangeReduce = %v", seqResult, parResult)
	}
}

func TestIntRangeReduceAgreesWithParallel(t *testing.T) {
	const n = 20000
	reduce := func(low, high int) (int, error) {
		sum := 0
		for i := low; i < high; i++ {
			sum += i
		}
		return sum, nil
	}
	pair := func(x, y int) (int, error) { return x + y, nil }

	seqResult, err := sequential.IntRangeReduce(0, n, 0, reduce, pair)
	if err != nil {
		t.Fatalf("sequential.IntRangeReduce: %v", err)
	}
	parResult, err := parallel.IntRangeReduce(0, n, 0, reduce, pair)
	if err != nil {
		t.Fatalf("parallel.IntRangeReduce: %v", err)
	}
	if seqResult != parResult {
		t.Fatalf("sequential.IntRangeReduce = %d, parallel.IntRangeReduce = %d", seqResult, parResult)
	}
}

func TestRangeAndOrAgreeWithParallel(t *testing.T) {
	const n = 8000
	isEven := func(low, high int) (bool, error) {
		for i := low; i < high; i++ {
			if i%2 != 0 {
				return false, nil
			}
		}
		return true, nil
	}
	hasMultipleOf97 := func(low, high int) (bool, error) {
		for i := low; i < high; i++ {
			if i%97 == 0 {
				return true, nil
			}
		}
		return false, nil
	}

	seqAnd, err := sequential.RangeAnd(0, n, 0, isEven)
	if err != nil {
		t.Fatalf("sequential.RangeAnd: %v", err)
	}
	parAnd, err := parallel.RangeAnd(0, n, 0, isEven)
	if err != nil {
		t.Fatalf("parallel.RangeAnd: %v", err)
	}
	if seqAnd != parAnd {
		t.Fatalf("sequential.RangeAnd = %v, parallel.RangeAnd = %v", seqAnd, parAnd)
	}

	seqOr, err := sequential.RangeOr(0, n, 0, hasMultipleOf97)
	if err != nil {
		t.Fatalf("sequential.RangeOr: %v", err)
	}
	parOr, err := parallel.RangeOr(0, n, 0, hasMultipleOf97)
	if err != nil {
		t.Fatalf("parallel.RangeOr: %v", err)
	}
	if seqOr != parOr {
		t.Fatalf("sequential.RangeOr = %v, parallel.RangeOr = %v", seqOr, parOr)
	}
}

// TestSequentialAndParallelBuiltInputsSortIdentically drives samplesort.Sort
// with two input slices built by the same generator, one filled via
// sequential.Range and one via parallel.Range, confirming the two schedulers
// produce byte-identical inputs and identical sorted outputs. It then checks
// that sort.BaseSortSlice sorts a small slice filled via sequential.Range.
func TestSequentialAndParallelBuiltInputsSortIdentically(t *testing.T) {
	const n = 30000
	gen := func(i int) int { return (i*48271 + 13) % 100003 }

	seqInput := make([]int, n)
	if err := sequential.Range(0, n, 0, fill(seqInput, gen)); err != nil {
		t.Fatalf("sequential.Range: %v", err)
	}
	parInput := make([]int, n)
	if err := parallel.Range(0, n, 0, fill(parInput, gen)); err != nil {
		t.Fatalf("parallel.Range: %v", err)
	}
	if diff := cmp.Diff(seqInput, parInput); diff != "" {
		t.Fatalf("build mismatch before sorting (-sequential +parallel):\n%s", diff)
	}

	less := func(x, y int) bool { return x < y }
	seqSorted := samplesort.Sort(seqInput, less, false)
	parSorted := samplesort.Sort(parInput, less, false)
	if diff := cmp.Diff(seqSorted, parSorted); diff != "" {
		t.Fatalf("samplesort.Sort disagrees on sequential- vs parallel-built input (-sequential +parallel):\n%s", diff)
	}

	small := make([]int, 200)
	if err := sequential.Range(0, len(small), 0, fill(small, gen)); err != nil {
		t.Fatalf("sequential.Range (small): %v", err)
	}
	sort.BaseSortSlice(small, less, true, false)
	for i := 1; i < len(small); i++ {
		if small[i] < small[i-1] {
			t.Fatalf("sort.BaseSortSlice left %v unsorted at %d", small, i)
		}
	}
}
