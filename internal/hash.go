package internal

import "sync/atomic"

// Hash64 is a deterministic 64-bit integer hash, ported from the Numerical
// Recipes mixer used by the reference sample sort to draw reproducible
// pivot-candidate indices and to drive the in-place sampling shuffle.
func Hash64(u uint64) uint64 {
	v := u*3935559000370003845 + 2691343689449507681
	v ^= v >> 21
	v ^= v << 37
	v ^= v >> 4
	v *= 4768777513237032717
	v ^= v << 20
	v ^= v >> 41
	v ^= v << 5
	return v
}

// Log2Up returns the base-2 logarithm of i, rounded up. It panics if i is 0.
func Log2Up(i uint64) uint {
	if i == 0 {
		panic("Log2Up: argument must be positive")
	}
	var a uint
	b := i - 1
	for b > 0 {
		b >>= 1
		a++
	}
	return a
}

// WriteAdd atomically adds b to *a.
//
// This is part of the CAS-loop toolbox ported from the reference
// implementation's write_add/write_min/write_max helpers. It is not used by
// the sort engine itself, which partitions all of its writes so that no
// two goroutines ever touch the same memory location; it is kept available
// for callers building further parallel primitives on top of this module.
func WriteAdd(a *int64, b int64) {
	for {
		old := atomic.LoadInt64(a)
		if atomic.CompareAndSwapInt64(a, old, old+b) {
			return
		}
	}
}

// WriteMin atomically sets *a to b if less(b, *a), and reports whether the
// write occurred.
func WriteMin(a *int64, b int64, less func(x, y int64) bool) bool {
	for {
		c := atomic.LoadInt64(a)
		if !less(b, c) {
			return false
		}
		if atomic.CompareAndSwapInt64(a, c, b) {
			return true
		}
	}
}

// WriteMax atomically sets *a to b if less(*a, b), and reports whether the
// write occurred.
func WriteMax(a *int64, b int64, less func(x, y int64) bool) bool {
	for {
		c := atomic.LoadInt64(a)
		if !less(c, b) {
			return false
		}
		if atomic.CompareAndSwapInt64(a, c, b) {
			return true
		}
	}
}
