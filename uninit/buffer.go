/*
Package uninit provides Buffer, a fixed-capacity slab of T-sized cells used
as scratch space ("Tmp") between block-sorted storage and bucket-laid-out
output, ported from the reference sample sort's uninitialized_sequence.

Go has no true uninitialized memory: Buffer's backing store is an ordinary
make([]T, n), which zero-initializes every cell. The type's contract is
therefore about discipline, not memory layout: callers must treat every
cell as raw until something (typically relocate.Value/Slice) has written a
real value into it, and Buffer itself never runs any per-cell cleanup when
it is discarded — there is nothing to run, since Go's garbage collector
reclaims the backing array regardless of what the cells hold.

Built with -tags paranoid, Buffer additionally tracks which cells have
actually been written and panics if Slice is called while any cell is
still raw, catching call-site discipline bugs that an ordinary build trusts
silently. This mirrors the "parallel boolean shadow in debug builds" idea
from the reference design notes.
*/
package uninit

// Buffer is a fixed-capacity slab of T, treated as a sequence of raw cells
// until individually populated.
type Buffer[T any] struct {
	cells  []T
	shadow []bool // nil except in -tags paranoid builds
}

// NewBuffer allocates a Buffer with capacity n. Every cell starts as a raw
// cell (Go's zero value for T); callers must not rely on that value and
// must populate every cell they intend to read before reading it.
func NewBuffer[T any](n int) *Buffer[T] {
	b := &Buffer[T]{cells: make([]T, n)}
	b.initShadow(n)
	return b
}

// Len returns the buffer's capacity.
func (b *Buffer[T]) Len() int { return len(b.cells) }

// At returns a pointer to the cell at index i, for in-place construction by
// relocate.Value or direct assignment. The caller is responsible for not
// reading the cell before writing it.
func (b *Buffer[T]) At(i int) *T { return &b.cells[i] }

// MarkWritten records that cells [lo:hi) now hold real values. Call sites
// that populate a range obtained from Cut call this once the range is
// fully constructed. It is a no-op outside of -tags paranoid builds.
func (b *Buffer[T]) MarkWritten(lo, hi int) { b.markWritten(lo, hi) }

// Slice returns the full backing slice. Callers that have populated every
// cell may treat the result as an ordinary, fully live []T. In a -tags
// paranoid build, this panics if any cell has not been marked written.
func (b *Buffer[T]) Slice() []T {
	b.checkAllWritten()
	return b.cells
}

// Cut returns the sub-slice [lo:hi) of the backing store, mirroring the
// reference implementation's slice.cut. The returned slice is a write
// target until the caller calls MarkWritten on the same range.
func (b *Buffer[T]) Cut(lo, hi int) []T { return b.cells[lo:hi] }
