//go:build paranoid

package uninit

import "testing"

func TestSlicePanicsOnUnwrittenCell(t *testing.T) {
	b := NewBuffer[int](4)
	b.MarkWritten(0, 3) // cell 3 left raw

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading a buffer with an unwritten cell")
		}
	}()
	b.Slice()
}

func TestSliceSucceedsWhenFullyWritten(t *testing.T) {
	b := NewBuffer[int](4)
	for i := 0; i < 4; i++ {
		*b.At(i) = i
	}
	b.MarkWritten(0, 4)
	_ = b.Slice()
}
