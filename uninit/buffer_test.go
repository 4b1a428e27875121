package uninit

import "testing"

func TestBufferAtAndSlice(t *testing.T) {
	b := NewBuffer[int](5)
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
	for i := 0; i < 5; i++ {
		*b.At(i) = i * i
	}
	b.MarkWritten(0, 5)
	got := b.Slice()
	want := []int{0, 1, 4, 9, 16}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Slice()[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestBufferCut(t *testing.T) {
	b := NewBuffer[int](10)
	for i := 0; i < 10; i++ {
		*b.At(i) = i
	}
	sub := b.Cut(3, 7)
	if len(sub) != 4 {
		t.Fatalf("Cut(3,7) has len %d, want 4", len(sub))
	}
	for i, v := range sub {
		if v != i+3 {
			t.Errorf("sub[%d] = %d, want %d", i, v, i+3)
		}
	}
}
