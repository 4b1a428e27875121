//go:build paranoid

package uninit

import "fmt"

func (b *Buffer[T]) initShadow(n int) {
	b.shadow = make([]bool, n)
}

func (b *Buffer[T]) markWritten(lo, hi int) {
	for i := lo; i < hi; i++ {
		b.shadow[i] = true
	}
}

func (b *Buffer[T]) checkAllWritten() {
	for i, written := range b.shadow {
		if !written {
			panic(fmt.Sprintf("uninit: cell %d read before being marked written", i))
		}
	}
}
