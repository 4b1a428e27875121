//go:build !paranoid

package uninit

func (b *Buffer[T]) initShadow(n int)         {}
func (b *Buffer[T]) markWritten(lo, hi int)   {}
func (b *Buffer[T]) checkAllWritten()         {}
