/*
Package relocate implements the destructive-move primitive: a one-shot move
that leaves the source cell raw (in Go: zeroed) and the destination cell
live, ported from the reference sample sort's destructive_move.h.

Go has no destructors, so "raw storage" here means "holds the zero value of
T". For a type whose move-construct-and-destroy is byte-equivalent to a copy
(IsTriviallyRelocatable), the source is left untouched after the copy, since
there is nothing to release. For any other type, the source is overwritten
with the zero value of T after the copy, which is the Go analogue of running
T's destructor: it drops whatever the moved-from value referenced so the
garbage collector can reclaim it.
*/
package relocate

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/ailiop/parlaylib/parallel"
)

var (
	triviallyRelocatable sync.Map // reflect.Type -> bool
	pointerLike          sync.Map // reflect.Type -> bool
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// MarkTriviallyRelocatable overrides the default structural heuristic and
// declares T trivially relocatable: its move-construct-and-destroy is
// byte-equivalent to a copy. Use this for types the heuristic cannot deduce,
// such as a unique-owning handle whose only state is a pointer value that
// this module's caller has decided not to protect via Go's GC (e.g. because
// ownership is tracked by other means).
func MarkTriviallyRelocatable[T any]() {
	triviallyRelocatable.Store(typeOf[T](), true)
}

// MarkPointerLike overrides the default heuristic and declares T
// "pointer-like": a bit-identical, trivially relocatable handle, the
// category callers such as samplesort use to pick a smaller block and a
// larger bucket count for pointer-sized keys.
func MarkPointerLike[T any]() {
	pointerLike.Store(typeOf[T](), true)
}

// IsTriviallyRelocatable reports whether T's move-construct-and-destroy is
// byte-equivalent to a copy. The default heuristic walks T's structure:
// numeric, bool, and array/struct types composed purely of such fields are
// trivially relocatable; any type reachable through a pointer, interface,
// slice, map, channel, or function value is not, because relocating it
// without clearing the source would leave the GC unable to collect whatever
// it referenced.
func IsTriviallyRelocatable[T any]() bool {
	t := typeOf[T]()
	if v, ok := triviallyRelocatable.Load(t); ok {
		return v.(bool)
	}
	return isTriviallyRelocatableType(t)
}

// IsPointerLike reports whether T is a bit-identical, trivially relocatable
// handle no larger than a machine word. The default heuristic treats Go
// pointer, unsafe pointer, and chan kinds as pointer-like.
func IsPointerLike[T any]() bool {
	t := typeOf[T]()
	if v, ok := pointerLike.Load(t); ok {
		return v.(bool)
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan:
		return true
	default:
		return false
	}
}

func isTriviallyRelocatableType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isTriviallyRelocatableType(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isTriviallyRelocatableType(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Value destructively moves the object at from into to: to receives from's
// value, and from is left holding T's zero value unless T is trivially
// relocatable, in which case from is left untouched (there is nothing to
// release).
func Value[T any](to, from *T) {
	*to = *from
	if !IsTriviallyRelocatable[T]() {
		var zero T
		*from = zero
	}
}

// chunkElements picks a chunk size close to 8KiB worth of T, used to
// preserve cache locality for the trivially-relocatable bulk-copy path,
// mirroring destructive_move_array's chunking in the reference
// implementation.
func chunkElements[T any]() int {
	size := int(unsafe.Sizeof(*new(T)))
	if size == 0 {
		size = 1
	}
	n := 8192 / size
	if n < 1 {
		n = 1
	}
	return n
}

// Slice destructively moves len(from) elements from "from" into "to". to
// must be at least as long as from. For trivially relocatable T, the move
// is a parallel bulk copy in cache-sized chunks and the source is left
// untouched; otherwise each element is copied and then zeroed in parallel.
func Slice[T any](to, from []T) {
	n := len(from)
	if n == 0 {
		return
	}
	if len(to) < n {
		panic("relocate.Slice: destination shorter than source")
	}
	if IsTriviallyRelocatable[T]() {
		chunk := chunkElements[T]()
		nChunks := (n + chunk - 1) / chunk
		_ = parallel.Range(0, nChunks, 0, func(lo, hi int) error {
			for c := lo; c < hi; c++ {
				start := c * chunk
				end := start + chunk
				if end > n {
					end = n
				}
				copy(to[start:end], from[start:end])
			}
			return nil
		})
		return
	}
	_ = parallel.Range(0, n, 0, func(lo, hi int) error {
		var zero T
		for i := lo; i < hi; i++ {
			to[i] = from[i]
			from[i] = zero
		}
		return nil
	})
}
