package relocate

import "testing"

type trivialPoint struct {
	X, Y int
}

type handle struct {
	data *int
	live bool
}

func TestIsTriviallyRelocatableDefaults(t *testing.T) {
	if !IsTriviallyRelocatable[int]() {
		t.Error("int should be trivially relocatable")
	}
	if !IsTriviallyRelocatable[trivialPoint]() {
		t.Error("struct of ints should be trivially relocatable")
	}
	if IsTriviallyRelocatable[handle]() {
		t.Error("struct containing a pointer should not be trivially relocatable")
	}
	if IsTriviallyRelocatable[[]int]() {
		t.Error("slice should not be trivially relocatable")
	}
}

func TestMarkTriviallyRelocatableOverride(t *testing.T) {
	type special struct{ p *int }
	if IsTriviallyRelocatable[special]() {
		t.Fatal("special should default to not trivially relocatable")
	}
	MarkTriviallyRelocatable[special]()
	if !IsTriviallyRelocatable[special]() {
		t.Fatal("special should be trivially relocatable after override")
	}
}

func TestIsPointerLike(t *testing.T) {
	if !IsPointerLike[*int]() {
		t.Error("*int should be pointer-like")
	}
	if IsPointerLike[int]() {
		t.Error("int should not be pointer-like")
	}
	type wrapper struct{ p *int }
	if IsPointerLike[wrapper]() {
		t.Fatal("wrapper should default to not pointer-like")
	}
	MarkPointerLike[wrapper]()
	if !IsPointerLike[wrapper]() {
		t.Fatal("wrapper should be pointer-like after override")
	}
}

func TestValueTrivial(t *testing.T) {
	from := 42
	var to int
	Value(&to, &from)
	if to != 42 {
		t.Fatalf("to = %d, want 42", to)
	}
	if from != 42 {
		t.Fatalf("trivially relocatable source should be left untouched, got %d", from)
	}
}

func TestValueGeneral(t *testing.T) {
	x := 7
	from := handle{data: &x, live: true}
	var to handle
	Value(&to, &from)
	if to.data != &x || !to.live {
		t.Fatalf("destination did not receive the moved value: %+v", to)
	}
	if from.data != nil || from.live {
		t.Fatalf("source should be zeroed after a general relocation, got %+v", from)
	}
}

func TestSliceTrivial(t *testing.T) {
	n := 10000
	from := make([]int, n)
	for i := range from {
		from[i] = i
	}
	to := make([]int, n)
	Slice(to, from)
	for i := range to {
		if to[i] != i {
			t.Fatalf("to[%d] = %d, want %d", i, to[i], i)
		}
	}
}

func TestSliceGeneral(t *testing.T) {
	n := 5000
	from := make([]handle, n)
	ints := make([]int, n)
	for i := range from {
		ints[i] = i
		from[i] = handle{data: &ints[i], live: true}
	}
	to := make([]handle, n)
	Slice(to, from)
	for i := range to {
		if to[i].data == nil || *to[i].data != i || !to[i].live {
			t.Fatalf("to[%d] = %+v, want live handle to %d", i, to[i], i)
		}
		if from[i].data != nil || from[i].live {
			t.Fatalf("from[%d] should be zeroed, got %+v", i, from[i])
		}
	}
}

func TestSlicePanicsOnShortDestination(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short destination")
		}
	}()
	Slice(make([]int, 1), make([]int, 2))
}
