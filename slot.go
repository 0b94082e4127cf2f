package fracseq

import "fmt"

// Slot couples a position with an optional element.
//
// A slot without an element is a tombstone: it keeps its position and its
// place in the storage order of a sequence, but does not count as an element.
type Slot[T any] struct {
	pos     Position
	elem    T
	present bool
}

// Occupied creates a slot holding element at position pos.
func Occupied[T any](pos Position, element T) Slot[T] {
	return Slot[T]{pos: pos, elem: element, present: true}
}

// Vacant creates a tombstone at position pos.
func Vacant[T any](pos Position) Slot[T] {
	return Slot[T]{pos: pos}
}

// Set stores element in the slot, regardless of whether the slot has been
// occupied or vacant before.
func (s *Slot[T]) Set(element T) {
	s.elem = element
	s.present = true
}

// Take moves the element out of the slot and leaves a tombstone at the same
// position. If the slot is vacant, ok is false.
func (s *Slot[T]) Take() (element T, ok bool) {
	if !s.present {
		return element, false
	}
	element = s.elem
	var zero T
	s.elem = zero
	s.present = false
	return element, true
}

// IsPresent reports whether the slot holds an element.
func (s Slot[T]) IsPresent() bool {
	return s.present
}

// IsVacant reports whether the slot is a tombstone.
func (s Slot[T]) IsVacant() bool {
	return !s.present
}

// Position returns the slot's position.
func (s Slot[T]) Position() Position {
	return s.pos
}

// Pos returns numerator and denominator of the slot's position.
func (s Slot[T]) Pos() (uint64, uint64) {
	return s.pos.num, s.pos.denom
}

// Num returns the numerator of the slot's position.
func (s Slot[T]) Num() uint64 {
	return s.pos.num
}

// Denom returns the denominator of the slot's position.
func (s Slot[T]) Denom() uint64 {
	return s.pos.denom
}

// Element returns a copy of the slot's element. For a tombstone, ok is false.
func (s Slot[T]) Element() (element T, ok bool) {
	return s.elem, s.present
}

// ElementRef returns a pointer to the slot's element, or nil for a tombstone.
func (s *Slot[T]) ElementRef() *T {
	if !s.present {
		return nil
	}
	return &s.elem
}

func (s Slot[T]) String() string {
	if !s.present {
		return fmt.Sprintf("[%v: —]", s.pos)
	}
	return fmt.Sprintf("[%v: %v]", s.pos, s.elem)
}
