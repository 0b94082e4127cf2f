package fracseq

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"slices"
	"strings"
)

// Sequence is an ordered container of elements of type T, where every element
// is tagged with a Position.
//
// A sequence created by
//
//	Sequence[T]{}
//
// is a valid object and behaves like an empty sequence.
//
// Internally a sequence is a slice of slots, which is at all times sorted by
// position. Indices of the public API are logical indices (0-based) and Len
// returns the number of elements, not the number of slots. Removing an element
// turns its slot into a tombstone instead of shifting the elements after it:
//
//	Operation     |   Sequence      |  Slice
//	--------------+-----------------+--------
//	Get           |   O(1)*         |   O(1)
//	Push          |   O(1)          |   O(1)
//	Insert        |   O(n)          |   O(n)
//	Insert (tomb) |   O(1)          |   O(n)
//	Remove        |   O(1)*         |   O(n)
//
// (*) plus skipping over adjacent tombstones.
//
// Tombstones are never compacted; the physical storage of a sequence does not
// shrink.
type Sequence[T any] struct {
	slots []Slot[T]
	n     int // number of occupied slots
}

// New creates an empty sequence.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// WithCapacity creates an empty sequence with storage pre-allocated for
// capacity slots. The capacity has no effect on the semantics of a sequence.
func WithCapacity[T any](capacity int) *Sequence[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Sequence[T]{slots: make([]Slot[T], 0, capacity)}
}

// Len returns the number of elements in the sequence. Tombstones do not count.
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// IsEmpty reports whether the sequence holds no elements.
func (s *Sequence[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Cap returns the capacity of the sequence's slot storage.
func (s *Sequence[T]) Cap() int {
	if s == nil {
		return 0
	}
	return cap(s.slots)
}

// First returns the first element of the sequence, skipping tombstones.
func (s *Sequence[T]) First() (element T, ok bool) {
	if s.Len() == 0 {
		return element, false
	}
	for i := range s.slots {
		if s.slots[i].present {
			return s.slots[i].elem, true
		}
	}
	return element, false
}

// Last returns the last element of the sequence, skipping tombstones.
func (s *Sequence[T]) Last() (element T, ok bool) {
	if s.Len() == 0 {
		return element, false
	}
	for i := len(s.slots) - 1; i >= 0; i-- {
		if s.slots[i].present {
			return s.slots[i].elem, true
		}
	}
	return element, false
}

// Locate returns the storage index of the slot which Get(index) reads.
//
// If index >= Len(), ok is false. Otherwise the slots are scanned starting at
// storage index == index, and the first occupied slot is returned. Insert and
// Remove keep logical and storage indices aligned in a way which makes this
// scan find the element at the logical index as long as no tombstones are
// located before it.
func (s *Sequence[T]) Locate(index int) (int, bool) {
	if index < 0 || index >= s.Len() {
		return -1, false
	}
	for i := index; i < len(s.slots); i++ {
		if s.slots[i].present {
			return i, true
		}
	}
	return -1, false
}

// Get returns the element at logical index. If there is no element at index,
// ok is false.
func (s *Sequence[T]) Get(index int) (element T, ok bool) {
	i, ok := s.Locate(index)
	if !ok {
		return element, false
	}
	return s.slots[i].elem, true
}

// At returns a pointer to the element at logical index, or nil.
// The pointer is valid until the next insertion into the sequence.
func (s *Sequence[T]) At(index int) *T {
	i, ok := s.Locate(index)
	if !ok {
		return nil
	}
	return &s.slots[i].elem
}

// IndexFrom returns the storage index of the slot with a position equal to pos.
// Tombstones are found as well. If no such slot exists, ok is false.
func (s *Sequence[T]) IndexFrom(pos Position) (int, bool) {
	if s == nil {
		return -1, false
	}
	pos = NewPosition(pos.num, pos.denom)
	i, found := s.search(pos)
	if !found || !s.slots[i].pos.Equal(pos) {
		return -1, false
	}
	return i, true
}

// search returns the first storage index with a position not less than pos.
func (s *Sequence[T]) search(pos Position) (int, bool) {
	return slices.BinarySearchFunc(s.slots, pos, func(slot Slot[T], p Position) int {
		return slot.pos.Compare(p)
	})
}

// Insert inserts element at logical index and returns the position the
// element has been assigned.
//
// If index is beyond the end of the sequence's storage, the element is
// appended (see Push). If the slot at index is occupied, a new position
// between the slot's position and its predecessor's is generated and a new
// slot is inserted before index, shifting the slots after it to the right.
// If the slot at index is a tombstone, the element fills the tombstone and
// re-uses its position; no slot is moved.
//
// A negative index is treated as 0.
func (s *Sequence[T]) Insert(index int, element T) Position {
	if index < 0 {
		index = 0
	}
	if index >= len(s.slots) {
		return s.Push(element)
	}
	if s.slots[index].present {
		prev := MinPosition
		if index > 0 {
			prev = s.slots[index-1].pos
		}
		pos := Mediant(prev, s.slots[index].pos)
		s.slots = slices.Insert(s.slots, index, Occupied(pos, element))
		s.n++
		return pos
	}
	tracer().Debugf("fracseq: insert fills tombstone at %v", s.slots[index].pos)
	s.slots[index].Set(element)
	s.n++
	return s.slots[index].pos
}

// InsertAt inserts element at position pos and returns the position the
// element has been assigned.
//
// If a slot with a position equal to pos exists, its element is overwritten
// (or, for a tombstone, filled). Otherwise the element is inserted at the
// first storage index with a position not less than pos, following the rules
// of Insert. Note that in this case the element will be assigned a generated
// position, not pos.
func (s *Sequence[T]) InsertAt(pos Position, element T) Position {
	pos = NewPosition(pos.num, pos.denom)
	if i, ok := s.IndexFrom(pos); ok {
		slot := &s.slots[i]
		if !slot.present {
			s.n++
		}
		slot.Set(element)
		return slot.pos
	}
	i, _ := s.search(pos)
	return s.Insert(i, element)
}

// Push appends element to the back of the sequence and returns its position.
// The position of the first element of an empty sequence is 1/1.
func (s *Sequence[T]) Push(element T) Position {
	pos := DefaultPosition()
	if len(s.slots) > 0 {
		pos = Increment(s.slots[len(s.slots)-1].pos)
	}
	s.slots = append(s.slots, Occupied(pos, element))
	s.n++
	return pos
}

// PositionFrom returns the position of the slot at storage index.
func (s *Sequence[T]) PositionFrom(index int) (Position, bool) {
	if s == nil || index < 0 || index >= len(s.slots) {
		return Position{}, false
	}
	return s.slots[index].pos, true
}

// PosFrom returns numerator and denominator of the slot at storage index.
func (s *Sequence[T]) PosFrom(index int) (num uint64, denom uint64, ok bool) {
	pos, ok := s.PositionFrom(index)
	return pos.num, pos.denom, ok
}

// SlotAt returns a copy of the slot at storage index, tombstones included.
func (s *Sequence[T]) SlotAt(index int) (Slot[T], bool) {
	if s == nil || index < 0 || index >= len(s.slots) {
		return Slot[T]{}, false
	}
	return s.slots[index], true
}

// Remove removes and returns the element at logical index.
// If there is no element at index, ok is false.
//
// The element's slot is replaced by a tombstone with the same position, thus
// no other slot is moved and the storage size does not change.
func (s *Sequence[T]) Remove(index int) (element T, ok bool) {
	i, ok := s.Locate(index)
	if !ok {
		return element, false
	}
	element, ok = s.slots[i].Take()
	assert(ok, "fracseq.Remove: located slot is a tombstone")
	s.n--
	return element, true
}

// RemoveAt removes the element at position pos.
//
// RemoveAt finds the storage index of pos and removes the element found by
// Remove for this index. If pos is unknown, ok is false.
func (s *Sequence[T]) RemoveAt(pos Position) (element T, ok bool) {
	i, ok := s.IndexFrom(pos)
	if !ok {
		return element, false
	}
	return s.Remove(i)
}

// Clone returns a copy of s. Elements are copied by assignment, tombstones
// are kept.
func (s *Sequence[T]) Clone() *Sequence[T] {
	if s == nil {
		return nil
	}
	return &Sequence[T]{
		slots: slices.Clone(s.slots),
		n:     s.n,
	}
}

// ShrinkToFit releases spare capacity of the slot storage.
//
// Tombstones are not removed; compacting them would change the positions
// seen by Get and Insert for logical indices.
func (s *Sequence[T]) ShrinkToFit() {
	if s == nil || cap(s.slots) == len(s.slots) {
		return
	}
	slots := make([]Slot[T], len(s.slots))
	copy(slots, s.slots)
	s.slots = slots
}

// Slots returns the number of slots in storage, tombstones included.
func (s *Sequence[T]) Slots() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}

// Equal reports whether a and b hold equal positions, the same tombstones
// and equal elements.
func Equal[T comparable](a, b *Sequence[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, using eq to compare elements.
func EqualFunc[T any](a, b *Sequence[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() || a.Slots() != b.Slots() {
		return false
	}
	for i := 0; i < a.Slots(); i++ {
		x, y := a.slots[i], b.slots[i]
		if x.present != y.present || !x.pos.Equal(y.pos) {
			return false
		}
		if x.present && !eq(x.elem, y.elem) {
			return false
		}
	}
	return true
}

func (s *Sequence[T]) String() string {
	if s == nil {
		return "Sequence<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Sequence{len=%d, slots=%d:", s.n, len(s.slots))
	for _, slot := range s.slots {
		b.WriteByte(' ')
		b.WriteString(slot.String())
	}
	b.WriteByte('}')
	return b.String()
}
