package fracseq

import "iter"

// RangeElements returns an iterator over all elements of the sequence in
// position order, together with their positions. Tombstones are skipped.
//
// Note the difference to RangeSlots, which exposes tombstones to the caller.
func (s *Sequence[T]) RangeElements() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		if s == nil {
			return
		}
		for i := range s.slots {
			if !s.slots[i].present {
				continue
			}
			if !yield(s.slots[i].pos, s.slots[i].elem) {
				return
			}
		}
	}
}

// RangeSlots returns an iterator over all slots of the sequence in storage
// (= position) order, together with their storage index. Tombstones are
// included; filtering is left to the caller.
func (s *Sequence[T]) RangeSlots() iter.Seq2[int, Slot[T]] {
	return func(yield func(int, Slot[T]) bool) {
		if s == nil {
			return
		}
		for i := range s.slots {
			if !yield(i, s.slots[i]) {
				return
			}
		}
	}
}

// RangeSlotsMut is like RangeSlots, but yields pointers to the slots. Clients
// may set elements through the pointers, including filling tombstones. The
// element count is re-established when the iteration ends.
func (s *Sequence[T]) RangeSlotsMut() iter.Seq2[int, *Slot[T]] {
	return func(yield func(int, *Slot[T]) bool) {
		if s == nil {
			return
		}
		defer s.recount()
		for i := range s.slots {
			if !yield(i, &s.slots[i]) {
				return
			}
		}
	}
}

func (s *Sequence[T]) recount() {
	n := 0
	for i := range s.slots {
		if s.slots[i].present {
			n++
		}
	}
	if n != s.n {
		tracer().Debugf("fracseq: element count changed during slot iteration: %d -> %d", s.n, n)
	}
	s.n = n
}

// Elements returns the elements of s in position order.
func (s *Sequence[T]) Elements() []T {
	elems := make([]T, 0, s.Len())
	for _, e := range s.RangeElements() {
		elems = append(elems, e)
	}
	return elems
}

// --- Cursor ----------------------------------------------------------------

// Cursor walks the elements of a sequence without an iterator scope, e.g. to
// interleave the walk with I/O. Tombstones are skipped.
//
// A cursor must not be used across mutations of its sequence.
type Cursor[T any] struct {
	seq  *Sequence[T]
	next int // storage index of the next slot to inspect
}

// NewCursor creates a cursor positioned before the first element of s.
func (s *Sequence[T]) NewCursor() *Cursor[T] {
	return &Cursor[T]{seq: s}
}

// Next returns numerator, denominator and a pointer to the next element and
// advances the cursor. When the end of the sequence is reached, ok is false and
// the cursor is reset to the start.
func (c *Cursor[T]) Next() (num uint64, denom uint64, element *T, ok bool) {
	if c == nil || c.seq == nil {
		return 0, 0, nil, false
	}
	slots := c.seq.slots
	for c.next < len(slots) {
		slot := &slots[c.next]
		c.next++
		if slot.present {
			return slot.pos.num, slot.pos.denom, &slot.elem, true
		}
	}
	c.next = 0
	return 0, 0, nil, false
}

// Reset moves the cursor before the first element.
func (c *Cursor[T]) Reset() {
	if c != nil {
		c.next = 0
	}
}
