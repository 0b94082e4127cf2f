package fracseq

import "fmt"

// Check validates the structural invariants of a sequence:
//
//   - slots are sorted by strictly ascending position,
//   - every position has a denominator >= 1 and lies after MinPosition,
//   - the element count equals the number of occupied slots.
//
// Sequences maintain these invariants on their own; Check is meant for tests
// and for validating sequences re-created from external data.
func (s *Sequence[T]) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil sequence", ErrIllegalArguments)
	}
	n, err := checkSlots(s.slots)
	if err != nil {
		return err
	}
	if n != s.n {
		return fmt.Errorf("%w: counted %d occupied slots, sequence reports %d",
			ErrCountMismatch, n, s.n)
	}
	return nil
}

// FromSlots creates a sequence from a list of slots, e.g. decoded from a
// serialized form. The slots have to be sorted by position; tombstones are
// allowed. The slice is copied.
func FromSlots[T any](slots []Slot[T]) (*Sequence[T], error) {
	n, err := checkSlots(slots)
	if err != nil {
		return nil, err
	}
	s := WithCapacity[T](len(slots))
	s.slots = append(s.slots, slots...)
	s.n = n
	return s, nil
}

// checkSlots returns the number of occupied slots.
func checkSlots[T any](slots []Slot[T]) (int, error) {
	n := 0
	for i := range slots {
		pos := slots[i].pos
		if pos.denom < denomMin {
			return 0, fmt.Errorf("%w: zero denominator at slot %d", ErrIllegalArguments, i)
		}
		if pos.num == 0 {
			return 0, fmt.Errorf("%w: position %v at slot %d is not after %v",
				ErrIllegalArguments, pos, i, MinPosition)
		}
		if i > 0 {
			switch slots[i-1].pos.Compare(pos) {
			case 0:
				return 0, fmt.Errorf("%w: %v at slots %d and %d", ErrDuplicatePosition,
					pos, i-1, i)
			case 1:
				return 0, fmt.Errorf("%w: %v before %v at slot %d", ErrUnsorted,
					slots[i-1].pos, pos, i)
			}
		}
		if slots[i].present {
			n++
		}
	}
	return n, nil
}
