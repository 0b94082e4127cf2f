package fracseq

import (
	"slices"
	"testing"
)

func TestRangeElementsSkipsTombstones(t *testing.T) {
	seq := setupSeqABC()
	seq.Remove(1)
	var elems []string
	var positions []Position
	for pos, e := range seq.RangeElements() {
		positions = append(positions, pos)
		elems = append(elems, e)
	}
	if !slices.Equal(elems, []string{"A", "C"}) {
		t.Errorf("elements = %v, expected [A C]", elems)
	}
	if !slices.Equal(positions, []Position{NewPosition(1, 1), NewPosition(3, 1)}) {
		t.Errorf("positions = %v, expected [1/1 3/1]", positions)
	}
}

func TestRangeElementsStopsEarly(t *testing.T) {
	seq := setupSeqABC()
	cnt := 0
	for range seq.RangeElements() {
		cnt++
		if cnt == 2 {
			break
		}
	}
	if cnt != 2 {
		t.Errorf("iterated %d elements, expected 2", cnt)
	}
	var nilseq *Sequence[string]
	for range nilseq.RangeElements() {
		t.Fatalf("expected no elements for nil sequence")
	}
}

func TestRangeSlotsIncludesTombstones(t *testing.T) {
	seq := setupSeqABC()
	seq.Remove(1)
	vacant := 0
	total := 0
	for i, slot := range seq.RangeSlots() {
		if i != total {
			t.Errorf("slot index %d, expected %d", i, total)
		}
		total++
		if slot.IsVacant() {
			vacant++
			if !slot.Position().Equal(NewPosition(2, 1)) {
				t.Errorf("tombstone at %v, expected 2/1", slot.Position())
			}
		}
	}
	if total != 3 || vacant != 1 {
		t.Errorf("%d slots with %d tombstones, expected 3 with 1", total, vacant)
	}
}

func TestRangeSlotsMutRecountsElements(t *testing.T) {
	seq := setupSeqABC()
	seq.Remove(1)
	for _, slot := range seq.RangeSlotsMut() {
		slot.Set("D")
	}
	if seq.Len() != 3 {
		t.Errorf("len = %d, expected 3", seq.Len())
	}
	expectElements(t, seq, "D", "D", "D")
	for _, slot := range seq.RangeSlotsMut() {
		slot.Take()
		break
	}
	if seq.Len() != 2 {
		t.Errorf("len = %d after take, expected 2", seq.Len())
	}
	checkInvariants(t, seq)
}

func TestElementRefThroughMutIteration(t *testing.T) {
	seq := setupSeqABC()
	for _, slot := range seq.RangeSlotsMut() {
		if p := slot.ElementRef(); p != nil {
			*p += *p
		}
	}
	expectElements(t, seq, "AA", "BB", "CC")
}

func TestCursor(t *testing.T) {
	seq := setupSeqABC()
	seq.Remove(1)
	cursor := seq.NewCursor()
	expect := []struct {
		num, denom uint64
		elem       string
	}{
		{1, 1, "A"},
		{3, 1, "C"},
	}
	for round := 0; round < 2; round++ {
		for _, x := range expect {
			n, d, e, ok := cursor.Next()
			if !ok || n != x.num || d != x.denom || *e != x.elem {
				t.Fatalf("round %d: cursor = %d/%d, expected %d/%d %q", round, n, d, x.num, x.denom, x.elem)
			}
		}
		if _, _, _, ok := cursor.Next(); ok {
			t.Fatalf("round %d: expected cursor to be exhausted", round)
		}
	}
}

func TestCursorReset(t *testing.T) {
	seq := setupSeqABC()
	cursor := seq.NewCursor()
	cursor.Next()
	cursor.Next()
	cursor.Reset()
	if _, _, e, ok := cursor.Next(); !ok || *e != "A" {
		t.Errorf("expected cursor to restart at A")
	}
	_, _, e, _ := cursor.Next()
	*e = "BB"
	if b, _ := seq.Get(1); b != "BB" {
		t.Errorf("write through cursor lost, get(1) = %q", b)
	}
}

func TestCursorOnEmptySequence(t *testing.T) {
	seq := New[int]()
	if _, _, _, ok := seq.NewCursor().Next(); ok {
		t.Errorf("expected cursor on empty sequence to be exhausted")
	}
	var c *Cursor[int]
	if _, _, _, ok := c.Next(); ok {
		t.Errorf("expected nil cursor to be exhausted")
	}
}
