package fracseq

import "testing"

func setupSlot() Slot[string] {
	return Occupied(DefaultPosition(), "A")
}

func setupSlotEmpty() Slot[string] {
	return Vacant[string](DefaultPosition())
}

func TestSlotOccupied(t *testing.T) {
	slot := setupSlot()
	if n, d := slot.Pos(); n != slot.Num() || d != slot.Denom() {
		t.Errorf("Pos() = %d/%d, Num/Denom = %d/%d", n, d, slot.Num(), slot.Denom())
	}
	if !slot.Position().Equal(DefaultPosition()) {
		t.Errorf("position = %v, expected 1/1", slot.Position())
	}
	if e, ok := slot.Element(); !ok || e != "A" {
		t.Errorf("element = %q/%v, expected A", e, ok)
	}
	if !slot.IsPresent() || slot.IsVacant() {
		t.Errorf("expected slot to be occupied")
	}
}

func TestSlotVacant(t *testing.T) {
	slot := setupSlotEmpty()
	if _, ok := slot.Element(); ok {
		t.Errorf("expected tombstone to have no element")
	}
	if slot.ElementRef() != nil {
		t.Errorf("expected nil element ref for tombstone")
	}
	if slot.IsPresent() || !slot.IsVacant() {
		t.Errorf("expected slot to be vacant")
	}
}

func TestSlotElementRef(t *testing.T) {
	slot := setupSlot()
	ref := slot.ElementRef()
	if ref == nil || *ref != "A" {
		t.Fatalf("expected ref to A")
	}
	*ref = "AA"
	if e, _ := slot.Element(); e != "AA" {
		t.Errorf("write through element ref lost, element = %q", e)
	}
}

func TestSlotSet(t *testing.T) {
	slot := setupSlot()
	slot.Set("B")
	if e, ok := slot.Element(); !ok || e != "B" {
		t.Errorf("element = %q, expected B", e)
	}
	empty := setupSlotEmpty()
	empty.Set("B")
	if e, ok := empty.Element(); !ok || e != "B" {
		t.Errorf("element = %q, expected B", e)
	}
	if !empty.Position().Equal(DefaultPosition()) {
		t.Errorf("Set changed the position to %v", empty.Position())
	}
}

func TestSlotTake(t *testing.T) {
	slot := setupSlot()
	e, ok := slot.Take()
	if !ok || e != "A" {
		t.Fatalf("Take() = %q/%v, expected A", e, ok)
	}
	if slot.IsPresent() {
		t.Errorf("expected slot to be a tombstone after Take")
	}
	if !slot.Position().Equal(DefaultPosition()) {
		t.Errorf("tombstone lost its position: %v", slot.Position())
	}
	if _, ok := slot.Take(); ok {
		t.Errorf("expected Take on tombstone to fail")
	}
}

func TestSlotString(t *testing.T) {
	if s := setupSlot().String(); s != "[1/1: A]" {
		t.Errorf("String() = %q", s)
	}
	if s := setupSlotEmpty().String(); s != "[1/1: —]" {
		t.Errorf("String() = %q", s)
	}
}
