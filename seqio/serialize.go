package seqio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/fracseq"
	"gopkg.in/yaml.v3"
)

// ErrLengthMismatch is returned by the decoders if the serialized length does
// not match the number of serialized elements.
var ErrLengthMismatch = errors.New("seqio: length does not match number of elements")

type wireSequence[T any] struct {
	Len   int           `json:"len" yaml:"len"`
	Slots []wireSlot[T] `json:"slots" yaml:"slots"`
}

// Element is nil for tombstones. For pointer types T, a present nil element
// is indistinguishable from a tombstone.
type wireSlot[T any] struct {
	Num     uint64 `json:"num" yaml:"num"`
	Denom   uint64 `json:"denom" yaml:"denom"`
	Element *T     `json:"element" yaml:"element"`
}

func toWire[T any](seq *fracseq.Sequence[T]) wireSequence[T] {
	w := wireSequence[T]{
		Len:   seq.Len(),
		Slots: make([]wireSlot[T], 0, seq.Slots()),
	}
	for _, slot := range seq.RangeSlots() {
		ws := wireSlot[T]{Num: slot.Num(), Denom: slot.Denom()}
		if e, ok := slot.Element(); ok {
			ws.Element = &e
		}
		w.Slots = append(w.Slots, ws)
	}
	return w
}

func fromWire[T any](w wireSequence[T]) (*fracseq.Sequence[T], error) {
	slots := make([]fracseq.Slot[T], len(w.Slots))
	for i, ws := range w.Slots {
		pos := fracseq.NewPosition(ws.Num, ws.Denom)
		if ws.Element == nil {
			slots[i] = fracseq.Vacant[T](pos)
		} else {
			slots[i] = fracseq.Occupied(pos, *ws.Element)
		}
	}
	seq, err := fracseq.FromSlots(slots)
	if err != nil {
		return nil, err
	}
	if seq.Len() != w.Len {
		return nil, fmt.Errorf("%w: len=%d, found %d", ErrLengthMismatch, w.Len, seq.Len())
	}
	tracer().Debugf("seqio: decoded sequence with %d elements in %d slots", seq.Len(), seq.Slots())
	return seq, nil
}

// EncodeJSON writes seq as an indented JSON document to w.
func EncodeJSON[T any](w io.Writer, seq *fracseq.Sequence[T]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toWire(seq))
}

// DecodeJSON reads a sequence from a JSON document.
func DecodeJSON[T any](r io.Reader) (*fracseq.Sequence[T], error) {
	var w wireSequence[T]
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, err
	}
	return fromWire(w)
}

// EncodeYAML writes seq as a YAML document to w.
func EncodeYAML[T any](w io.Writer, seq *fracseq.Sequence[T]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toWire(seq)); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeYAML reads a sequence from a YAML document.
func DecodeYAML[T any](r io.Reader) (*fracseq.Sequence[T], error) {
	var w wireSequence[T]
	if err := yaml.NewDecoder(r).Decode(&w); err != nil {
		return nil, err
	}
	return fromWire(w)
}
