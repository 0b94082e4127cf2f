package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/guiguan/caster"
	"github.com/npillmayer/fracseq"
	"github.com/npillmayer/fracseq/seqio"
)

// Op is the kind of change an event reports.
type Op int8

const (
	// OpPut reports an element stored at a position, either newly inserted or
	// overwritten.
	OpPut Op = iota + 1
	// OpDelete reports an element removed from a position.
	OpDelete
)

func (op Op) String() string {
	switch op {
	case OpPut:
		return "put"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Event is a change of a journaled sequence. For OpDelete, Element is the
// removed element.
type Event[T any] struct {
	Op       Op
	Position fracseq.Position
	Element  T
}

func (ev Event[T]) String() string {
	return fmt.Sprintf("%s %v: %v", ev.Op, ev.Position, ev.Element)
}

// ErrClosed is returned when subscribing to a closed journal.
var ErrClosed = errors.New("journal: closed")

// Journal wraps a sequence and publishes every change to it. Mutations have to
// go through the journal; changes made to the sequence directly are not
// recorded.
type Journal[T any] struct {
	seq  *fracseq.Sequence[T]
	cast *caster.Caster
}

// New creates a journal for seq. If seq is nil, an empty sequence is created.
func New[T any](seq *fracseq.Sequence[T]) *Journal[T] {
	if seq == nil {
		seq = fracseq.New[T]()
	}
	return &Journal[T]{
		seq:  seq,
		cast: caster.New(nil),
	}
}

// Sequence returns the journaled sequence. Clients must not mutate it.
func (j *Journal[T]) Sequence() *fracseq.Sequence[T] {
	return j.seq
}

// Subscribe returns a channel of events for all changes from now on.
// The channel is closed when ctx is done or the journal is closed.
func (j *Journal[T]) Subscribe(ctx context.Context, capacity uint) (<-chan Event[T], error) {
	select {
	case <-j.cast.Done():
		return nil, ErrClosed
	default:
	}
	ch, ok := j.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	events := make(chan Event[T], capacity)
	go func() {
		defer close(events)
		for msg := range ch {
			if ctx.Err() != nil {
				// keep draining ch, the caster blocks on full subscribers
				continue
			}
			select {
			case events <- msg.(Event[T]):
			case <-ctx.Done():
			}
		}
	}()
	return events, nil
}

// Close stops broadcasting and closes all subscriber channels. It returns
// after events published before have been handed to the subscribers.
func (j *Journal[T]) Close() {
	j.cast.Close()
	<-j.cast.Done()
}

func (j *Journal[T]) publish(op Op, pos fracseq.Position, element T) {
	ev := Event[T]{Op: op, Position: pos, Element: element}
	if !j.cast.Pub(ev) {
		tracer().Errorf("journal: event %v dropped, journal is closed", ev)
	}
}

// Push appends element to the sequence and publishes it.
func (j *Journal[T]) Push(element T) fracseq.Position {
	pos := j.seq.Push(element)
	j.publish(OpPut, pos, element)
	return pos
}

// Insert inserts element at index and publishes it.
func (j *Journal[T]) Insert(index int, element T) fracseq.Position {
	pos := j.seq.Insert(index, element)
	j.publish(OpPut, pos, element)
	return pos
}

// InsertAt inserts element at pos and publishes it with the position the
// sequence assigned.
func (j *Journal[T]) InsertAt(pos fracseq.Position, element T) fracseq.Position {
	pos = j.seq.InsertAt(pos, element)
	j.publish(OpPut, pos, element)
	return pos
}

// Remove removes the element at index and publishes its removal.
func (j *Journal[T]) Remove(index int) (element T, ok bool) {
	i, ok := j.seq.Locate(index)
	if !ok {
		return element, false
	}
	pos, _ := j.seq.PositionFrom(i)
	if element, ok = j.seq.Remove(index); ok {
		j.publish(OpDelete, pos, element)
	}
	return element, ok
}

// RemoveAt removes the element which the sequence's RemoveAt removes for pos
// and publishes its removal.
func (j *Journal[T]) RemoveAt(pos fracseq.Position) (element T, ok bool) {
	index, ok := j.seq.IndexFrom(pos)
	if !ok {
		return element, false
	}
	return j.Remove(index)
}

// Store is implemented by persistent stores for sequence elements.
type Store interface {
	Put(ctx context.Context, pos fracseq.Position, payload []byte) error
	Delete(ctx context.Context, pos fracseq.Position) error
}

// Follow applies events to store until the events channel is closed or ctx
// is done. It returns on the first error.
func Follow[T any](ctx context.Context, events <-chan Event[T], store Store, codec seqio.Codec[T]) error {
	applied := 0
	defer func() {
		tracer().Debugf("journal: applied %d events", applied)
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := apply(ctx, ev, store, codec); err != nil {
				return fmt.Errorf("journal: cannot apply %v: %w", ev, err)
			}
			applied++
		}
	}
}

func apply[T any](ctx context.Context, ev Event[T], store Store, codec seqio.Codec[T]) error {
	switch ev.Op {
	case OpPut:
		payload, err := codec.Encode(ev.Element)
		if err != nil {
			return err
		}
		return store.Put(ctx, ev.Position, payload)
	case OpDelete:
		return store.Delete(ctx, ev.Position)
	}
	return fmt.Errorf("unknown operation %d", ev.Op)
}
