/*
Package journal records the changes to a sequence as a stream of events.

A Journal wraps a sequence and publishes an event for every mutation. Events
carry the position of the affected element, which is all a persistent store
needs: inserting an element between two others results in a single Put, as
positions of existing elements never change.

	j := journal.New[string](nil)
	events, _ := j.Subscribe(ctx, 16)
	go journal.Follow(ctx, events, store, seqio.StringCodec{})
	j.Push("A")

Events are broadcast to any number of subscribers. A slow subscriber will
slow down mutations of the sequence, as broadcasting blocks until every
subscriber has room for the next event.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package journal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fracseq'
func tracer() tracing.Trace {
	return tracing.Select("fracseq")
}
