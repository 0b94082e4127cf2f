/*
Package fracseq offers an ordered container which tags every element with a
fractional position instead of an array index.

Sequences

A Sequence keeps its elements in a total order. Every element carries a
Position, a fraction num/denom which is used purely as an ordering tag. The
ordering can therefore be persisted externally, e.g. as two integer columns of
a row in a relational table, and an insertion between two elements will never
require rewriting the positions of the siblings: a fresh position strictly
between two existing ones can always be generated.

New positions are generated as mediants, not as arithmetic midpoints:

	(n1, d1) ⊕ (n2, d2) = (n1+n2, d1+d2)

For n1/d1 < n2/d2 the mediant is always strictly between the two. Using a
float midpoint instead runs out of precision after a few dozen insertions at
the same spot (try `fracseq avg` from the command line tool).

Removal does not shift elements. A removed element leaves a tombstone which
keeps its position, and a later insertion at the same logical index reuses the
tombstone's position. Repeated insert/remove cycles at one spot thus do not
make the fractions grow.

Ordering

Positions are compared exactly, by cross-multiplying into 128 bit products.
Comparing num/denom as float64 values would make distinct positions compare as
equal once their components outgrow the 53 bit mantissa, and positions with
different denominators must never be divided by a common one.

Limits

Numerators and denominators are uint64. Repeated insertion at the same
boundary grows them (by Fibonacci-like steps in the worst case). If a
component would overflow, the sequence panics with ErrPositionOverflow rather
than silently wrap around and corrupt the ordering.

Concurrency

A Sequence is not safe for concurrent use. Clients sharing a sequence between
goroutines have to guard the whole container with a single lock.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package fracseq

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer, or to the tracer selected by key
// 'fracseq' if no core-tracer is installed.
func T() tracing.Trace {
	if gtrace.CoreTracer == nil {
		return tracing.Select("fracseq")
	}
	return gtrace.CoreTracer
}

// tracer is T for generic code, where T names a type parameter.
func tracer() tracing.Trace {
	return T()
}

// SeqError is an error type for the fracseq module
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrPositionOverflow is raised (as a panic) whenever generating a position
// would overflow a numerator or denominator.
const ErrPositionOverflow = SeqError("position overflow: numerator or denominator exceeds uint64")

// ErrUnsorted is flagged if slots are not in ascending position order.
const ErrUnsorted = SeqError("slots not sorted by position")

// ErrDuplicatePosition is flagged if two slots carry equal positions.
const ErrDuplicatePosition = SeqError("duplicate position")

// ErrCountMismatch is flagged if the element count does not match the
// number of occupied slots.
const ErrCountMismatch = SeqError("element count mismatch")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeqError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
