/*
Package textfile loads UTF-8 text as a sequence of line-break segments.

Text is split at line-break opportunities as defined by UAX#14. Every segment
becomes an element of a sequence, together with its display width in fixed
width positions (UAX#11). Line wrapping then amounts to inserting break
markers between segments: the positions of the segments stay untouched, thus
a layout may be persisted and updated incrementally.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fracseq'
func tracer() tracing.Trace {
	return tracing.Select("fracseq")
}
