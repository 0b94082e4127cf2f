/*
Package seqio serializes sequences, including their tombstones, and provides
codecs for element payloads.

A serialized sequence has the following layout (shown as JSON):

	{
	  "len": 2,
	  "slots": [
	    { "num": 1, "denom": 1, "element": "A" },
	    { "num": 2, "denom": 1, "element": null },
	    { "num": 3, "denom": 1, "element": "C" }
	  ]
	}

Tombstones are written with a null element and are never omitted, thus a
decoded sequence re-uses the same positions for insertions as the original.
YAML uses the same field names.

Codecs convert single elements to and from byte slices. They are used by the
stores, which persist payloads as opaque blobs.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package seqio

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fracseq'
func tracer() tracing.Trace {
	return tracing.Select("fracseq")
}
