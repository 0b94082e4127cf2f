/*
Package html renders sequences as ordered HTML lists and reads them back.

Every list item carries the position of its element in two data attributes:

	<ol class="fracseq">
	<li data-num="1" data-denom="1">A</li>
	<li data-num="3" data-denom="2">B</li>
	</ol>

A client-side editor may therefore insert a new item between two others,
compute the mediant of the neighbours' keys and send just the new item to a
server, without renumbering its siblings.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fracseq'
func tracer() tracing.Trace {
	return tracing.Select("fracseq")
}
