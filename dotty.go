package fracseq

import (
	"fmt"
	"io"
	"strings"
)

// Sequence2Dot outputs the slot chain of a sequence in Graphviz DOT format
// (for debugging purposes). Occupied slots are drawn as boxes labelled with
// position and element, tombstones as empty circles labelled with their
// position.
func Sequence2Dot[T any](seq *Sequence[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	prev := -1
	for i, slot := range seq.RangeSlots() {
		ID := i + 1
		styles := slotDotStyles(slot.IsPresent())
		var label string
		if e, ok := slot.Element(); ok {
			label = fmt.Sprintf("%v\\n“%s”", slot.Position(), dotEscape(fmt.Sprint(e)))
		} else {
			label = slot.Position().String()
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		if prev > 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", prev, ID)
		}
		prev = ID
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func slotDotStyles(present bool) string {
	s := ",style=filled"
	if present {
		s += ",shape=box,fillcolor=\"#a3d7e4\""
	} else {
		s += ",color=black,fillcolor=white,shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
