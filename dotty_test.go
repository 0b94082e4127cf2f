package fracseq

import (
	"strings"
	"testing"
)

func TestSequence2Dot(t *testing.T) {
	seq := setupSeqABC()
	seq.Remove(1)
	seq.Insert(0, `"q"`)
	var b strings.Builder
	Sequence2Dot(seq, &b)
	dot := b.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("malformed digraph")
	}
	if strings.Count(dot, "shape=box") != 3 {
		t.Errorf("expected 3 element nodes")
	}
	if !strings.Contains(dot, `"3" [label="2/1"`) || strings.Count(dot, "shape=circle") != 1 {
		t.Errorf("expected tombstone node for 2/1")
	}
	if strings.Count(dot, "->") != 3 {
		t.Errorf("expected 3 edges")
	}
	if !strings.Contains(dot, `“\"q\"”`) {
		t.Errorf("expected quotes in labels to be escaped")
	}
}
