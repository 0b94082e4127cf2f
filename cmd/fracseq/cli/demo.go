package cli

import (
	"slices"
	"strconv"

	"github.com/gravitational/trace"
	"github.com/npillmayer/fracseq"
	"github.com/olekukonko/tablewriter"
)

// fractionSequence pushes A, B and C and then inserts n times after the
// element inserted before. Positions between A and B approach 2/1, each
// insertion growing numerator and denominator by one.
func fractionSequence(n int) *fracseq.Sequence[string] {
	seq := fracseq.WithCapacity[string](n + 3)
	seq.Push("A")
	seq.Push("B")
	seq.Push("C")
	for i := 1; i <= n; i++ {
		seq.Insert(i, "A")
	}
	return seq
}

func fraction(p *printer, n int) error {
	if n < 1 {
		return trace.BadParameter("count must be positive, is %d", n)
	}
	seq := fractionSequence(n)
	table := tablewriter.NewWriter(p.w)
	table.SetHeader([]string{"Index", "Position", "Value", "Element"})
	for i := n - 1; i <= n+1; i++ {
		pos, ok := seq.PositionFrom(i)
		if !ok {
			continue
		}
		e, _ := seq.Get(i)
		table.Append([]string{
			strconv.Itoa(i),
			pos.String(),
			strconv.FormatFloat(pos.Float64(), 'g', -1, 64),
			e,
		})
	}
	table.Render()
	p.Notef("%d elements after %d insertions\n", seq.Len(), n)
	return nil
}

// midpoints inserts the midpoint of the first two elements of 1, 2, 3 in
// between them until it is no longer distinguishable from the first one. It
// returns the number of insertions and the final sequence.
func midpoints[F float32 | float64]() (int, []F) {
	seq := []F{1, 2, 3}
	n := 0
	for seq[0] != seq[1] {
		n++
		seq = slices.Insert(seq, 1, (seq[0]+seq[1])/2)
	}
	return n, seq
}

func avg(p *printer) error {
	n32, seq32 := midpoints[float32]()
	n64, seq64 := midpoints[float64]()
	p.Printf("float32: %v ...\n", seq32[:3])
	p.Printf("Iterations: %d\n", n32)
	p.Printf("float64: %v ...\n", seq64[:3])
	p.Printf("Iterations: %d\n", n64)
	p.Notef("The first two positions are equal.\n")
	return nil
}
