package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// printer writes command output, coloring positions and elements if the
// output goes to a terminal.
type printer struct {
	w    io.Writer
	pos  *color.Color
	elem *color.Color
	note *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	p := &printer{
		w:    w,
		pos:  color.New(color.FgBlue),
		elem: color.New(color.FgGreen),
		note: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.pos, p.elem, p.note} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// isTerminal is true if w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *printer) Notef(format string, args ...interface{}) {
	p.note.Fprintf(p.w, format, args...)
}

// Entry prints a position and an element on a line.
func (p *printer) Entry(pos fmt.Stringer, element interface{}) {
	fmt.Fprintf(p.w, "%s %s\n", p.pos.Sprintf("%12s", pos), p.elem.Sprint(element))
}

// terminalWidth returns a line width suitable for stdout. If stdout is not a
// terminal, 65 is returned.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 65
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 65
	}
	return lineWidthFor(w)
}

func lineWidthFor(columns int) int {
	switch {
	case columns > 65:
		return columns - 10
	case columns > 30:
		return columns - 5
	}
	return columns
}
