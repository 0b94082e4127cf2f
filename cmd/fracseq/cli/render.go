package cli

import (
	"strings"

	"github.com/gravitational/trace"
	"github.com/npillmayer/fracseq"
	"github.com/npillmayer/fracseq/html"
	"github.com/npillmayer/fracseq/seqio"
	"github.com/npillmayer/fracseq/textfile"
	"github.com/npillmayer/uax/uax11"
)

// Person is the element type of the sample sequence.
type Person struct {
	Name string `json:"name" yaml:"name"`
}

func (p Person) String() string {
	return p.Name
}

// samplePersons returns Anton, Christoph and Dora, with a tombstone left
// behind by Ben.
func samplePersons() *fracseq.Sequence[Person] {
	seq := fracseq.New[Person]()
	for _, name := range []string{"Anton", "Ben", "Christoph", "Dora"} {
		seq.Push(Person{Name: name})
	}
	seq.Remove(1)
	return seq
}

func export(p *printer, format string) error {
	seq := samplePersons()
	switch format {
	case "json":
		return trace.Wrap(seqio.EncodeJSON(p.w, seq))
	case "yaml":
		return trace.Wrap(seqio.EncodeYAML(p.w, seq))
	}
	return trace.BadParameter("unsupported format %q", format)
}

func renderHTML(p *printer, all bool) error {
	seq := samplePersons()
	if all {
		return trace.Wrap(html.RenderAll(p.w, seq, Person.String))
	}
	return trace.Wrap(html.Render(p.w, seq, Person.String))
}

func renderDot(p *printer) error {
	fracseq.Sequence2Dot(samplePersons(), p.w)
	return nil
}

// wrapText loads a text file, wraps it to width and prints every line
// prefixed by the position of its first fragment.
func wrapText(p *printer, name string, width int) error {
	if width <= 0 {
		width = terminalWidth()
	}
	seq, err := textfile.Load(name, uax11.ContextFromEnvironment())
	if err != nil {
		return trace.ConvertSystemError(err)
	}
	n := textfile.Wrap(seq, width)
	for _, line := range keyedLines(seq) {
		p.Entry(line.pos, line.text)
	}
	p.Notef("%d fragments in %d lines of width %d\n", seq.Len(), n, width)
	return nil
}

type keyedLine struct {
	pos  fracseq.Position
	text string
}

// keyedLines is textfile.Lines, remembering the position each line starts at.
func keyedLines(seq *fracseq.Sequence[textfile.Fragment]) []keyedLine {
	var lines []keyedLine
	var b strings.Builder
	var start fracseq.Position
	for pos, f := range seq.RangeElements() {
		if b.Len() == 0 {
			start = pos
		}
		b.WriteString(f.Text)
		if f.EndsLine() {
			lines = append(lines, keyedLine{start, strings.TrimRight(b.String(), " \t\r\n")})
			b.Reset()
		}
	}
	if b.Len() > 0 {
		lines = append(lines, keyedLine{start, strings.TrimRight(b.String(), " \t\r\n")})
	}
	return lines
}
