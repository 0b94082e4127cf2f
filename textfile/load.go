package textfile

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/fracseq"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Fragment is a segment of text between two line-break opportunities.
type Fragment struct {
	Text  string // segment text, including trailing spaces and newline
	Width int    // display width, excluding a trailing newline
}

// LineBreak is the marker fragment inserted by Wrap.
var LineBreak = Fragment{Text: "\n"}

// EndsLine is true for fragments ending in a newline, including LineBreak.
func (f Fragment) EndsLine() bool {
	return strings.HasSuffix(f.Text, "\n")
}

func (f Fragment) String() string {
	return fmt.Sprintf("%q(%d)", f.Text, f.Width)
}

var setupGraphemes sync.Once

// Segment reads all of r and splits it into fragments at UAX#14 line-break
// opportunities. Widths are measured within context; if context is nil,
// uax11.LatinContext is used.
func Segment(r io.Reader, context *uax11.Context) (*fracseq.Sequence[Fragment], error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(strings.NewReader(string(text)))
	seq := fracseq.New[Fragment]()
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(strings.TrimRight(frag, "\r\n"))
		seq.Push(Fragment{
			Text:  frag,
			Width: uax11.StringWidth(gstr, context),
		})
	}
	tracer().Debugf("textfile: %d bytes split into %d fragments", len(text), seq.Len())
	return seq, nil
}

// Load reads a file, which must be a regular UTF-8 text file, and segments it
// (see Segment).
func Load(name string, context *uax11.Context) (*fracseq.Sequence[Fragment], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Segment(file, context)
}

/*
Wrap breaks the fragments of seq into lines using a first fit strategy:

	SpaceLeft := LineWidth
	for each Fragment in Text
	    if Width(Fragment) > SpaceLeft
	         insert line break before Fragment
	         SpaceLeft := LineWidth - Width(Fragment)
	    else
	         SpaceLeft := SpaceLeft - Width(Fragment)

Fragments ending in a newline end a line, as do LineBreak markers of an
earlier call to Wrap. A fragment wider than linewidth gets a line of its own.
Wrap returns the number of lines.
*/
func Wrap(seq *fracseq.Sequence[Fragment], linewidth int) int {
	lines := 0
	spaceleft := linewidth
	for i := 0; i < seq.Slots(); i++ {
		slot, _ := seq.SlotAt(i)
		f, ok := slot.Element()
		if !ok {
			continue
		}
		if f.Width > 0 && f.Width > spaceleft && spaceleft < linewidth {
			pos := seq.Insert(i, LineBreak) // i is occupied, thus a new slot is spliced in
			tracer().Debugf("textfile: break @ %v before %v", pos, f)
			lines++
			i++
			spaceleft = linewidth
		}
		spaceleft -= f.Width
		if f.EndsLine() {
			lines++
			spaceleft = linewidth
		}
	}
	if spaceleft < linewidth {
		lines++
	}
	return lines
}

// Lines returns the text lines of seq, without trailing whitespace.
func Lines(seq *fracseq.Sequence[Fragment]) []string {
	var lines []string
	var b strings.Builder
	for _, f := range seq.RangeElements() {
		b.WriteString(f.Text)
		if f.EndsLine() {
			lines = append(lines, strings.TrimRight(b.String(), " \t\r\n"))
			b.Reset()
		}
	}
	if b.Len() > 0 {
		lines = append(lines, strings.TrimRight(b.String(), " \t\r\n"))
	}
	return lines
}
