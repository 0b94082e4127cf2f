package html

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/fracseq"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ListClass is the class attribute of the <ol> element created by Render.
const ListClass = "fracseq"

// TombstoneClass marks list items for tombstones (see RenderAll).
const TombstoneClass = "tombstone"

// ErrMalformedKey is returned by FromHTML for list items with unparsable
// position attributes.
var ErrMalformedKey = errors.New("html: malformed position attribute")

// Render writes the elements of seq as an ordered HTML list. Every list item
// carries the element's position in attributes data-num and data-denom.
// format creates the text of a list item; if it is nil, fmt.Sprint is used.
// Tombstones are not rendered.
func Render[T any](w io.Writer, seq *fracseq.Sequence[T], format func(T) string) error {
	return render(w, seq, format, false)
}

// RenderAll is like Render, but renders tombstones as empty list items with
// class "tombstone".
func RenderAll[T any](w io.Writer, seq *fracseq.Sequence[T], format func(T) string) error {
	return render(w, seq, format, true)
}

func render[T any](w io.Writer, seq *fracseq.Sequence[T], format func(T) string, all bool) error {
	if format == nil {
		format = func(e T) string { return fmt.Sprint(e) }
	}
	ol := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Ol,
		Data:     "ol",
		Attr:     []html.Attribute{{Key: "class", Val: ListClass}},
	}
	for _, slot := range seq.RangeSlots() {
		if slot.IsVacant() && !all {
			continue
		}
		ol.AppendChild(newline())
		li := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Li,
			Data:     "li",
		}
		if slot.IsVacant() {
			li.Attr = append(li.Attr, html.Attribute{Key: "class", Val: TombstoneClass})
		}
		li.Attr = append(li.Attr,
			html.Attribute{Key: "data-num", Val: strconv.FormatUint(slot.Num(), 10)},
			html.Attribute{Key: "data-denom", Val: strconv.FormatUint(slot.Denom(), 10)},
		)
		if e, ok := slot.Element(); ok {
			li.AppendChild(&html.Node{Type: html.TextNode, Data: format(e)})
		}
		ol.AppendChild(li)
	}
	ol.AppendChild(newline())
	if err := html.Render(w, ol); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}

// FromHTML creates a sequence from the list items of an HTML fragment. The
// text of a list item (including all of its descendents) becomes an element.
//
// List items carrying position attributes are re-created at their positions;
// their positions have to be in ascending document order. Items of class
// "tombstone" are re-created as tombstones. List items without position
// attributes are appended (pushed) after all keyed items, in document order.
func FromHTML(input io.Reader) (*fracseq.Sequence[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var items []*html.Node
	for _, n := range nodes {
		collectItems(n, &items)
	}
	var slots []fracseq.Slot[string]
	var unkeyed []string
	for _, li := range items {
		num, denom, keyed, err := itemKey(li)
		if err != nil {
			return nil, err
		}
		if !keyed {
			unkeyed = append(unkeyed, innerText(li))
			continue
		}
		pos := fracseq.NewPosition(num, denom)
		if hasClass(li, TombstoneClass) {
			slots = append(slots, fracseq.Vacant[string](pos))
		} else {
			slots = append(slots, fracseq.Occupied(pos, innerText(li)))
		}
	}
	seq, err := fracseq.FromSlots(slots)
	if err != nil {
		return nil, err
	}
	for _, text := range unkeyed {
		seq.Push(text)
	}
	tracer().Debugf("html: read %d list items, %d without position", len(items), len(unkeyed))
	return seq, nil
}

func collectItems(n *html.Node, items *[]*html.Node) {
	if n.Type == html.ElementNode && n.Data == "li" {
		*items = append(*items, n)
		return // nested lists belong to the item's text
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectItems(c, items)
	}
}

func itemKey(li *html.Node) (num, denom uint64, keyed bool, err error) {
	n, hasNum := attr(li, "data-num")
	d, hasDenom := attr(li, "data-denom")
	if !hasNum && !hasDenom {
		return 0, 0, false, nil
	}
	if num, err = strconv.ParseUint(n, 10, 64); err != nil {
		return 0, 0, false, fmt.Errorf("%w: data-num=%q", ErrMalformedKey, n)
	}
	denom = 1
	if hasDenom {
		if denom, err = strconv.ParseUint(d, 10, 64); err != nil {
			return 0, 0, false, fmt.Errorf("%w: data-denom=%q", ErrMalformedKey, d)
		}
	}
	return num, denom, true, nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	return ok && strings.Contains(" "+v+" ", " "+class+" ")
}

// innerText resembles
//
//	element.innerText
//
// in JavaScript, without respecting CSS visibility.
func innerText(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
