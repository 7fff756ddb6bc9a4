package doc

import "strings"

// The persisted document grammar is line oriented with one tag per node
// kind. Top-level nodes serialize as:
//
//	!t <inline>         text run
//	!h1 <inline>        heading (also !h2, !h3)
//	!ul <list-id>       bullet list header, items follow
//	!li <inline>        bullet list item (attaches to the preceding !ul)
//	!todo0 <inline>     unchecked task item
//	!todo1 <inline>     checked task item
//	!br                 line break
//
// Inline content nests spans as <b>..</b>, <small>..</small>,
// <normal>..</normal>, <large>..</large>, <xlarge>..</xlarge>; literal
// backslash and '<' are escaped with a backslash. Serialization is
// deterministic: an unmodified document always re-serializes to the same
// bytes. Parsing is total: any line that fits no production is a text run.

var spanTags = map[SpanKind]string{
	SpanBold:   "b",
	SpanSmall:  "small",
	SpanNormal: "normal",
	SpanLarge:  "large",
	SpanXLarge: "xlarge",
}

var tagSpans = map[string]SpanKind{
	"b":      SpanBold,
	"small":  SpanSmall,
	"normal": SpanNormal,
	"large":  SpanLarge,
	"xlarge": SpanXLarge,
}

// Serialize renders a document to its canonical markup form.
func Serialize(d Document) string {
	var b strings.Builder
	for i, n := range d.Nodes {
		if i > 0 {
			b.WriteByte('\n')
		}
		serializeNode(&b, n)
	}
	return b.String()
}

func serializeNode(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindText:
		b.WriteString("!t ")
		writeInline(b, []Node{n})
	case KindHeading:
		switch n.Level {
		case 2:
			b.WriteString("!h2 ")
		case 3:
			b.WriteString("!h3 ")
		default:
			b.WriteString("!h1 ")
		}
		writeInline(b, n.Children)
	case KindBulletList:
		b.WriteString("!ul ")
		b.WriteString(n.ListID)
		for _, item := range n.Items {
			b.WriteString("\n!li ")
			writeInline(b, item)
		}
	case KindTaskItem:
		if n.Checked {
			b.WriteString("!todo1 ")
		} else {
			b.WriteString("!todo0 ")
		}
		writeInline(b, n.Children)
	case KindLineBreak:
		b.WriteString("!br")
	case KindSpan:
		b.WriteString("!t ")
		writeInline(b, []Node{n})
	}
}

func writeInline(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			escapeInto(b, n.Text)
		case KindSpan:
			tag := spanTags[n.Span]
			b.WriteByte('<')
			b.WriteString(tag)
			b.WriteByte('>')
			writeInline(b, n.Children)
			b.WriteString("</")
			b.WriteString(tag)
			b.WriteByte('>')
		default:
			escapeInto(b, PlainText([]Node{n}))
		}
	}
}

func escapeInto(b *strings.Builder, text string) {
	for _, r := range text {
		switch r {
		case '\\', '<':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
}

// Parse reads markup back into a document. It never fails; malformed
// lines degrade to text runs.
func Parse(input string) Document {
	d := Document{}
	if input == "" {
		return d
	}
	for _, line := range strings.Split(input, "\n") {
		parseLine(&d, line)
	}
	return d
}

func parseLine(d *Document, line string) {
	switch {
	case line == "!br":
		d.Nodes = append(d.Nodes, LineBreakNode())
	case strings.HasPrefix(line, "!t "):
		d.Nodes = append(d.Nodes, inlineAsBlock(parseInline(line[3:]))...)
	case strings.HasPrefix(line, "!h1 "):
		d.Nodes = append(d.Nodes, HeadingNode(1, parseInline(line[4:])))
	case strings.HasPrefix(line, "!h2 "):
		d.Nodes = append(d.Nodes, HeadingNode(2, parseInline(line[4:])))
	case strings.HasPrefix(line, "!h3 "):
		d.Nodes = append(d.Nodes, HeadingNode(3, parseInline(line[4:])))
	case strings.HasPrefix(line, "!ul "):
		d.Nodes = append(d.Nodes, BulletListNode(line[4:], nil))
	case strings.HasPrefix(line, "!li "):
		item := parseInline(line[4:])
		if last := len(d.Nodes) - 1; last >= 0 && d.Nodes[last].Kind == KindBulletList {
			d.Nodes[last].Items = append(d.Nodes[last].Items, item)
			return
		}
		// Orphan item: degrade to a text run.
		d.Nodes = append(d.Nodes, inlineAsBlock(item)...)
	case strings.HasPrefix(line, "!todo0 "):
		d.Nodes = append(d.Nodes, TaskItemNode(false, parseInline(line[7:])))
	case strings.HasPrefix(line, "!todo1 "):
		d.Nodes = append(d.Nodes, TaskItemNode(true, parseInline(line[7:])))
	default:
		d.Nodes = append(d.Nodes, TextNode(line))
	}
}

// inlineAsBlock lifts parsed inline content to the top level: bare text
// stays a text node, styled content surfaces its spans as siblings.
func inlineAsBlock(nodes []Node) []Node {
	nodes = Normalize(nodes)
	if len(nodes) == 0 {
		return []Node{TextNode("")}
	}
	return nodes
}

func parseInline(s string) []Node {
	nodes, _, _ := parseInlineUntil(s, 0, "")
	return Normalize(nodes)
}

// parseInlineUntil scans from pos until the closing tag named by stop (or
// end of input when stop is empty). It returns the parsed nodes, the
// position just past the consumed input, and whether the close tag was
// actually seen.
func parseInlineUntil(s string, pos int, stop string) ([]Node, int, bool) {
	var nodes []Node
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, TextNode(text.String()))
			text.Reset()
		}
	}
	for pos < len(s) {
		c := s[pos]
		if c == '\\' && pos+1 < len(s) {
			text.WriteByte(s[pos+1])
			pos += 2
			continue
		}
		if c == '<' {
			if stop != "" && strings.HasPrefix(s[pos:], "</"+stop+">") {
				flush()
				return nodes, pos + len(stop) + 3, true
			}
			if tag, ok := openTagAt(s, pos); ok {
				start := pos + len(tag) + 2
				children, next, closed := parseInlineUntil(s, start, tag)
				if closed {
					flush()
					nodes = append(nodes, SpanNode(tagSpans[tag], children))
					pos = next
					continue
				}
				// Unterminated tag: treat the '<' literally.
			}
		}
		text.WriteByte(c)
		pos++
	}
	flush()
	return nodes, pos, false
}

func openTagAt(s string, pos int) (string, bool) {
	for tag := range tagSpans {
		if strings.HasPrefix(s[pos:], "<"+tag+">") {
			return tag, true
		}
	}
	return "", false
}
