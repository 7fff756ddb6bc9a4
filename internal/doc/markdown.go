package doc

import "strings"

// Markdown renders a document as CommonMark for previews and exports.
// Size spans have no markdown equivalent and flatten to plain text.
func Markdown(d Document) string {
	var b strings.Builder
	for i, n := range d.Nodes {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch n.Kind {
		case KindHeading:
			b.WriteString(strings.Repeat("#", n.Level))
			b.WriteByte(' ')
			b.WriteString(markdownInline(n.Children))
		case KindBulletList:
			for j, item := range n.Items {
				if j > 0 {
					b.WriteByte('\n')
				}
				b.WriteString("- ")
				b.WriteString(markdownInline(item))
			}
		case KindTaskItem:
			if n.Checked {
				b.WriteString("- [x] ")
			} else {
				b.WriteString("- [ ] ")
			}
			b.WriteString(markdownInline(n.Children))
		case KindLineBreak:
			// The surrounding blank line already breaks the flow.
		default:
			b.WriteString(markdownInline([]Node{n}))
		}
	}
	return b.String()
}

func markdownInline(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			b.WriteString(n.Text)
		case KindSpan:
			if n.Span == SpanBold {
				b.WriteString("**")
				b.WriteString(markdownInline(n.Children))
				b.WriteString("**")
			} else {
				b.WriteString(markdownInline(n.Children))
			}
		default:
			b.WriteString(markdownInline(n.Children))
		}
	}
	return b.String()
}
