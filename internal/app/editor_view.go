package app

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"slate/internal/doc"
)

const (
	checkboxUnchecked = "[ ] "
	checkboxChecked   = "[x] "
	bulletMarker      = "• "
)

// docLine maps one rendered line back to its document position.
type docLine struct {
	node      int
	item      int
	hasBox    bool
	textStart int
}

// editorView is one rendered frame of the document plus the line map
// used to resolve clicks.
type editorView struct {
	lines []string
	meta  []docLine
}

func renderDocument(d doc.Document, width int) editorView {
	var view editorView
	for i, node := range d.Nodes {
		switch node.Kind {
		case doc.KindBulletList:
			for j, item := range node.Items {
				prefix := bulletStyle.Render(bulletMarker)
				line := prefix + renderInline(item, nil)
				view.lines = append(view.lines, truncateToWidth(line, width))
				view.meta = append(view.meta, docLine{node: i, item: j, textStart: runewidth.StringWidth(bulletMarker)})
			}
		case doc.KindTaskItem:
			box := checkboxUnchecked
			if node.Checked {
				box = checkboxChecked
			}
			var body string
			if node.Checked {
				body = checkedTaskStyle.Render(doc.PlainText(node.Children))
			} else {
				body = renderInline(node.Children, nil)
			}
			line := taskBoxStyle.Render(box) + body
			view.lines = append(view.lines, truncateToWidth(line, width))
			view.meta = append(view.meta, docLine{node: i, item: -1, hasBox: true, textStart: len(box)})
		case doc.KindHeading:
			style := headingStyles[node.Level]
			line := style.Render(doc.PlainText(node.Children))
			view.lines = append(view.lines, truncateToWidth(line, width))
			view.meta = append(view.meta, docLine{node: i, item: -1})
		case doc.KindLineBreak:
			view.lines = append(view.lines, "")
			view.meta = append(view.meta, docLine{node: i, item: -1})
		case doc.KindSpan:
			line := renderInline([]doc.Node{node}, nil)
			view.lines = append(view.lines, truncateToWidth(line, width))
			view.meta = append(view.meta, docLine{node: i, item: -1})
		default:
			view.lines = append(view.lines, truncateToWidth(renderInline([]doc.Node{node}, nil), width))
			view.meta = append(view.meta, docLine{node: i, item: -1})
		}
	}
	if len(view.lines) == 0 {
		view.lines = []string{""}
		view.meta = []docLine{{node: 0, item: -1}}
	}
	return view
}

// renderInline renders an inline run, composing span styles as it
// descends.
func renderInline(nodes []doc.Node, outer func(string) string) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case doc.KindText:
			if outer != nil {
				b.WriteString(outer(n.Text))
			} else {
				b.WriteString(n.Text)
			}
		case doc.KindSpan:
			render := spanRenderer(n.Span)
			if outer != nil {
				prev := render
				wrap := outer
				render = func(s string) string { return wrap(prev(s)) }
			}
			b.WriteString(renderInline(n.Children, render))
		}
	}
	return b.String()
}

func spanRenderer(kind doc.SpanKind) func(string) string {
	switch kind {
	case doc.SpanBold:
		return func(s string) string { return boldSpanStyle.Render(s) }
	case doc.SpanSmall:
		return func(s string) string { return smallSpanStyle.Render(s) }
	case doc.SpanLarge:
		return func(s string) string { return largeSpanStyle.Render(s) }
	case doc.SpanXLarge:
		return func(s string) string { return xlargeSpanStyle.Render(s) }
	default:
		return func(s string) string { return s }
	}
}

// positionFor resolves a click at (col, line) into a caret, clamping the
// offset to the line's text length.
func (v editorView) positionFor(col, line int) (doc.Caret, bool) {
	if line < 0 || line >= len(v.meta) {
		return doc.Caret{}, false
	}
	meta := v.meta[line]
	offset := col - meta.textStart
	if offset < 0 {
		offset = 0
	}
	return doc.Caret{Node: meta.node, Item: meta.item, Offset: offset}, true
}

// checkboxAt reports whether a click at (col, line) landed on a task
// item's checkbox, and which node it belongs to.
func (v editorView) checkboxAt(col, line int) (int, bool) {
	if line < 0 || line >= len(v.meta) {
		return 0, false
	}
	meta := v.meta[line]
	if !meta.hasBox || col >= meta.textStart {
		return 0, false
	}
	return meta.node, true
}

// lineOf returns the rendered line index for a caret position.
func (v editorView) lineOf(caret doc.Caret) int {
	for i, meta := range v.meta {
		if meta.node == caret.Node && meta.item == caret.Item {
			return i
		}
	}
	return 0
}
