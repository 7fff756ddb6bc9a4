package editor

import "slate/internal/doc"

// InsertText inserts plain text at the caret within its block.
func (e *Engine) InsertText(caret doc.Caret, s string) Result {
	if s == "" {
		return e.emit(caret, false)
	}
	if len(e.document.Nodes) == 0 {
		e.document.Nodes = []doc.Node{doc.TextNode(s)}
		return e.emit(doc.Caret{Node: 0, Item: -1, Offset: len([]rune(s))}, true)
	}
	if !e.editInline(caret, func(inline []doc.Node) []doc.Node {
		return doc.InsertText(inline, caret.Offset, s)
	}) {
		return e.emit(caret, false)
	}
	return e.emit(doc.Caret{Node: caret.Node, Item: caret.Item, Offset: caret.Offset + len([]rune(s))}, true)
}

// DeleteBackward deletes one rune before the caret. At offset zero it
// handles the empty-task path, removes a preceding line break, or does
// nothing.
func (e *Engine) DeleteBackward(caret doc.Caret) Result {
	if res, handled := e.BackspaceInTask(caret); handled {
		return res
	}
	if caret.Offset > 0 {
		if !e.editInline(caret, func(inline []doc.Node) []doc.Node {
			return doc.DeleteRange(inline, caret.Offset-1, caret.Offset)
		}) {
			return e.emit(caret, false)
		}
		return e.emit(doc.Caret{Node: caret.Node, Item: caret.Item, Offset: caret.Offset - 1}, true)
	}
	if caret.Node > 0 && caret.Node < len(e.document.Nodes) && e.document.Nodes[caret.Node-1].Kind == doc.KindLineBreak {
		e.document.Nodes = splice(e.document.Nodes, caret.Node-1, 1)
		return e.emit(doc.Caret{Node: caret.Node - 1, Item: caret.Item, Offset: 0}, true)
	}
	return e.emit(caret, false)
}

// InsertNewline handles the enter key. Inside a task item it inserts a
// fresh task; in a bullet list it opens a new item; in text and headings
// it splits the block, the right half of a heading continuing as plain
// text.
func (e *Engine) InsertNewline(caret doc.Caret) Result {
	if res, handled := e.EnterInTask(caret); handled {
		return res
	}
	if caret.Node < 0 || caret.Node >= len(e.document.Nodes) {
		return e.emit(caret, false)
	}
	node := e.document.Nodes[caret.Node]
	switch node.Kind {
	case doc.KindBulletList:
		if caret.Item < 0 || caret.Item >= len(node.Items) {
			return e.emit(caret, false)
		}
		left, right := doc.SplitAt(node.Items[caret.Item], caret.Offset)
		items := make([][]doc.Node, 0, len(node.Items)+1)
		items = append(items, node.Items[:caret.Item]...)
		items = append(items, left, right)
		items = append(items, node.Items[caret.Item+1:]...)
		e.document.Nodes[caret.Node].Items = items
		return e.emit(doc.Caret{Node: caret.Node, Item: caret.Item + 1, Offset: 0}, true)
	case doc.KindText:
		left, right := doc.SplitAt([]doc.Node{doc.TextNode(node.Text)}, caret.Offset)
		repl := []doc.Node{inlineBlock(left), doc.LineBreakNode(), inlineBlock(right)}
		e.document.Nodes = splice(e.document.Nodes, caret.Node, 1, repl...)
		return e.emit(doc.Caret{Node: caret.Node + 2, Item: -1, Offset: 0}, true)
	case doc.KindHeading, doc.KindSpan:
		left, right := doc.SplitAt(node.Children, caret.Offset)
		var head doc.Node
		if node.Kind == doc.KindHeading {
			head = doc.HeadingNode(node.Level, left)
		} else {
			head = doc.SpanNode(node.Span, left)
		}
		repl := []doc.Node{head, doc.LineBreakNode(), inlineBlock(right)}
		e.document.Nodes = splice(e.document.Nodes, caret.Node, 1, repl...)
		return e.emit(doc.Caret{Node: caret.Node + 2, Item: -1, Offset: 0}, true)
	case doc.KindLineBreak:
		e.document.Nodes = splice(e.document.Nodes, caret.Node, 0, doc.LineBreakNode())
		return e.emit(doc.Caret{Node: caret.Node + 1, Item: -1, Offset: 0}, true)
	default:
		return e.emit(caret, false)
	}
}

// editInline applies fn to the inline run the caret addresses, writing
// the result back into the document. It reports whether the caret was
// addressable.
func (e *Engine) editInline(caret doc.Caret, fn func([]doc.Node) []doc.Node) bool {
	if caret.Node < 0 || caret.Node >= len(e.document.Nodes) {
		return false
	}
	node := &e.document.Nodes[caret.Node]
	switch node.Kind {
	case doc.KindText:
		out := doc.Normalize(fn([]doc.Node{doc.TextNode(node.Text)}))
		e.document.Nodes = splice(e.document.Nodes, caret.Node, 1, blockFromInline(out)...)
		return true
	case doc.KindSpan, doc.KindHeading, doc.KindTaskItem:
		if caret.Item >= 0 {
			return false
		}
		node.Children = doc.Normalize(fn(node.Children))
		return true
	case doc.KindBulletList:
		if caret.Item < 0 || caret.Item >= len(node.Items) {
			return false
		}
		node.Items[caret.Item] = doc.Normalize(fn(node.Items[caret.Item]))
		return true
	default:
		return false
	}
}

// inlineBlock lifts an inline run to a top-level block. A single bare
// text run stays a text block; anything richer is kept as the run's
// nodes, falling back to an empty text block.
func inlineBlock(inline []doc.Node) doc.Node {
	inline = doc.Normalize(inline)
	if len(inline) == 1 {
		return inline[0]
	}
	if len(inline) == 0 {
		return doc.TextNode("")
	}
	return doc.SpanNode(doc.SpanNormal, inline)
}

func blockFromInline(inline []doc.Node) []doc.Node {
	if len(inline) == 0 {
		return []doc.Node{doc.TextNode("")}
	}
	return inline
}
