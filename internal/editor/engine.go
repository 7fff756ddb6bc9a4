package editor

import (
	"strings"

	"github.com/google/uuid"

	"slate/internal/doc"
	"slate/internal/logging"
)

// taskPlaceholder seeds a task item created with nothing selected.
const taskPlaceholder = "To-do"

// Result is the outcome of one completed command. Content carries the
// re-derived serialization, emitted exactly once per command; Caret is
// where the owner should place the cursor afterwards.
type Result struct {
	Content string
	Caret   doc.Caret
	Changed bool
}

// Engine owns one live document at a time, bound to the active note. All
// commands run synchronously on the UI event loop; there is no internal
// locking and no partial emission.
type Engine struct {
	document doc.Document
	lastEmit string
	log      logging.Logger
}

func New(log logging.Logger) *Engine {
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{log: log.With(logging.Field{Key: "component", Value: "editor"})}
}

// Bind replaces the live document from an owner-supplied content string,
// unless that string is exactly the engine's own last emission. The guard
// keeps self-originated updates from displacing an in-progress caret.
// It reports whether the surface was replaced.
func (e *Engine) Bind(content string) bool {
	if content == e.lastEmit {
		return false
	}
	e.document = doc.Parse(content)
	e.lastEmit = doc.Serialize(e.document)
	return true
}

// Document returns a copy of the live document for rendering.
func (e *Engine) Document() doc.Document {
	return e.document.Clone()
}

func (e *Engine) emit(caret doc.Caret, changed bool) Result {
	content := doc.Serialize(e.document)
	e.lastEmit = content
	return Result{Content: content, Caret: caret, Changed: changed}
}

// ToggleBold wraps the selected inline content in a bold span. Empty or
// out-of-surface selections are documented no-ops.
func (e *Engine) ToggleBold(sel doc.Selection) Result {
	return e.wrapSelection(sel, doc.SpanBold)
}

// SetTextSize wraps the selected inline content in a size span. The size
// picker UI closes regardless of whether the wrap applied; that is the
// caller's concern, not tracked here.
func (e *Engine) SetTextSize(sel doc.Selection, size doc.SpanKind) Result {
	if !size.Valid() {
		return e.emit(sel.Caret(), false)
	}
	return e.wrapSelection(sel, size)
}

func (e *Engine) wrapSelection(sel doc.Selection, span doc.SpanKind) Result {
	sel = sel.Normalized()
	if sel.Empty() || !sel.InBounds(e.document) {
		e.log.Debug("wrap skipped", logging.Field{Key: "reason", Value: "invalid selection"})
		return e.emit(sel.Caret(), false)
	}
	node := &e.document.Nodes[sel.Node]
	switch node.Kind {
	case doc.KindText:
		before, mid, after := doc.ExtractRange([]doc.Node{*node}, sel.Start, sel.End)
		repl := append(before, doc.SpanNode(span, mid))
		repl = append(repl, after...)
		e.document.Nodes = splice(e.document.Nodes, sel.Node, 1, repl...)
	case doc.KindSpan, doc.KindHeading, doc.KindTaskItem:
		before, mid, after := doc.ExtractRange(node.Children, sel.Start, sel.End)
		children := append(before, doc.SpanNode(span, mid))
		node.Children = append(children, after...)
	case doc.KindBulletList:
		before, mid, after := doc.ExtractRange(node.Items[sel.Item], sel.Start, sel.End)
		item := append(before, doc.SpanNode(span, mid))
		node.Items[sel.Item] = append(item, after...)
	default:
		return e.emit(sel.Caret(), false)
	}
	return e.emit(sel.Caret(), true)
}

// SetHeading retags the block containing the caret as a heading of the
// given level.
func (e *Engine) SetHeading(caret doc.Caret, level int) Result {
	if caret.Node < 0 || caret.Node >= len(e.document.Nodes) {
		return e.emit(caret, false)
	}
	node := e.document.Nodes[caret.Node]
	switch node.Kind {
	case doc.KindHeading:
		e.document.Nodes[caret.Node] = doc.HeadingNode(level, node.Children)
	case doc.KindText:
		e.document.Nodes[caret.Node] = doc.HeadingNode(level, []doc.Node{doc.TextNode(node.Text)})
	case doc.KindSpan, doc.KindTaskItem:
		e.document.Nodes[caret.Node] = doc.HeadingNode(level, node.Children)
	case doc.KindBulletList:
		if caret.Item < 0 || caret.Item >= len(node.Items) {
			return e.emit(caret, false)
		}
		heading := doc.HeadingNode(level, node.Items[caret.Item])
		e.retagListItem(caret, heading)
		return e.emit(doc.Caret{Node: caret.Node + boolInt(caret.Item > 0), Item: -1, Offset: caret.Offset}, true)
	default:
		return e.emit(caret, false)
	}
	return e.emit(doc.Caret{Node: caret.Node, Item: -1, Offset: caret.Offset}, true)
}

// retagListItem pulls one item out of a bullet list and replaces it with
// the given block, splitting the list around it when needed.
func (e *Engine) retagListItem(caret doc.Caret, block doc.Node) {
	node := e.document.Nodes[caret.Node]
	beforeItems := node.Items[:caret.Item]
	afterItems := node.Items[caret.Item+1:]
	repl := make([]doc.Node, 0, 3)
	if len(beforeItems) > 0 {
		repl = append(repl, doc.BulletListNode(node.ListID, beforeItems))
	}
	repl = append(repl, block)
	if len(afterItems) > 0 {
		repl = append(repl, doc.BulletListNode(newListID(), afterItems))
	}
	e.document.Nodes = splice(e.document.Nodes, caret.Node, 1, repl...)
}

// InsertBulletList converts the caret's current line into a bullet list
// item, tagging the list container with a fresh list-style identifier.
func (e *Engine) InsertBulletList(caret doc.Caret) Result {
	if len(e.document.Nodes) == 0 {
		e.document.Nodes = []doc.Node{doc.BulletListNode(newListID(), [][]doc.Node{{}})}
		return e.emit(doc.Caret{Node: 0, Item: 0}, true)
	}
	if caret.Node < 0 || caret.Node >= len(e.document.Nodes) {
		return e.emit(caret, false)
	}
	node := e.document.Nodes[caret.Node]
	var item []doc.Node
	switch node.Kind {
	case doc.KindBulletList:
		return e.emit(caret, false)
	case doc.KindText:
		item = []doc.Node{doc.TextNode(node.Text)}
	case doc.KindLineBreak:
		item = nil
	default:
		item = node.Children
	}
	e.document.Nodes[caret.Node] = doc.BulletListNode(newListID(), [][]doc.Node{item})
	return e.emit(doc.Caret{Node: caret.Node, Item: 0, Offset: caret.Offset}, true)
}

// InsertTaskItem inserts a task item at the selection. Inside an existing
// task it inserts a fresh empty task after it; elsewhere it creates a task
// seeded with the selected content (or a placeholder) at the caret,
// consuming the selection.
func (e *Engine) InsertTaskItem(sel doc.Selection) Result {
	sel = sel.Normalized()
	caret := sel.Caret()
	if caret.Node >= 0 && caret.Node < len(e.document.Nodes) && e.document.Nodes[caret.Node].Kind == doc.KindTaskItem {
		return e.insertTaskAfter(caret.Node)
	}

	seed := []doc.Node{doc.TextNode(taskPlaceholder)}
	at := len(e.document.Nodes)
	if caret.Node >= 0 && caret.Node < len(e.document.Nodes) {
		at = caret.Node + 1
		if !sel.Empty() && sel.InBounds(e.document) {
			seed = e.consumeSelection(sel)
		}
	}
	task := doc.TaskItemNode(false, seed)
	e.document.Nodes = splice(e.document.Nodes, at, 0, task)
	if at < len(e.document.Nodes)-1 {
		e.document.Nodes = splice(e.document.Nodes, at+1, 0, doc.LineBreakNode())
	}
	return e.emit(doc.Caret{Node: at, Item: -1, Offset: doc.Length(seed)}, true)
}

// consumeSelection removes the selected range from its block and returns
// the removed inline content.
func (e *Engine) consumeSelection(sel doc.Selection) []doc.Node {
	node := &e.document.Nodes[sel.Node]
	switch node.Kind {
	case doc.KindText:
		before, mid, after := doc.ExtractRange([]doc.Node{*node}, sel.Start, sel.End)
		rest := doc.Normalize(append(before, after...))
		if len(rest) == 0 {
			rest = []doc.Node{doc.TextNode("")}
		}
		e.document.Nodes = splice(e.document.Nodes, sel.Node, 1, rest...)
		return mid
	case doc.KindSpan, doc.KindHeading, doc.KindTaskItem:
		before, mid, after := doc.ExtractRange(node.Children, sel.Start, sel.End)
		node.Children = doc.Normalize(append(before, after...))
		return mid
	case doc.KindBulletList:
		before, mid, after := doc.ExtractRange(node.Items[sel.Item], sel.Start, sel.End)
		node.Items[sel.Item] = doc.Normalize(append(before, after...))
		return mid
	default:
		return []doc.Node{doc.TextNode(taskPlaceholder)}
	}
}

func (e *Engine) insertTaskAfter(node int) Result {
	task := doc.TaskItemNode(false, nil)
	e.document.Nodes = splice(e.document.Nodes, node+1, 0, task)
	return e.emit(doc.Caret{Node: node + 1, Item: -1, Offset: 0}, true)
}

// ToggleCheckbox flips a task item's checked flag. The completed-style
// presentation follows the same field, so the two can never diverge.
func (e *Engine) ToggleCheckbox(node int) Result {
	if node < 0 || node >= len(e.document.Nodes) || e.document.Nodes[node].Kind != doc.KindTaskItem {
		e.log.Debug("toggle checkbox skipped", logging.Field{Key: "node", Value: node})
		return e.emit(doc.Caret{Node: node, Item: -1}, false)
	}
	e.document.Nodes[node].Checked = !e.document.Nodes[node].Checked
	return e.emit(doc.Caret{Node: node, Item: -1}, true)
}

// EnterInTask handles the enter key when the caret sits inside a task
// item: it suppresses the default newline and inserts an empty task after
// the current one. The second return reports whether the key was handled.
func (e *Engine) EnterInTask(caret doc.Caret) (Result, bool) {
	if caret.Node < 0 || caret.Node >= len(e.document.Nodes) || e.document.Nodes[caret.Node].Kind != doc.KindTaskItem {
		return Result{}, false
	}
	return e.insertTaskAfter(caret.Node), true
}

// BackspaceInTask deletes an empty (or whitespace-only) task item when
// backspace is pressed at offset zero inside it, landing the caret at the
// end of the previous sibling's text. The second return reports whether
// the key was handled.
func (e *Engine) BackspaceInTask(caret doc.Caret) (Result, bool) {
	if caret.Offset != 0 || caret.Node < 0 || caret.Node >= len(e.document.Nodes) {
		return Result{}, false
	}
	node := e.document.Nodes[caret.Node]
	if node.Kind != doc.KindTaskItem || strings.TrimSpace(doc.PlainText(node.Children)) != "" {
		return Result{}, false
	}
	e.document.Nodes = splice(e.document.Nodes, caret.Node, 1)
	if caret.Node == 0 {
		return e.emit(doc.Caret{Node: 0, Item: -1, Offset: 0}, true), true
	}
	prev := caret.Node - 1
	return e.emit(caretAtEndOf(e.document, prev), true), true
}

// caretAtEndOf places a caret at the end of a block's text, descending
// into task item text and the last item of a bullet list.
func caretAtEndOf(d doc.Document, node int) doc.Caret {
	n := d.Nodes[node]
	switch n.Kind {
	case doc.KindText:
		return doc.Caret{Node: node, Item: -1, Offset: len([]rune(n.Text))}
	case doc.KindBulletList:
		if len(n.Items) == 0 {
			return doc.Caret{Node: node, Item: -1, Offset: 0}
		}
		last := len(n.Items) - 1
		return doc.Caret{Node: node, Item: last, Offset: doc.Length(n.Items[last])}
	case doc.KindLineBreak:
		return doc.Caret{Node: node, Item: -1, Offset: 0}
	default:
		return doc.Caret{Node: node, Item: -1, Offset: doc.Length(n.Children)}
	}
}

func splice(nodes []doc.Node, at, del int, insert ...doc.Node) []doc.Node {
	out := make([]doc.Node, 0, len(nodes)-del+len(insert))
	out = append(out, nodes[:at]...)
	out = append(out, insert...)
	out = append(out, nodes[at+del:]...)
	return out
}

func newListID() string {
	return "list_" + uuid.NewString()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
