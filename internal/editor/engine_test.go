package editor

import (
	"strings"
	"testing"

	"slate/internal/doc"
)

func newEngine(t *testing.T, content string) *Engine {
	t.Helper()
	e := New(nil)
	e.Bind(content)
	return e
}

func TestToggleBoldWrapsSelection(t *testing.T) {
	e := newEngine(t, "!t hello world")
	res := e.ToggleBold(doc.Selection{Node: 0, Item: -1, Start: 6, End: 11})
	if !res.Changed {
		t.Fatalf("expected change")
	}
	if !strings.Contains(res.Content, "<b>world</b>") {
		t.Fatalf("content = %q, want bold span around world", res.Content)
	}
}

func TestToggleBoldInvalidSelectionNoOp(t *testing.T) {
	e := newEngine(t, "!t hello")
	before := doc.Serialize(e.Document())
	for _, sel := range []doc.Selection{
		{Node: 0, Item: -1, Start: 3, End: 3},
		{Node: 0, Item: -1, Start: 2, End: 99},
		{Node: 7, Item: -1, Start: 0, End: 2},
	} {
		res := e.ToggleBold(sel)
		if res.Changed {
			t.Fatalf("selection %+v: expected no-op", sel)
		}
		if res.Content != before {
			t.Fatalf("selection %+v: content mutated to %q", sel, res.Content)
		}
	}
}

func TestSetTextSizeWrapsSelection(t *testing.T) {
	e := newEngine(t, "!t resize me")
	res := e.SetTextSize(doc.Selection{Node: 0, Item: -1, Start: 0, End: 6}, doc.SpanLarge)
	if !strings.Contains(res.Content, "<large>resize</large>") {
		t.Fatalf("content = %q, want large span", res.Content)
	}
}

func TestInsertTaskItemFromEmptySelection(t *testing.T) {
	e := newEngine(t, "!t first line")
	before := e.Document().CountKind(doc.KindTaskItem)
	res := e.InsertTaskItem(doc.Selection{Node: 0, Item: -1, Start: 5, End: 5})
	d := e.Document()
	if got := d.CountKind(doc.KindTaskItem); got != before+1 {
		t.Fatalf("task count = %d, want %d", got, before+1)
	}
	if !strings.Contains(res.Content, taskPlaceholder) {
		t.Fatalf("content = %q, want placeholder text", res.Content)
	}
	if d.Nodes[res.Caret.Node].Kind != doc.KindTaskItem {
		t.Fatalf("caret landed on %s, want task item", d.Nodes[res.Caret.Node].Kind)
	}
	if res.Caret.Offset != len([]rune(taskPlaceholder)) {
		t.Fatalf("caret offset = %d, want end of placeholder", res.Caret.Offset)
	}
}

func TestInsertTaskItemFromSelectionSeedsText(t *testing.T) {
	e := newEngine(t, "!t buy milk today")
	res := e.InsertTaskItem(doc.Selection{Node: 0, Item: -1, Start: 0, End: 8})
	d := e.Document()
	task := d.Nodes[res.Caret.Node]
	if task.Kind != doc.KindTaskItem {
		t.Fatalf("caret node kind = %s, want task item", task.Kind)
	}
	if got := doc.PlainText(task.Children); got != "buy milk" {
		t.Fatalf("task text = %q, want selection content", got)
	}
	if strings.Contains(res.Content, taskPlaceholder) {
		t.Fatalf("placeholder should not appear when selection seeds the task")
	}
}

func TestEnterInTaskInsertsEmptyTask(t *testing.T) {
	e := newEngine(t, "!todo0 buy milk")
	res, handled := e.EnterInTask(doc.Caret{Node: 0, Item: -1, Offset: 8})
	if !handled {
		t.Fatalf("expected enter to be handled inside a task")
	}
	d := e.Document()
	if got := d.CountKind(doc.KindTaskItem); got != 2 {
		t.Fatalf("task count = %d, want 2", got)
	}
	next := d.Nodes[res.Caret.Node]
	if next.Kind != doc.KindTaskItem || doc.PlainText(next.Children) != "" {
		t.Fatalf("caret should land in a fresh empty task, got %+v", next)
	}
}

func TestBackspaceDeletesEmptyTask(t *testing.T) {
	e := newEngine(t, "!todo0 buy milk\n!todo0 ")
	res, handled := e.BackspaceInTask(doc.Caret{Node: 1, Item: -1, Offset: 0})
	if !handled {
		t.Fatalf("expected backspace on empty task to be handled")
	}
	d := e.Document()
	if got := d.CountKind(doc.KindTaskItem); got != 1 {
		t.Fatalf("task count = %d, want 1", got)
	}
	if res.Caret.Node != 0 || res.Caret.Offset != len("buy milk") {
		t.Fatalf("caret = %+v, want end of previous task text", res.Caret)
	}
}

func TestBackspaceInNonEmptyTaskNotHandled(t *testing.T) {
	e := newEngine(t, "!todo0 buy milk")
	if _, handled := e.BackspaceInTask(doc.Caret{Node: 0, Item: -1, Offset: 0}); handled {
		t.Fatalf("non-empty task should not be deleted")
	}
}

func TestToggleCheckboxIsInvolution(t *testing.T) {
	e := newEngine(t, "!todo0 buy milk")
	first := e.ToggleCheckbox(0)
	if !e.Document().Nodes[0].Checked {
		t.Fatalf("expected checked after first toggle")
	}
	second := e.ToggleCheckbox(0)
	if e.Document().Nodes[0].Checked {
		t.Fatalf("expected unchecked after second toggle")
	}
	if first.Content == second.Content {
		t.Fatalf("toggles should serialize differently")
	}
	if second.Content != "!todo0 buy milk" {
		t.Fatalf("double toggle should restore content, got %q", second.Content)
	}
}

func TestToggleCheckboxStaleIndexNoOp(t *testing.T) {
	e := newEngine(t, "!todo0 buy milk")
	if res := e.ToggleCheckbox(5); res.Changed {
		t.Fatalf("stale index should be a no-op")
	}
}

func TestBindIgnoresOwnEmission(t *testing.T) {
	e := newEngine(t, "!t hello")
	res := e.InsertText(doc.Caret{Node: 0, Item: -1, Offset: 5}, "!")
	if e.Bind(res.Content) {
		t.Fatalf("binding the engine's own emission should not replace the surface")
	}
	if e.Bind("!t other") != true {
		t.Fatalf("binding foreign content should replace the surface")
	}
}

func TestSetHeadingRetagsText(t *testing.T) {
	e := newEngine(t, "!t a title")
	res := e.SetHeading(doc.Caret{Node: 0, Item: -1, Offset: 3}, 2)
	if res.Content != "!h2 a title" {
		t.Fatalf("content = %q, want h2 line", res.Content)
	}
}

func TestSetHeadingClampsLevel(t *testing.T) {
	e := newEngine(t, "!t a title")
	res := e.SetHeading(doc.Caret{Node: 0, Item: -1}, 9)
	if res.Content != "!h3 a title" {
		t.Fatalf("content = %q, want clamped h3", res.Content)
	}
}

func TestInsertBulletListConvertsLine(t *testing.T) {
	e := newEngine(t, "!t groceries")
	res := e.InsertBulletList(doc.Caret{Node: 0, Item: -1, Offset: 4})
	d := e.Document()
	if d.Nodes[0].Kind != doc.KindBulletList {
		t.Fatalf("node kind = %s, want bullet list", d.Nodes[0].Kind)
	}
	if d.Nodes[0].ListID == "" {
		t.Fatalf("list should carry a style id")
	}
	if doc.PlainText(d.Nodes[0].Items[0]) != "groceries" {
		t.Fatalf("item text lost: %q", res.Content)
	}
	if res.Caret.Item != 0 || res.Caret.Offset != 4 {
		t.Fatalf("caret = %+v, want same offset inside item 0", res.Caret)
	}
}

func TestInsertNewlineSplitsText(t *testing.T) {
	e := newEngine(t, "!t hello world")
	res := e.InsertNewline(doc.Caret{Node: 0, Item: -1, Offset: 5})
	d := e.Document()
	if len(d.Nodes) != 3 || d.Nodes[1].Kind != doc.KindLineBreak {
		t.Fatalf("kinds = %v, want text/br/text", d.Kinds())
	}
	if d.Nodes[0].Text != "hello" || strings.TrimPrefix(d.Nodes[2].Text, " ") != "world" {
		t.Fatalf("split texts = %q / %q", d.Nodes[0].Text, d.Nodes[2].Text)
	}
	if res.Caret.Node != 2 || res.Caret.Offset != 0 {
		t.Fatalf("caret = %+v, want start of right half", res.Caret)
	}
}

func TestInsertNewlineHeadingRightHalfIsText(t *testing.T) {
	e := newEngine(t, "!h1 big title")
	_ = e.InsertNewline(doc.Caret{Node: 0, Item: -1, Offset: 3})
	d := e.Document()
	if d.Nodes[0].Kind != doc.KindHeading || d.Nodes[0].Level != 1 {
		t.Fatalf("left half should stay a heading, got %+v", d.Nodes[0])
	}
	if d.Nodes[2].Kind != doc.KindText {
		t.Fatalf("right half kind = %s, want text", d.Nodes[2].Kind)
	}
}

func TestInsertAndDeleteRoundTrip(t *testing.T) {
	e := newEngine(t, "!t abc")
	e.InsertText(doc.Caret{Node: 0, Item: -1, Offset: 3}, "d")
	res := e.DeleteBackward(doc.Caret{Node: 0, Item: -1, Offset: 4})
	if res.Content != "!t abc" {
		t.Fatalf("content = %q, want original", res.Content)
	}
}
