package doc

type NodeKind string

const (
	KindText       NodeKind = "text"
	KindSpan       NodeKind = "span"
	KindHeading    NodeKind = "heading"
	KindBulletList NodeKind = "bullet_list"
	KindTaskItem   NodeKind = "task_item"
	KindLineBreak  NodeKind = "line_break"
)

type SpanKind string

const (
	SpanBold   SpanKind = "bold"
	SpanSmall  SpanKind = "small"
	SpanNormal SpanKind = "normal"
	SpanLarge  SpanKind = "large"
	SpanXLarge SpanKind = "xlarge"
)

func (k SpanKind) Valid() bool {
	switch k {
	case SpanBold, SpanSmall, SpanNormal, SpanLarge, SpanXLarge:
		return true
	}
	return false
}

// Node is one tagged-union entry of a document. Which fields are
// meaningful depends on Kind:
//
//	KindText       Text
//	KindSpan       Span, Children
//	KindHeading    Level (1..3), Children
//	KindBulletList ListID, Items
//	KindTaskItem   Checked, Children
//	KindLineBreak  (no fields)
//
// A task item's checked flag is also its "completed" presentation flag;
// there is deliberately no second field to drift out of sync.
type Node struct {
	Kind     NodeKind
	Text     string
	Span     SpanKind
	Level    int
	Checked  bool
	ListID   string
	Children []Node
	Items    [][]Node
}

// Document is an ordered, flat sequence of top-level nodes. Sibling order
// is significant and preserved by every operation.
type Document struct {
	Nodes []Node
}

func TextNode(text string) Node {
	return Node{Kind: KindText, Text: text}
}

func SpanNode(kind SpanKind, children []Node) Node {
	return Node{Kind: KindSpan, Span: kind, Children: children}
}

func HeadingNode(level int, children []Node) Node {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	return Node{Kind: KindHeading, Level: level, Children: children}
}

func TaskItemNode(checked bool, text []Node) Node {
	return Node{Kind: KindTaskItem, Checked: checked, Children: text}
}

func BulletListNode(listID string, items [][]Node) Node {
	return Node{Kind: KindBulletList, ListID: listID, Items: items}
}

func LineBreakNode() Node {
	return Node{Kind: KindLineBreak}
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}

func cloneNode(n Node) Node {
	copied := n
	copied.Children = cloneNodes(n.Children)
	if n.Items != nil {
		copied.Items = make([][]Node, len(n.Items))
		for i, item := range n.Items {
			copied.Items[i] = cloneNodes(item)
		}
	}
	return copied
}

func (d Document) Clone() Document {
	return Document{Nodes: cloneNodes(d.Nodes)}
}

// CountKind counts top-level nodes of the given kind.
func (d Document) CountKind(kind NodeKind) int {
	count := 0
	for _, n := range d.Nodes {
		if n.Kind == kind {
			count++
		}
	}
	return count
}

// Kinds returns the ordered top-level kind sequence.
func (d Document) Kinds() []NodeKind {
	out := make([]NodeKind, len(d.Nodes))
	for i, n := range d.Nodes {
		out[i] = n.Kind
	}
	return out
}
