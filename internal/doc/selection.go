package doc

// Caret addresses one position inside a document: a top-level node index,
// a bullet item index (-1 outside lists), and a rune offset into the plain
// text of that block's inline content.
type Caret struct {
	Node   int
	Item   int
	Offset int
}

// Selection is a contiguous range inside a single block. Multi-block
// selections are out of scope for the engine.
type Selection struct {
	Node  int
	Item  int
	Start int
	End   int
}

func (s Selection) Empty() bool {
	return s.Start == s.End
}

func (s Selection) Caret() Caret {
	return Caret{Node: s.Node, Item: s.Item, Offset: s.End}
}

// Normalized returns the selection with Start <= End.
func (s Selection) Normalized() Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// InBounds reports whether the selection addresses existing content of the
// document and its offsets lie inside that block's text.
func (s Selection) InBounds(d Document) bool {
	s = s.Normalized()
	inline, ok := inlineAt(d, s.Node, s.Item)
	if !ok {
		return false
	}
	return s.Start >= 0 && s.End <= Length(inline)
}

func inlineAt(d Document, node, item int) ([]Node, bool) {
	if node < 0 || node >= len(d.Nodes) {
		return nil, false
	}
	n := d.Nodes[node]
	switch n.Kind {
	case KindText:
		return []Node{n}, true
	case KindSpan, KindHeading, KindTaskItem:
		if item >= 0 {
			return nil, false
		}
		return n.Children, true
	case KindBulletList:
		if item < 0 || item >= len(n.Items) {
			return nil, false
		}
		return n.Items[item], true
	default:
		return nil, false
	}
}

// InlineAt exposes the inline content a caret or selection addresses.
func (d Document) InlineAt(node, item int) ([]Node, bool) {
	return inlineAt(d, node, item)
}
