package doc

import "strings"

// PlainText flattens an inline sequence to its visible text.
func PlainText(nodes []Node) string {
	var b strings.Builder
	appendPlain(&b, nodes)
	return b.String()
}

func appendPlain(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			b.WriteString(n.Text)
		default:
			appendPlain(b, n.Children)
		}
	}
}

// Length is the rune length of an inline sequence's plain text.
func Length(nodes []Node) int {
	total := 0
	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			total += len([]rune(n.Text))
		default:
			total += Length(n.Children)
		}
	}
	return total
}

// SplitAt splits an inline sequence at a rune offset. Text runs are cut;
// spans straddling the offset are split into two spans of the same kind.
func SplitAt(nodes []Node, offset int) (left, right []Node) {
	if offset <= 0 {
		return nil, cloneNodes(nodes)
	}
	remaining := offset
	for i, n := range nodes {
		size := Length([]Node{n})
		if remaining >= size {
			left = append(left, cloneNode(n))
			remaining -= size
			continue
		}
		switch n.Kind {
		case KindText:
			runes := []rune(n.Text)
			if remaining > 0 {
				left = append(left, TextNode(string(runes[:remaining])))
			}
			right = append(right, TextNode(string(runes[remaining:])))
		default:
			innerLeft, innerRight := SplitAt(n.Children, remaining)
			if len(innerLeft) > 0 {
				half := cloneNode(n)
				half.Children = innerLeft
				left = append(left, half)
			}
			if len(innerRight) > 0 {
				half := cloneNode(n)
				half.Children = innerRight
				right = append(right, half)
			}
		}
		right = append(right, cloneNodes(nodes[i+1:])...)
		return left, right
	}
	return left, nil
}

// ExtractRange cuts [start, end) out of an inline sequence, returning the
// content before, inside, and after the range.
func ExtractRange(nodes []Node, start, end int) (before, mid, after []Node) {
	before, rest := SplitAt(nodes, start)
	mid, after = SplitAt(rest, end-start)
	return before, mid, after
}

// InsertText inserts plain text at a rune offset, merging into an adjacent
// text run when possible.
func InsertText(nodes []Node, offset int, text string) []Node {
	if text == "" {
		return cloneNodes(nodes)
	}
	left, right := SplitAt(nodes, offset)
	out := append(left, TextNode(text))
	out = append(out, right...)
	return Normalize(out)
}

// DeleteRange removes [start, end) from an inline sequence.
func DeleteRange(nodes []Node, start, end int) []Node {
	before, _, after := ExtractRange(nodes, start, end)
	return Normalize(append(before, after...))
}

// Normalize merges adjacent text runs and drops empty ones so that a
// serialize/parse round trip reproduces the same node sequence.
func Normalize(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == KindText && n.Text == "" {
			continue
		}
		if n.Kind == KindSpan {
			n.Children = Normalize(n.Children)
			if len(n.Children) == 0 {
				continue
			}
		}
		if n.Kind == KindText && len(out) > 0 && out[len(out)-1].Kind == KindText {
			out[len(out)-1].Text += n.Text
			continue
		}
		out = append(out, n)
	}
	return out
}
