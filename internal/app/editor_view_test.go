package app

import (
	"strings"
	"testing"

	"slate/internal/doc"
)

func TestRenderInlineComposesSpanStyles(t *testing.T) {
	nodes := []doc.Node{
		doc.TextNode("plain "),
		doc.SpanNode(doc.SpanBold, []doc.Node{
			doc.TextNode("bold"),
			doc.SpanNode(doc.SpanLarge, []doc.Node{doc.TextNode(" big")}),
		}),
	}
	got := renderInline(nodes, nil)
	for _, want := range []string{"plain ", "bold", " big"} {
		if !strings.Contains(got, want) {
			t.Fatalf("rendered %q, want it to contain %q", got, want)
		}
	}
}

func TestSpanRendererKeepsTextForEveryKind(t *testing.T) {
	kinds := []doc.SpanKind{doc.SpanBold, doc.SpanSmall, doc.SpanNormal, doc.SpanLarge, doc.SpanXLarge}
	for _, kind := range kinds {
		render := spanRenderer(kind)
		if got := render("x"); !strings.Contains(got, "x") {
			t.Fatalf("%s renderer dropped its text: %q", kind, got)
		}
	}
}
