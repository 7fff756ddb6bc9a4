package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/doc"
)

// sizeChoices is the picker order, top to bottom.
var sizeChoices = []struct {
	label string
	kind  doc.SpanKind
}{
	{"small", doc.SpanSmall},
	{"normal", doc.SpanNormal},
	{"large", doc.SpanLarge},
	{"extra large", doc.SpanXLarge},
}

// SizePickerController is the text-size popover. Picking any entry both
// applies the size and closes the picker; there is no apply-and-stay
// state.
type SizePickerController struct {
	active   bool
	selected int
}

func NewSizePickerController() *SizePickerController {
	return &SizePickerController{}
}

func (c *SizePickerController) IsOpen() bool {
	return c != nil && c.active
}

func (c *SizePickerController) Open() {
	c.active = true
	c.selected = 1
}

func (c *SizePickerController) Close() {
	c.active = false
	c.selected = 0
}

// HandleKey returns the chosen size when a pick is made. Every pick
// closes the picker.
func (c *SizePickerController) HandleKey(msg tea.KeyMsg) (handled bool, kind doc.SpanKind, picked bool) {
	if !c.IsOpen() {
		return false, "", false
	}
	switch msg.String() {
	case "esc":
		c.Close()
		return true, "", false
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
		return true, "", false
	case "down", "j":
		if c.selected < len(sizeChoices)-1 {
			c.selected++
		}
		return true, "", false
	case "enter":
		kind := sizeChoices[c.selected].kind
		c.Close()
		return true, kind, true
	}
	return true, "", false
}

// HandleClick resolves a click on a picker row. Any row pick closes the
// picker; clicks elsewhere dismiss it.
func (c *SizePickerController) HandleClick(line int) (kind doc.SpanKind, picked bool) {
	if !c.IsOpen() {
		return "", false
	}
	if line < 0 || line >= len(sizeChoices) {
		c.Close()
		return "", false
	}
	kind = sizeChoices[line].kind
	c.Close()
	return kind, true
}

func (c *SizePickerController) View(width int) string {
	if !c.IsOpen() {
		return ""
	}
	lines := make([]string, 0, len(sizeChoices)+1)
	lines = append(lines, truncateToWidth(menuHeaderStyle.Render(" text size "), width))
	for i, choice := range sizeChoices {
		style := menuDropStyle
		if i == c.selected {
			style = selectedStyle
		}
		lines = append(lines, truncateToWidth(style.Render(" "+choice.label+" "), width))
	}
	return strings.Join(lines, "\n")
}
