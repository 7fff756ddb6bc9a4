package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RenameController owns the single-line name prompt used for renaming a
// note and for naming a new one.
type RenameController struct {
	active bool
	tabID  string
	input  textinput.Model
}

func NewRenameController() *RenameController {
	input := textinput.New()
	input.Prompt = "name: "
	input.CharLimit = 120
	return &RenameController{input: input}
}

func (c *RenameController) IsOpen() bool {
	return c != nil && c.active
}

func (c *RenameController) Open(tabID, current string) {
	c.active = true
	c.tabID = tabID
	c.input.SetValue(current)
	c.input.CursorEnd()
	c.input.Focus()
}

func (c *RenameController) Close() {
	c.active = false
	c.tabID = ""
	c.input.Blur()
	c.input.SetValue("")
}

// HandleKey feeds a key to the prompt. The second return carries the
// committed name on enter; committing with a blank value cancels.
func (c *RenameController) HandleKey(msg tea.KeyMsg) (handled bool, committed string, done bool) {
	if !c.IsOpen() {
		return false, "", false
	}
	switch msg.String() {
	case "esc":
		c.Close()
		return true, "", true
	case "enter":
		value := strings.TrimSpace(c.input.Value())
		c.Close()
		return true, value, true
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	_ = cmd
	return true, "", false
}

func (c *RenameController) TabID() string {
	return c.tabID
}

func (c *RenameController) View(width int) string {
	if !c.IsOpen() {
		return ""
	}
	return truncateToWidth(menuDropStyle.Render(c.input.View()), width)
}
