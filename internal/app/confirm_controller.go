package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

// ConfirmController is the yes/no dialog used before destructive
// actions.
type ConfirmController struct {
	active       bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     int
	tabID        string
}

func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmController) Open(tabID, title, message string) {
	c.active = true
	c.tabID = tabID
	c.title = strings.TrimSpace(title)
	c.message = strings.TrimSpace(message)
	c.confirmLabel = "Delete"
	c.cancelLabel = "Cancel"
	c.selected = 1
}

func (c *ConfirmController) Close() {
	c.active = false
	c.tabID = ""
	c.title = ""
	c.message = ""
	c.selected = 0
}

func (c *ConfirmController) TabID() string {
	return c.tabID
}

func (c *ConfirmController) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if !c.IsOpen() {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q", "n":
		return true, confirmChoiceCancel
	case "y":
		return true, confirmChoiceConfirm
	case "left", "h", "right", "l", "tab":
		c.selected = 1 - c.selected
		return true, confirmChoiceNone
	case "enter":
		if c.selected == 0 {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	}
	return true, confirmChoiceNone
}

func (c *ConfirmController) View() string {
	if !c.IsOpen() {
		return ""
	}
	title := c.title
	if title == "" {
		title = "Confirm"
	}
	confirm := "[" + c.confirmLabel + "]"
	cancel := "[" + c.cancelLabel + "]"
	if c.selected == 0 {
		confirm = selectedStyle.Render(confirm)
		cancel = menuDropStyle.Render(cancel)
	} else {
		confirm = menuDropStyle.Render(confirm)
		cancel = selectedStyle.Render(cancel)
	}
	lines := []string{
		menuHeaderStyle.Render(" " + title + " "),
	}
	if c.message != "" {
		lines = append(lines, menuDropStyle.Render(" "+c.message+" "))
	}
	lines = append(lines, " "+confirm+" "+cancel)
	return dialogBorder.Render(strings.Join(lines, "\n"))
}
