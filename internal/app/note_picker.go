package app

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/types"
)

// NotePickerController is the fuzzy note switcher. Candidates are ranked
// by prefix and substring hits first, then edit distance.
type NotePickerController struct {
	active   bool
	input    textinput.Model
	notes    []types.Note
	ranked   []types.Note
	selected int
}

func NewNotePickerController() *NotePickerController {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "jump to note"
	return &NotePickerController{input: input}
}

func (c *NotePickerController) IsOpen() bool {
	return c != nil && c.active
}

func (c *NotePickerController) Open(notes []types.Note) {
	c.active = true
	c.notes = notes
	c.selected = 0
	c.input.SetValue("")
	c.input.Focus()
	c.rank()
}

func (c *NotePickerController) Close() {
	c.active = false
	c.notes = nil
	c.ranked = nil
	c.selected = 0
	c.input.Blur()
}

// HandleKey feeds a key to the picker. The second return carries the
// chosen note id when a pick is made.
func (c *NotePickerController) HandleKey(msg tea.KeyMsg) (handled bool, noteID string) {
	if !c.IsOpen() {
		return false, ""
	}
	switch msg.String() {
	case "esc":
		c.Close()
		return true, ""
	case "up", "ctrl+p":
		if c.selected > 0 {
			c.selected--
		}
		return true, ""
	case "down", "ctrl+n":
		if c.selected < len(c.ranked)-1 {
			c.selected++
		}
		return true, ""
	case "enter":
		if c.selected < len(c.ranked) {
			id := c.ranked[c.selected].ID
			c.Close()
			return true, id
		}
		c.Close()
		return true, ""
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	_ = cmd
	c.rank()
	return true, ""
}

func (c *NotePickerController) rank() {
	query := strings.ToLower(strings.TrimSpace(c.input.Value()))
	c.selected = 0
	if query == "" {
		c.ranked = append([]types.Note{}, c.notes...)
		return
	}
	type scored struct {
		note  types.Note
		score int
	}
	ranked := make([]scored, 0, len(c.notes))
	for _, note := range c.notes {
		name := strings.ToLower(note.Name)
		score := levenshtein.ComputeDistance(query, name)
		if strings.HasPrefix(name, query) {
			score = 0
		} else if strings.Contains(name, query) {
			score = 1
		}
		ranked = append(ranked, scored{note: note, score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})
	c.ranked = make([]types.Note, len(ranked))
	for i, s := range ranked {
		c.ranked[i] = s.note
	}
}

func (c *NotePickerController) View(width, maxRows int) string {
	if !c.IsOpen() {
		return ""
	}
	lines := []string{truncateToWidth(menuDropStyle.Render(c.input.View()), width)}
	rows := len(c.ranked)
	if maxRows > 0 && rows > maxRows {
		rows = maxRows
	}
	for i := 0; i < rows; i++ {
		style := menuDropStyle
		if i == c.selected {
			style = selectedStyle
		}
		label := " " + c.ranked[i].Name + " "
		lines = append(lines, truncateToWidth(style.Render(label), width))
	}
	return strings.Join(lines, "\n")
}
