package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/doc"
	"slate/internal/editor"
	"slate/internal/gesture"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case uiModeRename:
		return m.handleRenameKey(msg)
	case uiModeSizePicker:
		return m.handleSizePickerKey(msg)
	case uiModeNotePicker:
		return m.handleNotePickerKey(msg)
	case uiModeConfirmDelete:
		return m.handleConfirmKey(msg)
	case uiModePreview:
		return m.handlePreviewKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return tea.Quit
	case "ctrl+b":
		m.applyResult(m.engine.ToggleBold(m.currentSelection()))
		return nil
	case "ctrl+k":
		m.mode = uiModeSizePicker
		m.sizePicker.Open()
		return nil
	case "ctrl+t":
		m.applyResult(m.engine.InsertTaskItem(m.currentSelection()))
		return nil
	case "ctrl+x":
		if res, handled := togglePossible(m); handled {
			m.applyResult(res)
		}
		return nil
	case "ctrl+l":
		m.applyResult(m.engine.InsertBulletList(m.caret))
		return nil
	case "alt+1":
		m.applyResult(m.engine.SetHeading(m.caret, 1))
		return nil
	case "alt+2":
		m.applyResult(m.engine.SetHeading(m.caret, 2))
		return nil
	case "alt+3":
		m.applyResult(m.engine.SetHeading(m.caret, 3))
		return nil
	case "ctrl+n":
		m.machine.OutsideInteraction(gesture.RegionAddControl)
		m.createNote()
		return nil
	case "ctrl+w":
		m.mode = uiModeConfirmDelete
		note, _ := m.ws.Get(m.ws.Active())
		m.confirm.Open(note.ID, "Delete note", "Delete "+note.Name+"?")
		return nil
	case "ctrl+r":
		note, _ := m.ws.Get(m.ws.Active())
		m.mode = uiModeRename
		m.rename.Open(note.ID, note.Name)
		return nil
	case "ctrl+p":
		m.mode = uiModeNotePicker
		m.notePicker.Open(m.ws.Notes())
		return nil
	case "ctrl+y":
		m.exportNote(m.ws.Active())
		return nil
	case "ctrl+e":
		m.mode = uiModePreview
		return nil
	case "tab":
		m.cycleNote(1)
		return nil
	case "shift+tab":
		m.cycleNote(-1)
		return nil
	case "enter":
		m.applyResult(m.engine.InsertNewline(m.caret))
		return nil
	case "backspace":
		m.applyResult(m.engine.DeleteBackward(m.caret))
		return nil
	case "left":
		m.moveCaret(-1)
		return nil
	case "right":
		m.moveCaret(1)
		return nil
	case "up":
		m.moveCaretLine(-1)
		return nil
	case "down":
		m.moveCaretLine(1)
		return nil
	case "shift+left":
		m.extendSelection(-1)
		return nil
	case "shift+right":
		m.extendSelection(1)
		return nil
	case "home":
		m.caret.Offset = 0
		m.clearSelection()
		return nil
	case "end":
		m.caret.Offset = m.lineLength(m.caret)
		m.clearSelection()
		return nil
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		m.applyResult(m.engine.InsertText(m.caret, string(msg.Runes)))
		return nil
	}
	if msg.Type == tea.KeySpace {
		m.applyResult(m.engine.InsertText(m.caret, " "))
	}
	return nil
}

// togglePossible flips the checkbox of the task item under the caret.
func togglePossible(m *Model) (res editor.Result, handled bool) {
	d := m.engine.Document()
	if m.caret.Node < 0 || m.caret.Node >= len(d.Nodes) || d.Nodes[m.caret.Node].Kind != doc.KindTaskItem {
		return res, false
	}
	return m.engine.ToggleCheckbox(m.caret.Node), true
}

func (m *Model) cycleNote(dir int) {
	order := m.ws.Order()
	if len(order) == 0 {
		return
	}
	idx := 0
	for i, id := range order {
		if id == m.ws.Active() {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(order)) % len(order)
	m.selectNote(order[idx])
}

func (m *Model) lineLength(caret doc.Caret) int {
	inline, ok := m.engine.Document().InlineAt(caret.Node, caret.Item)
	if !ok {
		return 0
	}
	return doc.Length(inline)
}

func (m *Model) moveCaret(dir int) {
	m.caret.Offset += dir
	if m.caret.Offset < 0 {
		m.caret.Offset = 0
	}
	if max := m.lineLength(m.caret); m.caret.Offset > max {
		m.caret.Offset = max
	}
	m.clearSelection()
}

func (m *Model) moveCaretLine(dir int) {
	line := m.view.lineOf(m.caret) + dir
	if line < 0 || line >= len(m.view.meta) {
		return
	}
	meta := m.view.meta[line]
	m.caret.Node = meta.node
	m.caret.Item = meta.item
	if max := m.lineLength(m.caret); m.caret.Offset > max {
		m.caret.Offset = max
	}
	m.clearSelection()
}

// extendSelection grows or starts a selection within the caret's line.
func (m *Model) extendSelection(dir int) {
	if !m.selecting {
		m.selecting = true
		m.selAnchor = m.caret.Offset
		m.sel = doc.Selection{Node: m.caret.Node, Item: m.caret.Item}
	}
	m.caret.Offset += dir
	if m.caret.Offset < 0 {
		m.caret.Offset = 0
	}
	if max := m.lineLength(m.caret); m.caret.Offset > max {
		m.caret.Offset = max
	}
	m.sel.Start = m.selAnchor
	m.sel.End = m.caret.Offset
}

func (m *Model) handleRenameKey(msg tea.KeyMsg) tea.Cmd {
	handled, name, done := m.rename.HandleKey(msg)
	if !handled {
		return nil
	}
	if done {
		tabID := m.rename.TabID()
		m.mode = uiModeNormal
		if name != "" && tabID != "" {
			if err := m.ws.Rename(context.Background(), tabID, name); err != nil {
				m.setStatusError("rename failed: " + err.Error())
			}
			m.syncFromWorkspace()
		}
	}
	return nil
}

func (m *Model) handleSizePickerKey(msg tea.KeyMsg) tea.Cmd {
	handled, kind, picked := m.sizePicker.HandleKey(msg)
	if !handled {
		return nil
	}
	if !m.sizePicker.IsOpen() {
		m.mode = uiModeNormal
	}
	if picked {
		m.applyResult(m.engine.SetTextSize(m.currentSelection(), kind))
	}
	return nil
}

func (m *Model) handleNotePickerKey(msg tea.KeyMsg) tea.Cmd {
	handled, noteID := m.notePicker.HandleKey(msg)
	if !handled {
		return nil
	}
	if !m.notePicker.IsOpen() {
		m.mode = uiModeNormal
	}
	if noteID != "" {
		m.selectNote(noteID)
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	handled, choice := m.confirm.HandleKey(msg)
	if !handled {
		return nil
	}
	switch choice {
	case confirmChoiceConfirm:
		tabID := m.confirm.TabID()
		m.confirm.Close()
		m.mode = uiModeNormal
		m.deleteNote(tabID)
	case confirmChoiceCancel:
		m.confirm.Close()
		m.mode = uiModeNormal
	}
	return nil
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "ctrl+e":
		m.mode = uiModeNormal
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}
