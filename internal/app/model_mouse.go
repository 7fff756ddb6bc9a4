package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/doc"
	"slate/internal/gesture"
)

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.mode == uiModeConfirmDelete || m.mode == uiModePreview {
		// Modal surfaces swallow pointer input without disturbing tab
		// state.
		if msg.Action == tea.MouseActionPress {
			m.machine.OutsideInteraction(gesture.RegionModal)
		}
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		return m.reducePress(msg)
	case tea.MouseActionMotion:
		m.reduceMotion(msg)
		return nil
	case tea.MouseActionRelease:
		return m.reduceRelease(msg)
	}
	return nil
}

func (m *Model) reducePress(msg tea.MouseMsg) tea.Cmd {
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.mode == uiModeSizePicker {
		contentRow := m.bar.contentRow(m.machine)
		kind, picked := m.sizePicker.HandleClick(msg.Y - contentRow - 1)
		if !m.sizePicker.IsOpen() {
			m.mode = uiModeNormal
		}
		if picked {
			m.applyResult(m.engine.SetTextSize(m.currentSelection(), kind))
		}
		return nil
	}

	hit := m.bar.hitAt(msg.X, msg.Y, m.machine)
	switch hit.kind {
	case hitTab:
		m.machine.Begin(hit.tabID, float64(msg.X), float64(msg.Y))
		m.mousePress = true
		m.dragTab = hit.tabID
		m.selectNote(hit.tabID)
		return nil
	case hitAddControl:
		m.machine.OutsideInteraction(gesture.RegionAddControl)
		m.createNote()
		return nil
	case hitPanelAction:
		m.machine.OutsideInteraction(gesture.RegionTabOptions)
		switch hit.action {
		case panelActionRename:
			note, ok := m.ws.Get(hit.tabID)
			if ok {
				m.mode = uiModeRename
				m.rename.Open(note.ID, note.Name)
			}
		case panelActionDelete:
			note, ok := m.ws.Get(hit.tabID)
			if ok {
				m.mode = uiModeConfirmDelete
				m.confirm.Open(note.ID, "Delete note", "Delete "+note.Name+"?")
			}
		case panelActionExport:
			m.exportNote(hit.tabID)
		}
		return nil
	case hitColorSwatch:
		m.machine.OutsideInteraction(gesture.RegionColorPicker)
		if err := m.ws.SetColor(context.Background(), hit.tabID, hit.color); err != nil {
			m.setStatusError(err.Error())
			return nil
		}
		m.syncFromWorkspace()
		return nil
	case hitPanel:
		m.machine.OutsideInteraction(gesture.RegionTabOptions)
		return nil
	}

	// Anything below the chrome is editor surface or empty space, both
	// outside interactions for the gesture machine.
	m.machine.OutsideInteraction(gesture.RegionOutside)
	m.reduceEditorPress(msg)
	return nil
}

func (m *Model) reduceEditorPress(msg tea.MouseMsg) {
	contentRow := m.bar.contentRow(m.machine)
	line := msg.Y - contentRow
	if node, ok := m.view.checkboxAt(msg.X, line); ok {
		m.applyResult(m.engine.ToggleCheckbox(node))
		return
	}
	caret, ok := m.view.positionFor(msg.X, line)
	if !ok {
		return
	}
	m.caret = caret
	m.clampCaret()
	m.selecting = true
	m.selAnchor = m.caret.Offset
	m.sel = doc.Selection{Node: m.caret.Node, Item: m.caret.Item, Start: m.caret.Offset, End: m.caret.Offset}
}

func (m *Model) reduceMotion(msg tea.MouseMsg) {
	if m.mousePress {
		m.machine.Update(float64(msg.X), float64(msg.Y))
		return
	}
	if m.selecting {
		contentRow := m.bar.contentRow(m.machine)
		caret, ok := m.view.positionFor(msg.X, msg.Y-contentRow)
		if !ok || caret.Node != m.sel.Node || caret.Item != m.sel.Item {
			return
		}
		m.caret = caret
		m.clampCaret()
		m.sel.Start = m.selAnchor
		m.sel.End = m.caret.Offset
	}
}

func (m *Model) reduceRelease(msg tea.MouseMsg) tea.Cmd {
	if !m.mousePress {
		if m.selecting && m.sel.Empty() {
			m.selecting = false
		}
		return nil
	}
	m.mousePress = false
	tabID := m.dragTab
	m.dragTab = ""
	m.machine.End()
	if tabID == "" {
		return nil
	}
	if st := m.machine.VisualState(tabID); st.Settling {
		return m.settleCmd(tabID)
	}
	return nil
}
