package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/config"
	"slate/internal/doc"
	"slate/internal/editor"
	"slate/internal/gesture"
	"slate/internal/logging"
	"slate/internal/workspace"
)

type uiMode int

const (
	uiModeNormal uiMode = iota
	uiModeRename
	uiModeSizePicker
	uiModeNotePicker
	uiModeConfirmDelete
	uiModePreview
)

// settleMsg ends a tab's settle animation.
type settleMsg struct {
	tabID string
}

// Model is the root bubbletea model. It owns the workspace, the editing
// engine bound to the active note, and the tab gesture machine, and is
// itself the gesture machine's layout host.
type Model struct {
	cfg     config.Config
	log     logging.Logger
	ws      *workspace.Workspace
	engine  *editor.Engine
	machine *gesture.Machine
	bar     *tabBar

	rename     *RenameController
	sizePicker *SizePickerController
	notePicker *NotePickerController
	confirm    *ConfirmController

	mode   uiMode
	width  int
	height int

	caret     doc.Caret
	sel       doc.Selection
	selAnchor int
	selecting bool
	view      editorView

	dragTab    string
	mousePress bool

	status    string
	statusErr bool
}

func NewModel(cfg config.Config, ws *workspace.Workspace, log logging.Logger) *Model {
	if log == nil {
		log = logging.Nop()
	}
	m := &Model{
		cfg:        cfg,
		log:        log.With(logging.Field{Key: "component", Value: "app"}),
		ws:         ws,
		engine:     editor.New(log),
		bar:        &tabBar{},
		rename:     NewRenameController(),
		sizePicker: NewSizePickerController(),
		notePicker: NewNotePickerController(),
		confirm:    NewConfirmController(),
		width:      80,
		height:     24,
	}
	m.machine = gesture.NewMachine(m, log)
	m.machine.SetDoublePressInterval(cfg.DoublePressInterval())
	m.syncFromWorkspace()
	m.bindActive()
	return m
}

// Run starts the UI program.
func Run(cfg config.Config, ws *workspace.Workspace, log logging.Logger) error {
	model := NewModel(cfg, ws, log)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}

// Layout implements gesture.Host.
func (m *Model) Layout() []gesture.TabBox {
	return m.bar.layout()
}

// Move implements gesture.Host: mid-drag splices go straight to the
// workspace so the persisted order always matches the bar.
func (m *Model) Move(id string, index int) {
	if err := m.ws.Move(context.Background(), id, index); err != nil {
		m.log.Warn("tab move failed", logging.Field{Key: "error", Value: err})
		return
	}
	m.syncFromWorkspace()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncFromWorkspace()
		m.refreshView()
		return m, nil
	case settleMsg:
		m.machine.SettleDone(msg.tabID)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) syncFromWorkspace() {
	m.bar.sync(m.ws.Notes(), m.ws.Active(), m.width)
}

// bindActive points the editing engine at the active note's content.
// A rebind resets the caret and selection.
func (m *Model) bindActive() {
	note, ok := m.ws.Get(m.ws.Active())
	if !ok {
		return
	}
	if m.engine.Bind(note.Content) {
		m.caret = doc.Caret{Node: 0, Item: -1, Offset: 0}
		m.clearSelection()
	}
	m.refreshView()
}

func (m *Model) refreshView() {
	m.view = renderDocument(m.engine.Document(), m.width)
}

// applyResult lands an editing result: persists the emitted content and
// adopts the new caret.
func (m *Model) applyResult(res editor.Result) {
	if res.Changed {
		if err := m.ws.SetContent(context.Background(), m.ws.Active(), res.Content); err != nil {
			m.setStatusError("save failed: " + err.Error())
		}
	}
	m.caret = res.Caret
	m.clampCaret()
	m.clearSelection()
	m.refreshView()
}

func (m *Model) clampCaret() {
	d := m.engine.Document()
	if len(d.Nodes) == 0 {
		m.caret = doc.Caret{Node: 0, Item: -1, Offset: 0}
		return
	}
	if m.caret.Node < 0 {
		m.caret.Node = 0
	}
	if m.caret.Node >= len(d.Nodes) {
		m.caret.Node = len(d.Nodes) - 1
		m.caret.Item = -1
	}
	inline, ok := d.InlineAt(m.caret.Node, m.caret.Item)
	if !ok {
		m.caret.Item = -1
		m.caret.Offset = 0
		return
	}
	if length := doc.Length(inline); m.caret.Offset > length {
		m.caret.Offset = length
	}
	if m.caret.Offset < 0 {
		m.caret.Offset = 0
	}
}

func (m *Model) clearSelection() {
	m.sel = doc.Selection{}
	m.selecting = false
}

// currentSelection returns the active selection, or a collapsed one at
// the caret.
func (m *Model) currentSelection() doc.Selection {
	if m.selecting {
		return m.sel.Normalized()
	}
	return doc.Selection{Node: m.caret.Node, Item: m.caret.Item, Start: m.caret.Offset, End: m.caret.Offset}
}

func (m *Model) setStatusInfo(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setStatusError(msg string) {
	m.status = msg
	m.statusErr = true
	m.log.Warn(msg)
}

// settleCmd schedules the end of a settle animation for a tab.
func (m *Model) settleCmd(tabID string) tea.Cmd {
	return tea.Tick(m.cfg.SettleDuration(), func(time.Time) tea.Msg {
		return settleMsg{tabID: tabID}
	})
}

func (m *Model) createNote() {
	note, err := m.ws.Create(context.Background(), "")
	if err != nil {
		m.setStatusError("create failed: " + err.Error())
		return
	}
	m.syncFromWorkspace()
	m.bindActive()
	m.setStatusInfo(fmt.Sprintf("created %q", note.Name))
}

func (m *Model) deleteNote(id string) {
	m.machine.Forget(id)
	if err := m.ws.Delete(context.Background(), id); err != nil {
		m.setStatusError("delete failed: " + err.Error())
		return
	}
	m.syncFromWorkspace()
	m.bindActive()
	m.setStatusInfo("note deleted")
}

func (m *Model) selectNote(id string) {
	if err := m.ws.Select(id); err != nil {
		return
	}
	m.syncFromWorkspace()
	m.bindActive()
}

func (m *Model) exportNote(id string) {
	note, ok := m.ws.Get(id)
	if !ok {
		return
	}
	markdown := doc.Markdown(doc.Parse(note.Content))
	if _, err := copyTextToClipboard(markdown); err != nil {
		m.setStatusError(err.Error())
		return
	}
	m.setStatusInfo("markdown copied")
}
