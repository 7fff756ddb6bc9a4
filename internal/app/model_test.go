package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/config"
	"slate/internal/types"
	"slate/internal/workspace"
)

// memNotebook is an in-memory notebook store for model tests.
type memNotebook struct {
	notes []*types.Note
}

func (m *memNotebook) Load(ctx context.Context) ([]*types.Note, error) {
	return m.notes, nil
}

func (m *memNotebook) Save(ctx context.Context, notes []*types.Note) error {
	m.notes = make([]*types.Note, len(notes))
	for i, n := range notes {
		clone := *n
		m.notes[i] = &clone
	}
	return nil
}

func newTestModel(t *testing.T, names ...string) *Model {
	t.Helper()
	nb := &memNotebook{}
	for _, name := range names {
		nb.notes = append(nb.notes, &types.Note{ID: name, Name: name})
	}
	ws := workspace.New(nb, nil)
	if err := ws.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	m := NewModel(config.DefaultConfig(), ws, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestClickSelectsTab(t *testing.T) {
	m := newTestModel(t, "aa", "bb")
	// "aa" occupies columns 0-3, "bb" 4-7.
	m.Update(press(5, tabBarRow))
	m.Update(release(5, tabBarRow))
	if m.ws.Active() != "bb" {
		t.Fatalf("active = %q, want bb", m.ws.Active())
	}
}

func TestDragReordersTabsThroughModel(t *testing.T) {
	m := newTestModel(t, "aa", "bb", "cc")
	m.Update(press(1, tabBarRow))
	// "aa" starts at column 0 with width 4; its dragged edge passes bb's
	// midpoint (column 6) once the pointer reaches column 8.
	m.Update(motion(8, tabBarRow))
	m.Update(release(8, tabBarRow))
	order := m.ws.Order()
	want := []string{"bb", "aa", "cc"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestVerticalDragOpensPanelAndSettles(t *testing.T) {
	m := newTestModel(t, "aa")
	m.Update(press(1, tabBarRow))
	m.Update(motion(1, tabBarRow-3))
	// Simulated rows above the bar are negative; enough travel to land
	// in the full band.
	m.Update(motion(1, tabBarRow-50))
	_, cmd := m.Update(release(1, tabBarRow-50))
	st := m.machine.VisualState("aa")
	if st.Band != types.BandFull || st.Offset != 100 {
		t.Fatalf("state = %+v, want full extension", st)
	}
	if !st.Settling || cmd == nil {
		t.Fatalf("release should schedule settle")
	}
	m.Update(settleMsg{tabID: "aa"})
	if st.Settling {
		t.Fatalf("settle message should clear the flag")
	}
	if id, rows := m.bar.extendedTab(m.machine); id != "aa" || rows != 2 {
		t.Fatalf("panel = %q %d, want aa with both rows", id, rows)
	}
}

func TestTypingUpdatesNoteContent(t *testing.T) {
	m := newTestModel(t, "aa")
	m.Update(key("h"))
	m.Update(key("i"))
	note, _ := m.ws.Get("aa")
	if !strings.Contains(note.Content, "hi") {
		t.Fatalf("content = %q, want typed text", note.Content)
	}
}

func TestCheckboxClickToggles(t *testing.T) {
	m := newTestModel(t, "aa")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	note, _ := m.ws.Get("aa")
	if !strings.Contains(note.Content, "!todo0") {
		t.Fatalf("content = %q, want a task", note.Content)
	}
	line := m.view.lineOf(m.caret)
	contentRow := m.bar.contentRow(m.machine)
	m.Update(press(1, contentRow+line))
	note, _ = m.ws.Get("aa")
	if !strings.Contains(note.Content, "!todo1") {
		t.Fatalf("content = %q, want checked task", note.Content)
	}
}

func TestOutsidePressCollapsesExtendedTab(t *testing.T) {
	m := newTestModel(t, "aa")
	m.machine.ToggleExtension("aa")
	m.Update(press(80, 20))
	if m.machine.VisualState("aa").Extended() {
		t.Fatalf("outside press should collapse the tab")
	}
}
