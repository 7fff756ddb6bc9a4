package app

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"slate/internal/gesture"
	"slate/internal/types"
)

const (
	addControlLabel = " + "
	tabBarRow       = 0
)

// tabHit classifies what a pointer coordinate landed on in the tab
// chrome.
type tabHit struct {
	kind   tabHitKind
	tabID  string
	color  types.NoteColor
	action panelAction
}

type tabHitKind int

const (
	hitNothing tabHitKind = iota
	hitTab
	hitAddControl
	hitPanel
	hitPanelAction
	hitColorSwatch
)

type panelAction int

const (
	panelActionNone panelAction = iota
	panelActionRename
	panelActionDelete
	panelActionExport
)

// tabBar owns tab row geometry. Widths are derived from the rendered
// labels, so gesture layout and hit testing always agree with the view.
type tabBar struct {
	notes  []types.Note
	active string
	width  int
}

func (b *tabBar) sync(notes []types.Note, active string, width int) {
	b.notes = notes
	b.active = active
	b.width = width
}

func tabCellWidth(name string) float64 {
	// One cell of padding each side, matching the tab styles.
	return float64(runewidth.StringWidth(name) + 2)
}

// layout returns the live tab boxes in bar order. It is the gesture
// machine's view of the bar; reorders re-enter here immediately.
func (b *tabBar) layout() []gesture.TabBox {
	boxes := make([]gesture.TabBox, len(b.notes))
	x := 0.0
	for i, note := range b.notes {
		w := tabCellWidth(note.Name)
		boxes[i] = gesture.TabBox{ID: note.ID, X: x, Width: w}
		x += w
	}
	return boxes
}

func (b *tabBar) addControlStart() float64 {
	x := 0.0
	for _, note := range b.notes {
		x += tabCellWidth(note.Name)
	}
	return x
}

// hitAt resolves a pointer position against the bar and any open
// extension panel.
func (b *tabBar) hitAt(x, y int, machine *gesture.Machine) tabHit {
	if y == tabBarRow {
		fx := float64(x)
		for _, box := range b.layout() {
			if fx >= box.X && fx < box.X+box.Width {
				return tabHit{kind: hitTab, tabID: box.ID}
			}
		}
		start := b.addControlStart()
		if fx >= start && fx < start+float64(runewidth.StringWidth(addControlLabel)) {
			return tabHit{kind: hitAddControl}
		}
		return tabHit{kind: hitNothing}
	}
	extended, rows := b.extendedTab(machine)
	if extended == "" || y < tabBarRow+1 || y > tabBarRow+rows {
		return tabHit{kind: hitNothing}
	}
	row := y - tabBarRow - 1
	if row == 0 {
		return b.actionRowHit(extended, x)
	}
	if row == 1 {
		return b.swatchRowHit(extended, x)
	}
	return tabHit{kind: hitPanel, tabID: extended}
}

// extendedTab returns the id of the tab currently showing an extension
// panel and the panel's row count: one action row when partially
// extended, plus a color row when fully extended.
func (b *tabBar) extendedTab(machine *gesture.Machine) (string, int) {
	for _, note := range b.notes {
		st := machine.VisualState(note.ID)
		if !st.Extended() && st.Offset == 0 {
			continue
		}
		if st.Band == types.BandFull {
			return note.ID, 2
		}
		if st.Extended() {
			return note.ID, 1
		}
	}
	return "", 0
}

const (
	panelRenameLabel = " rename "
	panelDeleteLabel = " delete "
	panelExportLabel = " export "
)

func (b *tabBar) actionRowHit(tabID string, x int) tabHit {
	labels := []struct {
		label  string
		action panelAction
	}{
		{panelRenameLabel, panelActionRename},
		{panelDeleteLabel, panelActionDelete},
		{panelExportLabel, panelActionExport},
	}
	pos := 0
	for _, l := range labels {
		w := runewidth.StringWidth(l.label)
		if x >= pos && x < pos+w {
			return tabHit{kind: hitPanelAction, tabID: tabID, action: l.action}
		}
		pos += w + 1
	}
	return tabHit{kind: hitPanel, tabID: tabID}
}

func (b *tabBar) swatchRowHit(tabID string, x int) tabHit {
	// Each swatch renders as three cells separated by one space.
	pos := 0
	for _, color := range types.Palette {
		if x >= pos && x < pos+3 {
			return tabHit{kind: hitColorSwatch, tabID: tabID, color: color}
		}
		pos += 4
	}
	return tabHit{kind: hitPanel, tabID: tabID}
}

// contentRow is the first editor row, below the bar and any open panel.
func (b *tabBar) contentRow(machine *gesture.Machine) int {
	_, rows := b.extendedTab(machine)
	return tabBarRow + 1 + rows
}

func (b *tabBar) view(machine *gesture.Machine, dragging string) string {
	var row strings.Builder
	for _, note := range b.notes {
		style := tabLabelStyle(note.Color, note.ID == b.active, note.ID == dragging)
		row.WriteString(style.Render(note.Name))
	}
	row.WriteString(addControlStyle.Render("+"))

	lines := []string{truncateToWidth(row.String(), b.width)}
	extended, rows := b.extendedTab(machine)
	if extended != "" && rows >= 1 {
		actions := tabOptionsStyle.Render(panelRenameLabel) + " " +
			tabOptionsStyle.Render(panelDeleteLabel) + " " +
			tabOptionsStyle.Render(panelExportLabel)
		lines = append(lines, truncateToWidth(extensionPanelStyle.Render(actions), b.width))
	}
	if extended != "" && rows >= 2 {
		var swatches strings.Builder
		for i, color := range types.Palette {
			if i > 0 {
				swatches.WriteString(" ")
			}
			style := lipglossSwatch(color)
			swatches.WriteString(style.Render("   "))
		}
		lines = append(lines, truncateToWidth(swatches.String(), b.width))
	}
	return strings.Join(lines, "\n")
}
