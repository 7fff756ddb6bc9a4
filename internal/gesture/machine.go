package gesture

import (
	"math"
	"time"

	"slate/internal/logging"
	"slate/internal/types"
)

// Gesture tuning constants. Offsets and geometry are in cells.
const (
	doublePressInterval = 300 * time.Millisecond
	moveThreshold       = 1.0
	verticalGain        = 1.2
	maxOffset           = 100.0
	bandPartialEdge     = 10.0
	bandFullEdge        = 40.0
	snapCollapseEdge    = 15.0
	snapFullEdge        = 50.0
	partialOffset       = 40.0
)

// TabBox is one tab's horizontal extent in the live bar layout.
type TabBox struct {
	ID    string
	X     float64
	Width float64
}

// Host supplies the live tab layout and applies reorders. Layout is
// re-queried after every splice; the machine never caches positions
// across a reorder.
type Host interface {
	Layout() []TabBox
	Move(id string, index int)
}

// Region classifies where a pointer interaction landed relative to the
// tab chrome.
type Region int

const (
	RegionTab Region = iota
	RegionAddControl
	RegionTabOptions
	RegionColorPicker
	RegionModal
	RegionOutside
)

// Machine runs the tab pointer gesture state machine. One gesture is
// active at a time; per-tab visual state persists across gestures.
type Machine struct {
	host   Host
	now    func() time.Time
	log    logging.Logger
	states map[string]*types.TabVisualState

	active      string
	pressed     bool
	originX     float64
	refY        float64
	axis        types.DragAxis
	hasMoved    bool
	pressedOnly bool

	lastPressID string
	lastPressAt time.Time

	doublePress time.Duration
}

func NewMachine(host Host, log logging.Logger) *Machine {
	if log == nil {
		log = logging.Nop()
	}
	return &Machine{
		host:        host,
		now:         time.Now,
		log:         log.With(logging.Field{Key: "component", Value: "gesture"}),
		states:      make(map[string]*types.TabVisualState),
		doublePress: doublePressInterval,
	}
}

// SetDoublePressInterval overrides the double-press window, used by
// config and by tests that pin the clock.
func (m *Machine) SetDoublePressInterval(d time.Duration) {
	if d > 0 {
		m.doublePress = d
	}
}

// SetClock overrides the time source.
func (m *Machine) SetClock(now func() time.Time) {
	if now != nil {
		m.now = now
	}
}

// VisualState returns the tab's persistent visual state, creating the
// collapsed default on first use.
func (m *Machine) VisualState(id string) *types.TabVisualState {
	st, ok := m.states[id]
	if !ok {
		def := types.DefaultTabVisualState()
		st = &def
		m.states[id] = st
	}
	return st
}

// Dragging reports whether a press is active and has crossed the move
// threshold.
func (m *Machine) Dragging() bool {
	return m.pressed && m.hasMoved
}

// Begin starts a press on a tab. A second press on the same tab within
// the double-press window toggles its extension instead of starting a
// drag. Pressing an already-extended tab collapses it and suppresses
// dragging for the remainder of the press.
func (m *Machine) Begin(tabID string, x, y float64) {
	t := m.now()
	if tabID == m.lastPressID && t.Sub(m.lastPressAt) <= m.doublePress {
		m.lastPressID = ""
		m.ToggleExtension(tabID)
		return
	}
	m.lastPressID = tabID
	m.lastPressAt = t

	for id, st := range m.states {
		if id != tabID && st.Extended() {
			m.collapse(id)
		}
	}

	st := m.VisualState(tabID)
	if st.Extended() {
		m.collapse(tabID)
		m.active = tabID
		m.pressed = true
		m.pressedOnly = true
		return
	}

	m.active = tabID
	m.pressed = true
	m.pressedOnly = false
	m.originX = x
	m.refY = y
	m.axis = types.AxisNone
	m.hasMoved = false
	st.Settling = false
}

// Update advances an active press with a new pointer position. The drag
// axis commits once, on the first update past the move threshold, and
// never changes for the rest of the gesture.
func (m *Machine) Update(x, y float64) {
	if !m.pressed || m.pressedOnly {
		return
	}
	dx := x - m.originX
	dy := y - m.refY
	if !m.hasMoved {
		if math.Abs(dx) <= moveThreshold && math.Abs(dy) <= moveThreshold {
			return
		}
		m.hasMoved = true
		if math.Abs(dx) > math.Abs(dy) {
			m.axis = types.AxisHorizontal
		} else {
			m.axis = types.AxisVertical
		}
		st := m.VisualState(m.active)
		st.HasMoved = true
		st.Axis = m.axis
	}
	switch m.axis {
	case types.AxisVertical:
		m.updateVertical(dy)
		m.refY = y
	case types.AxisHorizontal:
		m.updateHorizontal(x)
	}
}

// updateVertical accumulates upward travel into the extension offset.
// The reference is rebased every update so direction reversals take
// effect immediately.
func (m *Machine) updateVertical(dy float64) {
	st := m.VisualState(m.active)
	st.Offset = clamp(st.Offset+(-dy)*verticalGain, 0, maxOffset)
	switch {
	case st.Offset >= bandFullEdge:
		st.Band = types.BandFull
	case st.Offset > bandPartialEdge:
		st.Band = types.BandPartial
	default:
		st.Band = types.BandCollapsed
	}
}

// updateHorizontal reorders tabs when the dragged tab's candidate left
// edge, its current left edge plus the drag distance, crosses a
// neighbor's midpoint. After each splice the layout is re-read and the
// drag origin rebased, so position math always reflects the post-splice
// bar.
func (m *Machine) updateHorizontal(x float64) {
	for {
		layout := m.host.Layout()
		idx := indexOf(layout, m.active)
		if idx < 0 {
			return
		}
		box := layout[idx]
		cand := box.X + (x - m.originX)

		moved := false
		if x > m.originX && idx+1 < len(layout) {
			next := layout[idx+1]
			if cand > next.X+next.Width/2 {
				m.host.Move(m.active, idx+1)
				m.originX = x
				moved = true
			}
		} else if x < m.originX && idx > 0 {
			prev := layout[idx-1]
			if cand < prev.X+prev.Width/2 {
				m.host.Move(m.active, idx-1)
				m.originX = x
				moved = true
			}
		}
		if !moved {
			return
		}
	}
}

// End releases the press. A press that never crossed the move threshold
// changes nothing. Horizontal drags settle in place; vertical drags snap
// to the nearest rest offset and begin settling.
func (m *Machine) End() {
	if !m.pressed {
		return
	}
	active := m.active
	pressedOnly := m.pressedOnly
	hasMoved := m.hasMoved
	axis := m.axis
	m.pressed = false
	m.pressedOnly = false
	m.active = ""
	m.axis = types.AxisNone
	m.hasMoved = false

	if pressedOnly || !hasMoved {
		return
	}
	st := m.VisualState(active)
	st.HasMoved = false
	st.Axis = types.AxisNone
	if axis == types.AxisHorizontal {
		return
	}

	switch {
	case st.Offset < snapCollapseEdge:
		st.Offset = 0
		st.Band = types.BandCollapsed
	case st.Offset < snapFullEdge:
		st.Offset = partialOffset
		st.Band = types.BandPartial
	default:
		st.Offset = maxOffset
		st.Band = types.BandFull
	}
	st.Settling = true
	m.log.Debug("vertical drag settled",
		logging.Field{Key: "tab", Value: active},
		logging.Field{Key: "band", Value: string(st.Band)})
}

// ToggleExtension jumps a tab between fully extended and collapsed with
// no intermediate drag.
func (m *Machine) ToggleExtension(id string) {
	st := m.VisualState(id)
	if st.Band == types.BandFull {
		st.Offset = 0
		st.Band = types.BandCollapsed
	} else {
		st.Offset = maxOffset
		st.Band = types.BandFull
	}
	st.Settling = true
}

// OutsideInteraction collapses any extended or mid-drag tab when the
// pointer lands outside the tab chrome. Interactions with the add
// control, tab options, color picker, or a modal leave the state alone.
func (m *Machine) OutsideInteraction(region Region) {
	if region != RegionOutside {
		return
	}
	if m.pressed {
		m.Abandon(m.active)
	}
	for id, st := range m.states {
		if st.Extended() || st.Offset > 0 {
			m.collapse(id)
		}
	}
}

// Abandon cancels an in-flight gesture for the tab, for example when the
// tab is deleted mid-drag. The tab returns to collapsed rest.
func (m *Machine) Abandon(id string) {
	if m.pressed && m.active == id {
		m.pressed = false
		m.pressedOnly = false
		m.active = ""
		m.axis = types.AxisNone
		m.hasMoved = false
	}
	m.collapse(id)
}

// SettleDone marks the end of a tab's settle animation.
func (m *Machine) SettleDone(id string) {
	if st, ok := m.states[id]; ok {
		st.Settling = false
	}
}

// Forget drops a deleted tab's state entirely.
func (m *Machine) Forget(id string) {
	m.Abandon(id)
	delete(m.states, id)
	if m.lastPressID == id {
		m.lastPressID = ""
	}
}

func (m *Machine) collapse(id string) {
	st := m.VisualState(id)
	if st.Offset == 0 && st.Band == types.BandCollapsed && !st.HasMoved {
		st.Settling = false
		st.Axis = types.AxisNone
		return
	}
	st.Offset = 0
	st.Band = types.BandCollapsed
	st.HasMoved = false
	st.Axis = types.AxisNone
	st.Settling = true
}

func indexOf(layout []TabBox, id string) int {
	for i, b := range layout {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
