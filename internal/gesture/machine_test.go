package gesture

import (
	"testing"
	"time"

	"slate/internal/types"
)

// barHost lays tabs out left to right with a fixed width each.
type barHost struct {
	order []string
	width float64
	moves int
}

func newBarHost(ids ...string) *barHost {
	return &barHost{order: ids, width: 10}
}

func (h *barHost) Layout() []TabBox {
	boxes := make([]TabBox, len(h.order))
	x := 0.0
	for i, id := range h.order {
		boxes[i] = TabBox{ID: id, X: x, Width: h.width}
		x += h.width
	}
	return boxes
}

func (h *barHost) Move(id string, index int) {
	from := -1
	for i, v := range h.order {
		if v == id {
			from = i
			break
		}
	}
	if from < 0 || index < 0 || index >= len(h.order) {
		return
	}
	h.moves++
	out := append([]string{}, h.order[:from]...)
	out = append(out, h.order[from+1:]...)
	rest := append([]string{}, out[index:]...)
	h.order = append(append(out[:index:index], id), rest...)
}

func fixedClock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestHorizontalDragReordersAcrossMidpoints(t *testing.T) {
	host := newBarHost("a", "b", "c")
	m := NewMachine(host, nil)

	// Drag tab a rightwards until its leading edge passes b's midpoint,
	// then c's.
	m.Begin("a", 5, 0)
	m.Update(21, 0)
	if got := host.order[0]; got != "b" {
		t.Fatalf("order after first crossing = %v, want b first", host.order)
	}
	m.Update(37, 0)
	m.End()
	want := []string{"b", "c", "a"}
	for i := range want {
		if host.order[i] != want[i] {
			t.Fatalf("order = %v, want %v", host.order, want)
		}
	}
	if st := m.VisualState("a"); st.Offset != 0 || st.Band != types.BandCollapsed {
		t.Fatalf("horizontal drag should not extend the tab: %+v", st)
	}
}

func TestHorizontalDragLeftwards(t *testing.T) {
	host := newBarHost("a", "b", "c")
	m := NewMachine(host, nil)

	m.Begin("c", 25, 0)
	m.Update(12, 0)
	m.Update(1, 0)
	m.End()
	want := []string{"c", "a", "b"}
	for i := range want {
		if host.order[i] != want[i] {
			t.Fatalf("order = %v, want %v", host.order, want)
		}
	}
}

func TestReorderTriggersOnEdgeNotCenter(t *testing.T) {
	// Rightward: the dragged tab's left edge must itself pass the
	// neighbor's midpoint before the splice fires.
	host := newBarHost("a", "b")
	m := NewMachine(host, nil)
	m.Begin("a", 5, 0)
	m.Update(17, 0) // edge at 12, b's midpoint at 15
	if host.moves != 0 {
		t.Fatalf("reordered before the edge crossed the midpoint: %v", host.order)
	}
	m.Update(21, 0) // edge at 16
	if host.order[0] != "b" {
		t.Fatalf("order = %v, want b first", host.order)
	}
	m.End()

	// Leftward: the edge passing the midpoint is enough.
	host = newBarHost("a", "b")
	m = NewMachine(host, nil)
	m.Begin("b", 15, 0)
	m.Update(9, 0) // edge at 4, a's midpoint at 5
	if host.order[0] != "b" {
		t.Fatalf("order = %v, want b first", host.order)
	}
	m.End()
}

func TestReorderIsAlwaysAPermutation(t *testing.T) {
	host := newBarHost("a", "b", "c", "d", "e")
	m := NewMachine(host, nil)

	m.Begin("b", 15, 0)
	for _, x := range []float64{20, 33, 47, 12, 2, 38} {
		m.Update(x, 0)
		seen := map[string]bool{}
		for _, id := range host.order {
			seen[id] = true
		}
		if len(seen) != 5 {
			t.Fatalf("order lost or duplicated a tab: %v", host.order)
		}
	}
	m.End()
}

func TestVerticalOffsetClamped(t *testing.T) {
	m := NewMachine(newBarHost("a"), nil)
	m.Begin("a", 5, 50)
	m.Update(5, 48)
	m.Update(5, -500)
	if st := m.VisualState("a"); st.Offset != 100 {
		t.Fatalf("offset = %v, want clamped to 100", st.Offset)
	}
	m.Begin("b", 5, 50)
	m.Update(5, 48)
	m.Update(5, 500)
	if st := m.VisualState("b"); st.Offset != 0 {
		t.Fatalf("offset = %v, want clamped to 0", st.Offset)
	}
}

func TestVerticalReleaseSnapsToPartial(t *testing.T) {
	m := NewMachine(newBarHost("a"), nil)
	m.Begin("a", 5, 100)
	// First update commits the vertical axis, then upward travel lands
	// the offset at 30, inside the partial snap band.
	m.Update(5, 98)
	m.Update(5, 98-22.5)
	st := m.VisualState("a")
	if st.Offset < 29 || st.Offset > 31 {
		t.Fatalf("pre-release offset = %v, want about 30", st.Offset)
	}
	m.End()
	if st.Offset != 40 || st.Band != types.BandPartial {
		t.Fatalf("release state = %+v, want partial at 40", st)
	}
	if !st.Settling {
		t.Fatalf("release should begin the settle animation")
	}
	m.SettleDone("a")
	if st.Settling {
		t.Fatalf("settle done should clear the flag")
	}
}

func TestVerticalReleaseSnapEdges(t *testing.T) {
	cases := []struct {
		release    float64
		wantOffset float64
		wantBand   types.ExtensionBand
	}{
		{10, 0, types.BandCollapsed},
		{20, 40, types.BandPartial},
		{49, 40, types.BandPartial},
		{60, 100, types.BandFull},
	}
	for _, tc := range cases {
		m := NewMachine(newBarHost("a"), nil)
		m.Begin("a", 5, 200)
		// First update commits the axis and leaves a small offset; the
		// second lands the offset exactly on the release value.
		m.Update(5, 198)
		committed := m.VisualState("a").Offset
		m.Update(5, 198-(tc.release-committed)/verticalGain)
		m.End()
		st := m.VisualState("a")
		if st.Offset != tc.wantOffset || st.Band != tc.wantBand {
			t.Fatalf("release at %v: state = %+v, want offset %v band %s",
				tc.release, st, tc.wantOffset, tc.wantBand)
		}
	}
}

func TestDoublePressTogglesExtension(t *testing.T) {
	now := time.Unix(1000, 0)
	m := NewMachine(newBarHost("a"), nil)
	m.SetClock(fixedClock(&now))

	m.Begin("a", 5, 0)
	m.End()
	now = now.Add(150 * time.Millisecond)
	m.Begin("a", 5, 0)
	st := m.VisualState("a")
	if st.Band != types.BandFull || st.Offset != 100 {
		t.Fatalf("double press should extend fully, got %+v", st)
	}

	// A third press outside the window collapses the extended tab
	// without toggling back up.
	now = now.Add(time.Second)
	m.Begin("a", 5, 0)
	if st.Band != types.BandCollapsed {
		t.Fatalf("press on extended tab should collapse, got %+v", st)
	}
	m.Update(5, -50)
	if st.Offset != 0 {
		t.Fatalf("press that collapsed a tab must not drag, got offset %v", st.Offset)
	}
	m.End()
}

func TestAxisCommitsOnce(t *testing.T) {
	host := newBarHost("a", "b")
	m := NewMachine(host, nil)
	m.Begin("a", 5, 50)
	m.Update(5, 45)
	// Later horizontal travel must not reorder once the axis is vertical.
	m.Update(19, 45)
	if host.moves != 0 {
		t.Fatalf("vertical gesture reordered tabs")
	}
	if m.VisualState("a").Axis != types.AxisVertical {
		t.Fatalf("axis = %s, want vertical", m.VisualState("a").Axis)
	}
	m.End()
}

func TestBeginOnOtherTabCollapsesPrevious(t *testing.T) {
	m := NewMachine(newBarHost("a", "b"), nil)
	m.ToggleExtension("a")
	m.Begin("b", 15, 0)
	if st := m.VisualState("a"); st.Extended() {
		t.Fatalf("starting a gesture on b should collapse a: %+v", st)
	}
}

func TestOutsideInteractionCollapses(t *testing.T) {
	m := NewMachine(newBarHost("a"), nil)
	m.ToggleExtension("a")

	for _, r := range []Region{RegionAddControl, RegionTabOptions, RegionColorPicker, RegionModal} {
		m.OutsideInteraction(r)
		if !m.VisualState("a").Extended() {
			t.Fatalf("region %d must not collapse the tab", r)
		}
	}
	m.OutsideInteraction(RegionOutside)
	if m.VisualState("a").Extended() {
		t.Fatalf("outside interaction should collapse the tab")
	}
}

func TestAbandonMidGesture(t *testing.T) {
	m := NewMachine(newBarHost("a"), nil)
	m.Begin("a", 5, 100)
	m.Update(5, 60)
	m.Abandon("a")
	st := m.VisualState("a")
	if st.Offset != 0 || st.Band != types.BandCollapsed {
		t.Fatalf("abandon should return to collapsed rest: %+v", st)
	}
	if m.Dragging() {
		t.Fatalf("abandon should end the gesture")
	}
	// Updates after abandon are ignored.
	m.Update(5, 10)
	if st.Offset != 0 {
		t.Fatalf("update after abandon moved the tab: %+v", st)
	}
}

func TestPressWithoutMovementChangesNothing(t *testing.T) {
	host := newBarHost("a", "b")
	m := NewMachine(host, nil)
	m.Begin("a", 5, 0)
	m.Update(5.5, 0.5)
	m.End()
	if host.moves != 0 {
		t.Fatalf("sub-threshold press reordered tabs")
	}
	if st := m.VisualState("a"); st.Offset != 0 || st.Settling {
		t.Fatalf("sub-threshold press changed visual state: %+v", st)
	}
}
