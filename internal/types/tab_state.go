package types

type ExtensionBand string

const (
	BandCollapsed ExtensionBand = "collapsed"
	BandPartial   ExtensionBand = "partial"
	BandFull      ExtensionBand = "full"
)

type DragAxis string

const (
	AxisNone       DragAxis = "none"
	AxisHorizontal DragAxis = "horizontal"
	AxisVertical   DragAxis = "vertical"
)

// TabVisualState is the transient per-tab presentation state driven by
// pointer gestures. It is never persisted.
type TabVisualState struct {
	Offset   float64
	Band     ExtensionBand
	Axis     DragAxis
	HasMoved bool
	Settling bool
}

func DefaultTabVisualState() TabVisualState {
	return TabVisualState{Band: BandCollapsed, Axis: AxisNone}
}

// Height is the rendered tab height for the current drag offset, in the
// same units the offset is tracked in.
func (s TabVisualState) Height() float64 {
	return 40 + s.Offset
}

func (s TabVisualState) Extended() bool {
	return s.Band == BandPartial || s.Band == BandFull
}
