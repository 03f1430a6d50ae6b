package interaction

// Mode is the interaction strategy in effect for the current device.
type Mode string

const (
	ModeDrag   Mode = "drag"
	ModeManual Mode = "manual"
)

// DefaultBreakpoint is the narrowest viewport, in layout units, that still
// allows pointer dragging.
const DefaultBreakpoint = 80

// Capabilities describes what the current device can do. FinePointer is
// false for touch screens and for keyboard-only terminals alike.
type Capabilities struct {
	ViewportWidth int
	FinePointer   bool
}

// Selector picks an interaction mode from device capabilities.
type Selector struct {
	Breakpoint int
}

// NewSelector returns a selector using the given breakpoint, falling back to
// DefaultBreakpoint for non-positive values.
func NewSelector(breakpoint int) Selector {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return Selector{Breakpoint: breakpoint}
}

// Select is a pure function of capabilities. Dragging needs a fine pointer
// and a viewport at least as wide as the breakpoint.
func (s Selector) Select(c Capabilities) Mode {
	breakpoint := s.Breakpoint
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if !c.FinePointer {
		return ModeManual
	}
	if c.ViewportWidth < breakpoint {
		return ModeManual
	}
	return ModeDrag
}

// Strategy exposes the editing capabilities of a mode.
type Strategy interface {
	Mode() Mode
	// CanRelocateCrossParent reports whether nodes may change parent.
	CanRelocateCrossParent() bool
	// CanReorderSiblings reports whether sibling order may change.
	CanReorderSiblings() bool
}

// StrategyFor returns the strategy implementing a mode.
func StrategyFor(mode Mode) Strategy {
	if mode == ModeDrag {
		return dragStrategy{}
	}
	return manualStrategy{}
}

type dragStrategy struct{}

func (dragStrategy) Mode() Mode                   { return ModeDrag }
func (dragStrategy) CanRelocateCrossParent() bool { return true }
func (dragStrategy) CanReorderSiblings() bool     { return true }

type manualStrategy struct{}

func (manualStrategy) Mode() Mode                   { return ModeManual }
func (manualStrategy) CanRelocateCrossParent() bool { return false }
func (manualStrategy) CanReorderSiblings() bool     { return true }
