package run

// Event is an input to Game.Dispatch.
type Event interface {
	event()
}

// StartRequested is sent by the menu start button.
type StartRequested struct{}

// BeginConfirmed is sent by the click-to-begin overlay.
type BeginConfirmed struct{}

// Click is a shot. The coordinates are ignored: shots go through the
// centre of the screen.
type Click struct {
	X, Y int
}

// PointerDelta is relative pointer movement.
type PointerDelta struct {
	DX, DY float64
}

type SensitivityChanged struct {
	Value float64
}

// OrientationSet points the camera at an absolute orientation.
type OrientationSet struct {
	Yaw, Pitch float64
}

type PlayAgain struct{}

// TimerTick is sent at the fixed timer cadence.
type TimerTick struct{}

// AnimationTick is sent once per display frame.
type AnimationTick struct{}

// Abort ends a run early.
type Abort struct{}

func (StartRequested) event()     {}
func (BeginConfirmed) event()     {}
func (Click) event()              {}
func (PointerDelta) event()       {}
func (SensitivityChanged) event() {}
func (OrientationSet) event()     {}
func (PlayAgain) event()          {}
func (TimerTick) event()          {}
func (AnimationTick) event()      {}
func (Abort) event()              {}
