package scene

// Event is one discrete control input, already translated from whatever
// backend delivered it. The closed set of variants keeps the core
// ignorant of raw window or terminal events.
type Event interface {
	isEvent()
}

// TogglePause flips the clock between running and paused.
type TogglePause struct{}

// Reset rewinds simulated time to zero.
type Reset struct{}

// SpeedUp multiplies the time scale by the fixed step factor.
type SpeedUp struct{}

// SpeedDown divides the time scale by the fixed step factor.
type SpeedDown struct{}

// Quit ends the frame loop. No core state is touched.
type Quit struct{}

// Resize re-anchors the row to new screen dimensions.
type Resize struct {
	Width, Height float64
}

func (TogglePause) isEvent() {}
func (Reset) isEvent()       {}
func (SpeedUp) isEvent()     {}
func (SpeedDown) isEvent()   {}
func (Quit) isEvent()        {}
func (Resize) isEvent()      {}
