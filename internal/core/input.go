package core

// InputFrame collects the input events drained during one loop iteration.
// Front-ends translate their native events (Ebiten polling, Bubble Tea
// messages) into a frame; the game consumes it without knowing the source.
type InputFrame struct {
	// Clicks holds pointer-down positions in board pixel space, oldest first.
	Clicks []Point
	// Quit is set when a quit request was observed.
	Quit bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Click records a pointer-down event.
func (f *InputFrame) Click(p Point) {
	f.Clicks = append(f.Clicks, p)
}

// RequestQuit marks the frame as carrying a quit request.
func (f *InputFrame) RequestQuit() {
	f.Quit = true
}

// Clear resets the frame for the next iteration, keeping the click buffer.
func (f *InputFrame) Clear() {
	f.Clicks = f.Clicks[:0]
	f.Quit = false
}
