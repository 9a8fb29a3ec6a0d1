package system

// Key is a logical input bound to one or more physical keys or buttons
type Key int

const (
	KeyPause Key = iota
	KeyShoot
	KeySecondary
	KeyFullscreen
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyPause:
		return "pause"
	case KeyShoot:
		return "shoot"
	case KeySecondary:
		return "secondary"
	case KeyFullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// Poller reads the raw device state for the current frame
type Poller interface {
	IsPressed(k Key) bool
	CursorPosition() (x, y int)
}

// InputState is a snapshot of one frame's input
type InputState struct {
	PausePressed      bool
	ShootPressed      bool
	SecondaryPressed  bool
	FullscreenPressed bool
	ShootDown         bool
	MouseX            int
	MouseY            int
}

// InputSystem keeps the previous and current key state so callers can tell a
// press (this frame only) from a hold. Advance must run once per frame.
type InputSystem struct {
	poller   Poller
	current  [keyCount]bool
	previous [keyCount]bool
	mouseX   int
	mouseY   int
}

// NewInputSystem creates a new input system
func NewInputSystem(p Poller) *InputSystem {
	return &InputSystem{poller: p}
}

// Advance snapshots the previous state, then polls the new one
func (s *InputSystem) Advance() {
	s.previous = s.current
	for k := Key(0); k < keyCount; k++ {
		s.current[k] = s.poller.IsPressed(k)
	}
	s.mouseX, s.mouseY = s.poller.CursorPosition()
}

// IsKeyPress is true only on the frame k went from up to down
func (s *InputSystem) IsKeyPress(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.current[k] && !s.previous[k]
}

// IsKeyDown is true for every frame k is held
func (s *InputSystem) IsKeyDown(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.current[k]
}

// IsKeyRelease is true only on the frame k went from down to up
func (s *InputSystem) IsKeyRelease(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return !s.current[k] && s.previous[k]
}

// CursorPosition returns the pointer position polled by the last Advance
func (s *InputSystem) CursorPosition() (x, y int) {
	return s.mouseX, s.mouseY
}

// GetInput returns the current frame as an InputState
func (s *InputSystem) GetInput() InputState {
	return InputState{
		PausePressed:      s.IsKeyPress(KeyPause),
		ShootPressed:      s.IsKeyPress(KeyShoot),
		SecondaryPressed:  s.IsKeyPress(KeySecondary),
		FullscreenPressed: s.IsKeyPress(KeyFullscreen),
		ShootDown:         s.IsKeyDown(KeyShoot),
		MouseX:            s.mouseX,
		MouseY:            s.mouseY,
	}
}
