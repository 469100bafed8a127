package lunar

import "sync"

type Key int

const (
	KeyA Key = iota
	KeyD
	KeyE
	KeyQ
	KeyS
	KeyW
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyA:           "A",
	KeyD:           "D",
	KeyE:           "E",
	KeyQ:           "Q",
	KeyS:           "S",
	KeyW:           "W",
	KeySpace:       "Space",
	KeyEnter:       "Enter",
	KeyEscape:      "Escape",
	KeyTab:         "Tab",
	KeyRight:       "Right",
	KeyLeft:        "Left",
	KeyDown:        "Down",
	KeyUp:          "Up",
	KeyLeftShift:   "LeftShift",
	KeyLeftControl: "LeftControl",
	KeyLeftAlt:     "LeftAlt",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// InputSnapshot is the complete input state for one frame. It is a plain
// value so the window goroutine can hand it over without sharing memory.
type InputSnapshot struct {
	Pressed [KeyCount]bool

	// Mouse motion accumulated since the previous snapshot.
	MouseDeltaX, MouseDeltaY float32

	// Zero means unchanged.
	WindowWidth, WindowHeight int

	CloseRequested bool
}

// Press marks keys as held.
func (s *InputSnapshot) Press(keys ...Key) *InputSnapshot {
	for _, k := range keys {
		s.Pressed[k] = true
	}
	return s
}

func (s *InputSnapshot) Release(keys ...Key) *InputSnapshot {
	for _, k := range keys {
		s.Pressed[k] = false
	}
	return s
}

// InputFeed is the producer side of the input channel. Send never blocks:
// when the buffer is full the oldest pending snapshot is dropped. Sends
// after Close are discarded.
type InputFeed struct {
	mu     sync.Mutex
	closed bool
	ch     chan InputSnapshot
}

func NewInputFeed(buffer int) *InputFeed {
	if buffer < 1 {
		buffer = 1
	}
	return &InputFeed{ch: make(chan InputSnapshot, buffer)}
}

func (f *InputFeed) Send(s InputSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	for {
		select {
		case f.ch <- s:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

// Close tells the consumer no more input will arrive. It is idempotent.
func (f *InputFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	close(f.ch)
}

func (f *InputFeed) Source() <-chan InputSnapshot {
	return f.ch
}

type InputModule struct {
	Source <-chan InputSnapshot
}

type Input struct {
	InputSnapshot

	JustPressed  [KeyCount]bool
	JustReleased [KeyCount]bool

	// Updated is true on frames that received at least one snapshot.
	Updated bool

	source <-chan InputSnapshot
	closed bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{source: mod.Source})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func inputSystem(cmd *Commands, input *Input) {
	prev := input.Pressed

	input.Updated = false
	input.MouseDeltaX = 0
	input.MouseDeltaY = 0
	input.WindowWidth = 0
	input.WindowHeight = 0

	if input.source != nil && !input.closed {
	drain:
		for {
			select {
			case s, ok := <-input.source:
				if !ok {
					input.closed = true
					input.CloseRequested = true
					cmd.Logger().Infof("input source closed")
					break drain
				}
				dx := input.MouseDeltaX + s.MouseDeltaX
				dy := input.MouseDeltaY + s.MouseDeltaY
				w, h := input.WindowWidth, input.WindowHeight
				if s.WindowWidth != 0 && s.WindowHeight != 0 {
					w, h = s.WindowWidth, s.WindowHeight
				}
				closeRequested := input.CloseRequested || s.CloseRequested

				input.InputSnapshot = s
				input.MouseDeltaX, input.MouseDeltaY = dx, dy
				input.WindowWidth, input.WindowHeight = w, h
				input.CloseRequested = closeRequested
				input.Updated = true
			default:
				break drain
			}
		}
	}

	for k := Key(0); k < KeyCount; k++ {
		input.JustPressed[k] = input.Pressed[k] && !prev[k]
		input.JustReleased[k] = !input.Pressed[k] && prev[k]
	}

	if wantsQuit(input) && cmd.Stateful() && cmd.State() != StateExiting {
		cmd.Logger().Infof("quit requested")
		cmd.ChangeState(StateExiting)
	}
}

func wantsQuit(input *Input) bool {
	return input.CloseRequested || input.JustPressed[KeyEscape] || input.JustPressed[KeyQ]
}
