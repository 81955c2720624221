package lab

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// CursorHands is the desktop stand-in for a hand tracker: the cursor
// drives one fingertip at a time. Keys 1..5 select the finger, TAB
// swaps the hand. Only the active fingertip reports a valid position.
type CursorHands struct {
	window *glfw.Window
	hand   HandLabel
	finger FingerName
}

func NewCursorHands(window *glfw.Window) *CursorHands {
	return &CursorHands{window: window, hand: HandLeft, finger: FingerIndex}
}

// SelectFinger switches the cursor to drive the given finger.
func (ch *CursorHands) SelectFinger(fn FingerName) {
	if fn < FingerCount {
		ch.finger = fn
	}
}

// SwapHand toggles between the left and right hand.
func (ch *CursorHands) SwapHand() {
	if ch.hand == HandLeft {
		ch.hand = HandRight
	} else {
		ch.hand = HandLeft
	}
}

// Active returns the finger the cursor currently drives.
func (ch *CursorHands) Active() FingerID {
	return MakeFingerID(ch.hand, ch.finger)
}

// Hands reports a single hand whose active fingertip sits under the
// cursor, scaled from window to frame coordinates.
func (ch *CursorHands) Hands() []Hand {
	cx, cy := ch.window.GetCursorPos()
	winW, winH := ch.window.GetSize()
	if winW <= 0 || winH <= 0 {
		return nil
	}
	fx := cx * float64(WindowWidth) / float64(winW)
	fy := cy * float64(WindowHeight) / float64(winH)

	hand := Hand{Label: ch.hand}
	hand.Fingers[ch.finger] = FingerPoint{X: fx, Y: fy, OK: true}
	return []Hand{hand}
}

// HandleKeys processes the finger-selection keys; returns true when
// any selection changed.
func (ch *CursorHands) HandleKeys(in *Input, window *glfw.Window) bool {
	changed := false
	for i, key := range []glfw.Key{glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5} {
		if in.JustPressed(window, key) {
			ch.SelectFinger(FingerName(i))
			changed = true
		}
	}
	if in.JustPressed(window, glfw.KeyTab) {
		ch.SwapHand()
		changed = true
	}
	return changed
}
