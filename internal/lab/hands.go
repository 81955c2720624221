package lab

// HandLabel distinguishes the two tracked hands.
type HandLabel uint8

const (
	HandLeft HandLabel = iota
	HandRight
	HandCount
)

func (h HandLabel) String() string {
	if h == HandLeft {
		return "Left"
	}
	return "Right"
}

// FingerName names the five tracked digits of one hand.
type FingerName uint8

const (
	FingerThumb FingerName = iota
	FingerIndex
	FingerMiddle
	FingerRing
	FingerPinky
	FingerCount
)

func (f FingerName) String() string {
	switch f {
	case FingerThumb:
		return "thumb"
	case FingerIndex:
		return "index"
	case FingerMiddle:
		return "middle"
	case FingerRing:
		return "ring"
	case FingerPinky:
		return "pinky"
	}
	return ""
}

// FingerID indexes the fixed 2x5 set of hand/finger combinations.
type FingerID uint8

const NumFingers = int(HandCount) * int(FingerCount)

func MakeFingerID(h HandLabel, f FingerName) FingerID {
	return FingerID(uint8(h)*uint8(FingerCount) + uint8(f))
}

func (id FingerID) Hand() HandLabel    { return HandLabel(uint8(id) / uint8(FingerCount)) }
func (id FingerID) Finger() FingerName { return FingerName(uint8(id) % uint8(FingerCount)) }

func (id FingerID) String() string {
	return id.Hand().String() + "_" + id.Finger().String()
}

// DisplayName renders the id the way the sidebar shows it ("Left Index").
func (id FingerID) DisplayName() string {
	f := id.Finger().String()
	if f != "" {
		f = string(f[0]-'a'+'A') + f[1:]
	}
	return id.Hand().String() + " " + f
}

// FingerPoint is one detected fingertip in screen pixels. OK is false
// when the detector did not report this finger in the current frame.
type FingerPoint struct {
	X, Y float64
	OK   bool
}

// Hand is one detected hand: a label plus per-finger positions.
type Hand struct {
	Label   HandLabel
	Fingers [FingerCount]FingerPoint
}

// HandProvider yields the hands detected in the current frame. A real
// landmark detector sits behind this boundary; the bundled provider
// drives a single fingertip from the window cursor.
type HandProvider interface {
	Hands() []Hand
}
