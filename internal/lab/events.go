package lab

type EventType int

const (
	EventDip EventType = iota
	EventClean
	EventIgnite
	EventMix
	EventTransfer
)

// Event describes one interaction the state machine observed. X/Y is
// the primary fingertip; X2/Y2 and OtherChem are set for pairwise
// events (mix, transfer).
type Event struct {
	Type      EventType
	Finger    FingerID
	Chem      Chemical
	Other     FingerID
	OtherChem Chemical
	X, Y      float64
	X2, Y2    float64
}

// MixColor resolves the visual colour for a mix event: the table's
// result colour when the pair is known, otherwise an even blend of the
// two base colours.
func (e Event) MixColor() RGB {
	if m, ok := Mixtures[CanonicalPair(e.Chem, e.OtherChem)]; ok {
		return m.ResultColor
	}
	return lerpRGB(Chemicals[e.Chem].Color, Chemicals[e.OtherChem].Color, 0.5)
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
