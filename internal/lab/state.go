package lab

import (
	"fmt"
	"math"
)

// FingerState tracks what one fingertip is carrying. The ten records
// are created at startup and mutated in place for the whole session.
type FingerState struct {
	Chemical        Chemical
	HasFlame        bool
	DipTime         float64 // seconds, 0 if never dipped
	FlameIntensity  float64 // 0..1 while lit, 0 otherwise
	LastInteraction float64 // seconds, timestamp of last ignition
}

// Message is one entry of the bounded educational log.
type Message struct {
	Text      string
	Timestamp float64
}

// StateMachine converts per-frame fingertip positions into chemical
// state transitions and human-readable messages. It owns all mutable
// interaction state; renderers read it, never write it.
type StateMachine struct {
	fingers     [NumFingers]FingerState
	messages    []Message
	explanation string
	bus         *EventBus
	lastMix     map[[2]FingerID]float64
}

// NewStateMachine builds the machine with every finger empty. bus may
// be nil when no visual/audio feedback is wanted (tests).
func NewStateMachine(bus *EventBus) *StateMachine {
	return &StateMachine{bus: bus, lastMix: make(map[[2]FingerID]float64)}
}

// Zone geometry. Zones are fractions of the current screen size so
// they track window resizes; the renderer uses the same helpers.

// BeakerCenter returns the zone centre for the i-th beaker of
// BeakerLayout.
func BeakerCenter(i, screenW, screenH int) (float64, float64) {
	return BeakerLayout[i].XRatio * float64(screenW), float64(screenH - BeakerRowOffset)
}

// WaterCenter returns the cleaning zone centre (top-centre).
func WaterCenter(screenW, screenH int) (float64, float64) {
	return WaterXRatio * float64(screenW), WaterYRatio * float64(screenH)
}

// IgnitionRect returns the ignition zone rectangle near the left edge.
func IgnitionRect(screenW, screenH int) (x, y, w, h float64) {
	fw := float64(screenW)
	fh := float64(screenH)
	return IgnitionXRatio * fw, IgnitionYRatio * fh, IgnitionWRatio * fw, IgnitionHRatio * fh
}

// Update advances the machine one tick. hands holds the fingers the
// detector found this frame; fingers it misses keep their state
// untouched. now is the wall-clock timestamp in seconds; passing a
// recorded value replays a session exactly.
func (s *StateMachine) Update(hands []Hand, screenW, screenH int, now float64) {
	for _, hand := range hands {
		for f := FingerName(0); f < FingerCount; f++ {
			p := hand.Fingers[f]
			if !p.OK {
				continue
			}
			id := MakeFingerID(hand.Label, f)
			s.checkBeakers(id, p, screenW, screenH, now)
			s.checkWater(id, p, screenW, screenH, now)
			s.checkIgnition(id, p, screenW, screenH, now)
		}
	}

	s.checkPairwise(hands, now)
	s.updateIntensities(now)
}

func (s *StateMachine) checkBeakers(id FingerID, p FingerPoint, screenW, screenH int, now float64) {
	for i := range BeakerLayout {
		cx, cy := BeakerCenter(i, screenW, screenH)
		if !pointInCircle(p.X, p.Y, cx, cy, InteractionRadius) {
			continue
		}
		chem := BeakerLayout[i].Chem
		if st := s.fingers[id]; st.Chemical == chem && !st.HasFlame {
			continue // still hovering over the same beaker
		}
		s.dip(id, chem, now)
		s.addMessage(fmt.Sprintf("%s dipped in %s (%s)", id, Chemicals[chem].Name, chem.Symbol()), now)
		s.emit(Event{Type: EventDip, Finger: id, Chem: chem, X: p.X, Y: p.Y})
	}
}

func (s *StateMachine) checkWater(id FingerID, p FingerPoint, screenW, screenH int, now float64) {
	cx, cy := WaterCenter(screenW, screenH)
	if !pointInCircle(p.X, p.Y, cx, cy, InteractionRadius) {
		return
	}
	if st := s.fingers[id]; st.Chemical == ChemNone && !st.HasFlame {
		return // nothing to wash off
	}
	s.resetFinger(id)
	s.addMessage(fmt.Sprintf("%s cleaned with water", id), now)
	s.emit(Event{Type: EventClean, Finger: id, X: p.X, Y: p.Y})
}

func (s *StateMachine) checkIgnition(id FingerID, p FingerPoint, screenW, screenH int, now float64) {
	x, y, w, h := IgnitionRect(screenW, screenH)
	if !pointInRect(p.X, p.Y, x, y, w, h) {
		return
	}
	st := &s.fingers[id]
	if st.Chemical == ChemNone || st.HasFlame {
		return
	}
	chem := st.Chemical
	s.ignite(id, now)
	s.addMessage(fmt.Sprintf("%s ignited with %s!", id, Chemicals[chem].Name), now)
	s.explanation = ChemicalExplanation(chem)
	s.emit(Event{Type: EventIgnite, Finger: id, Chem: chem, X: p.X, Y: p.Y})
}

// checkPairwise runs the flame-to-flame mixing pass and then the
// flame-to-chemical transfer pass over the fingers detected this
// frame. The two thresholds are close (60px vs 50px) but deliberately
// independent: both checks may fire in the same frame.
func (s *StateMachine) checkPairwise(hands []Hand, now float64) {
	type tracked struct {
		id   FingerID
		x, y float64
	}
	var flaming, holding []tracked

	for _, hand := range hands {
		for f := FingerName(0); f < FingerCount; f++ {
			p := hand.Fingers[f]
			if !p.OK {
				continue
			}
			id := MakeFingerID(hand.Label, f)
			st := &s.fingers[id]
			switch {
			case st.HasFlame:
				flaming = append(flaming, tracked{id, p.X, p.Y})
			case st.Chemical != ChemNone:
				holding = append(holding, tracked{id, p.X, p.Y})
			}
		}
	}

	// Flame-to-flame mixing: informational only, state is untouched.
	for i := 0; i < len(flaming); i++ {
		for j := i + 1; j < len(flaming); j++ {
			a, b := flaming[i], flaming[j]
			if dist2D(a.x, a.y, b.x, b.y) > MixDistance {
				continue
			}
			s.mix(a.id, b.id, a.x, a.y, b.x, b.y, now)
		}
	}

	// Flame-to-chemical transfer: ignite the holding finger.
	for _, src := range flaming {
		for _, dst := range holding {
			if dist2D(src.x, src.y, dst.x, dst.y) > TransferDistance {
				continue
			}
			st := &s.fingers[dst.id]
			if st.HasFlame || st.Chemical == ChemNone {
				continue // already lit by an earlier pair this frame
			}
			chem := st.Chemical
			s.ignite(dst.id, now)
			s.addMessage(fmt.Sprintf("%s ignited by flame transfer with %s!", dst.id, Chemicals[chem].Name), now)
			s.explanation = fmt.Sprintf("Flame Transfer: %s was ignited by touching another flame. %s",
				dst.id, ChemicalExplanation(chem))
			s.emit(Event{
				Type: EventTransfer, Finger: dst.id, Chem: chem,
				Other: src.id, OtherChem: s.fingers[src.id].Chemical,
				X: dst.x, Y: dst.y, X2: src.x, Y2: src.y,
			})
		}
	}
}

func (s *StateMachine) mix(a, b FingerID, ax, ay, bx, by, now float64) {
	ca := s.fingers[a].Chemical
	cb := s.fingers[b].Chemical
	if ca == ChemNone || cb == ChemNone || ca == cb {
		return
	}

	key := [2]FingerID{a, b}
	if a > b {
		key = [2]FingerID{b, a}
	}
	if last, ok := s.lastMix[key]; ok && now-last < MixCooldown {
		return // pair is still held together from the last mix
	}
	s.lastMix[key] = now

	if m, ok := Mixtures[CanonicalPair(ca, cb)]; ok {
		s.addMessage(fmt.Sprintf("Mixing %s + %s: %s", ca.Symbol(), cb.Symbol(), m.Description), now)
		s.explanation = fmt.Sprintf("Chemical Reaction: %s\n\nRealistic Note: %s", m.Explanation, m.RealisticNote)
	} else {
		s.addMessage(fmt.Sprintf("Mixing %s + %s: No significant color change observed", ca.Symbol(), cb.Symbol()), now)
		s.explanation = "These chemicals don't produce a notable flame color change when mixed."
	}
	s.emit(Event{
		Type: EventMix, Finger: a, Chem: ca, Other: b, OtherChem: cb,
		X: ax, Y: ay, X2: bx, Y2: by,
	})
}

func (s *StateMachine) dip(id FingerID, chem Chemical, now float64) {
	st := &s.fingers[id]
	st.Chemical = chem
	st.DipTime = now
	st.HasFlame = false
	st.FlameIntensity = 0

	s.addMessage("Safety: "+Chemicals[chem].SafetyWarning, now)
}

func (s *StateMachine) ignite(id FingerID, now float64) {
	st := &s.fingers[id]
	st.HasFlame = true
	st.FlameIntensity = 1.0
	st.LastInteraction = now
}

func (s *StateMachine) resetFinger(id FingerID) {
	s.fingers[id] = FingerState{}
}

// ResetAll clears every finger and wipes the log. Bound to the reset
// key in the outer loop.
func (s *StateMachine) ResetAll() {
	for id := range s.fingers {
		s.resetFinger(FingerID(id))
	}
	s.messages = s.messages[:0]
	s.explanation = ""
	clear(s.lastMix)
}

// updateIntensities recomputes flame intensity for every lit finger:
// a base that decays from 1.0 toward the 0.5 floor plus a sinusoidal
// flicker, clamped to 1.0. Decay is wall-clock based, so a finger the
// detector misses for a few frames keeps decaying.
func (s *StateMachine) updateIntensities(now float64) {
	for id := range s.fingers {
		st := &s.fingers[id]
		if !st.HasFlame {
			continue
		}
		elapsed := now - st.LastInteraction
		base := math.Max(FlameFloor, 1.0-elapsed*FlameDecayRate)
		flicker := FlickerAmplitude * math.Sin(now*FlickerFrequency)
		st.FlameIntensity = math.Min(1.0, base+flicker)
	}
}

func (s *StateMachine) addMessage(text string, now float64) {
	s.messages = append(s.messages, Message{Text: text, Timestamp: now})
	if len(s.messages) > MaxRecentMessages {
		s.messages = s.messages[len(s.messages)-MaxRecentMessages:]
	}
}

func (s *StateMachine) emit(e Event) {
	if s.bus != nil {
		s.bus.Emit(e)
	}
}

// Finger returns a copy of one finger's state.
func (s *StateMachine) Finger(id FingerID) FingerState {
	return s.fingers[id]
}

// ActiveChemicals lists the distinct chemicals currently held by any
// finger, in finger order.
func (s *StateMachine) ActiveChemicals() []Chemical {
	seen := [ChemBa + 1]bool{}
	var active []Chemical
	for id := range s.fingers {
		c := s.fingers[id].Chemical
		if c != ChemNone && !seen[c] {
			seen[c] = true
			active = append(active, c)
		}
	}
	return active
}

// FlamingFingers lists the fingers currently aflame.
func (s *StateMachine) FlamingFingers() []FingerID {
	var out []FingerID
	for id := range s.fingers {
		if s.fingers[id].HasFlame {
			out = append(out, FingerID(id))
		}
	}
	return out
}

// Explanation returns the most recent detailed explanation text.
func (s *StateMachine) Explanation() string { return s.explanation }

// RecentMessages returns up to n of the newest messages, oldest first.
func (s *StateMachine) RecentMessages(n int) []Message {
	if n <= 0 || len(s.messages) == 0 {
		return nil
	}
	if n > len(s.messages) {
		n = len(s.messages)
	}
	return s.messages[len(s.messages)-n:]
}

// FingerPosition finds one finger's detected position in hands, if
// present this frame.
func FingerPosition(id FingerID, hands []Hand) (FingerPoint, bool) {
	for _, hand := range hands {
		if hand.Label != id.Hand() {
			continue
		}
		p := hand.Fingers[id.Finger()]
		if p.OK {
			return p, true
		}
	}
	return FingerPoint{}, false
}
