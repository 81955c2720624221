package lab

import (
	"strings"
	"testing"
)

const (
	testW = WindowWidth
	testH = WindowHeight
)

// handAt builds one hand with a single valid fingertip.
func handAt(label HandLabel, fn FingerName, x, y float64) Hand {
	h := Hand{Label: label}
	h.Fingers[fn] = FingerPoint{X: x, Y: y, OK: true}
	return h
}

func beakerPos(chem Chemical) (float64, float64) {
	for i, b := range BeakerLayout {
		if b.Chem == chem {
			return BeakerCenter(i, testW, testH)
		}
	}
	return 0, 0
}

func ignitionPos() (float64, float64) {
	x, y, w, h := IgnitionRect(testW, testH)
	return x + w/2, y + h/2
}

func hasMessage(sm *StateMachine, substr string) bool {
	for _, m := range sm.RecentMessages(MaxRecentMessages) {
		if strings.Contains(m.Text, substr) {
			return true
		}
	}
	return false
}

func TestDipThenIgnite(t *testing.T) {
	sm := NewStateMachine(nil)
	id := MakeFingerID(HandLeft, FingerIndex)

	bx, by := beakerPos(ChemNa)
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, bx, by)}, testW, testH, 0)

	st := sm.Finger(id)
	if st.Chemical != ChemNa {
		t.Fatalf("after dip: chemical = %v, want Na", st.Chemical)
	}
	if st.HasFlame {
		t.Fatal("after dip: finger should not be lit")
	}
	if !hasMessage(sm, "dipped in Sodium") {
		t.Error("dip message missing")
	}
	if !hasMessage(sm, "Safety:") {
		t.Error("safety message missing")
	}

	ix, iy := ignitionPos()
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, ix, iy)}, testW, testH, 1)

	st = sm.Finger(id)
	if !st.HasFlame {
		t.Fatal("after ignition: finger should be lit")
	}
	if st.FlameIntensity < 0.9 || st.FlameIntensity > 1.0 {
		t.Errorf("fresh flame intensity = %v, want within [0.9, 1.0]", st.FlameIntensity)
	}
	if !strings.Contains(sm.Explanation(), "Sodium") {
		t.Error("explanation should describe sodium")
	}
	if !hasMessage(sm, "ignited with Sodium") {
		t.Error("ignition message missing")
	}
}

func TestIgnitionRequiresChemical(t *testing.T) {
	sm := NewStateMachine(nil)
	ix, iy := ignitionPos()
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, ix, iy)}, testW, testH, 0)

	if sm.Finger(MakeFingerID(HandLeft, FingerIndex)).HasFlame {
		t.Error("bare finger must not ignite")
	}
	if len(sm.RecentMessages(MaxRecentMessages)) != 0 {
		t.Error("no messages expected for a bare finger")
	}
}

func TestRepeatDipIsIdempotent(t *testing.T) {
	sm := NewStateMachine(nil)
	bx, by := beakerPos(ChemLi)
	hands := []Hand{handAt(HandLeft, FingerThumb, bx, by)}

	sm.Update(hands, testW, testH, 0)
	n := len(sm.RecentMessages(MaxRecentMessages))
	sm.Update(hands, testW, testH, 0.016)
	sm.Update(hands, testW, testH, 0.033)

	if got := len(sm.RecentMessages(MaxRecentMessages)); got != n {
		t.Errorf("hovering over the same beaker logged %d extra messages", got-n)
	}
}

func TestCleanResetsFinger(t *testing.T) {
	sm := NewStateMachine(nil)
	id := MakeFingerID(HandRight, FingerIndex)

	bx, by := beakerPos(ChemCu)
	sm.Update([]Hand{handAt(HandRight, FingerIndex, bx, by)}, testW, testH, 0)
	ix, iy := ignitionPos()
	sm.Update([]Hand{handAt(HandRight, FingerIndex, ix, iy)}, testW, testH, 1)

	wx, wy := WaterCenter(testW, testH)
	sm.Update([]Hand{handAt(HandRight, FingerIndex, wx, wy)}, testW, testH, 2)

	if st := sm.Finger(id); st != (FingerState{}) {
		t.Errorf("after cleaning: state = %+v, want zero", st)
	}
	if !hasMessage(sm, "cleaned with water") {
		t.Error("clean message missing")
	}

	// Washing an already clean finger logs nothing.
	n := len(sm.RecentMessages(MaxRecentMessages))
	sm.Update([]Hand{handAt(HandRight, FingerIndex, wx, wy)}, testW, testH, 3)
	if got := len(sm.RecentMessages(MaxRecentMessages)); got != n {
		t.Error("cleaning an empty finger should be silent")
	}
}

func TestIntensityDecay(t *testing.T) {
	sm := NewStateMachine(nil)
	id := MakeFingerID(HandLeft, FingerIndex)

	bx, by := beakerPos(ChemNa)
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, bx, by)}, testW, testH, 0)
	ix, iy := ignitionPos()
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, ix, iy)}, testW, testH, 0)

	// Decay runs even while the detector loses the hand.
	sm.Update(nil, testW, testH, 5)
	mid := sm.Finger(id).FlameIntensity
	if mid <= FlameFloor || mid >= 1.0 {
		t.Errorf("intensity after 5s = %v, want in (%v, 1.0)", mid, FlameFloor)
	}

	// Past the decay window the intensity sits on the floor, plus or
	// minus the flicker.
	sm.Update(nil, testW, testH, 30)
	late := sm.Finger(id).FlameIntensity
	if late < FlameFloor-FlickerAmplitude || late > FlameFloor+FlickerAmplitude {
		t.Errorf("intensity after 30s = %v, want near floor %v", late, FlameFloor)
	}
	if !sm.Finger(id).HasFlame {
		t.Error("decayed flame should still burn at the floor")
	}
}

func TestMixTwoFlames(t *testing.T) {
	sm := NewStateMachine(nil)

	// Light Na on the left index.
	bx, by := beakerPos(ChemNa)
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, bx, by)}, testW, testH, 0)
	ix, iy := ignitionPos()
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, ix, iy)}, testW, testH, 1)

	// Light K on the right index, keeping the left finger far away.
	bx, by = beakerPos(ChemK)
	sm.Update([]Hand{
		handAt(HandLeft, FingerIndex, 900, 500),
		handAt(HandRight, FingerIndex, bx, by),
	}, testW, testH, 2)
	sm.Update([]Hand{
		handAt(HandLeft, FingerIndex, 900, 500),
		handAt(HandRight, FingerIndex, ix, iy),
	}, testW, testH, 3)

	// Bring the flames together.
	sm.Update([]Hand{
		handAt(HandLeft, FingerIndex, 500, 300),
		handAt(HandRight, FingerIndex, 530, 300),
	}, testW, testH, 4)

	if !hasMessage(sm, "Mixing Na + K") {
		t.Error("mix message missing")
	}
	if !strings.Contains(sm.Explanation(), "Chemical Reaction") {
		t.Error("mix explanation missing")
	}

	// Mixing is informational: both flames keep burning.
	for _, id := range []FingerID{MakeFingerID(HandLeft, FingerIndex), MakeFingerID(HandRight, FingerIndex)} {
		if !sm.Finger(id).HasFlame {
			t.Errorf("%s lost its flame during mixing", id)
		}
	}
}

func TestMixCooldown(t *testing.T) {
	sm := NewStateMachine(nil)

	bx, by := beakerPos(ChemNa)
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, bx, by)}, testW, testH, 0)
	ix, iy := ignitionPos()
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, ix, iy)}, testW, testH, 0.1)
	bx, by = beakerPos(ChemK)
	sm.Update([]Hand{
		handAt(HandLeft, FingerIndex, 900, 500),
		handAt(HandRight, FingerIndex, bx, by),
	}, testW, testH, 0.2)
	sm.Update([]Hand{
		handAt(HandLeft, FingerIndex, 900, 500),
		handAt(HandRight, FingerIndex, ix, iy),
	}, testW, testH, 0.3)

	together := []Hand{
		handAt(HandLeft, FingerIndex, 500, 300),
		handAt(HandRight, FingerIndex, 530, 300),
	}
	sm.Update(together, testW, testH, 5.0)
	sm.Update(together, testW, testH, 5.1)
	sm.Update(together, testW, testH, 5.2)

	count := 0
	for _, m := range sm.RecentMessages(MaxRecentMessages) {
		if strings.Contains(m.Text, "Mixing") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("held pair logged %d mix messages, want 1", count)
	}
}

func TestFlameTransfer(t *testing.T) {
	sm := NewStateMachine(nil)

	// Left index burns Na.
	bx, by := beakerPos(ChemNa)
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, bx, by)}, testW, testH, 0)
	ix, iy := ignitionPos()
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, ix, iy)}, testW, testH, 1)

	// Right middle holds unlit Cu.
	bx, by = beakerPos(ChemCu)
	sm.Update([]Hand{
		handAt(HandLeft, FingerIndex, 900, 500),
		handAt(HandRight, FingerMiddle, bx, by),
	}, testW, testH, 2)

	// Touch them: the flame jumps across.
	sm.Update([]Hand{
		handAt(HandLeft, FingerIndex, 500, 300),
		handAt(HandRight, FingerMiddle, 530, 300),
	}, testW, testH, 3)

	st := sm.Finger(MakeFingerID(HandRight, FingerMiddle))
	if !st.HasFlame {
		t.Fatal("transfer target should be lit")
	}
	if st.Chemical != ChemCu {
		t.Errorf("transfer target burns %v, want its own Cu", st.Chemical)
	}
	if !hasMessage(sm, "flame transfer") {
		t.Error("transfer message missing")
	}
}

func TestMessageLogBounded(t *testing.T) {
	sm := NewStateMachine(nil)
	nx, ny := beakerPos(ChemNa)
	kx, ky := beakerPos(ChemK)

	// Alternate beakers so the re-dip guard never suppresses a message.
	for i := 0; i < 8; i++ {
		sm.Update([]Hand{handAt(HandLeft, FingerIndex, nx, ny)}, testW, testH, float64(2*i))
		sm.Update([]Hand{handAt(HandLeft, FingerIndex, kx, ky)}, testW, testH, float64(2*i+1))
	}
	if got := len(sm.RecentMessages(100)); got != MaxRecentMessages {
		t.Errorf("log holds %d messages, want capped at %d", got, MaxRecentMessages)
	}
}

func TestResetAll(t *testing.T) {
	sm := NewStateMachine(nil)
	bx, by := beakerPos(ChemCa)
	sm.Update([]Hand{handAt(HandLeft, FingerRing, bx, by)}, testW, testH, 0)
	ix, iy := ignitionPos()
	sm.Update([]Hand{handAt(HandLeft, FingerRing, ix, iy)}, testW, testH, 1)

	sm.ResetAll()

	for id := 0; id < NumFingers; id++ {
		if st := sm.Finger(FingerID(id)); st != (FingerState{}) {
			t.Errorf("finger %v not cleared: %+v", FingerID(id), st)
		}
	}
	if len(sm.RecentMessages(MaxRecentMessages)) != 0 {
		t.Error("messages not cleared")
	}
	if sm.Explanation() != "" {
		t.Error("explanation not cleared")
	}
}

func TestEventBusEmission(t *testing.T) {
	bus := NewEventBus()
	sm := NewStateMachine(bus)

	var got []EventType
	for _, et := range []EventType{EventDip, EventIgnite, EventClean} {
		et := et
		bus.Subscribe(et, func(e Event) { got = append(got, et) })
	}

	bx, by := beakerPos(ChemNa)
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, bx, by)}, testW, testH, 0)
	ix, iy := ignitionPos()
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, ix, iy)}, testW, testH, 1)
	wx, wy := WaterCenter(testW, testH)
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, wx, wy)}, testW, testH, 2)

	want := []EventType{EventDip, EventIgnite, EventClean}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestActiveChemicalsAndFlamingFingers(t *testing.T) {
	sm := NewStateMachine(nil)

	bx, by := beakerPos(ChemNa)
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, bx, by)}, testW, testH, 0)
	bx, by = beakerPos(ChemK)
	sm.Update([]Hand{handAt(HandRight, FingerIndex, bx, by)}, testW, testH, 1)

	active := sm.ActiveChemicals()
	if len(active) != 2 || active[0] != ChemNa || active[1] != ChemK {
		t.Errorf("ActiveChemicals() = %v, want [Na K]", active)
	}
	if len(sm.FlamingFingers()) != 0 {
		t.Error("no finger should be lit yet")
	}

	ix, iy := ignitionPos()
	sm.Update([]Hand{handAt(HandLeft, FingerIndex, ix, iy)}, testW, testH, 2)
	flaming := sm.FlamingFingers()
	if len(flaming) != 1 || flaming[0] != MakeFingerID(HandLeft, FingerIndex) {
		t.Errorf("FlamingFingers() = %v", flaming)
	}
}

func TestFingerPosition(t *testing.T) {
	hands := []Hand{handAt(HandRight, FingerPinky, 12, 34)}

	p, ok := FingerPosition(MakeFingerID(HandRight, FingerPinky), hands)
	if !ok || p.X != 12 || p.Y != 34 {
		t.Errorf("FingerPosition = %+v, %v", p, ok)
	}
	if _, ok := FingerPosition(MakeFingerID(HandLeft, FingerPinky), hands); ok {
		t.Error("undetected finger reported a position")
	}
}
