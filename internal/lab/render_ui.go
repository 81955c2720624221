package lab

import (
	"fmt"
	"strings"
)

// renderSidebar draws the educational panel along the right edge:
// header, active chemicals, current explanation, recent activity, and
// control instructions.
func (sc *Scene) renderSidebar(f *Frame, sm *StateMachine) {
	start := f.W - SidebarWidth

	f.BlendRect(start, 0, SidebarWidth, f.H, Palette.Sidebar, 0.85)
	f.Line(start, 0, start, f.H-1, Palette.Divider)
	f.Line(start+1, 0, start+1, f.H-1, Palette.Divider)

	y := sc.renderSidebarHeader(f, start)
	y = sc.renderActiveChemicals(f, sm, start, y)
	y = sc.renderExplanation(f, sm, start, y)
	sc.renderRecentActivity(f, sm, start, y)
	sc.renderInstructions(f, start)
}

func (sc *Scene) renderSidebarHeader(f *Frame, start int) int {
	f.Text(start+10, 16, "AR CHEMISTRY LAB", 2, Palette.White)
	f.Text(start+10, 38, "Flame Test Simulator", 1, Palette.Grey)
	f.Line(start+10, 52, f.W-10, 52, Palette.Divider)
	return 64
}

func (sc *Scene) renderActiveChemicals(f *Frame, sm *StateMachine, start, y int) int {
	f.Text(start+10, y, "ACTIVE CHEMICALS", 1, Palette.Green)
	y += 16

	found := false
	for id := 0; id < NumFingers; id++ {
		st := sm.Finger(FingerID(id))
		if st.Chemical == ChemNone {
			continue
		}
		found = true
		spec := Chemicals[st.Chemical]
		marker := "~"
		if st.HasFlame {
			marker = "*"
		}
		f.Text(start+15, y, fmt.Sprintf("%s %s: %s", marker, FingerID(id).DisplayName(), st.Chemical.Symbol()), 1, Palette.White)
		y += 12
		f.Text(start+15, y, "   "+spec.Formula, 1, Palette.DimGrey)
		y += 14
	}
	if !found {
		f.Text(start+15, y, "No chemicals active", 1, Palette.DimGrey)
		y += 14
	}

	y += 6
	f.Line(start+10, y, f.W-10, y, Palette.Divider)
	return y + 12
}

func (sc *Scene) renderExplanation(f *Frame, sm *StateMachine, start, y int) int {
	f.Text(start+10, y, "EXPLANATION", 1, Palette.Blue)
	y += 16

	if expl := sm.Explanation(); expl != "" {
		lines := wrapText(expl, 48)
		if len(lines) > 8 {
			lines = lines[:8]
		}
		for _, line := range lines {
			f.Text(start+15, y, line, 1, Palette.Grey)
			y += 11
		}
	} else {
		f.Text(start+15, y, "Dip finger in chemical", 1, Palette.DimGrey)
		y += 11
		f.Text(start+15, y, "then touch flame area", 1, Palette.DimGrey)
		y += 11
	}

	y += 6
	f.Line(start+10, y, f.W-10, y, Palette.Divider)
	return y + 12
}

func (sc *Scene) renderRecentActivity(f *Frame, sm *StateMachine, start, y int) {
	f.Text(start+10, y, "RECENT ACTIVITY", 1, Palette.Yellow)
	y += 16

	msgs := sm.RecentMessages(5)
	for i := len(msgs) - 1; i >= 0; i-- {
		lines := wrapText(msgs[i].Text, 48)
		for _, line := range lines[:min(2, len(lines))] {
			f.Text(start+15, y, line, 1, Palette.Grey)
			y += 10
		}
		y += 4
	}
}

func (sc *Scene) renderInstructions(f *Frame, start int) {
	y := f.H - 110
	f.Text(start+10, y, "CONTROLS", 1, RGB{R: 255, G: 200, B: 100})
	y += 16

	for _, line := range []string{
		"- Hover over beakers to dip",
		"- Touch flame area to ignite",
		"- Touch water to clean",
		"- Bring flames together to mix",
		"- 1-5 pick finger, TAB swap hand",
		"- R reset, Q quit",
	} {
		f.Text(start+15, y, line, 1, Palette.Grey)
		y += 12
	}
}

// renderFingerLabels tags each chemical-holding finger with its symbol
// and a flame marker when lit.
func renderFingerLabels(f *Frame, sm *StateMachine, hands []Hand) {
	for _, hand := range hands {
		for fn := FingerName(0); fn < FingerCount; fn++ {
			p := hand.Fingers[fn]
			if !p.OK {
				continue
			}
			st := sm.Finger(MakeFingerID(hand.Label, fn))
			if st.Chemical == ChemNone {
				continue
			}
			label := st.Chemical.Symbol()
			lx := int(p.X) + 20
			ly := int(p.Y) - 20

			f.FillRect(lx-5, ly-5, TextWidth(label, 2)+10, 20, RGB{})
			f.Text(lx, ly, label, 2, Palette.White)
			if st.HasFlame {
				f.FillCircle(lx+TextWidth(label, 2)+10, ly+6, 4, Palette.Ignition)
			}
		}
	}
}

// renderProximityFeedback draws a highlight ring and a connection line
// whenever a fingertip is inside a beaker or water zone.
func renderProximityFeedback(f *Frame, hands []Hand) {
	for _, hand := range hands {
		for fn := FingerName(0); fn < FingerCount; fn++ {
			p := hand.Fingers[fn]
			if !p.OK {
				continue
			}
			for i := range BeakerLayout {
				cx, cy := BeakerCenter(i, f.W, f.H)
				if pointInCircle(p.X, p.Y, cx, cy, InteractionRadius) {
					f.CircleOutline(int(cx), int(cy), InteractionRadius, 2, Palette.Highlight)
					f.Line(int(p.X), int(p.Y), int(cx), int(cy), Palette.Highlight)
				}
			}
			wx, wy := WaterCenter(f.W, f.H)
			if pointInCircle(p.X, p.Y, wx, wy, InteractionRadius) {
				cyan := RGB{R: 100, G: 255, B: 255}
				f.CircleOutline(int(wx), int(wy), InteractionRadius, 2, cyan)
				f.Line(int(p.X), int(p.Y), int(wx), int(wy), cyan)
			}
		}
	}
}

// wrapText splits s into lines of at most width characters, breaking
// on spaces; embedded newlines force a break.
func wrapText(s string, width int) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return out
}
