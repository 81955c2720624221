package lab

import (
	"fmt"
	"math"
)

// Scene paints the whole AR overlay into the CPU frame: ignition area,
// beakers, flames, particles, then the sidebar UI. One call per tick.
type Scene struct {
	animFrame int
}

func NewScene() *Scene { return &Scene{} }

// Render composites everything onto f, which already holds the camera
// image. frameCount drives the deterministic flame and liquid motion.
func (sc *Scene) Render(f *Frame, sm *StateMachine, ps *ParticleSystem, hands []Hand, frameCount int, fps int) {
	sc.animFrame++

	sc.renderIgnitionArea(f)
	for i := range BeakerLayout {
		cx, cy := BeakerCenter(i, f.W, f.H)
		sc.renderChemicalBeaker(f, int(cx), int(cy), BeakerLayout[i].Chem)
	}
	sc.renderWaterBeaker(f)

	// Flames ride the fingertips; each burning flame also feeds the
	// particle stream.
	for _, id := range sm.FlamingFingers() {
		p, ok := FingerPosition(id, hands)
		if !ok {
			continue
		}
		st := sm.Finger(id)
		RenderFlame(f, p.X, p.Y, st.Chemical, frameCount, st.FlameIntensity)
		ps.SpawnFlame(p.X, p.Y, st.Chemical)
	}

	ps.Tick()
	RenderParticles(f, ps)

	sc.renderSidebar(f, sm)
	renderFingerLabels(f, sm, hands)
	renderProximityFeedback(f, hands)

	f.Text(10, 22, fmt.Sprintf("FPS: %d", fps), 2, Palette.Green)
}

// RenderFlame draws one procedural flame: filled silhouette with a
// tip-to-base gradient, a soft glow, and a bright core. flameIntensity
// is the finger's time-varying 0..1 value; the chemical's own
// intensity scales on top of it.
func RenderFlame(f *Frame, x, y float64, chem Chemical, frameCount int, flameIntensity float64) {
	spec, ok := Chemicals[chem]
	if !ok {
		return
	}
	intensity := spec.Intensity * clampF(flameIntensity, 0, 1)
	if intensity <= 0 {
		return
	}

	pts := FlameShape(x, y, frameCount, intensity)
	f.FillPolyShaded(pts, func(row, minY, maxY int) (RGB, float64) {
		span := maxY - minY
		if span < 1 {
			span = 1
		}
		// Rows grow downward, so the base of the flame is maxY.
		gradient := float64(row-minY) / float64(span)
		return FlameRowShade(spec.Color, intensity, gradient, frameCount, row)
	})

	f.GlowCircle(int(x), int(y), FlameGlowRadius*intensity, spec.Color, 0.4*intensity)

	coreR := int(FlameCoreRadius * intensity)
	f.FillCircle(int(x), int(y), coreR, spec.Color.Scale(1.5))
	f.FillCircle(int(x), int(y), coreR/2, Palette.White)
}

// RenderParticles draws the live pool: smoke as translucent discs,
// everything else as a bright core with a lighter halo ring.
func RenderParticles(f *Frame, ps *ParticleSystem) {
	for i := range ps.P {
		p := &ps.P[i]
		if p.Alpha <= 0 {
			continue
		}
		x := int(p.X)
		y := int(p.Y)
		size := int(p.Size)
		if size < 1 {
			size = 1
		}
		if x < 0 || x >= f.W || y < 0 || y >= f.H {
			continue
		}

		if p.Kind == ParticleSmoke {
			f.BlendCircle(x, y, size, p.Col, p.Alpha*0.3)
			continue
		}
		inner := size / 2
		if inner < 1 {
			inner = 1
		}
		f.FillCircle(x, y, inner, p.Col)
		if size > 1 {
			f.CircleOutline(x, y, size, 1, p.Col.Scale(1.2))
		}
	}
}

func (sc *Scene) renderIgnitionArea(f *Frame) {
	x, y, w, h := IgnitionRect(f.W, f.H)
	ix, iy, iw, ih := int(x), int(y), int(w), int(h)

	pulse := 0.5 + 0.3*math.Sin(float64(sc.animFrame)*0.2)
	border := Palette.Ignition.Scale(pulse)

	f.BlendRect(ix, iy, iw, ih, RGB{R: 50, G: 25, B: 0}, 0.2*pulse)
	f.RectOutline(ix, iy, iw, ih, 3, border)

	f.Text(ix+5, iy+8, "IGNITION", 2, Palette.White)

	sc.renderBunsenBurner(f, ix+iw/2, iy+ih/2+10)
}

func (sc *Scene) renderBunsenBurner(f *Frame, x, y int) {
	f.FillRect(x-15, y+10, 30, 15, Palette.BurnerBody)
	f.FillRect(x-12, y+12, 24, 11, Palette.BurnerTube)
	f.FillRect(x-6, y-15, 12, 25, RGB{R: 120, G: 120, B: 120})
	f.FillRect(x-4, y-13, 8, 21, RGB{R: 180, G: 180, B: 180})

	// Pilot flame flickers with the animation counter.
	flameH := 8 + int(3*math.Sin(float64(sc.animFrame)*0.3))
	pilot := Palette.PilotFlame.Add(0, int(50*math.Sin(float64(sc.animFrame)*0.4)), 0)
	f.FillPoly([]Point{
		{X: x, Y: y - 15 - flameH},
		{X: x - 4, Y: y - 15},
		{X: x + 4, Y: y - 15},
	}, pilot)

	f.FillCircle(x-10, y+5, 3, Palette.Glass)
	f.FillCircle(x+10, y+5, 3, Palette.Glass)
}

func (sc *Scene) renderChemicalBeaker(f *Frame, x, y int, chem Chemical) {
	spec, ok := Chemicals[chem]
	if !ok {
		return
	}
	size := BeakerSize
	half := size / 2

	// Glass: bottom rim, walls, top rim, reflection streak.
	f.EllipseOutline(x, y+size-10, half, 8, 2, Palette.Glass)
	f.RectOutline(x-half, y, size, size-10, 2, Palette.Glass)
	f.EllipseOutline(x, y, half, 8, 2, Palette.Glass)
	f.Line(x-half/2, y+size/4, x-half/2+4, y+size/2, Palette.GlassShine)

	// Liquid with an animated surface wave.
	wave := int(math.Sin(float64(sc.animFrame)*0.1) * 2)
	liquid := spec.Color.Scale(0.8)
	f.FillRect(x-half+5, y+15+wave, size-10, size-25-wave, liquid)
	f.FillEllipse(x, y+size-15, half-5, 6, liquid)
	f.EllipseOutline(x, y+15+wave, half-5, 6, 1, Palette.White)

	// Pulsing interaction glow behind the glass.
	glowPulse := 0.3 + 0.2*math.Sin(float64(sc.animFrame)*0.1)
	f.GlowCircle(x, y+half, float64(size), spec.Color, 0.1*glowPulse)

	// Labels: symbol, name, formula.
	f.Text(x-10, y+size+8, chem.Symbol(), 2, Palette.White)
	f.Text(x-TextWidth(spec.Name, 1)/2, y+size+26, spec.Name, 1, Palette.Grey)
	f.Text(x-TextWidth(spec.Formula, 1)/2, y+size+38, spec.Formula, 1, Palette.DimGrey)
}

func (sc *Scene) renderWaterBeaker(f *Frame) {
	cx, cy := WaterCenter(f.W, f.H)
	x, y := int(cx), int(cy)
	size := WaterBeakerSize
	half := size / 2

	f.EllipseOutline(x, y+size-8, half, 6, 2, Palette.Glass)
	f.RectOutline(x-half, y, size, size-8, 2, Palette.Glass)
	f.EllipseOutline(x, y, half, 6, 2, Palette.Glass)

	f.FillRect(x-half+4, y+12, size-8, size-20, Palette.Water)
	f.FillEllipse(x, y+size-12, half-4, 4, Palette.Water)

	// Expanding ripple ring.
	phase := float64(sc.animFrame) * 0.1
	rippleAlpha := math.Sin(phase)
	if rippleAlpha > 0 {
		r := int(8 + 10*math.Sin(phase))
		f.CircleOutline(x, y+size-16, r, clamp(int(2*rippleAlpha), 1, 2), Palette.White)
	}

	f.Text(x-18, y+size+8, "H2O", 2, Palette.White)
	f.Text(x-30, y+size+26, "CLEAN", 2, RGB{R: 100, G: 255, B: 255})
}
