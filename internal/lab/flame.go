package lab

import "math"

// The flame model is deliberately pure: the silhouette and the row
// colours are functions of (position, chemical, frame counter) only,
// so a recorded session renders identically on replay.

// FlameShape samples a closed silhouette around the flame origin. The
// base radius tapers toward the tip and both radius and height are
// perturbed by valueNoise keyed to the angle and a time-scaled frame
// counter, which makes the flame writhe without any stateful
// randomness.
func FlameShape(x, y float64, frameCount int, intensity float64) []Point {
	height := FlameHeight * intensity
	width := FlameWidth * intensity
	timeFactor := float64(frameCount) * FlameTimeScale

	pts := make([]Point, 0, FlamePoints)
	for i := 0; i < FlamePoints; i++ {
		angle := float64(i) / FlamePoints * 2 * math.Pi
		heightFactor := float64(i) / FlamePoints
		baseRadius := width * (1 - heightFactor*0.6)

		noiseX := valueNoise(angle*3, timeFactor) * FlameNoiseAmpX * intensity
		noiseY := valueNoise(angle*3+100, timeFactor) * FlameNoiseAmpY * intensity

		radius := baseRadius + noiseX
		px := x + radius*math.Cos(angle)
		py := y - heightFactor*height + noiseY

		pts = append(pts, Point{X: int(px), Y: int(py)})
	}
	return pts
}

// FlameRowShade computes the colour and blend alpha for one horizontal
// row of a filled flame. gradientFactor runs 0 at the tip to 1 at the
// base; rows near the base blend toward white-hot, and a per-row
// sinusoidal flicker keyed to the frame counter keeps the body alive.
func FlameRowShade(base RGB, intensity, gradientFactor float64, frameCount, row int) (RGB, float64) {
	rowIntensity := intensity * (0.3 + 0.7*gradientFactor)
	flicker := 0.8 + 0.2*math.Sin(float64(frameCount)*0.3+float64(row)*0.1)
	rowIntensity *= flicker

	col := flameColor(base, rowIntensity, gradientFactor)
	alpha := clampF(0.7*rowIntensity, 0, 1)
	return col, alpha
}

// flameColor applies the temperature gradient to the chemical's base
// colour: the hottest 30% of the flame gains white/yellow.
func flameColor(base RGB, intensity, gradientFactor float64) RGB {
	r := float64(base.R)
	g := float64(base.G)
	b := float64(base.B)

	if gradientFactor > 0.7 {
		heat := (gradientFactor - 0.7) / 0.3
		r = math.Min(255, r+heat*(255-r)*0.8)
		g = math.Min(255, g+heat*(255-g)*0.6)
		b = math.Min(255, b+heat*50)
	}

	return RGB{
		R: uint8(clampF(r*intensity, 0, 255)),
		G: uint8(clampF(g*intensity, 0, 255)),
		B: uint8(clampF(b*intensity, 0, 255)),
	}
}
