package lab

import "testing"

func TestFlameShapeDeterministic(t *testing.T) {
	a := FlameShape(400, 300, 120, 0.9)
	b := FlameShape(400, 300, 120, 0.9)
	if len(a) != FlamePoints {
		t.Fatalf("silhouette has %d points, want %d", len(a), FlamePoints)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs between identical calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFlameShapeAnimates(t *testing.T) {
	a := FlameShape(400, 300, 0, 0.9)
	b := FlameShape(400, 300, 30, 0.9)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("silhouette should change with the frame counter")
	}
}

func extentY(pts []Point) int {
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return maxY - minY
}

func TestFlameShapeScalesWithIntensity(t *testing.T) {
	full := FlameShape(400, 300, 10, 1.0)
	half := FlameShape(400, 300, 10, 0.5)
	if extentY(half) >= extentY(full) {
		t.Errorf("half-intensity flame taller than full: %d vs %d", extentY(half), extentY(full))
	}
}

func TestFlameRowShade(t *testing.T) {
	base := Chemicals[ChemNa].Color

	for _, frame := range []int{0, 17, 123} {
		_, tipAlpha := FlameRowShade(base, 0.9, 0.0, frame, 40)
		_, baseAlpha := FlameRowShade(base, 0.9, 1.0, frame, 40)
		if tipAlpha < 0 || tipAlpha > 1 || baseAlpha < 0 || baseAlpha > 1 {
			t.Errorf("frame %d: alpha out of range: tip %v base %v", frame, tipAlpha, baseAlpha)
		}
		if baseAlpha <= tipAlpha {
			t.Errorf("frame %d: base alpha %v not above tip alpha %v", frame, baseAlpha, tipAlpha)
		}
	}
}

func TestFlameColorHeat(t *testing.T) {
	base := RGB{R: 255, G: 0, B: 0}

	cool := flameColor(base, 1.0, 0.5)
	hot := flameColor(base, 1.0, 1.0)

	// The hottest rows blend toward white: green and blue rise.
	if hot.G <= cool.G || hot.B <= cool.B {
		t.Errorf("hot row %v not whiter than cool row %v", hot, cool)
	}

	// Intensity scales everything down.
	dim := flameColor(base, 0.5, 0.5)
	if dim.R >= cool.R {
		t.Errorf("dim row %v not darker than %v", dim, cool)
	}
}

func TestValueNoise(t *testing.T) {
	for _, xy := range [][2]float64{{0, 0}, {1.5, 2.5}, {300.1, 0.7}, {-4, 9}} {
		v := valueNoise(xy[0], xy[1])
		if v < -0.5 || v >= 0.5 {
			t.Errorf("valueNoise(%v, %v) = %v, want [-0.5, 0.5)", xy[0], xy[1], v)
		}
		if v != valueNoise(xy[0], xy[1]) {
			t.Errorf("valueNoise(%v, %v) not deterministic", xy[0], xy[1])
		}
	}
}
