package lab

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Scale multiplies each channel by k, clamping to 255.
func (c RGB) Scale(k float64) RGB {
	s := func(v uint8) uint8 {
		f := float64(v) * k
		if f > 255 {
			return 255
		}
		if f < 0 {
			return 0
		}
		return uint8(f)
	}
	return RGB{R: s(c.R), G: s(c.G), B: s(c.B)}
}

var Palette = struct {
	Glass      RGB
	GlassShine RGB
	Water      RGB
	Smoke      RGB
	FlameSmoke RGB
	Ignition   RGB
	BurnerBody RGB
	BurnerTube RGB
	PilotFlame RGB
	Sidebar    RGB
	Divider    RGB
	White      RGB
	Grey       RGB
	DimGrey    RGB
	Green      RGB
	Yellow     RGB
	Blue       RGB
	Highlight  RGB
}{
	Glass:      RGB{R: 80, G: 80, B: 80},
	GlassShine: RGB{R: 200, G: 200, B: 200},
	Water:      RGB{R: 150, G: 200, B: 255},
	Smoke:      RGB{R: 100, G: 100, B: 100},
	FlameSmoke: RGB{R: 80, G: 80, B: 80},
	Ignition:   RGB{R: 255, G: 100, B: 0},
	BurnerBody: RGB{R: 100, G: 100, B: 100},
	BurnerTube: RGB{R: 150, G: 150, B: 150},
	PilotFlame: RGB{R: 255, G: 150, B: 0},
	Sidebar:    RGB{R: 30, G: 30, B: 30},
	Divider:    RGB{R: 100, G: 100, B: 100},
	White:      RGB{R: 255, G: 255, B: 255},
	Grey:       RGB{R: 200, G: 200, B: 200},
	DimGrey:    RGB{R: 150, G: 150, B: 150},
	Green:      RGB{R: 100, G: 255, B: 100},
	Yellow:     RGB{R: 255, G: 255, B: 100},
	Blue:       RGB{R: 100, G: 150, B: 255},
	Highlight:  RGB{R: 0, G: 255, B: 0},
}
