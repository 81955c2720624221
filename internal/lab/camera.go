package lab

// FrameSource supplies the background image the overlay is composited
// onto. The real thing would be a webcam; BenchCamera fakes a lab bench
// so the simulator runs anywhere.
type FrameSource interface {
	// NextFrame fills f with the current background image.
	NextFrame(f *Frame)
}

// BenchCamera paints a static laboratory bench: a dark vertical
// gradient wall, a worktop with hashed grain, and a vignette. The
// image is rendered once and re-blitted each tick.
type BenchCamera struct {
	cached *Frame
}

func NewBenchCamera() *BenchCamera { return &BenchCamera{} }

func (bc *BenchCamera) NextFrame(f *Frame) {
	if bc.cached == nil || bc.cached.W != f.W || bc.cached.H != f.H {
		bc.cached = NewFrame(f.W, f.H)
		bc.paint(bc.cached)
	}
	copy(f.Pix, bc.cached.Pix)
}

func (bc *BenchCamera) paint(f *Frame) {
	benchTop := f.H * 2 / 3

	for y := 0; y < f.H; y++ {
		var base RGB
		if y < benchTop {
			// Wall: darkens toward the top.
			t := float64(y) / float64(benchTop)
			base = lerpRGB(RGB{R: 22, G: 26, B: 34}, RGB{R: 48, G: 54, B: 66}, t)
		} else {
			// Worktop: warm grey, lightens toward the viewer.
			t := float64(y-benchTop) / float64(f.H-benchTop)
			base = lerpRGB(RGB{R: 58, G: 50, B: 44}, RGB{R: 82, G: 72, B: 62}, t)
		}
		for x := 0; x < f.W; x++ {
			c := base
			// Hashed grain breaks up the gradient banding.
			grain := int(hash2D(0xBE7C4, x, y)%7) - 3
			c = c.Add(grain, grain, grain)
			f.Set(x, y, c)
		}
	}

	// Bench front edge.
	f.Line(0, benchTop, f.W-1, benchTop, RGB{R: 30, G: 26, B: 22})
	f.Line(0, benchTop+1, f.W-1, benchTop+1, RGB{R: 96, G: 86, B: 74})

	bc.vignette(f)
}

// vignette darkens the corners so overlay elements read against the
// backdrop.
func (bc *BenchCamera) vignette(f *Frame) {
	cx := float64(f.W) / 2
	cy := float64(f.H) / 2
	maxD := dist2D(0, 0, cx, cy)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			d := dist2D(float64(x), float64(y), cx, cy) / maxD
			if d < 0.6 {
				continue
			}
			f.Blend(x, y, RGB{}, (d-0.6)*0.7)
		}
	}
}
