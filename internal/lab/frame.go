package lab

import "math"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Frame is a mutable RGB pixel buffer. The renderer paints the whole
// scene into it on the CPU; the GL layer uploads it as one texture per
// tick.
type Frame struct {
	W, H int
	Pix  []uint8 // 3 bytes per pixel, row-major
}

func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]uint8, w*h*3)}
}

func (f *Frame) idx(x, y int) int { return (y*f.W + x) * 3 }

func (f *Frame) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.W && y < f.H
}

func (f *Frame) Set(x, y int, c RGB) {
	if !f.in(x, y) {
		return
	}
	i := f.idx(x, y)
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
}

func (f *Frame) At(x, y int) RGB {
	if !f.in(x, y) {
		return RGB{}
	}
	i := f.idx(x, y)
	return RGB{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
}

// Blend alpha-composites c over the existing pixel.
func (f *Frame) Blend(x, y int, c RGB, alpha float64) {
	if !f.in(x, y) || alpha <= 0 {
		return
	}
	if alpha >= 1 {
		f.Set(x, y, c)
		return
	}
	i := f.idx(x, y)
	f.Pix[i] = lerpU8(f.Pix[i], c.R, alpha)
	f.Pix[i+1] = lerpU8(f.Pix[i+1], c.G, alpha)
	f.Pix[i+2] = lerpU8(f.Pix[i+2], c.B, alpha)
}

func (f *Frame) Fill(c RGB) {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			f.Set(x, y, c)
		}
	}
}

func (f *Frame) FillRect(x, y, w, h int, c RGB) {
	x0 := clamp(x, 0, f.W)
	y0 := clamp(y, 0, f.H)
	x1 := clamp(x+w, 0, f.W)
	y1 := clamp(y+h, 0, f.H)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			f.Set(px, py, c)
		}
	}
}

func (f *Frame) BlendRect(x, y, w, h int, c RGB, alpha float64) {
	x0 := clamp(x, 0, f.W)
	y0 := clamp(y, 0, f.H)
	x1 := clamp(x+w, 0, f.W)
	y1 := clamp(y+h, 0, f.H)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			f.Blend(px, py, c, alpha)
		}
	}
}

func (f *Frame) RectOutline(x, y, w, h, thickness int, c RGB) {
	for t := 0; t < thickness; t++ {
		f.Line(x-t, y-t, x+w+t, y-t, c)
		f.Line(x-t, y+h+t, x+w+t, y+h+t, c)
		f.Line(x-t, y-t, x-t, y+h+t, c)
		f.Line(x+w+t, y-t, x+w+t, y+h+t, c)
	}
}

// Line draws with Bresenham.
func (f *Frame) Line(x0, y0, x1, y1 int, c RGB) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		f.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (f *Frame) FillCircle(cx, cy, r int, c RGB) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				f.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

func (f *Frame) BlendCircle(cx, cy, r int, c RGB, alpha float64) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				f.Blend(cx+dx, cy+dy, c, alpha)
			}
		}
	}
}

func (f *Frame) CircleOutline(cx, cy, r, thickness int, c RGB) {
	if r <= 0 {
		return
	}
	inner := r - thickness
	if inner < 0 {
		inner = 0
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d2 := dx*dx + dy*dy
			if d2 <= r*r && d2 >= inner*inner {
				f.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// EllipseOutline draws an axis-aligned ellipse outline (beaker rims).
func (f *Frame) EllipseOutline(cx, cy, rx, ry, thickness int, c RGB) {
	if rx <= 0 || ry <= 0 {
		return
	}
	steps := 4 * (rx + ry)
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		x := cx + int(float64(rx)*math.Cos(a))
		y := cy + int(float64(ry)*math.Sin(a))
		if thickness <= 1 {
			f.Set(x, y, c)
		} else {
			f.FillCircle(x, y, thickness/2, c)
		}
	}
}

func (f *Frame) FillEllipse(cx, cy, rx, ry int, c RGB) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		fy := float64(dy) / float64(ry)
		span := float64(rx) * math.Sqrt(math.Max(0, 1-fy*fy))
		for dx := -int(span); dx <= int(span); dx++ {
			f.Set(cx+dx, cy+dy, c)
		}
	}
}

// FillPoly scan-fills a closed polygon with a flat colour.
func (f *Frame) FillPoly(pts []Point, c RGB) {
	f.FillPolyShaded(pts, func(row, minY, maxY int) (RGB, float64) {
		return c, 1.0
	})
}

// FillPolyShaded scan-fills a closed polygon, asking shade for each
// row's colour and blend alpha. The flame gradient renders through
// this: the shade callback sees the row together with the polygon's
// vertical bounds and alpha-composites over whatever is beneath.
func (f *Frame) FillPolyShaded(pts []Point, shade func(row, minY, maxY int) (RGB, float64)) {
	if len(pts) < 3 {
		return
	}
	minY := pts[0].Y
	maxY := pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= f.H {
		maxY = f.H - 1
	}

	var xs []int
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		j := len(pts) - 1
		for i := range pts {
			a, b := pts[i], pts[j]
			j = i
			if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
				t := float64(y-a.Y) / float64(b.Y-a.Y)
				xs = append(xs, a.X+int(t*float64(b.X-a.X)))
			}
		}
		if len(xs) < 2 {
			continue
		}
		// Insertion sort; the crossing list is tiny.
		for i := 1; i < len(xs); i++ {
			for k := i; k > 0 && xs[k] < xs[k-1]; k-- {
				xs[k], xs[k-1] = xs[k-1], xs[k]
			}
		}
		col, alpha := shade(y, minY, maxY)
		if alpha <= 0 {
			continue
		}
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := clamp(xs[i], 0, f.W-1)
			x1 := clamp(xs[i+1], 0, f.W-1)
			for x := x0; x <= x1; x++ {
				f.Blend(x, y, col, alpha)
			}
		}
	}
}

// GlowCircle composites a soft radial glow, the CPU stand-in for the
// blur-a-disc-then-blend effect: a Gaussian falloff from the centre
// out to radius.
func (f *Frame) GlowCircle(cx, cy int, radius float64, c RGB, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	r := int(radius)
	r2 := radius * radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d2 := float64(dx*dx + dy*dy)
			if d2 > r2 {
				continue
			}
			fall := math.Exp(-d2 / r2 * 5)
			f.Blend(cx+dx, cy+dy, c, alpha*fall)
		}
	}
}

// Text draws a string with the embedded 5x7 font. scale is an integer
// pixel multiplier; returns nothing, clipping silently at the edges.
func (f *Frame) Text(x, y int, s string, scale int, c RGB) {
	if scale < 1 {
		scale = 1
	}
	cx := x
	for _, ch := range s {
		if ch < 32 || ch > 127 {
			ch = '?'
		}
		glyph := font5x7[ch-32]
		for col := 0; col < 5; col++ {
			bits := glyph[col]
			for row := 0; row < 7; row++ {
				if bits&(1<<row) == 0 {
					continue
				}
				f.FillRect(cx+col*scale, y+row*scale, scale, scale, c)
			}
		}
		cx += 6 * scale
	}
}

// TextWidth returns the pixel width of s at the given scale.
func TextWidth(s string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	return len(s) * 6 * scale
}
