package lab

import "testing"

func TestFrameSetAt(t *testing.T) {
	f := NewFrame(16, 16)
	c := RGB{R: 10, G: 20, B: 30}
	f.Set(3, 4, c)
	if got := f.At(3, 4); got != c {
		t.Errorf("At(3,4) = %v, want %v", got, c)
	}
	if got := f.At(0, 0); got != (RGB{}) {
		t.Errorf("untouched pixel = %v, want black", got)
	}
}

func TestFrameClipping(t *testing.T) {
	f := NewFrame(8, 8)
	// None of these may panic or write anything.
	f.Set(-1, 0, Palette.White)
	f.Set(8, 0, Palette.White)
	f.Set(0, -1, Palette.White)
	f.Set(0, 8, Palette.White)
	f.FillRect(-5, -5, 20, 20, Palette.White)
	f.FillCircle(0, 0, 10, Palette.White)
	f.Line(-10, -10, 20, 20, Palette.White)

	if got := f.At(-1, 0); got != (RGB{}) {
		t.Errorf("out-of-bounds At = %v, want zero", got)
	}
}

func TestFrameBlend(t *testing.T) {
	f := NewFrame(4, 4)
	f.Set(1, 1, RGB{R: 100, G: 100, B: 100})
	f.Blend(1, 1, RGB{R: 200, G: 200, B: 200}, 0.5)
	got := f.At(1, 1)
	if got.R != 150 || got.G != 150 || got.B != 150 {
		t.Errorf("50%% blend = %v, want 150/150/150", got)
	}

	f.Blend(2, 2, Palette.White, 1.0)
	if f.At(2, 2) != Palette.White {
		t.Error("full-alpha blend should overwrite")
	}
	f.Blend(3, 3, Palette.White, 0)
	if f.At(3, 3) != (RGB{}) {
		t.Error("zero-alpha blend should be a no-op")
	}
}

func TestFillRect(t *testing.T) {
	f := NewFrame(10, 10)
	c := RGB{R: 5, G: 6, B: 7}
	f.FillRect(2, 2, 3, 3, c)
	if f.At(2, 2) != c || f.At(4, 4) != c {
		t.Error("rect interior not filled")
	}
	if f.At(5, 5) == c || f.At(1, 1) == c {
		t.Error("rect exterior painted")
	}
}

func TestLineEndpoints(t *testing.T) {
	f := NewFrame(20, 20)
	f.Line(2, 3, 15, 11, Palette.White)
	if f.At(2, 3) != Palette.White || f.At(15, 11) != Palette.White {
		t.Error("line endpoints not set")
	}
}

func TestFillPolyShaded(t *testing.T) {
	f := NewFrame(40, 40)
	tri := []Point{{X: 20, Y: 5}, {X: 5, Y: 35}, {X: 35, Y: 35}}

	var rows []int
	f.FillPolyShaded(tri, func(row, minY, maxY int) (RGB, float64) {
		rows = append(rows, row)
		return Palette.White, 1.0
	})

	if f.At(20, 20) != Palette.White {
		t.Error("triangle interior not filled")
	}
	if f.At(2, 20) == Palette.White || f.At(38, 20) == Palette.White {
		t.Error("triangle exterior painted")
	}
	if len(rows) == 0 || rows[0] != 5 {
		t.Errorf("shade callback rows start at %v, want 5", rows)
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("ABC", 1); got != 18 {
		t.Errorf("TextWidth(ABC, 1) = %d, want 18", got)
	}
	if got := TextWidth("AB", 2); got != 24 {
		t.Errorf("TextWidth(AB, 2) = %d, want 24", got)
	}
}

func TestTextDraws(t *testing.T) {
	f := NewFrame(20, 10)
	f.Text(0, 0, "I", 1, Palette.White)

	lit := 0
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if f.At(x, y) == Palette.White {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("text drew no pixels")
	}
}

func TestRandDeterministic(t *testing.T) {
	a := NewRand(12345)
	b := NewRand(12345)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(777)
	for i := 0; i < 1000; i++ {
		if v := r.Range(3, 7); v < 3 || v > 7 {
			t.Fatalf("Range(3,7) = %d", v)
		}
		if v := r.RangeF(-2, 2); v < -2 || v >= 2 {
			t.Fatalf("RangeF(-2,2) = %v", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v", v)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestLerpRGB(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 100, G: 200, B: 250}
	mid := lerpRGB(a, b, 0.5)
	if mid.R != 50 || mid.G != 150 || mid.B != 225 {
		t.Errorf("lerpRGB midpoint = %v", mid)
	}
	if lerpRGB(a, b, 0) != a || lerpRGB(a, b, 1) != b {
		t.Error("lerpRGB endpoints wrong")
	}
}

func TestBenchCameraStable(t *testing.T) {
	bc := NewBenchCamera()
	f1 := NewFrame(64, 48)
	f2 := NewFrame(64, 48)
	bc.NextFrame(f1)
	bc.NextFrame(f2)
	for i := range f1.Pix {
		if f1.Pix[i] != f2.Pix[i] {
			t.Fatal("backdrop should be identical frame to frame")
		}
	}
	if f1.At(32, 24) == (RGB{}) {
		t.Error("backdrop centre should not be black")
	}
}
