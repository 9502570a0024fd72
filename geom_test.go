package paper

import (
	"math"
	"testing"
)

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		name     string
		v, grid  float64
		expected float64
	}{
		{"round down", 53, 50, 50},
		{"round up", 107, 50, 100},
		{"round up past half", 76, 50, 100},
		{"exact", 150, 50, 150},
		{"half rounds up", 25, 50, 50},
		{"negative half rounds up", -25, 50, 0},
		{"negative", -60, 50, -50},
		{"zero grid", 53, 0, 53},
		{"negative grid", 53, -10, 53},
		{"fractional grid", 0.26, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapToGrid(tt.v, tt.grid); got != tt.expected {
				t.Errorf("SnapToGrid(%v, %v) = %v, want %v", tt.v, tt.grid, got, tt.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{15, 15}, true},
		{Vec2{10, 10}, true},
		{Vec2{30, 30}, true},
		{Vec2{9, 15}, false},
		{Vec2{15, 31}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	if !a.Intersects(Rect{5, 5, 10, 10}) {
		t.Error("overlapping rects should intersect")
	}
	if !a.Intersects(Rect{10, 0, 5, 5}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if a.Intersects(Rect{11, 11, 5, 5}) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{20, 5, 10, 10}
	if got, want := a.Union(b), (Rect{0, 0, 30, 15}); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty.Union(b) = %v, want %v", got, b)
	}
	if got := a.Union(Rect{100, 100, 0, 0}); got != a {
		t.Errorf("a.Union(empty) = %v, want %v", got, a)
	}
}

func TestRectCenterOrigin(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if c := r.Center(); c != (Vec2{60, 45}) {
		t.Errorf("Center = %v, want (60, 45)", c)
	}
	if o := r.Origin(); o != (Vec2{10, 20}) {
		t.Errorf("Origin = %v, want (10, 20)", o)
	}
}

func TestTransformRect(t *testing.T) {
	m := multiplyAffine(translateMatrix(5, 5), scaleMatrix(2, 3))
	got := transformRect(m, Rect{1, 1, 10, 10})
	want := Rect{7, 8, 20, 30}
	if got != want {
		t.Errorf("transformRect = %v, want %v", got, want)
	}

	rot := rotateMatrix(90, 0, 0)
	got = transformRect(rot, Rect{0, 0, 10, 20})
	if math.Abs(got.X+20) > 1e-9 || math.Abs(got.Y) > 1e-9 ||
		math.Abs(got.Width-20) > 1e-9 || math.Abs(got.Height-10) > 1e-9 {
		t.Errorf("rotated bounds = %v, want (-20, 0, 20, 10)", got)
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if c.R != 127 || c.G != 63 || c.B != 0 || c.A != 127 {
		t.Errorf("toRGBA = %+v, want premultiplied {127 63 0 127}", c)
	}
	over := Color{R: 2, G: -1, B: 1, A: 1}.toRGBA()
	if over.R != 255 || over.G != 0 {
		t.Errorf("out-of-range components should clamp, got %+v", over)
	}
}
