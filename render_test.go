package paper

import "testing"

func TestGeoMMatchesMatrix(t *testing.T) {
	p := NewPaper(NewGraph(), testOptions())
	p.Scale(2, 0.5, 30, 40)
	p.RotateAround(30, 10, 20)

	geo := p.geoM()
	for _, pt := range []Vec2{{0, 0}, {100, 50}, {-20, 7}} {
		x, y := geo.Apply(pt.X, pt.Y)
		want := p.ToGlobalPoint(pt)
		if !approxVec(Vec2{x, y}, want) {
			t.Errorf("geoM(%v) = (%v, %v), want %v", pt, x, y, want)
		}
	}
}

func TestLayoutReportsPaperSize(t *testing.T) {
	opts := testOptions()
	opts.Width, opts.Height = 320, 240
	p := NewPaper(NewGraph(), opts)
	if w, h := p.Layout(1920, 1080); w != 320 || h != 240 {
		t.Errorf("Layout = (%d, %d), want (320, 240)", w, h)
	}
}
