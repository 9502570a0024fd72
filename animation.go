package paper

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransformTween animates the paper's scene scale or rotation. Create one
// with Paper.TweenScale or Paper.TweenRotation and call Update(dt) each
// frame. Each step goes through Scale or RotateAround, so the usual
// replace-not-compound rules apply.
//
// There is no global animation manager; users call Update themselves.
type TransformTween struct {
	paper  *Paper
	tweens [2]*gween.Tween
	count  int
	apply  func(v [2]float64)
	Done   bool
}

// Update advances the tween by dt seconds and applies the new values to the
// paper.
func (g *TransformTween) Update(dt float32) {
	if g.Done {
		return
	}
	var vals [2]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.apply(vals)
	g.Done = allDone
}

// TweenScale animates the scene scale from its current value to (toSX, toSY)
// about the origin (ox, oy).
func (p *Paper) TweenScale(toSX, toSY, ox, oy float64, duration float32, fn ease.TweenFunc) *TransformTween {
	sx, sy := p.ScaleFactor()
	g := &TransformTween{paper: p, count: 2}
	g.tweens[0] = gween.New(float32(sx), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(sy), float32(toSY), duration, fn)
	g.apply = func(v [2]float64) {
		p.Scale(v[0], v[1], ox, oy)
	}
	return g
}

// TweenRotation animates the scene rotation from its current angle to toDeg.
// The rotation origin is the viewport center at the time of the call.
func (p *Paper) TweenRotation(toDeg float64, duration float32, fn ease.TweenFunc) *TransformTween {
	c := p.ViewportBBox().Center()
	g := &TransformTween{paper: p, count: 1}
	g.tweens[0] = gween.New(float32(p.Rotation()), float32(toDeg), duration, fn)
	g.apply = func(v [2]float64) {
		p.RotateAround(v[0], c.X, c.Y)
	}
	return g
}
