package paper

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func translateMatrix(tx, ty float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, tx, ty}
}

func scaleMatrix(sx, sy float64) [6]float64 {
	return [6]float64{sx, 0, 0, sy, 0, 0}
}

// rotateMatrix rotates by deg degrees about (ox, oy). Positive angles turn
// clockwise on a Y-down canvas.
func rotateMatrix(deg, ox, oy float64) [6]float64 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	r := [6]float64{cos, sin, -sin, cos, 0, 0}
	return multiplyAffine(translateMatrix(ox, oy), multiplyAffine(r, translateMatrix(-ox, -oy)))
}

// sceneTransform is the viewport transform, kept as its components so that a
// new scale or rotation replaces the previous one instead of compounding.
//
//	matrix = Translate(tx, ty) * Scale(sx, sy) * Rotate(deg, ox, oy)
type sceneTransform struct {
	tx, ty   float64
	sx, sy   float64
	deg      float64
	rox, roy float64
}

var identityScene = sceneTransform{sx: 1, sy: 1}

func (t sceneTransform) matrix() [6]float64 {
	m := multiplyAffine(translateMatrix(t.tx, t.ty), scaleMatrix(t.sx, t.sy))
	if t.deg != 0 {
		m = multiplyAffine(m, rotateMatrix(t.deg, t.rox, t.roy))
	}
	return m
}

// --- Paper coordinate API ---

// SetDimensions updates the canvas size. A zero or negative value leaves the
// corresponding dimension unchanged.
func (p *Paper) SetDimensions(width, height float64) {
	if width > 0 {
		p.options.Width = width
	}
	if height > 0 {
		p.options.Height = height
	}
}

// Size returns the canvas width and height.
func (p *Paper) Size() (width, height float64) {
	return p.options.Width, p.options.Height
}

// Scale resets the scene transform and scales it by (sx, sy). A non-zero
// origin (ox, oy) keeps that point fixed on screen. Repeated calls do not
// compound; any rotation is cleared.
func (p *Paper) Scale(sx, sy, ox, oy float64) *Paper {
	t := identityScene
	if ox != 0 || oy != 0 {
		t.tx = -ox * (sx - 1)
		t.ty = -oy * (sy - 1)
	}
	t.sx, t.sy = sx, sy
	p.setTransform(t)
	return p
}

// Rotate rotates the scene by deg degrees about the center of the viewport's
// untransformed bounding box. The rotation replaces any previous one and
// keeps the current scale.
func (p *Paper) Rotate(deg float64) *Paper {
	c := p.ViewportBBox().Center()
	return p.RotateAround(deg, c.X, c.Y)
}

// RotateAround rotates the scene by deg degrees about the local point (ox, oy).
func (p *Paper) RotateAround(deg, ox, oy float64) *Paper {
	t := p.transform
	t.deg, t.rox, t.roy = deg, ox, oy
	p.setTransform(t)
	return p
}

// ScaleFactor returns the current scale.
func (p *Paper) ScaleFactor() (sx, sy float64) {
	return p.transform.sx, p.transform.sy
}

// Rotation returns the current rotation in degrees.
func (p *Paper) Rotation() float64 {
	return p.transform.deg
}

// Matrix returns the scene matrix mapping local coordinates to paper
// coordinates as [a, b, c, d, tx, ty].
func (p *Paper) Matrix() [6]float64 {
	return p.matrix
}

func (p *Paper) setTransform(t sceneTransform) {
	p.transform = t
	p.matrix = t.matrix()
	p.invMatrix = invertAffine(p.matrix)
}

// ToLocalPoint maps a paper point into the viewport's local coordinate space,
// undoing the current scale and rotation.
func (p *Paper) ToLocalPoint(pt Vec2) Vec2 {
	x, y := transformPoint(p.invMatrix, pt.X, pt.Y)
	return Vec2{x, y}
}

// ToGlobalPoint maps a viewport-local point to paper coordinates.
func (p *Paper) ToGlobalPoint(pt Vec2) Vec2 {
	x, y := transformPoint(p.matrix, pt.X, pt.Y)
	return Vec2{x, y}
}

// SnapToGrid maps a paper point to local coordinates and rounds each axis to
// the nearest multiple of the grid size.
func (p *Paper) SnapToGrid(pt Vec2) Vec2 {
	local := p.ToLocalPoint(pt)
	return Vec2{
		X: SnapToGrid(local.X, p.options.GridSize),
		Y: SnapToGrid(local.Y, p.options.GridSize),
	}
}

// ViewportBBox returns the bounds of everything below the viewport in the
// viewport's own (untransformed) coordinate space.
func (p *Paper) ViewportBBox() Rect {
	var bbox Rect
	for _, child := range p.viewport.children {
		bbox = subtreeBounds(child, Vec2{}, bbox)
	}
	return bbox
}

func subtreeBounds(n *Node, parentOffset Vec2, acc Rect) Rect {
	if !n.Visible {
		return acc
	}
	off := Vec2{parentOffset.X + n.X, parentOffset.Y + n.Y}
	acc = acc.Union(Rect{X: off.X, Y: off.Y, Width: n.Width, Height: n.Height})
	for _, child := range n.children {
		acc = subtreeBounds(child, off, acc)
	}
	return acc
}
