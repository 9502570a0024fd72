package paper

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Drawer is implemented by views that paint their root node themselves.
// geo maps paper-local coordinates to the screen. Child nodes are still
// drawn by the paper afterwards.
type Drawer interface {
	Draw(dst *ebiten.Image, geo ebiten.GeoM)
}

// whitePixel is a 1x1 white image stretched and tinted to fill shapes.
// Created on first draw so that building a paper needs no graphics context.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// strokeWidth is the outline and link width in local units.
const strokeWidth = 1.5

// labelSize is the font size of node text in local units.
const labelSize = 14

var (
	labelSource    *text.GoTextFaceSource
	labelSourceErr error
)

// labelFace returns the face used for node text, or nil if the embedded font
// failed to load.
func labelFace() *text.GoTextFace {
	if labelSource == nil && labelSourceErr == nil {
		labelSource, labelSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if labelSourceErr != nil {
			logger().Warn("paper: label font unavailable", "error", labelSourceErr)
		}
	}
	if labelSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: labelSource, Size: labelSize}
}

// Update runs the input script, then turns this frame's mouse, touch and
// injected input into pointer events.
func (p *Paper) Update() {
	if p.script != nil {
		p.script.step(p)
	}
	p.processInput()
}

// Draw paints the background and every visible node in viewport order
// through the scene transform.
func (p *Paper) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	if p.options.Background.A > 0 {
		screen.Fill(p.options.Background.toRGBA())
	}
	geo := p.geoM()
	for _, child := range p.viewport.children {
		drawNode(screen, child, geo)
	}

	if p.debug {
		stats := drawStats{
			drawTime:  time.Since(t0),
			nodeCount: countNodes(p.viewport) - 1,
			viewCount: len(p.views),
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("views: %d\nnodes: %d\ndraw: %s",
			stats.viewCount, stats.nodeCount, stats.drawTime))
		p.debugLog(stats)
	}
}

// Layout reports the paper's canvas size to ebiten.
func (p *Paper) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(p.options.Width), int(p.options.Height)
}

// geoM converts the scene matrix to an ebiten.GeoM.
func (p *Paper) geoM() ebiten.GeoM {
	var g ebiten.GeoM
	m := p.matrix
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// drawNode paints n and its subtree. geo maps n's parent space to the screen.
func drawNode(dst *ebiten.Image, n *Node, geo ebiten.GeoM) {
	if !n.Visible {
		return
	}
	if d, ok := n.view.(Drawer); ok {
		d.Draw(dst, geo)
	} else {
		r := n.Bounds()
		fillRect(dst, geo, r, n.Color)
		strokeRect(dst, geo, r, n.StrokeColor)
		drawText(dst, geo, r, n.Text, n.StrokeColor)
	}

	var local ebiten.GeoM
	local.Translate(n.X, n.Y)
	local.Concat(geo)
	for _, child := range n.children {
		drawNode(dst, child, local)
	}
}

func fillRect(dst *ebiten.Image, geo ebiten.GeoM, r Rect, c Color) {
	if c.A <= 0 || r.IsEmpty() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.GeoM.Concat(geo)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	dst.DrawImage(pixel(), &op)
}

func strokeRect(dst *ebiten.Image, geo ebiten.GeoM, r Rect, c Color) {
	if c.A <= 0 || r.IsEmpty() {
		return
	}
	tl := Vec2{r.X, r.Y}
	tr := Vec2{r.X + r.Width, r.Y}
	br := Vec2{r.X + r.Width, r.Y + r.Height}
	bl := Vec2{r.X, r.Y + r.Height}
	strokeLine(dst, geo, tl, tr, c)
	strokeLine(dst, geo, tr, br, c)
	strokeLine(dst, geo, br, bl, c)
	strokeLine(dst, geo, bl, tl, c)
}

func drawText(dst *ebiten.Image, geo ebiten.GeoM, r Rect, s string, c Color) {
	if s == "" || c.A <= 0 {
		return
	}
	face := labelFace()
	if face == nil {
		return
	}
	center := r.Center()
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X, center.Y)
	op.GeoM.Concat(geo)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// strokeLine draws the segment ab as a thin rotated rectangle.
func strokeLine(dst *ebiten.Image, geo ebiten.GeoM, a, b Vec2, c Color) {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if c.A <= 0 || length == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(length, strokeWidth)
	op.GeoM.Translate(0, -strokeWidth/2)
	op.GeoM.Rotate(math.Atan2(b.Y-a.Y, b.X-a.X))
	op.GeoM.Translate(a.X, a.Y)
	op.GeoM.Concat(geo)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	dst.DrawImage(pixel(), &op)
}

// Draw paints the link route. geo maps paper-local coordinates to the screen.
func (v *LinkView) Draw(dst *ebiten.Image, geo ebiten.GeoM) {
	pts := v.Vertices()
	for i := 1; i < len(pts); i++ {
		strokeLine(dst, geo, pts[i-1], pts[i], v.node.StrokeColor)
	}
}
