// Package render turns field state into a flat list of draw commands and
// provides renderers that paint such a list.
//
// All slot positions come from Geometry. Separators, glyphs, masking dots and
// the caret read the same slot rectangles so the passes never drift apart.
package render

import (
	"github.com/akyairhashvil/codefield/internal/config"
	"github.com/akyairhashvil/codefield/internal/models"
)

// Point is a position in layout units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in layout units.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Geometry is the slot layout for one field of Slots slots inside Bounds.
type Geometry struct {
	Bounds    Rect
	Slots     int
	ItemWidth float64
}

// NewGeometry divides the interior of bounds into n equal slots separated by
// config.SeparatorWidth. n <= 0 is undefined.
func NewGeometry(bounds Rect, n int) Geometry {
	content := bounds.W - 2*config.BorderWidth - config.SeparatorWidth*float64(n-1)
	return Geometry{
		Bounds:    bounds,
		Slots:     n,
		ItemWidth: content / float64(n),
	}
}

// SlotLeft is the x of slot i's left edge.
func (g Geometry) SlotLeft(i int) float64 {
	return g.Bounds.X + config.BorderWidth + float64(i)*g.ItemWidth + float64(i)*config.SeparatorWidth
}

// Slot is the full-height rectangle of slot i.
func (g Geometry) Slot(i int) Rect {
	return Rect{X: g.SlotLeft(i), Y: g.Bounds.Y, W: g.ItemWidth, H: g.Bounds.H}
}

// SeparatorX is the x of the line between slot i and slot i+1.
func (g Geometry) SeparatorX(i int) float64 {
	return g.Slot(i).Right()
}

// Centered places a box of the given size in the middle of slot i.
func (g Geometry) Centered(i int, size models.Size) Rect {
	return Rect{
		X: g.SlotLeft(i) + (g.ItemWidth-size.W)/2,
		Y: g.Bounds.Y + (g.Bounds.H-size.H)/2,
		W: size.W,
		H: size.H,
	}
}

// UnderlineWidth is the length of one underline segment.
func (g Geometry) UnderlineWidth() float64 {
	gaps := config.UnderlineGap * float64(g.Slots-1)
	return (g.Bounds.W - 2*config.UnderlineMargin - gaps) / float64(g.Slots)
}

// Underline returns the endpoints of underline segment i.
func (g Geometry) Underline(i int) (Point, Point) {
	w := g.UnderlineWidth()
	y := g.Bounds.Bottom() - config.BorderWidth/2
	x := g.Bounds.X + config.UnderlineMargin + config.UnderlineGap*float64(i)
	return Point{X: x + float64(i)*w, Y: y}, Point{X: x + float64(i+1)*w, Y: y}
}
