package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/akyairhashvil/codefield/internal/models"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// bezierCircle is the control point offset that approximates a quarter
// circle with one cubic curve.
const bezierCircle = 0.5522847498

// RasterRenderer paints commands into an RGBA image. Scale maps layout units
// to pixels; zero means 1.
type RasterRenderer struct {
	Metrics *FaceMetrics
	Scale   float64
}

func NewRasterRenderer(scale float64) *RasterRenderer {
	return &RasterRenderer{Metrics: NewFaceMetrics(), Scale: scale}
}

func (r *RasterRenderer) scale() float64 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}

// Render paints cmds in order onto a transparent image covering bounds.
func (r *RasterRenderer) Render(cmds []Command, bounds Rect) (*image.RGBA, error) {
	s := r.scale()
	w := int(math.Ceil(bounds.Right() * s))
	h := int(math.Ceil(bounds.Bottom() * s))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: empty bounds %+v", bounds)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)

	for _, c := range cmds {
		switch c.Op {
		case OpFillRoundedRect:
			z.Reset(w, h)
			roundedRectPath(z, scaleRect(c.Rect, s), c.Radius*s, false)
			fill(z, img, c.Color)
		case OpStrokeRoundedRect:
			half := c.LineWidth * s / 2
			rect := scaleRect(c.Rect, s)
			z.Reset(w, h)
			roundedRectPath(z, rect.Inset(-half), c.Radius*s+half, false)
			roundedRectPath(z, rect.Inset(half), math.Max(c.Radius*s-half, 0), true)
			fill(z, img, c.Color)
		case OpLine:
			z.Reset(w, h)
			linePath(z, scalePoint(c.From, s), scalePoint(c.To, s), c.LineWidth*s)
			fill(z, img, c.Color)
		case OpFillEllipse:
			z.Reset(w, h)
			ellipsePath(z, scaleRect(c.Rect, s))
			fill(z, img, c.Color)
		case OpFillRect:
			z.Reset(w, h)
			roundedRectPath(z, scaleRect(c.Rect, s), 0, false)
			fill(z, img, c.Color)
		case OpGlyph:
			if err := r.drawGlyph(img, c, s); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("render: unsupported %s", c.Op)
		}
	}
	return img, nil
}

func (r *RasterRenderer) drawGlyph(img *image.RGBA, c Command, s float64) error {
	if r.Metrics == nil {
		r.Metrics = NewFaceMetrics()
	}
	face, err := r.Metrics.Face(models.Font{Name: c.Font.Name, Size: c.Font.Size * s})
	if err != nil {
		return err
	}
	rect := scaleRect(c.Rect, s)
	m := face.Metrics()
	d := font.Drawer{Dst: img, Src: image.NewUniform(c.Color), Face: face}
	advance := fixedToFloat(d.MeasureString(c.Text))
	lineHeight := fixedToFloat(m.Height)
	baseline := rect.Y + (rect.H-lineHeight)/2 + fixedToFloat(m.Ascent)
	d.Dot = fixed.Point26_6{
		X: floatToFixed(rect.X + (rect.W-advance)/2),
		Y: floatToFixed(baseline),
	}
	d.DrawString(c.Text)
	return nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func fill(z *vector.Rasterizer, img *image.RGBA, c color.RGBA) {
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

func scaleRect(r Rect, s float64) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, W: r.W * s, H: r.H * s}
}

func scalePoint(p Point, s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// roundedRectPath adds a closed rounded rectangle using one quadratic curve
// per corner. reverse winds it the other way, which cuts a hole when paired
// with a forward path in the same fill.
func roundedRectPath(z *vector.Rasterizer, r Rect, radius float64, reverse bool) {
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.Right()), float32(r.Bottom())
	rad := float32(math.Min(radius, math.Min(r.W, r.H)/2))
	if !reverse {
		z.MoveTo(x0+rad, y0)
		z.LineTo(x1-rad, y0)
		z.QuadTo(x1, y0, x1, y0+rad)
		z.LineTo(x1, y1-rad)
		z.QuadTo(x1, y1, x1-rad, y1)
		z.LineTo(x0+rad, y1)
		z.QuadTo(x0, y1, x0, y1-rad)
		z.LineTo(x0, y0+rad)
		z.QuadTo(x0, y0, x0+rad, y0)
	} else {
		z.MoveTo(x0+rad, y0)
		z.QuadTo(x0, y0, x0, y0+rad)
		z.LineTo(x0, y1-rad)
		z.QuadTo(x0, y1, x0+rad, y1)
		z.LineTo(x1-rad, y1)
		z.QuadTo(x1, y1, x1, y1-rad)
		z.LineTo(x1, y0+rad)
		z.QuadTo(x1, y0, x1-rad, y0)
	}
	z.ClosePath()
}

// linePath adds the quad covering a stroke of the given width.
func linePath(z *vector.Rasterizer, from, to Point, width float64) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	z.MoveTo(float32(from.X+nx), float32(from.Y+ny))
	z.LineTo(float32(to.X+nx), float32(to.Y+ny))
	z.LineTo(float32(to.X-nx), float32(to.Y-ny))
	z.LineTo(float32(from.X-nx), float32(from.Y-ny))
	z.ClosePath()
}

func ellipsePath(z *vector.Rasterizer, r Rect) {
	c := r.Center()
	cx, cy := float32(c.X), float32(c.Y)
	rx, ry := float32(r.W/2), float32(r.H/2)
	kx, ky := rx*bezierCircle, ry*bezierCircle
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
}
