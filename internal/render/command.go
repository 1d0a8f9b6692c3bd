package render

import (
	"fmt"
	"image/color"

	"github.com/akyairhashvil/codefield/internal/models"
)

// Op identifies what a Command draws.
type Op int

const (
	OpFillRoundedRect Op = iota
	OpStrokeRoundedRect
	OpLine
	OpFillEllipse
	OpGlyph
	OpFillRect
)

var opNames = [...]string{
	OpFillRoundedRect:   "fill-rounded-rect",
	OpStrokeRoundedRect: "stroke-rounded-rect",
	OpLine:              "line",
	OpFillEllipse:       "fill-ellipse",
	OpGlyph:             "glyph",
	OpFillRect:          "fill-rect",
}

func (o Op) String() string {
	if o >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// NoSlot marks commands that belong to the frame rather than a slot.
const NoSlot = -1

// Command is one drawing instruction. Which fields matter depends on Op:
// rects use Rect and Radius, lines use From and To, glyphs use Rect, Text
// and Font. LineWidth applies to strokes and lines.
type Command struct {
	Op        Op
	Slot      int
	Rect      Rect
	From      Point
	To        Point
	Radius    float64
	LineWidth float64
	Color     color.RGBA
	Text      string
	Font      models.Font
}

func (c Command) String() string {
	switch c.Op {
	case OpLine:
		return fmt.Sprintf("%s slot=%d (%.3f,%.3f)-(%.3f,%.3f) w=%.2f", c.Op, c.Slot, c.From.X, c.From.Y, c.To.X, c.To.Y, c.LineWidth)
	case OpGlyph:
		return fmt.Sprintf("%s slot=%d %q at (%.3f,%.3f %.3fx%.3f)", c.Op, c.Slot, c.Text, c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
	default:
		return fmt.Sprintf("%s slot=%d (%.3f,%.3f %.3fx%.3f)", c.Op, c.Slot, c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
	}
}
