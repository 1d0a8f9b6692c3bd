package render

import (
	"github.com/akyairhashvil/codefield/internal/config"
	"github.com/akyairhashvil/codefield/internal/models"
	"github.com/akyairhashvil/codefield/internal/util"
)

// Metrics measures the box a single glyph occupies.
type Metrics interface {
	GlyphSize(f models.Font) models.Size
}

// ComputeDrawCommands lays out the field: frame decoration first, then one
// dot or glyph per occupied slot. Text longer than cfg.MaxLength (possible
// through SetText) is cut to the visible slots.
func ComputeDrawCommands(text string, cfg models.FieldConfig, bounds Rect, m Metrics) []Command {
	g := NewGeometry(bounds, cfg.MaxLength)
	runes := []rune(text)
	occupied := util.Clamp(len(runes), 0, cfg.MaxLength)

	cmds := make([]Command, 0, cfg.MaxLength+2+occupied)
	switch cfg.Style {
	case models.StyleUnderlined:
		cmds = appendUnderlines(cmds, g, cfg)
	default:
		cmds = appendBorder(cmds, g, cfg)
	}

	if cfg.Secure {
		d := cfg.Font.Size
		for i := 0; i < occupied; i++ {
			cmds = append(cmds, Command{
				Op:    OpFillEllipse,
				Slot:  i,
				Rect:  g.Centered(i, models.Size{W: d, H: d}),
				Color: cfg.TextColor,
			})
		}
		return cmds
	}

	box := m.GlyphSize(cfg.Font)
	for i := 0; i < occupied; i++ {
		cmds = append(cmds, Command{
			Op:    OpGlyph,
			Slot:  i,
			Rect:  g.Centered(i, box),
			Color: cfg.TextColor,
			Text:  string(runes[i]),
			Font:  cfg.Font,
		})
	}
	return cmds
}

func appendBorder(cmds []Command, g Geometry, cfg models.FieldConfig) []Command {
	frame := g.Bounds.Inset(config.BorderWidth / 2)
	cmds = append(cmds,
		Command{
			Op:     OpFillRoundedRect,
			Slot:   NoSlot,
			Rect:   frame,
			Radius: config.CornerRadius,
			Color:  cfg.BackgroundColor,
		},
		Command{
			Op:        OpStrokeRoundedRect,
			Slot:      NoSlot,
			Rect:      frame,
			Radius:    config.CornerRadius,
			LineWidth: config.BorderWidth,
			Color:     cfg.BorderColor,
		},
	)
	for i := 0; i < g.Slots-1; i++ {
		x := g.SeparatorX(i)
		cmds = append(cmds, Command{
			Op:        OpLine,
			Slot:      i,
			From:      Point{X: x, Y: g.Bounds.Y},
			To:        Point{X: x, Y: g.Bounds.Bottom()},
			LineWidth: config.SeparatorWidth,
			Color:     cfg.BorderColor,
		})
	}
	return cmds
}

func appendUnderlines(cmds []Command, g Geometry, cfg models.FieldConfig) []Command {
	for i := 0; i < g.Slots; i++ {
		from, to := g.Underline(i)
		cmds = append(cmds, Command{
			Op:        OpLine,
			Slot:      i,
			From:      from,
			To:        to,
			LineWidth: config.BorderWidth,
			Color:     cfg.BorderColor,
		})
	}
	return cmds
}

// CaretFrame is the caret rectangle for the given slot. The slot is clamped
// into [0, MaxLength-1] so a full buffer never reads past the last slot.
func CaretFrame(slot int, cfg models.FieldConfig, bounds Rect) Rect {
	g := NewGeometry(bounds, cfg.MaxLength)
	return g.Centered(util.Clamp(slot, 0, cfg.MaxLength-1), cfg.CaretSize)
}

// CaretCommand wraps CaretFrame as a fill command for renderers that draw
// the caret inline.
func CaretCommand(slot int, cfg models.FieldConfig, bounds Rect) Command {
	return Command{
		Op:    OpFillRect,
		Slot:  util.Clamp(slot, 0, cfg.MaxLength-1),
		Rect:  CaretFrame(slot, cfg, bounds),
		Color: cfg.CaretColor,
	}
}
