package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/akyairhashvil/codefield/internal/config"
	"github.com/akyairhashvil/codefield/internal/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box-drawing arms. A cell's rune is picked from the set of arms drawn
// through it, so separators join the frame as tees.
const (
	armN uint8 = 1 << iota
	armE
	armS
	armW
)

var boxRunes = map[uint8]rune{
	armN:                      '│',
	armS:                      '│',
	armN | armS:               '│',
	armE:                      '─',
	armW:                      '─',
	armE | armW:               '─',
	armE | armS:               '╭',
	armW | armS:               '╮',
	armN | armE:               '╰',
	armN | armW:               '╯',
	armN | armS | armE:        '├',
	armN | armS | armW:        '┤',
	armE | armW | armS:        '┬',
	armE | armW | armN:        '┴',
	armN | armE | armS | armW: '┼',
}

const (
	dotRune         = '●'
	thinCaretRune   = '▏'
	solidCaretRune  = '█'
	unprintableRune = '·'
)

type cell struct {
	arms uint8
	r    rune
	fg   color.RGBA
	bg   color.RGBA
	// cont marks the right half of a wide rune drawn in the cell before.
	cont bool
}

// Canvas samples layout-unit draw commands onto a grid of terminal cells.
// A cell is covered when its center falls inside a shape.
type Canvas struct {
	cols, rows int
	cells      []cell
}

func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

// Bounds is the layout rectangle the grid covers.
func (c *Canvas) Bounds() render.Rect {
	return render.Rect{W: float64(c.cols) * config.CellWidth, H: float64(c.rows) * config.CellHeight}
}

func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func colOf(x float64) int { return int(math.Floor(x / config.CellWidth)) }
func rowOf(y float64) int { return int(math.Floor(y / config.CellHeight)) }

// span returns the cells whose centers lie in [lo, hi] along one axis.
func span(lo, hi, size float64) (first, last int) {
	if lo > hi {
		lo, hi = hi, lo
	}
	first = int(math.Ceil(lo/size - 0.5))
	last = int(math.Floor(hi/size - 0.5))
	return first, last
}

// Draw applies commands in order. Later commands paint over earlier ones.
func (c *Canvas) Draw(cmds []render.Command) {
	for _, cmd := range cmds {
		switch cmd.Op {
		case render.OpFillRoundedRect:
			c.fill(cmd.Rect, cmd.Color)
		case render.OpStrokeRoundedRect:
			c.stroke(cmd.Rect, cmd.Color)
		case render.OpLine:
			c.line(cmd.From, cmd.To, cmd.Color)
		case render.OpFillEllipse:
			c.put(cmd.Rect.Center(), dotRune, cmd.Color)
		case render.OpGlyph:
			c.glyph(cmd.Rect.Center(), cmd.Text, cmd.Color)
		case render.OpFillRect:
			r := thinCaretRune
			if cmd.Rect.W >= config.CellWidth/2 {
				r = solidCaretRune
			}
			c.put(cmd.Rect.Center(), r, cmd.Color)
		}
	}
}

func (c *Canvas) fill(r render.Rect, col color.RGBA) {
	if col.A == 0 {
		return
	}
	c0, c1 := span(r.X, r.Right(), config.CellWidth)
	r0, r1 := span(r.Y, r.Bottom(), config.CellHeight)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			if p := c.at(x, y); p != nil {
				p.bg = col
			}
		}
	}
}

// stroke draws the outline on the outermost covered cells with rounded corners.
func (c *Canvas) stroke(r render.Rect, col color.RGBA) {
	c0, c1 := colOf(r.X), colOf(r.Right())
	r0, r1 := rowOf(r.Y), rowOf(r.Bottom())
	if c1 <= c0 || r1 <= r0 {
		return
	}
	for x := c0; x <= c1; x++ {
		var top, bottom uint8 = armE | armW, armE | armW
		switch x {
		case c0:
			top, bottom = armE|armS, armN|armE
		case c1:
			top, bottom = armW|armS, armN|armW
		}
		c.arm(x, r0, top, col)
		c.arm(x, r1, bottom, col)
	}
	for y := r0 + 1; y < r1; y++ {
		c.arm(c0, y, armN|armS, col)
		c.arm(c1, y, armN|armS, col)
	}
}

func (c *Canvas) line(from, to render.Point, col color.RGBA) {
	if math.Abs(to.X-from.X) >= math.Abs(to.Y-from.Y) {
		x0, x1 := span(from.X, to.X, config.CellWidth)
		y := rowOf((from.Y + to.Y) / 2)
		for x := x0; x <= x1; x++ {
			c.arm(x, y, armE|armW, col)
		}
		return
	}
	y0, y1 := span(from.Y, to.Y, config.CellHeight)
	x := colOf((from.X + to.X) / 2)
	for y := y0; y <= y1; y++ {
		var arms uint8 = armN | armS
		switch {
		case y0 == y1:
		case y == y0:
			arms = armS
		case y == y1:
			arms = armN
		}
		c.arm(x, y, arms, col)
	}
}

func (c *Canvas) arm(x, y int, arms uint8, col color.RGBA) {
	p := c.at(x, y)
	if p == nil {
		return
	}
	p.arms |= arms
	p.r = 0
	p.cont = false
	p.fg = col
}

func (c *Canvas) put(at render.Point, r rune, col color.RGBA) {
	p := c.at(colOf(at.X), rowOf(at.Y))
	if p == nil {
		return
	}
	p.r = r
	p.arms = 0
	p.cont = false
	p.fg = col
}

// glyph places one character. Wide runes take the neighbouring cell when it
// is blank; otherwise, like zero-width runes, they are drawn as a dot.
func (c *Canvas) glyph(at render.Point, text string, col color.RGBA) {
	var r rune = unprintableRune
	for _, first := range text {
		r = first
		break
	}
	x, y := colOf(at.X), rowOf(at.Y)
	switch runewidth.RuneWidth(r) {
	case 1:
	case 2:
		next := c.at(x+1, y)
		if next == nil || next.arms != 0 || next.r != 0 {
			r = unprintableRune
			break
		}
		c.put(at, r, col)
		next.cont = true
		return
	default:
		r = unprintableRune
	}
	c.put(at, r, col)
}

func (c *Canvas) runeAt(p *cell) rune {
	switch {
	case p.r != 0:
		return p.r
	case p.arms != 0:
		return boxRunes[p.arms]
	}
	return ' '
}

// Plain returns the grid without styling, one line per row.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < c.cols; x++ {
			p := c.at(x, y)
			if p.cont {
				continue
			}
			b.WriteRune(c.runeAt(p))
		}
	}
	return b.String()
}

// Render returns the grid with colors applied through lipgloss. Runs of cells
// sharing colors are styled together.
func (c *Canvas) Render() string {
	lines := make([]string, 0, c.rows)
	for y := 0; y < c.rows; y++ {
		var line strings.Builder
		var run strings.Builder
		var cur *cell
		flush := func() {
			if cur != nil && run.Len() > 0 {
				line.WriteString(cellStyle(cur).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.cols; x++ {
			p := c.at(x, y)
			if p.cont {
				continue
			}
			if cur == nil || cur.fg != p.fg || cur.bg != p.bg {
				flush()
				cur = p
			}
			run.WriteRune(c.runeAt(p))
		}
		flush()
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func cellStyle(p *cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if p.fg.A != 0 {
		s = s.Foreground(lipgloss.Color(config.HexColor(p.fg)))
	}
	if p.bg.A != 0 {
		s = s.Background(lipgloss.Color(config.HexColor(p.bg)))
	}
	return s
}
