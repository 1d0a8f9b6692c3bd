package tui

import (
	"sync/atomic"
	"time"

	"github.com/akyairhashvil/codefield/internal/config"
	"github.com/akyairhashvil/codefield/internal/field"
	tea "github.com/charmbracelet/bubbletea"
)

var lastBlinkID int64

// BlinkMsg drives one frame of a Blinker. Messages from a stopped or
// restarted animation carry an old tag and are dropped.
type BlinkMsg struct {
	id  int64
	tag int
	At  time.Time
}

// Blinker runs the caret fade on bubbletea ticks. Start and Stop are called
// by the field controller from inside Update; the tick they schedule is
// collected with Cmd before Update returns.
type Blinker struct {
	id      int64
	tag     int
	running bool
	period  time.Duration
	curve   field.OpacityCurve
	started time.Time
	opacity float64
	pending tea.Cmd
	frame   time.Duration
	now     func() time.Time
}

func NewBlinker() *Blinker {
	return &Blinker{
		id:    atomic.AddInt64(&lastBlinkID, 1),
		frame: config.BlinkFrame,
		now:   time.Now,
	}
}

func (b *Blinker) Start(period time.Duration, curve field.OpacityCurve) {
	b.tag++
	b.running = true
	b.period = period
	b.curve = curve
	b.started = b.now()
	b.opacity = curve(0)
	b.pending = b.tick()
}

func (b *Blinker) Stop() {
	b.tag++
	b.running = false
	b.opacity = 0
	b.pending = nil
}

// Cmd hands over the tick scheduled by the last Start, if any.
func (b *Blinker) Cmd() tea.Cmd {
	cmd := b.pending
	b.pending = nil
	return cmd
}

// Update advances the fade and schedules the next frame.
func (b *Blinker) Update(msg BlinkMsg) tea.Cmd {
	if msg.id != b.id || msg.tag != b.tag || !b.running {
		return nil
	}
	b.opacity = field.Opacity(b.curve, b.period, msg.At.Sub(b.started))
	return b.tick()
}

func (b *Blinker) Running() bool    { return b.running }
func (b *Blinker) Opacity() float64 { return b.opacity }

// Visible reports whether a cell caret should be drawn. Cells cannot fade,
// so the caret shows for the opaque half of each period.
func (b *Blinker) Visible() bool {
	return b.running && b.opacity >= 0.5
}

func (b *Blinker) tick() tea.Cmd {
	id, tag := b.id, b.tag
	return tea.Tick(b.frame, func(t time.Time) tea.Msg {
		return BlinkMsg{id: id, tag: tag, At: t}
	})
}
