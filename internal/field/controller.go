// Package field holds the input state of a fixed-length code field: the
// bounded buffer, focus, the caret state machine and the notifications sent
// to the host. It is not safe for concurrent use; drive it from the host's
// event loop.
package field

import (
	"time"

	"github.com/akyairhashvil/codefield/internal/config"
	"github.com/akyairhashvil/codefield/internal/models"
	"github.com/akyairhashvil/codefield/internal/render"
)

// CommitKey is the character hosts send for return/enter.
const CommitKey = "\n"

// RejectFunc observes ignored edits. It must not call back into the controller.
type RejectFunc func(err *InputError)

type Option func(*Controller)

func WithDelegate(d Delegate) Option {
	return func(c *Controller) {
		if d != nil {
			c.delegate = d
		}
	}
}

func WithInvalidator(inv Invalidator) Option {
	return func(c *Controller) {
		if inv != nil {
			c.invalidator = inv
		}
	}
}

func WithAnimator(a CaretAnimator) Option {
	return func(c *Controller) {
		if a != nil {
			c.caret.animator = a
		}
	}
}

func WithRejectFunc(f RejectFunc) Option {
	return func(c *Controller) {
		c.onReject = f
	}
}

// WithBlinkPeriod overrides config.BlinkHalfCycle.
func WithBlinkPeriod(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.caret.period = d
		}
	}
}

// Controller owns the buffer and config and reacts to host events.
type Controller struct {
	cfg         models.FieldConfig
	buf         *Buffer
	caret       caret
	focused     bool
	delegate    Delegate
	invalidator Invalidator
	onReject    RejectFunc
}

// New creates an unfocused, empty field with a hidden caret.
func New(cfg models.FieldConfig, opts ...Option) *Controller {
	c := &Controller{
		cfg:         cfg,
		buf:         NewBuffer(cfg.MaxLength),
		delegate:    NopDelegate{},
		invalidator: nopInvalidator{},
		caret: caret{
			animator: NopAnimator{},
			period:   config.BlinkHalfCycle,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Insert handles one character from the host keyboard. CommitKey is routed
// to Commit. Rejected input is reported to the RejectFunc and otherwise
// ignored. Filling the last slot gives up focus.
func (c *Controller) Insert(s string) {
	if s == CommitKey {
		c.Commit()
		return
	}
	if err := c.buf.Insert(s); err != nil {
		c.reject(wrapInsertErr(s, err))
		return
	}
	c.reposition()
	if c.buf.Full() {
		c.LoseFocus()
	}
	c.invalidator.Invalidate()
}

// DeleteBackward removes the last character, if any.
func (c *Controller) DeleteBackward() {
	if err := c.buf.DeleteLast(); err != nil {
		c.reject(wrapDeleteErr(err))
		return
	}
	c.reposition()
	c.invalidator.Invalidate()
}

// SetText replaces the buffer without validation. It never changes focus.
func (c *Controller) SetText(s string) {
	c.buf.SetText(s)
	c.reposition()
	c.invalidator.Invalidate()
}

// Commit forwards the return key to the delegate and hands back its answer.
// The buffer is never touched.
func (c *Controller) Commit() bool {
	return c.delegate.ReturnPressed(c.buf.Text())
}

// GainFocus shows the caret at the next free slot. It always succeeds.
func (c *Controller) GainFocus() bool {
	c.focused = true
	c.reposition()
	return true
}

// LoseFocus tells the delegate editing ended, then hides the caret. It
// always succeeds, even when the field was not focused.
func (c *Controller) LoseFocus() bool {
	c.focused = false
	c.delegate.EditingEnded(c.buf.Text())
	c.caret.hide(c.caret.state.Slot)
	return true
}

// TouchBegan focuses the field when a touch or click lands on it.
func (c *Controller) TouchBegan() {
	if !c.focused {
		c.GainFocus()
	}
}

// SetConfig swaps the configuration and repaints. The buffer keeps its
// contents when MaxLength shrinks.
func (c *Controller) SetConfig(cfg models.FieldConfig) {
	c.cfg = cfg
	c.buf.SetMax(cfg.MaxLength)
	c.reposition()
	c.invalidator.Invalidate()
}

// reposition derives the caret from the buffer length. A full buffer clamps
// the slot to the last one and hides the caret.
func (c *Controller) reposition() {
	slot := c.buf.Len()
	switch {
	case slot >= c.cfg.MaxLength:
		c.caret.hide(c.cfg.MaxLength - 1)
	case c.focused:
		c.caret.show(slot)
	default:
		c.caret.hide(slot)
	}
}

func (c *Controller) reject(err *InputError) {
	if c.onReject != nil {
		c.onReject(err)
	}
}

func (c *Controller) Text() string               { return c.buf.Text() }
func (c *Controller) Len() int                   { return c.buf.Len() }
func (c *Controller) Full() bool                 { return c.buf.Full() }
func (c *Controller) HasText() bool              { return c.buf.Len() > 0 }
func (c *Controller) Focused() bool              { return c.focused }
func (c *Controller) Caret() CaretState          { return c.caret.state }
func (c *Controller) Config() models.FieldConfig { return c.cfg }

// DrawCommands lays out the current state inside bounds.
func (c *Controller) DrawCommands(bounds render.Rect, m render.Metrics) []render.Command {
	return render.ComputeDrawCommands(c.buf.Text(), c.cfg, bounds, m)
}

// CaretFrame is the caret rectangle inside bounds, and whether it is shown.
func (c *Controller) CaretFrame(bounds render.Rect) (render.Rect, bool) {
	st := c.caret.state
	return render.CaretFrame(st.Slot, c.cfg, bounds), st.Visible
}
