package field

import (
	"math"
	"time"

	"github.com/akyairhashvil/codefield/internal/util"
)

// OpacityCurve maps progress through one blink period, 0..1, to opacity.
type OpacityCurve func(t float64) float64

// FadeOut goes from fully opaque to clear with an ease-out, quick at first.
func FadeOut(t float64) float64 {
	t = util.ClampFloat(t, 0, 1)
	return 1 - t*(2-t)
}

// Opacity is the value of curve after elapsed time of a repeating animation.
func Opacity(curve OpacityCurve, period, elapsed time.Duration) float64 {
	if period <= 0 || elapsed < 0 {
		return curve(0)
	}
	phase := math.Mod(float64(elapsed), float64(period)) / float64(period)
	return curve(phase)
}

// CaretState is where the caret sits and whether it is shown.
type CaretState struct {
	Visible bool
	Slot    int
}

// caret is the Hidden / Visible-Blinking state machine.
type caret struct {
	state    CaretState
	animator CaretAnimator
	period   time.Duration
}

// show moves the caret and restarts the fade so typing always shows it opaque.
func (c *caret) show(slot int) {
	c.state = CaretState{Visible: true, Slot: slot}
	c.animator.Start(c.period, FadeOut)
}

func (c *caret) hide(slot int) {
	wasVisible := c.state.Visible
	c.state = CaretState{Visible: false, Slot: slot}
	if wasVisible {
		c.animator.Stop()
	}
}
