package field

import "time"

//go:generate mockgen -source=collaborators.go -destination=mock_field_test.go -package=field

// Delegate receives notifications from the controller.
type Delegate interface {
	// EditingEnded fires every time the field gives up focus.
	EditingEnded(text string)
	// ReturnPressed fires on the commit key. The controller does not act on
	// the result.
	ReturnPressed(text string) bool
}

// Invalidator is told when the field needs repainting. Hosts may coalesce
// several calls into one paint.
type Invalidator interface {
	Invalidate()
}

// CaretAnimator runs the repeating caret fade in the presentation layer.
type CaretAnimator interface {
	// Start (re)starts the fade from the beginning of the curve. Each period
	// maps curve(0) to curve(1) and then repeats.
	Start(period time.Duration, curve OpacityCurve)
	Stop()
}

// NopDelegate ignores every notification.
type NopDelegate struct{}

func (NopDelegate) EditingEnded(string) {}

func (NopDelegate) ReturnPressed(string) bool { return false }

// InvalidatorFunc adapts a function to Invalidator.
type InvalidatorFunc func()

func (f InvalidatorFunc) Invalidate() { f() }

type nopInvalidator struct{}

func (nopInvalidator) Invalidate() {}

// NopAnimator never animates.
type NopAnimator struct{}

func (NopAnimator) Start(time.Duration, OpacityCurve) {}
func (NopAnimator) Stop()                             {}
