package config

import "time"

// Slot geometry, in layout units.
const (
	// BorderWidth is the outer stroke width and the inset of the first slot.
	BorderWidth = 1.0

	// SeparatorWidth is the thickness of the vertical lines between slots.
	SeparatorWidth = 0.5

	// CornerRadius of the bordered frame.
	CornerRadius = 5.0

	// UnderlineMargin is the left and right inset of the underline row.
	UnderlineMargin = 4.0

	// UnderlineGap separates neighbouring underline segments.
	UnderlineGap = 8.0
)

// Caret timing.
const (
	// BlinkHalfCycle is how long the caret takes to fade from opaque to clear.
	BlinkHalfCycle = time.Second

	// BlinkFrame is the tick interval used by hosts that animate by polling.
	BlinkFrame = 100 * time.Millisecond
)

// Preview snapshot size used when neither flags nor the config file set one.
const (
	// PreviewSlotWidth is the width given to each slot.
	PreviewSlotWidth = 44.0

	// PreviewHeight is the field height.
	PreviewHeight = 55.0

	// PreviewScale is the default pixel density of PNG previews.
	PreviewScale = 2.0
)

// Application settings.
const (
	AppName        = "codefield"
	ConfigFileName = "config.toml"
	DefaultLength  = 6
)
