package models

import (
	"fmt"
	"image/color"
	"strings"
)

// Style enumerates the decorative frame drawn around the slots.
type Style string

const (
	StyleBordered   Style = "bordered"
	StyleUnderlined Style = "underlined"
)

// ParseStyle resolves a style name. Empty selects the bordered default.
func ParseStyle(name string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(name))) {
	case "", StyleBordered, "border":
		return StyleBordered, true
	case StyleUnderlined, "underline", "bottomline", "bottom-line":
		return StyleUnderlined, true
	}
	return "", false
}

// KeyboardHint is passed to the host soft keyboard. It never changes which
// characters the field accepts.
type KeyboardHint string

const (
	KeyboardASCII      KeyboardHint = "ascii"
	KeyboardNumberPad  KeyboardHint = "number-pad"
	KeyboardDecimalPad KeyboardHint = "decimal-pad"
	KeyboardDefault    KeyboardHint = "default"
)

func ParseKeyboardHint(name string) (KeyboardHint, bool) {
	switch KeyboardHint(strings.ToLower(strings.TrimSpace(name))) {
	case "", KeyboardASCII:
		return KeyboardASCII, true
	case KeyboardNumberPad:
		return KeyboardNumberPad, true
	case KeyboardDecimalPad:
		return KeyboardDecimalPad, true
	case KeyboardDefault:
		return KeyboardDefault, true
	}
	return "", false
}

// Font names a typeface and its point size. Size is also the diameter of the
// masking dot in secure mode.
type Font struct {
	Name string
	Size float64
}

func (f Font) String() string {
	return fmt.Sprintf("%s %.4gpt", f.Name, f.Size)
}

// Size is a width/height pair in layout units.
type Size struct {
	W float64
	H float64
}

// FieldConfig is everything that affects how the field accepts and draws input.
type FieldConfig struct {
	MaxLength       int
	Secure          bool
	Style           Style
	Font            Font
	TextColor       color.RGBA
	BorderColor     color.RGBA
	CaretColor      color.RGBA
	BackgroundColor color.RGBA
	CaretSize       Size
	KeyboardHint    KeyboardHint
}

// Colors used by DefaultFieldConfig.
var (
	NearBlack = color.RGBA{R: 0x1c, G: 0x1c, B: 0x1e, A: 0xff}
	LightGray = color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	Blue      = color.RGBA{B: 0xff, A: 0xff}
	White     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// DefaultFieldConfig returns a six slot bordered field.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		MaxLength:       6,
		Style:           StyleBordered,
		Font:            Font{Name: "Go", Size: 20},
		TextColor:       NearBlack,
		BorderColor:     LightGray,
		CaretColor:      Blue,
		BackgroundColor: White,
		CaretSize:       Size{W: 1, H: 20},
		KeyboardHint:    KeyboardASCII,
	}
}
