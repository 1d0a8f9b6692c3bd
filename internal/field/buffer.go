package field

import "github.com/rivo/uniseg"

// Allowed reports whether r may be typed into the field: ASCII letters and digits.
func Allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return false
}

// Buffer is the bounded sequence of entered characters.
type Buffer struct {
	runes []rune
	max   int
}

func NewBuffer(max int) *Buffer {
	return &Buffer{runes: make([]rune, 0, max), max: max}
}

// Validate returns the reason s would be rejected by Insert, or nil.
// Checks run in a fixed order so the first failing rule is reported.
func (b *Buffer) Validate(s string) error {
	if s == " " {
		return ErrSpace
	}
	if uniseg.GraphemeClusterCount(s) > 1 {
		return ErrComposed
	}
	if s == "" {
		return ErrEmpty
	}
	for _, r := range s {
		if !Allowed(r) {
			return ErrDisallowed
		}
	}
	if b.Full() {
		return ErrFull
	}
	return nil
}

// Insert appends s if it passes Validate.
func (b *Buffer) Insert(s string) error {
	if err := b.Validate(s); err != nil {
		return err
	}
	b.runes = append(b.runes, []rune(s)...)
	return nil
}

// DeleteLast removes the final character.
func (b *Buffer) DeleteLast() error {
	if len(b.runes) == 0 {
		return ErrBufferEmpty
	}
	b.runes = b.runes[:len(b.runes)-1]
	return nil
}

// SetText replaces the contents without any validation or length limit.
func (b *Buffer) SetText(s string) {
	b.runes = []rune(s)
}

func (b *Buffer) Text() string { return string(b.runes) }
func (b *Buffer) Len() int     { return len(b.runes) }
func (b *Buffer) Max() int     { return b.max }

// SetMax changes the limit. Existing text is kept even if longer.
func (b *Buffer) SetMax(n int) { b.max = n }

func (b *Buffer) Full() bool { return len(b.runes) >= b.max }
