package models

import "testing"

func TestParseStyle(t *testing.T) {
	cases := []struct {
		in   string
		want Style
		ok   bool
	}{
		{"", StyleBordered, true},
		{"Bordered", StyleBordered, true},
		{"border", StyleBordered, true},
		{"underlined", StyleUnderlined, true},
		{"bottomLine", StyleUnderlined, true},
		{"dotted", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseStyle(tc.in)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ParseStyle(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestParseKeyboardHint(t *testing.T) {
	if h, ok := ParseKeyboardHint("decimal-pad"); !ok || h != KeyboardDecimalPad {
		t.Fatalf("expected decimal-pad, got %q %v", h, ok)
	}
	if _, ok := ParseKeyboardHint("emoji"); ok {
		t.Fatalf("expected unknown hint to fail")
	}
}

func TestDefaultFieldConfig(t *testing.T) {
	cfg := DefaultFieldConfig()
	if cfg.MaxLength != 6 {
		t.Fatalf("expected default length 6, got %d", cfg.MaxLength)
	}
	if cfg.Secure {
		t.Fatalf("expected secure entry off by default")
	}
	if cfg.Style != StyleBordered {
		t.Fatalf("expected bordered default, got %q", cfg.Style)
	}
	if cfg.CaretColor != Blue {
		t.Fatalf("expected blue caret, got %v", cfg.CaretColor)
	}
	if cfg.CaretSize.W != 1 || cfg.CaretSize.H != 20 {
		t.Fatalf("unexpected caret size %+v", cfg.CaretSize)
	}
}
