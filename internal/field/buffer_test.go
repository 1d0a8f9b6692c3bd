package field

import (
	"errors"
	"testing"
)

func TestAllowed(t *testing.T) {
	for _, r := range "azAZ09" {
		if !Allowed(r) {
			t.Fatalf("expected %q to be allowed", r)
		}
	}
	for _, r := range " _-!é٣Ａ\n" {
		if Allowed(r) {
			t.Fatalf("expected %q to be rejected", r)
		}
	}
}

func TestBufferValidate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"letter", "a", nil},
		{"digit", "7", nil},
		{"space", " ", ErrSpace},
		{"two letters", "ab", ErrComposed},
		{"combining accent", "e\u0301", ErrDisallowed},
		{"precomposed accent", "\u00e9", ErrDisallowed},
		{"punctuation", "#", ErrDisallowed},
		{"emoji", "😀", ErrDisallowed},
		{"flag is one cluster", "🇯🇵", ErrDisallowed},
		{"empty", "", ErrEmpty},
		{"tab", "\t", ErrDisallowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuffer(6)
			if err := b.Validate(tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("Validate(%q) = %v, want %v", tc.input, err, tc.want)
			}
		})
	}
}

func TestBufferBounds(t *testing.T) {
	b := NewBuffer(2)
	if err := b.Insert("a"); err != nil {
		t.Fatalf("insert a: %v", err)
	}
	if err := b.Insert("B"); err != nil {
		t.Fatalf("insert B: %v", err)
	}
	if !b.Full() {
		t.Fatalf("expected buffer to be full")
	}
	if err := b.Insert("c"); !errors.Is(err, ErrFull) {
		t.Fatalf("expected ErrFull, got %v", err)
	}
	if b.Text() != "aB" || b.Len() != 2 {
		t.Fatalf("unexpected contents %q", b.Text())
	}
	if err := b.DeleteLast(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := b.DeleteLast(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := b.DeleteLast(); !errors.Is(err, ErrBufferEmpty) {
		t.Fatalf("expected ErrBufferEmpty, got %v", err)
	}
}

func TestBufferSetTextBypassesRules(t *testing.T) {
	b := NewBuffer(2)
	b.SetText("a b!?")
	if b.Text() != "a b!?" {
		t.Fatalf("unexpected text %q", b.Text())
	}
	if !b.Full() {
		t.Fatalf("expected over-long text to count as full")
	}
	b.SetMax(10)
	if b.Full() || b.Max() != 10 {
		t.Fatalf("expected raised limit to leave room")
	}
}

func TestInputErrorFormat(t *testing.T) {
	err := wrapInsertErr("!", ErrDisallowed)
	if err.Error() != `insert "!": character is not alphanumeric` {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrDisallowed) {
		t.Fatalf("expected unwrap to reach sentinel")
	}
	del := wrapDeleteErr(ErrBufferEmpty)
	if del.Error() != "delete: buffer is empty" {
		t.Fatalf("unexpected message %q", del.Error())
	}
	if wrapInsertErr("a", nil) != nil || wrapDeleteErr(nil) != nil {
		t.Fatalf("nil errors should stay nil")
	}
	var nilErr *InputError
	if nilErr.Error() != "" {
		t.Fatalf("nil InputError should format empty")
	}
}
