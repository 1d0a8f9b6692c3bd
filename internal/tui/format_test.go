package tui

import "testing"

func TestFormatCode(t *testing.T) {
	cases := []struct {
		text   string
		secure bool
		want   string
	}{
		{"", false, "(empty)"},
		{"", true, "(empty)"},
		{"A1", false, `"A1"`},
		{"A1", true, "••"},
	}
	for _, tc := range cases {
		if got := FormatCode(tc.text, tc.secure); got != tc.want {
			t.Fatalf("FormatCode(%q, %v) = %q, want %q", tc.text, tc.secure, got, tc.want)
		}
	}
}

func TestFormatProgress(t *testing.T) {
	if got := FormatProgress(3, 6); got != "3/6" {
		t.Fatalf("unexpected progress %q", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("hello", 0); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
	if got := truncateLabel("hello", 10); got != "hello" {
		t.Fatalf("short label should be unchanged, got %q", got)
	}
	if got := truncateLabel("hello world", 6); got != "hello…" {
		t.Fatalf("unexpected truncation %q", got)
	}
}

func TestVersionLabel(t *testing.T) {
	prevVersion, prevCommit, prevBuild := AppVersion, GitCommit, BuildTime
	t.Cleanup(func() {
		AppVersion, GitCommit, BuildTime = prevVersion, prevCommit, prevBuild
	})
	AppVersion, GitCommit, BuildTime = "1.2", "unknown", "unknown"
	if got := VersionLabel(); got != "1.2" {
		t.Fatalf("expected bare version, got %q", got)
	}
	GitCommit = "abc123"
	if got := VersionLabel(); got != "1.2 (abc123 unknown)" {
		t.Fatalf("unexpected label %q", got)
	}
}
