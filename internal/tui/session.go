package tui

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/codefield/internal/field"
	"github.com/akyairhashvil/codefield/internal/util"
)

// Verdict is the outcome of checking a completed code against host.expect_hash.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictAccepted
	VerdictRejected
)

func (v Verdict) String() string {
	switch v {
	case VerdictAccepted:
		return "accepted"
	case VerdictRejected:
		return "rejected"
	}
	return "none"
}

// session is the host's field delegate. It turns notifications into the
// status line and, when a hash is configured, verifies completed codes.
type session struct {
	ctrl       *field.Controller
	expectHash string

	status string
	// transient statuses are cleared by the next accepted edit.
	transient bool
	verdict   Verdict
	ended     int
	returns   int
}

func (s *session) EditingEnded(text string) {
	s.ended++
	s.transient = false
	cfg := s.ctrl.Config()
	shown := FormatCode(text, cfg.Secure)
	if s.expectHash == "" || !s.ctrl.Full() {
		s.verdict = VerdictNone
		s.status = fmt.Sprintf("editing ended: %s (%s)", shown, FormatProgress(s.ctrl.Len(), cfg.MaxLength))
		return
	}
	err := util.VerifyCode(s.expectHash, text)
	switch {
	case err == nil:
		s.verdict = VerdictAccepted
		s.status = fmt.Sprintf("code %s accepted", shown)
	case errors.Is(err, util.ErrCodeMismatch):
		s.verdict = VerdictRejected
		s.status = fmt.Sprintf("code %s rejected", shown)
	default:
		util.LogError("verify code", err)
		s.verdict = VerdictRejected
		s.status = fmt.Sprintf("cannot verify code: %v", err)
	}
	util.LogEvent("session", "code %s", s.verdict)
}

// ReturnPressed only reports. Submission happens when the last slot fills.
func (s *session) ReturnPressed(text string) bool {
	s.returns++
	s.transient = true
	s.status = fmt.Sprintf("return pressed with %s", FormatCode(text, s.ctrl.Config().Secure))
	return false
}

func (s *session) rejected(err *field.InputError) {
	util.LogError("field", err)
	s.status = "ignored: " + err.Err.Error()
	s.transient = true
}

func (s *session) edited() {
	if s.transient {
		s.status = ""
		s.transient = false
	}
}

func (s *session) reset() {
	s.status = ""
	s.transient = false
	s.verdict = VerdictNone
}
