// Package session tracks one lesson attempt from idle to submitted.
package session

import (
	"time"

	"github.com/avelichko/typedrill/internal/model"
)

// Status is the lifecycle state of a session.
type Status int

// Session lifecycle states.
const (
	StatusIdle Status = iota
	StatusActive
	StatusSubmitted
)

// Result is the frozen output of a submitted session.
type Result struct {
	Typed   string
	Elapsed time.Duration
}

// Session is the state machine for a single lesson attempt. Time flows in
// through the handler arguments so the machine stays independent of any clock
// or rendering layer. A new lesson always gets a brand-new session.
type Session struct {
	lesson      model.Lesson
	status      Status
	startedAt   time.Time
	submittedAt time.Time
	typed       string
}

// New creates an idle session for the given lesson.
func New(lesson model.Lesson) *Session {
	return &Session{lesson: lesson}
}

// Keystroke records the current typed buffer. The first keystroke fixes the
// start time and activates the session; later calls only replace the buffer.
func (s *Session) Keystroke(buffer string, now time.Time) {
	if s.status == StatusIdle {
		s.status = StatusActive
		s.startedAt = now
	}
	s.typed = buffer
}

// Submit freezes the session and returns the typed text with the elapsed
// time. It reports ok=false without any effect unless the session is active,
// so submitting with no input or submitting twice produces nothing.
func (s *Session) Submit(now time.Time) (Result, bool) {
	if s.status != StatusActive {
		return Result{}, false
	}
	s.status = StatusSubmitted
	s.submittedAt = now
	return Result{Typed: s.typed, Elapsed: s.submittedAt.Sub(s.startedAt)}, true
}

// Lesson returns the lesson under practice.
func (s *Session) Lesson() model.Lesson {
	return s.lesson
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Typed returns the current typed buffer.
func (s *Session) Typed() string {
	return s.typed
}

// StartedAt returns the time of the first keystroke, zero while idle.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// SubmittedAt returns the submit time, zero until submitted.
func (s *Session) SubmittedAt() time.Time {
	return s.submittedAt
}
