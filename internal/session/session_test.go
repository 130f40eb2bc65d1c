package session

import (
	"testing"
	"time"

	"github.com/avelichko/typedrill/internal/model"
)

var testLesson = model.Lesson{ID: 1, Title: "Home Row", Content: "asdf jkl;"}

func TestFirstKeystrokeActivates(t *testing.T) {
	s := New(testLesson)
	if s.Status() != StatusIdle {
		t.Fatalf("expected new session to be idle")
	}
	start := time.Unix(100, 0)
	s.Keystroke("a", start)
	if s.Status() != StatusActive {
		t.Fatalf("expected session to be active after keystroke")
	}
	if !s.StartedAt().Equal(start) {
		t.Fatalf("expected startedAt %v, got %v", start, s.StartedAt())
	}
}

func TestStartTimeFixedByFirstKeystrokeOnly(t *testing.T) {
	s := New(testLesson)
	start := time.Unix(100, 0)
	s.Keystroke("a", start)
	s.Keystroke("as", start.Add(2*time.Second))
	s.Keystroke("asd", start.Add(4*time.Second))
	if !s.StartedAt().Equal(start) {
		t.Fatalf("startedAt moved: expected %v, got %v", start, s.StartedAt())
	}
	if s.Typed() != "asd" {
		t.Fatalf("expected buffer %q, got %q", "asd", s.Typed())
	}
}

func TestSubmitWithoutKeystrokeIsNoop(t *testing.T) {
	s := New(testLesson)
	if _, ok := s.Submit(time.Unix(100, 0)); ok {
		t.Fatalf("expected submit on idle session to be a no-op")
	}
	if s.Status() != StatusIdle {
		t.Fatalf("expected session to stay idle")
	}
}

func TestSubmitFreezesElapsed(t *testing.T) {
	s := New(testLesson)
	start := time.Unix(100, 0)
	s.Keystroke("asdf jkl;", start)
	result, ok := s.Submit(start.Add(30 * time.Second))
	if !ok {
		t.Fatalf("expected submit to succeed")
	}
	if result.Typed != "asdf jkl;" {
		t.Fatalf("expected typed %q, got %q", "asdf jkl;", result.Typed)
	}
	if result.Elapsed != 30*time.Second {
		t.Fatalf("expected elapsed 30s, got %v", result.Elapsed)
	}
	if s.SubmittedAt().Before(s.StartedAt()) {
		t.Fatalf("submittedAt %v before startedAt %v", s.SubmittedAt(), s.StartedAt())
	}
}

func TestDoubleSubmitYieldsOneResult(t *testing.T) {
	s := New(testLesson)
	start := time.Unix(100, 0)
	s.Keystroke("asdf", start)
	if _, ok := s.Submit(start.Add(time.Second)); !ok {
		t.Fatalf("expected first submit to succeed")
	}
	if _, ok := s.Submit(start.Add(2 * time.Second)); ok {
		t.Fatalf("expected second submit to be a no-op")
	}
	if !s.SubmittedAt().Equal(start.Add(time.Second)) {
		t.Fatalf("submittedAt moved on second submit")
	}
}

func TestKeystrokeAfterSubmitDoesNotReactivate(t *testing.T) {
	s := New(testLesson)
	start := time.Unix(100, 0)
	s.Keystroke("asdf", start)
	if _, ok := s.Submit(start.Add(time.Second)); !ok {
		t.Fatalf("expected submit to succeed")
	}
	s.Keystroke("asdf j", start.Add(2*time.Second))
	if s.Status() != StatusSubmitted {
		t.Fatalf("expected session to stay submitted")
	}
}
