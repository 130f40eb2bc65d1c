package metrics

import (
	"testing"
	"time"
)

func TestScoreWordsPerMinute(t *testing.T) {
	start := time.Unix(0, 0)
	end := start.Add(60 * time.Second)
	wpm, _ := Score("a b c", "a b c", start, end)
	if wpm != 3.0 {
		t.Fatalf("expected 3.0 WPM, got %v", wpm)
	}
}

func TestScoreZeroElapsed(t *testing.T) {
	at := time.Unix(0, 0)
	wpm, _ := Score("a b c", "a b c", at, at)
	if wpm != 0 {
		t.Fatalf("expected 0 WPM on zero elapsed, got %v", wpm)
	}
}

func TestScoreSingleError(t *testing.T) {
	start := time.Unix(0, 0)
	end := start.Add(30 * time.Second)
	_, accuracy := Score("abc", "abd", start, end)
	if accuracy != 66.67 {
		t.Fatalf("expected accuracy 66.67, got %v", accuracy)
	}
}

func TestScoreIdenticalText(t *testing.T) {
	start := time.Unix(0, 0)
	end := start.Add(30 * time.Second)
	_, accuracy := Score("hello world", "hello world", start, end)
	if accuracy != 100 {
		t.Fatalf("expected accuracy 100, got %v", accuracy)
	}
}

func TestScoreExtraCharsAllErrors(t *testing.T) {
	start := time.Unix(0, 0)
	end := start.Add(30 * time.Second)
	// 2 reference chars typed correctly, 3 extra chars are 3 errors.
	_, accuracy := Score("ababc", "ab", start, end)
	if accuracy != 0 {
		t.Fatalf("expected accuracy 0, got %v", accuracy)
	}
}

func TestScoreEmptyTyped(t *testing.T) {
	start := time.Unix(0, 0)
	end := start.Add(30 * time.Second)
	wpm, accuracy := Score("", "a b c", start, end)
	if accuracy != 0 {
		t.Fatalf("expected accuracy 0 for empty input, got %v", accuracy)
	}
	if wpm != 6.0 {
		t.Fatalf("expected 6.0 WPM for 3 words over 30s, got %v", wpm)
	}
}

func TestScoreEmptyReference(t *testing.T) {
	start := time.Unix(0, 0)
	end := start.Add(30 * time.Second)
	wpm, accuracy := Score("abc", "", start, end)
	if wpm != 0 {
		t.Fatalf("expected 0 WPM for empty reference, got %v", wpm)
	}
	if accuracy != 0 {
		t.Fatalf("expected accuracy 0 for empty reference, got %v", accuracy)
	}
}

func TestScoreRounding(t *testing.T) {
	start := time.Unix(0, 0)
	end := start.Add(45 * time.Second)
	wpm, _ := Score("a b", "a b", start, end)
	// 2 words / 0.75 minutes = 2.6666... rounds to 2.67.
	if wpm != 2.67 {
		t.Fatalf("expected 2.67 WPM, got %v", wpm)
	}
}
