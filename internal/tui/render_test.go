package tui

import (
	"strings"
	"testing"

	"github.com/avelichko/typedrill/internal/diff"
)

func styledFor(typed, reference string, cursorIndex int) []styledRune {
	marks := diff.Classify(typed, reference)
	return buildStyledRunes(marks, []rune(reference), []rune(typed), cursorIndex)
}

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := styledFor("a", "ab", 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != pendingStyle.Underline(true).Render("b") {
		t.Fatalf("expected underlined pending style for cursor rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	runes := styledFor("ax", "ab", -1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style to show the target rune")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	runes := styledFor("ax", "a b", 2)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected dot for wrong space")
	}
}

func TestBuildStyledRunesExtraInput(t *testing.T) {
	runes := styledFor("abxy", "ab", -1)
	if len(runes) != 4 {
		t.Fatalf("expected 4 runes, got %d", len(runes))
	}
	if runes[2].s != incorrectStyle.Render("x") {
		t.Fatalf("expected extra typed rune to render incorrect")
	}
	if runes[3].s != incorrectStyle.Render("y") {
		t.Fatalf("expected extra typed rune to render incorrect")
	}
}

func TestWrapStyledRunesBreaksAtSpace(t *testing.T) {
	runes := styledFor("", "one two three", -1)
	wrapped := wrapStyledRunes(runes, 7)
	lines := strings.Split(wrapped, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), wrapped)
	}
}

func TestWrapStyledRunesZeroWidthNoWrap(t *testing.T) {
	runes := styledFor("", "one two", -1)
	wrapped := wrapStyledRunes(runes, 0)
	if strings.Contains(wrapped, "\n") {
		t.Fatalf("expected no wrapping for zero width: %q", wrapped)
	}
}
