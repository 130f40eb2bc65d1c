package stats

import (
	"strings"
	"testing"
)

func TestFormatTableAlignment(t *testing.T) {
	headers := []string{"Name", "Count"}
	rows := [][]string{
		{"alpha", "1"},
		{"b", "200"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Name") || !strings.Contains(lines[0], "Count") {
		t.Fatalf("unexpected header line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "    1") {
		t.Fatalf("expected right-aligned count, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "200") {
		t.Fatalf("expected right-aligned count, got %q", lines[2])
	}
}

func TestFormatTableHeaderOnly(t *testing.T) {
	lines := formatTable([]string{"A"}, nil, nil)
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
}
