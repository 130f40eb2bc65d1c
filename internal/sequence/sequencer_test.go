package sequence

import (
	"errors"
	"testing"

	"github.com/avelichko/typedrill/internal/catalog"
	"github.com/avelichko/typedrill/internal/model"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]model.Lesson{
		{ID: 1, Title: "Home Row", Content: "asdf jkl;"},
		{ID: 2, Title: "Top Row", Content: "qwer uiop"},
		{ID: 3, Title: "Numbers", Content: "1234 7890"},
	})
}

func TestNext(t *testing.T) {
	cases := []struct {
		current int
		count   int
		next    int
		ok      bool
	}{
		{current: 0, count: 3, next: 1, ok: true},
		{current: 1, count: 3, next: 2, ok: true},
		{current: 2, count: 3, ok: false},
		{current: 0, count: 1, ok: false},
	}
	for _, tc := range cases {
		next, ok := Next(tc.current, tc.count)
		if ok != tc.ok {
			t.Fatalf("Next(%d, %d): expected ok=%v, got %v", tc.current, tc.count, tc.ok, ok)
		}
		if ok && next != tc.next {
			t.Fatalf("Next(%d, %d): expected %d, got %d", tc.current, tc.count, tc.next, next)
		}
	}
}

func TestAdvanceThroughCatalog(t *testing.T) {
	q := New(testCatalog())
	lesson, ok := q.Advance()
	if !ok || lesson.ID != 2 {
		t.Fatalf("expected advance to lesson 2, got %+v ok=%v", lesson, ok)
	}
	lesson, ok = q.Advance()
	if !ok || lesson.ID != 3 {
		t.Fatalf("expected advance to lesson 3, got %+v ok=%v", lesson, ok)
	}
	if _, ok := q.Advance(); ok {
		t.Fatalf("expected advance past last lesson to report complete")
	}
	if q.Index() != 2 {
		t.Fatalf("expected index to stay at 2, got %d", q.Index())
	}
}

func TestJumpToID(t *testing.T) {
	q := New(testCatalog())
	lesson, err := q.JumpToID(3)
	if err != nil {
		t.Fatalf("jump to id 3: %v", err)
	}
	if lesson.ID != 3 || q.Index() != 2 {
		t.Fatalf("expected lesson 3 at index 2, got %+v index=%d", lesson, q.Index())
	}
}

func TestJumpToUnknownIDLeavesPosition(t *testing.T) {
	q := New(testCatalog())
	if _, err := q.JumpToID(99); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if q.Index() != 0 {
		t.Fatalf("expected index to stay at 0, got %d", q.Index())
	}
}

func TestJumpToOutOfRange(t *testing.T) {
	q := New(testCatalog())
	if _, err := q.JumpTo(5); !errors.Is(err, catalog.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
