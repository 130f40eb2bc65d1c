// Package sequence advances linearly through the lesson catalog.
package sequence

import (
	"github.com/avelichko/typedrill/internal/catalog"
	"github.com/avelichko/typedrill/internal/model"
)

// Next returns the index after current, or ok=false when current is the last
// valid index and the sequence is complete.
func Next(current, count int) (int, bool) {
	if current+1 >= count {
		return current, false
	}
	return current + 1, true
}

// Sequencer tracks the current position in the catalog. Jumping or advancing
// never touches the caller's session; the caller discards it.
type Sequencer struct {
	catalog *catalog.Catalog
	index   int
}

// New creates a sequencer positioned at the first lesson.
func New(c *catalog.Catalog) *Sequencer {
	return &Sequencer{catalog: c}
}

// Index returns the current position.
func (q *Sequencer) Index() int {
	return q.index
}

// Current returns the lesson at the current position.
func (q *Sequencer) Current() (model.Lesson, error) {
	return q.catalog.Get(q.index)
}

// Advance moves to the next lesson. It reports ok=false, without moving, when
// the current lesson is the last one.
func (q *Sequencer) Advance() (model.Lesson, bool) {
	next, ok := Next(q.index, q.catalog.Count())
	if !ok {
		return model.Lesson{}, false
	}
	q.index = next
	lesson, err := q.catalog.Get(q.index)
	if err != nil {
		return model.Lesson{}, false
	}
	return lesson, true
}

// JumpTo resets the position to index directly.
func (q *Sequencer) JumpTo(index int) (model.Lesson, error) {
	lesson, err := q.catalog.Get(index)
	if err != nil {
		return model.Lesson{}, err
	}
	q.index = index
	return lesson, nil
}

// JumpToID resets the position to the lesson with the given id. An unknown id
// returns catalog.ErrNotFound and leaves the position untouched.
func (q *Sequencer) JumpToID(id int) (model.Lesson, error) {
	index, ok := q.catalog.IndexOfID(id)
	if !ok {
		_, err := q.catalog.FindByID(id)
		return model.Lesson{}, err
	}
	return q.JumpTo(index)
}
