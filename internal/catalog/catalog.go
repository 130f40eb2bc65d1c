// Package catalog loads the ordered lesson list.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/avelichko/typedrill/internal/model"
)

// ErrOutOfRange reports an index outside the catalog bounds.
var ErrOutOfRange = errors.New("lesson index out of range")

// ErrNotFound reports an unknown lesson id.
var ErrNotFound = errors.New("lesson not found")

// ParseError reports a lesson source that exists but cannot be decoded.
// It is distinct from an absent source, which falls back to a placeholder.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse lesson file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Catalog is an ordered, read-only lesson collection. Never empty.
type Catalog struct {
	lessons []model.Lesson
}

// Load reads the lesson file at path. An absent or unreadable file, or one
// with no valid entries, yields a single placeholder lesson so callers never
// operate on an empty catalog. A file that exists but cannot be decoded
// returns a *ParseError.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback(path), nil
	}
	var file model.LessonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	lessons := make([]model.Lesson, 0, len(file.Lessons))
	for _, lesson := range file.Lessons {
		if lesson.ID <= 0 || lesson.Content == "" {
			continue
		}
		lessons = append(lessons, lesson)
	}
	if len(lessons) == 0 {
		return fallback(path), nil
	}
	return &Catalog{lessons: lessons}, nil
}

// New builds a catalog from in-memory lessons, applying the same fallback as Load.
func New(lessons []model.Lesson) *Catalog {
	if len(lessons) == 0 {
		return fallback("lessons.json")
	}
	out := make([]model.Lesson, len(lessons))
	copy(out, lessons)
	return &Catalog{lessons: out}
}

func fallback(path string) *Catalog {
	return &Catalog{lessons: []model.Lesson{{
		ID:      1,
		Title:   "No Lessons Found",
		Content: "Please check " + path,
	}}}
}

// Count returns the number of lessons.
func (c *Catalog) Count() int {
	return len(c.lessons)
}

// Get returns the lesson at index, or ErrOutOfRange.
func (c *Catalog) Get(index int) (model.Lesson, error) {
	if index < 0 || index >= len(c.lessons) {
		return model.Lesson{}, fmt.Errorf("index %d: %w", index, ErrOutOfRange)
	}
	return c.lessons[index], nil
}

// FindByID returns the lesson with the given id, or ErrNotFound.
func (c *Catalog) FindByID(id int) (model.Lesson, error) {
	for _, lesson := range c.lessons {
		if lesson.ID == id {
			return lesson, nil
		}
	}
	return model.Lesson{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
}

// IndexOfID returns the position of the lesson with the given id.
func (c *Catalog) IndexOfID(id int) (int, bool) {
	for i, lesson := range c.lessons {
		if lesson.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Lessons returns the ordered lesson list for display.
func (c *Catalog) Lessons() []model.Lesson {
	out := make([]model.Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}
