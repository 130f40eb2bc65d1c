// Package model defines shared data structures.
package model

import "time"

// Lesson is one titled unit of reference text. Immutable after load.
type Lesson struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// LessonFile is the on-disk shape of the lesson source.
type LessonFile struct {
	Lessons []Lesson `json:"lessons"`
}

// AttemptRecord is one scored, completed attempt. Never edited or removed.
type AttemptRecord struct {
	User        string    `json:"user"`
	LessonID    int       `json:"lessonId"`
	LessonTitle string    `json:"lessonTitle"`
	Timestamp   time.Time `json:"timestamp"`
	WPM         float64   `json:"wpm"`
	Accuracy    float64   `json:"accuracy"`
}

// ProgressLog is the on-disk shape of the progress sink.
type ProgressLog struct {
	Attempts []AttemptRecord `json:"attempts"`
}

// Config defines practice settings.
type Config struct {
	LessonsPath  string
	ProgressPath string
	User         string
}

// Filter defines filters and options for stats output.
type Filter struct {
	User        string
	LessonID    int
	Since       *time.Time
	Last        int
	CurveWindow int
}
