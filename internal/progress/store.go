// Package progress persists the append-only attempt log.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avelichko/typedrill/internal/model"
)

// AnonymousUser is recorded when no user name was provided.
const AnonymousUser = "Anonymous"

// ParseError reports a progress log that exists but cannot be decoded.
// Corrupt history is surfaced rather than silently replaced with an empty log.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse progress log %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Store is the append-only attempt log backed by a single JSON document.
type Store struct {
	path string
}

// NewStore creates a store for the log at path. The file is created on the
// first append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the log location.
func (s *Store) Path() string {
	return s.path
}

// Load reads all recorded attempts in append order. A missing file is an
// empty log, not an error; a file that cannot be decoded is a *ParseError.
func (s *Store) Load() ([]model.AttemptRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read progress log: %w", err)
	}
	var log model.ProgressLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	return log.Attempts, nil
}

// Append adds one record to the log and persists the full collection back.
// Any load or write failure propagates so the attempt is not lost unnoticed.
func (s *Store) Append(record model.AttemptRecord) error {
	attempts, err := s.Load()
	if err != nil {
		return err
	}
	attempts = append(attempts, record)
	return s.persist(model.ProgressLog{Attempts: attempts})
}

func (s *Store) persist(log model.ProgressLog) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode progress log: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create progress directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "progress-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp progress log: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write progress log: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close progress log: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to write progress log: %w", err)
	}
	return nil
}

// NewRecord builds an attempt record for a scored lesson. A blank user name
// becomes AnonymousUser.
func NewRecord(user string, lesson model.Lesson, at time.Time, wpm, accuracy float64) model.AttemptRecord {
	user = strings.TrimSpace(user)
	if user == "" {
		user = AnonymousUser
	}
	return model.AttemptRecord{
		User:        user,
		LessonID:    lesson.ID,
		LessonTitle: lesson.Title,
		Timestamp:   at,
		WPM:         wpm,
		Accuracy:    accuracy,
	}
}
