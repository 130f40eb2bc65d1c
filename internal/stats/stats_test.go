package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/avelichko/typedrill/internal/model"
)

func attempt(user string, lessonID int, at time.Time, wpm, acc float64) model.AttemptRecord {
	return model.AttemptRecord{
		User:        user,
		LessonID:    lessonID,
		LessonTitle: "Lesson",
		Timestamp:   at,
		WPM:         wpm,
		Accuracy:    acc,
	}
}

func TestSummarize(t *testing.T) {
	base := time.Unix(1000, 0)
	attempts := []model.AttemptRecord{
		attempt("a", 1, base, 30, 90),
		attempt("a", 1, base.Add(time.Minute), 50, 100),
	}
	s := Summarize(attempts)
	if s.Count != 2 {
		t.Fatalf("expected count 2, got %d", s.Count)
	}
	if s.AvgWPM != 40 || s.BestWPM != 50 {
		t.Fatalf("unexpected WPM aggregates: %+v", s)
	}
	if s.AvgAccuracy != 95 || s.BestAccuracy != 100 {
		t.Fatalf("unexpected accuracy aggregates: %+v", s)
	}
}

func TestFilterAttempts(t *testing.T) {
	base := time.Unix(1000, 0)
	attempts := []model.AttemptRecord{
		attempt("a", 1, base, 30, 90),
		attempt("b", 1, base.Add(time.Minute), 35, 91),
		attempt("a", 2, base.Add(2*time.Minute), 40, 92),
		attempt("a", 1, base.Add(3*time.Minute), 45, 93),
	}

	byUser := FilterAttempts(attempts, model.Filter{User: "a"})
	if len(byUser) != 3 {
		t.Fatalf("expected 3 attempts for user a, got %d", len(byUser))
	}

	byLesson := FilterAttempts(attempts, model.Filter{LessonID: 2})
	if len(byLesson) != 1 || byLesson[0].WPM != 40 {
		t.Fatalf("unexpected lesson filter result: %+v", byLesson)
	}

	since := base.Add(90 * time.Second)
	bySince := FilterAttempts(attempts, model.Filter{Since: &since})
	if len(bySince) != 2 {
		t.Fatalf("expected 2 attempts since cutoff, got %d", len(bySince))
	}

	last := FilterAttempts(attempts, model.Filter{Last: 2})
	if len(last) != 2 || last[0].WPM != 40 || last[1].WPM != 45 {
		t.Fatalf("unexpected last filter result: %+v", last)
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	out := MovingAverage(values, 2)
	want := []float64{1, 1.5, 2.5, 3.5, 4.5}
	if len(out) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], out[i])
		}
	}
}

func TestMovingAverageWindowOneCopies(t *testing.T) {
	values := []float64{1, 2, 3}
	out := MovingAverage(values, 1)
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("index %d: expected %v, got %v", i, values[i], out[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	out := Sparkline([]float64{0, 5, 10})
	if len([]rune(out)) != 3 {
		t.Fatalf("expected 3 chars, got %q", out)
	}
	if out[0] != sparkChars[0] || out[2] != sparkChars[len(sparkChars)-1] {
		t.Fatalf("unexpected sparkline %q", out)
	}
}

func TestSparklineFlat(t *testing.T) {
	out := Sparkline([]float64{7, 7, 7, 7})
	if len(out) != 4 {
		t.Fatalf("expected 4 chars, got %q", out)
	}
	if out != strings.Repeat(string(sparkChars[len(sparkChars)/2]), 4) {
		t.Fatalf("expected flat midline, got %q", out)
	}
}

func TestRenderSummary(t *testing.T) {
	base := time.Unix(1000, 0)
	var buf bytes.Buffer
	err := RenderSummary(&buf, []model.AttemptRecord{
		attempt("a", 1, base, 30, 90),
	})
	if err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Attempts: 1", "Avg WPM: 30.00", "Avg Accuracy: 90.00%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No attempts recorded.") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}
}

func TestAggregateByLesson(t *testing.T) {
	base := time.Unix(1000, 0)
	attempts := []model.AttemptRecord{
		attempt("a", 2, base, 20, 80),
		attempt("a", 1, base.Add(time.Minute), 30, 90),
		attempt("a", 2, base.Add(2*time.Minute), 40, 100),
	}
	aggs := AggregateByLesson(attempts)
	if len(aggs) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(aggs))
	}
	if aggs[0].LessonID != 1 || aggs[1].LessonID != 2 {
		t.Fatalf("expected ordering by lesson id, got %+v", aggs)
	}
	if aggs[1].Attempts != 2 || aggs[1].AvgWPM != 30 || aggs[1].BestWPM != 40 {
		t.Fatalf("unexpected aggregate for lesson 2: %+v", aggs[1])
	}
}

func TestRenderLessonTable(t *testing.T) {
	base := time.Unix(1000, 0)
	var buf bytes.Buffer
	err := RenderLessonTable(&buf, []model.AttemptRecord{
		attempt("a", 1, base, 30, 90),
	})
	if err != nil {
		t.Fatalf("render lesson table: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Per-Lesson", "Avg WPM", "30.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}
